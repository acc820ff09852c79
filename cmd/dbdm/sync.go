package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dzavadindev/dbdm/pkg/core"
	"github.com/dzavadindev/dbdm/pkg/filesystem"
	"github.com/dzavadindev/dbdm/pkg/ui"
)

var (
	syncForce  bool
	syncOutput string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Apply the declared links to the filesystem",
	Long: `Sync creates missing links and resolves conflicts. For each conflicting
destination you choose to skip it, replace it, or back it up first. With
--force every conflict is replaced without prompting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := ui.ParseFormat(syncOutput)
		if err != nil {
			return err
		}

		fs := filesystem.NewOS()
		specs, err := loadSpecs(fs)
		if err != nil {
			return err
		}

		result, err := core.Sync(core.SyncOptions{
			FS:        fs,
			Specs:     specs,
			Force:     syncForce,
			Decisions: ui.NewConsoleDecisionSource(),
		})
		if err != nil {
			return err
		}

		out, err := ui.RenderSync(result, ui.ResolveFormat(format, os.Stdout))
		if err != nil {
			return err
		}
		fmt.Print(out)

		if failed := result.Failed(); failed > 0 {
			return fmt.Errorf("%d link(s) failed", failed)
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "Replace every conflict without prompting")
	syncCmd.Flags().StringVarP(&syncOutput, "output", "o", "auto", "Output format (term, text, json, yaml)")
}
