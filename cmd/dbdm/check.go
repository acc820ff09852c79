package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dzavadindev/dbdm/pkg/core"
	"github.com/dzavadindev/dbdm/pkg/filesystem"
	"github.com/dzavadindev/dbdm/pkg/ui"
)

var checkOutput string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report the state of every declared link",
	Long: `Check evaluates each declared link against the filesystem and reports
whether it is matched, missing, or conflicting. Nothing is modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := ui.ParseFormat(checkOutput)
		if err != nil {
			return err
		}

		fs := filesystem.NewOS()
		specs, err := loadSpecs(fs)
		if err != nil {
			return err
		}

		result := core.Check(core.CheckOptions{FS: fs, Specs: specs})

		out, err := ui.RenderCheck(result, ui.ResolveFormat(format, os.Stdout))
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "auto", "Output format (term, text, json, yaml)")
}
