package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dzavadindev/dbdm/internal/version"
	"github.com/dzavadindev/dbdm/pkg/config"
	"github.com/dzavadindev/dbdm/pkg/logging"
	"github.com/dzavadindev/dbdm/pkg/paths"
	"github.com/dzavadindev/dbdm/pkg/types"
)

var (
	verbosity  int
	configPath string

	rootCmd = &cobra.Command{
		Use:   "dbdm",
		Short: "A declarative dotfile link manager",
		Long: `dbdm keeps a declared set of symlinks in sync with the filesystem.

Links are declared one per line in dbdm.conf:

  link = <from> <to>

Paths may start with !here (working directory), !home (home directory) or
!xdg_conf (XDG config directory). 'check' reports the state of every link;
'sync' repairs missing links and walks you through conflicts.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFileName, "Path to the link declaration file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(syncCmd)
}

// loadSpecs captures the environment once and parses the config against it
func loadSpecs(fs types.FS) ([]types.LinkSpec, error) {
	env, err := paths.CurrentEnvironment()
	if err != nil {
		return nil, err
	}
	return config.Load(fs, configPath, env)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for dbdm`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dbdm version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
