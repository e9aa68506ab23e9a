package cli

import (
	"taskreport/internal/logger"
	"taskreport/pkg/taskreport"

	"github.com/spf13/cobra"
)

// Global configuration variables
var (
	configFile string
	config     *Config
	debug      bool
	verbose    bool
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskreport",
		Short: "Taskreport - per-user task status reports",
		Long: `Taskreport fetches the task and user collections from their remote
endpoints and maintains one human-readable status report per user.

Reports whose content has not changed are left untouched; superseded
reports are archived, never deleted.`,
		Version: taskreport.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbosity(debug, verbose)

			var err error
			config, err = LoadConfig(configFile)
			if err != nil {
				if verbose {
					cmd.Printf("Warning: Failed to load config file: %v\n", err)
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: taskreport.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
