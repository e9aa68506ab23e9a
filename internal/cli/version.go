package cli

import (
	"fmt"

	"taskreport/pkg/taskreport"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display taskreport version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(taskreport.FullVersionInfo())
	},
}
