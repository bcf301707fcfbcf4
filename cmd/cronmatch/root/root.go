package root

import (
	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:   "cronmatch",
	Short: "Evaluate cron schedule expressions",
	Long:  "Command line interface for expanding cron fields and matching schedule expressions against points in time",
}

func init() {
	RootCmd.AddCommand(matchCmd)
	RootCmd.AddCommand(explainCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(nextCmd)
}

// GetRoot returns the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}
