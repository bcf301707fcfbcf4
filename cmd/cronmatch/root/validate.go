package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vnykmshr/cronmatch/pkg/cron/matcher"
)

var validateCmd = &cobra.Command{
	Use:   "validate EXPRESSION",
	Short: "Strictly validate an expression",
	Long:  "Checks the field count and that every field expands to at least one value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := matcher.Validate(args[0]); err != nil {
			return err
		}
		fmt.Println("valid")
		return nil
	},
}
