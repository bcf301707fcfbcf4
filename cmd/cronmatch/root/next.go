package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vnykmshr/cronmatch/pkg/common/validation"
	"github.com/vnykmshr/cronmatch/pkg/cron/schedule"
)

var (
	nextAt    string
	nextCount int
)

var nextCmd = &cobra.Command{
	Use:   "next EXPRESSION",
	Short: "Show upcoming activation times",
	Long:  "Prints the next activation times of an expression, starting from now or from --at",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validation.ValidatePositive("cli", "count", nextCount); err != nil {
			return err
		}

		s, err := schedule.Parse(args[0])
		if err != nil {
			return err
		}

		at, err := resolveInstant(nextAt)
		if err != nil {
			return err
		}

		for i := 0; i < nextCount; i++ {
			at = s.Next(at)
			if at.IsZero() {
				fmt.Println("(no further activations before 2100)")
				return nil
			}
			fmt.Println(at.Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	nextCmd.Flags().StringVar(&nextAt, "at", "", "start from this RFC3339 instant instead of now")
	nextCmd.Flags().IntVar(&nextCount, "count", 5, "number of activations to print")
}
