package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vnykmshr/cronmatch/pkg/common/validation"
	"github.com/vnykmshr/cronmatch/pkg/cron/calendar"
)

var matchAt string

var matchCmd = &cobra.Command{
	Use:   "match EXPRESSION",
	Short: "Check whether an expression matches a point in time",
	Long:  "Evaluates a 5 or 6 field cron expression against the current time, or against --at when given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := args[0]
		if err := validation.ValidateNotEmpty("cli", "expression", expr); err != nil {
			return err
		}

		at, err := resolveInstant(matchAt)
		if err != nil {
			return err
		}

		m := calendar.New(calendar.Fixed(at))
		due, err := m.DueNow(expr)
		if err != nil {
			return err
		}

		if due {
			fmt.Printf("%q matches %s\n", expr, at.Format(time.RFC3339))
		} else {
			fmt.Printf("%q does not match %s\n", expr, at.Format(time.RFC3339))
		}
		return nil
	},
}

// resolveInstant parses an RFC3339 flag value, defaulting to now.
func resolveInstant(flag string) (time.Time, error) {
	if flag == "" {
		return time.Now(), nil
	}
	at, err := time.Parse(time.RFC3339, flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at value %q: %w", flag, err)
	}
	return at, nil
}

func init() {
	matchCmd.Flags().StringVar(&matchAt, "at", "", "evaluate at this RFC3339 instant instead of now")
}
