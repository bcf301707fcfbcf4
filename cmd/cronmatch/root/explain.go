package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vnykmshr/cronmatch/cmd/cronmatch/output"
	cmerrors "github.com/vnykmshr/cronmatch/pkg/common/errors"
	"github.com/vnykmshr/cronmatch/pkg/cron/matcher"
)

var explainCmd = &cobra.Command{
	Use:   "explain EXPRESSION",
	Short: "Show the expanded value set of every field",
	Long:  "Splits a cron expression into its fields and prints the concrete integer values each field expands to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := strings.Fields(args[0])
		if len(tokens) != 5 && len(tokens) != 6 {
			return fmt.Errorf("%w: got %d fields, want 5 or 6", cmerrors.ErrMalformedExpression, len(tokens))
		}

		names := matcher.FieldNames()
		rows := make([][]interface{}, 0, len(tokens))
		for i, token := range tokens {
			values, err := matcher.ExpandField(i, token)
			if err != nil {
				return err
			}
			rows = append(rows, []interface{}{names[i], token, formatValues(values)})
		}

		output.RenderTable([]string{"Field", "Expression", "Values"}, rows)
		return nil
	},
}

// formatValues renders an expanded set compactly; an empty set is called
// out since such a field can never match.
func formatValues(values []int) string {
	if len(values) == 0 {
		return "(none - field never matches)"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}
