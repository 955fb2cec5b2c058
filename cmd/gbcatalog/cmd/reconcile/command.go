// Package reconcile implements the reconcile command, which keeps the most
// recent database build of every organism in a genome listing.
package reconcile

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gbcatalog/internal/appcontext"
	"github.com/agentstation/gbcatalog/internal/cmd/cmdutil"
	"github.com/agentstation/gbcatalog/internal/cmd/output"
	"github.com/agentstation/gbcatalog/pkg/logging"
	"github.com/agentstation/gbcatalog/pkg/reconcile"
)

type reconcileFlags struct {
	strictPairs bool
	dropped     bool
}

// recordsView renders records as database, organism and version columns.
type recordsView []reconcile.Record

// TableData implements output.Tabular.
func (v recordsView) TableData() output.Data {
	rows := make([][]string, len(v))
	for i, r := range v {
		rows[i] = []string{r.VersionedID, r.LogicalKey, r.Version().String()}
	}
	return output.Data{
		Headers:         []string{"Database", "Organism", "Version"},
		Rows:            rows,
		ColumnAlignment: []output.Align{output.AlignLeft, output.AlignLeft, output.AlignRight},
	}
}

// NewCommand creates the reconcile command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &reconcileFlags{}

	cmd := &cobra.Command{
		Use:     "reconcile [file]",
		GroupID: "core",
		Short:   "Keep only the most recent build of each organism",
		Long: `Reconcile reads tab-separated genome lines whose first field is a
versioned database name (hg19, mm10, ...) and fifth field the organism
key. For each organism the database with the greatest trailing number
wins, ties going to the earlier line, and only winning lines are printed
in their original order.

By default a line survives when its database name won for any organism.
--strict-pairs keeps a line only when it won for its own organism.`,
		Example: `  gbcatalog reconcile euks.txt
  gbcatalog reconcile --strict-pairs -o table euks.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdutil.Context(cmd, app, args)
			logger := logging.FromContext(ctx)

			lines, err := cmdutil.ReadLines(cmd, app, args)
			if err != nil {
				return err
			}

			r := app.Reconciler()
			if flags.strictPairs {
				r = reconcile.New(reconcile.WithMatchMode(reconcile.MatchByPair))
			}

			result := r.ReconcileLines(ctx, lines)
			logger.Info().Msg(result.Summary())

			records := result.Kept
			if flags.dropped {
				records = result.Dropped
			}

			switch format := cmdutil.Format(app); format {
			case output.FormatTSV:
				view := make([]string, len(records))
				for i, rec := range records {
					view[i] = rec.Line()
				}
				return output.WriteFormat(cmd.OutOrStdout(), format, view)
			case output.FormatTable:
				return output.WriteFormat(cmd.OutOrStdout(), format, recordsView(records))
			default:
				return output.WriteFormat(cmd.OutOrStdout(), format, result)
			}
		},
	}

	cmd.Flags().BoolVar(&flags.strictPairs, "strict-pairs", false,
		"Match winners by (organism, database) pair instead of database name alone")
	cmd.Flags().BoolVar(&flags.dropped, "dropped", false,
		"Print the superseded lines instead of the survivors")

	return cmd
}
