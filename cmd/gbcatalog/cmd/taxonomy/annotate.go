package taxonomy

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/gbcatalog/internal/appcontext"
	"github.com/agentstation/gbcatalog/internal/cmd/cmdutil"
	"github.com/agentstation/gbcatalog/internal/cmd/output"
	"github.com/agentstation/gbcatalog/internal/lineio"
	"github.com/agentstation/gbcatalog/pkg/constants"
	"github.com/agentstation/gbcatalog/pkg/errors"
	"github.com/agentstation/gbcatalog/pkg/logging"
	"github.com/agentstation/gbcatalog/pkg/taxonomy"
)

type annotateFlags struct {
	failOnError bool
}

// NewAnnotateCommand creates the taxonomy annotate subcommand.
func NewAnnotateCommand(app appcontext.Interface) *cobra.Command {
	flags := &annotateFlags{}

	cmd := &cobra.Command{
		Use:   "annotate [file]",
		Short: "Look up taxonomy identifiers for an organism list",
		Long: `Annotate reads tab-separated lines of database name, organism name and
one further column, looks each organism up in the NCBI Taxonomy Browser
and prints the line followed by the comma-joined identifiers found.

An organism with no match is printed with an empty identifier column.
Lines whose lookup page could not be fetched or parsed are logged and
left out, so a failure is never mistaken for a negative result.`,
		Example: `  gbcatalog taxonomy annotate archaea.txt
  GBCATALOG_TAXONOMY_ENDPOINT='http://localhost:8080/lookup?%s' gbcatalog taxonomy annotate < organisms.tsv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdutil.Context(cmd, app, args)
			ctx = logging.WithOperation(ctx, "annotate")

			lookup, err := app.Taxonomy()
			if err != nil {
				return err
			}
			annotator := taxonomy.NewAnnotator(lookup)

			in, err := cmdutil.Open(cmd, app, args)
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			var report *taxonomy.Report
			format := cmdutil.Format(app)
			if format == output.FormatTSV {
				report, err = annotator.AnnotateReader(ctx, in, cmd.OutOrStdout())
				if err != nil {
					return err
				}
			} else {
				lines, err := lineio.ReadLines(in)
				if err != nil {
					return err
				}
				var annotations []taxonomy.Annotation
				annotations, report, err = annotator.Annotate(ctx, lines)
				if err != nil {
					return err
				}
				if err := output.WriteFormat(cmd.OutOrStdout(), format, annotations); err != nil {
					return err
				}
			}

			failed := report.FetchFailed + report.ParseFailed
			if flags.failOnError && failed > 0 {
				return errors.NewFetchError(constants.TaxonomySourceName, "", 0,
					fmt.Sprintf("%d of %d lookups failed", failed, report.Lines-report.Skipped))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.failOnError, "fail-on-error", false,
		"Exit with an error if any lookup could not be fetched or parsed")

	return cmd
}
