package taxonomy

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/gbcatalog/internal/appcontext"
	"github.com/agentstation/gbcatalog/internal/cmd/cmdutil"
	"github.com/agentstation/gbcatalog/internal/cmd/output"
	"github.com/agentstation/gbcatalog/pkg/logging"
	"github.com/agentstation/gbcatalog/pkg/taxonomy"
)

// resolveView is the rendered outcome of one resolved document.
type resolveView struct {
	TaxIDs    []string `json:"taxids" yaml:"taxids"`
	Found     bool     `json:"found" yaml:"found"`
	Ambiguous bool     `json:"ambiguous" yaml:"ambiguous"`
}

// TableData implements output.Tabular. The tsv rendering is the single
// comma-joined identifier column.
func (v resolveView) TableData() output.Data {
	return output.Data{
		Headers: []string{"Taxids", "Found", "Ambiguous"},
		Rows: [][]string{{
			strings.Join(v.TaxIDs, ","),
			strconv.FormatBool(v.Found),
			strconv.FormatBool(v.Ambiguous),
		}},
	}
}

// NewResolveCommand creates the taxonomy resolve subcommand.
func NewResolveCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [file]",
		Short: "Extract taxonomy identifiers from a lookup page",
		Long: `Resolve reads a saved NCBI Taxonomy Browser result page and prints the
identifiers it names: the labelled "Taxonomy ID" first, then the ids of
list links in page order. A page reporting no result prints nothing.
A page that cannot be parsed is an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdutil.Context(cmd, app, args)
			logger := logging.FromContext(ctx)

			doc, err := cmdutil.ReadAll(cmd, app, args)
			if err != nil {
				return err
			}

			result, err := taxonomy.NewResolver().Resolve(doc)
			if err != nil {
				return err
			}

			switch {
			case !result.Found():
				logger.Info().Msg("No taxonomy identifier found")
			case result.Ambiguous():
				logger.Warn().Strs("taxids", result.Strings()).Msg("Ambiguous taxonomy lookup")
			}

			format := cmdutil.Format(app)
			if format == output.FormatTSV {
				if !result.Found() {
					return nil
				}
				return output.WriteFormat(cmd.OutOrStdout(), format, []string{result.Join(",")})
			}

			view := resolveView{
				TaxIDs:    result.Strings(),
				Found:     result.Found(),
				Ambiguous: result.Ambiguous(),
			}
			return output.WriteFormat(cmd.OutOrStdout(), format, view)
		},
	}
}
