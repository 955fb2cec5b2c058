// Package genomes implements the genomes command, which normalizes UCSC
// archaeal and eukaryotic genome lists into one organism table.
package genomes

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gbcatalog/internal/appcontext"
	"github.com/agentstation/gbcatalog/internal/cmd/cmdutil"
	"github.com/agentstation/gbcatalog/internal/cmd/output"
	"github.com/agentstation/gbcatalog/pkg/errors"
	"github.com/agentstation/gbcatalog/pkg/genomes"
	"github.com/agentstation/gbcatalog/pkg/logging"
)

type normalizeFunc func(lines []string) *genomes.Result

type genomesFlags struct {
	header bool
	strict bool
}

// NewCommand creates the genomes command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genomes",
		GroupID: "core",
		Short:   "Normalize UCSC genome lists",
		Long: `Genomes rewrites UCSC genome lists into seven tab-separated columns:
database name, description, common name, scientific name, domain, clade
and taxonomy id.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newNormalizeCommand(app, "archaea [file]",
		"Normalize the archaeal genome list",
		`Archaea drops the header line and splits the "domain-clade" column.`,
		genomes.Archaea))
	cmd.AddCommand(newNormalizeCommand(app, "eukaryotes [file]",
		"Normalize the eukaryotic genome list",
		`Eukaryotes sets the domain to eukaryota and moves the clade column.`,
		genomes.Eukaryotes))

	return cmd
}

func newNormalizeCommand(app appcontext.Interface, use, short, long string, normalize normalizeFunc) *cobra.Command {
	flags := &genomesFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdutil.Context(cmd, app, args)
			logger := logging.FromContext(ctx)

			lines, err := cmdutil.ReadLines(cmd, app, args)
			if err != nil {
				return err
			}

			result := normalize(lines)
			for _, lineErr := range result.Errors {
				logger.Warn().Err(lineErr).Msg("Skipping genome line")
			}
			if flags.strict && result.HasErrors() {
				return errors.WrapValidation("input", result.Errors[0])
			}
			logger.Info().
				Int("organisms", len(result.Organisms)).
				Int("rejected", len(result.Errors)).
				Msg("Normalized genome list")

			format := cmdutil.Format(app)
			if format == output.FormatTSV {
				f := &output.TSVFormatter{Header: flags.header}
				return f.Format(cmd.OutOrStdout(), organismsView(result.Organisms))
			}
			return output.WriteFormat(cmd.OutOrStdout(), format, result.Organisms)
		},
	}

	cmd.Flags().BoolVar(&flags.header, "header", false, "Write a header row in tsv output")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail on the first malformed line")

	return cmd
}

// organismsView renders organisms in column order.
type organismsView []genomes.Organism

// TableData implements output.Tabular.
func (v organismsView) TableData() output.Data {
	rows := make([][]string, len(v))
	for i, o := range v {
		rows[i] = o.Fields()
	}
	return output.Data{Headers: genomes.Columns, Rows: rows}
}
