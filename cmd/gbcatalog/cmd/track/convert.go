package track

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gbcatalog/internal/appcontext"
	"github.com/agentstation/gbcatalog/internal/cmd/cmdutil"
	"github.com/agentstation/gbcatalog/internal/cmd/output"
	"github.com/agentstation/gbcatalog/internal/lineio"
	"github.com/agentstation/gbcatalog/pkg/logging"
	"github.com/agentstation/gbcatalog/pkg/trackheader"
)

// NewConvertCommand creates the track convert subcommand.
func NewConvertCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a variableStep wiggle file to tab-separated rows",
		Long: `Convert rewrites a variableStep wiggle file. Track and variableStep
header lines are kept behind a '#', comments are kept unchanged and every
data line becomes chrom<TAB>.<TAB>line using the chrom of the latest
variableStep header. Reads stdin when no file is given; gzip input is
detected automatically.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdutil.Context(cmd, app, args)
			logger := logging.FromContext(ctx)
			conv := trackheader.NewConverter(trackheader.WithLogger(logger))

			in, err := cmdutil.Open(cmd, app, args)
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			format := cmdutil.Format(app)
			if format == output.FormatTSV {
				if err := conv.ConvertReader(ctx, in, cmd.OutOrStdout()); err != nil {
					return err
				}
			} else {
				lines, err := lineio.ReadLines(in)
				if err != nil {
					return err
				}
				if err := output.WriteFormat(cmd.OutOrStdout(), format, conv.Convert(lines)); err != nil {
					return err
				}
			}

			stats := conv.Stats()
			logger.Info().
				Int("headers", stats.Headers).
				Int("data", stats.Data).
				Int("comments", stats.Comments).
				Msg("Converted track file")
			return nil
		},
	}
}
