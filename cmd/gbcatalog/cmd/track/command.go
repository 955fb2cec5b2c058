// Package track implements the track command, which converts UCSC
// variableStep wiggle files and parses individual header lines.
package track

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gbcatalog/internal/appcontext"
)

// NewCommand creates the track command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "track",
		GroupID: "core",
		Short:   "Convert UCSC track files",
		Long: `Track works with UCSC browser track files.

Available subcommands:
  convert   - variableStep wiggle data to chrom/./value rows
  header    - parse the attributes of a track or variableStep line`,
		Example: `  gbcatalog track convert chr1.wig
  gbcatalog track header 'track type=wiggle_0 name="GC percent"'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewConvertCommand(app))
	cmd.AddCommand(NewHeaderCommand(app))

	return cmd
}
