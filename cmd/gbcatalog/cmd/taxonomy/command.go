// Package taxonomy implements the taxonomy command, which extracts NCBI
// taxonomy identifiers from lookup pages and annotates organism lists.
package taxonomy

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gbcatalog/internal/appcontext"
)

// NewCommand creates the taxonomy command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "taxonomy",
		Aliases: []string{"tax"},
		GroupID: "core",
		Short:   "Resolve NCBI taxonomy identifiers",
		Long: `Taxonomy resolves organism names to NCBI taxonomy identifiers.

Available subcommands:
  resolve    - extract identifiers from a saved Taxonomy Browser page
  annotate   - look up every organism of a tab-separated list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewResolveCommand(app))
	cmd.AddCommand(NewAnnotateCommand(app))

	return cmd
}
