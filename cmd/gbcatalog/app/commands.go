package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/gbcatalog/cmd/gbcatalog/cmd/genomes"
	"github.com/agentstation/gbcatalog/cmd/gbcatalog/cmd/reconcile"
	"github.com/agentstation/gbcatalog/cmd/gbcatalog/cmd/taxonomy"
	"github.com/agentstation/gbcatalog/cmd/gbcatalog/cmd/track"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(track.NewCommand(a))
	rootCmd.AddCommand(taxonomy.NewCommand(a))
	rootCmd.AddCommand(reconcile.NewCommand(a))
	rootCmd.AddCommand(genomes.NewCommand(a))

	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gbcatalog %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(out, "  commit:   %s\n", a.commit)
				fmt.Fprintf(out, "  built:    %s\n", a.date)
				fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
			}
		},
	}
}
