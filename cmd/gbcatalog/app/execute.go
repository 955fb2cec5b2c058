package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/gbcatalog/internal/cmd/globals"
	"github.com/agentstation/gbcatalog/internal/cmd/output"
	"github.com/agentstation/gbcatalog/pkg/errors"
)

// Execute runs the gbcatalog CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gbcatalog",
		Short:   "Genome browser metadata normalizer",
		Version: a.version,
		Long: `gbcatalog turns UCSC genome browser listings and track files into
normalized tab-separated tables.

It converts variableStep wiggle tracks, resolves organism names to NCBI
taxonomy identifiers, keeps the most recent assembly of each organism and
normalizes the archaeal and eukaryotic genome lists.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	globals.AddFlags(rootCmd)
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.gbcatalog.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("gbcatalog {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	changed := func(name string) bool {
		return cmd.Flags().Changed(name)
	}

	if configFile := mustGetString(cmd, "config"); configFile != "" {
		config, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(flags, changed, mustGetString(cmd, "log-level"))

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return errors.WrapValidation("format", err)
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
