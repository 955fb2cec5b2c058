// Package cmdutil provides input helpers shared by gbcatalog commands.
package cmdutil

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/gbcatalog/internal/appcontext"
	"github.com/agentstation/gbcatalog/internal/cmd/output"
	"github.com/agentstation/gbcatalog/internal/lineio"
	"github.com/agentstation/gbcatalog/pkg/errors"
	"github.com/agentstation/gbcatalog/pkg/logging"
)

// InputPath returns the optional file argument resolved against the source
// directory, or "-" for stdin.
func InputPath(app appcontext.Interface, args []string) string {
	if len(args) == 0 || args[0] == "" {
		return lineio.Stdin
	}
	return lineio.Resolve(app.SourceDir(), args[0])
}

// Open opens the command input named by args.
func Open(cmd *cobra.Command, app appcontext.Interface, args []string) (*lineio.Input, error) {
	return lineio.OpenWith(InputPath(app, args), cmd.InOrStdin())
}

// ReadLines reads every line of the command input.
func ReadLines(cmd *cobra.Command, app appcontext.Interface, args []string) ([]string, error) {
	in, err := Open(cmd, app, args)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()
	return lineio.ReadLines(in)
}

// ReadAll reads the whole command input as one document.
func ReadAll(cmd *cobra.Command, app appcontext.Interface, args []string) (string, error) {
	in, err := Open(cmd, app, args)
	if err != nil {
		return "", err
	}
	defer func() { _ = in.Close() }()

	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.WrapIO("read", in.Name, err)
	}
	return string(data), nil
}

// Context returns the command context carrying the app logger and the
// input name.
func Context(cmd *cobra.Command, app appcontext.Interface, args []string) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, app.Logger())
	return logging.WithSource(ctx, InputPath(app, args))
}

// Format returns the output format chosen for the app.
func Format(app appcontext.Interface) output.Format {
	return output.DetectFormat(app.OutputFormat())
}
