package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFromSubcommand(t *testing.T) {
	root := &cobra.Command{Use: "gbcatalog"}
	AddFlags(root)

	var parsed *Flags
	child := &cobra.Command{
		Use: "reconcile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			parsed, err = Parse(cmd)
			return err
		},
	}
	root.AddCommand(child)

	root.SetArgs([]string{"reconcile", "-o", "json", "-q", "--source-dir", "/data"})
	require.NoError(t, root.Execute())

	assert.Equal(t, &Flags{Output: "json", Quiet: true, SourceDir: "/data"}, parsed)
}
