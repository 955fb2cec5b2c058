package track

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/gbcatalog/internal/appcontext"
	"github.com/agentstation/gbcatalog/internal/cmd/cmdutil"
	"github.com/agentstation/gbcatalog/internal/cmd/output"
	"github.com/agentstation/gbcatalog/pkg/errors"
	"github.com/agentstation/gbcatalog/pkg/trackheader"
)

// headerView renders parsed attributes as a two-column table.
type headerView struct {
	Keyword    trackheader.Keyword     `json:"keyword" yaml:"keyword"`
	Attributes []trackheader.Attribute `json:"attributes" yaml:"attributes"`
}

// TableData implements output.Tabular.
func (v headerView) TableData() output.Data {
	rows := make([][]string, len(v.Attributes))
	for i, a := range v.Attributes {
		rows[i] = []string{a.Name, a.Value}
	}
	return output.Data{
		Headers: []string{"Name", "Value"},
		Rows:    rows,
	}
}

// NewHeaderCommand creates the track header subcommand.
func NewHeaderCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "header <line>",
		Short: "Parse the attributes of a track or variableStep line",
		Long: `Header parses NAME=VALUE attributes from a header line. Values may be
double-quoted to contain spaces; when a name repeats the last value wins.
Arguments are joined with single spaces.`,
		Example: `  gbcatalog track header variableStep chrom=chr1 span=25
  gbcatalog track header 'track name="GC percent" visibility=full' -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			keyword, attrs, ok := trackheader.ParseHeader(line)
			if !ok {
				return errors.NewValidationError("line", line,
					"expected a line starting with 'track' or 'variableStep'")
			}

			view := headerView{Keyword: keyword, Attributes: attrs.List()}
			return output.WriteFormat(cmd.OutOrStdout(), cmdutil.Format(app), view)
		},
	}
}
