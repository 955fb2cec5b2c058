package reconcile

import (
	"fmt"
	"strings"

	"github.com/agentstation/gbcatalog/pkg/constants"
	"github.com/agentstation/gbcatalog/pkg/errors"
)

// Record is one organism line tagged with its versioned database identifier
// and the logical organism key the version belongs to.
type Record struct {
	VersionedID string   `json:"versioned_id" yaml:"versioned_id"`
	LogicalKey  string   `json:"logical_key" yaml:"logical_key"`
	Fields      []string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Version returns the numeric version of the record's identifier.
func (r Record) Version() VersionNumber {
	return Version(r.VersionedID)
}

// Line re-joins the passthrough fields. A record built without fields
// renders as its identifier and key.
func (r Record) Line() string {
	if len(r.Fields) == 0 {
		return r.VersionedID + "\t" + r.LogicalKey
	}
	return strings.Join(r.Fields, "\t")
}

// ParseRecord splits a tab-separated line into a Record. The versioned id is
// field 0 and the logical key field 4.
func ParseRecord(line string) (Record, error) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	minFields := max(constants.VersionedIDColumn, constants.LogicalKeyColumn) + 1
	if len(fields) < minFields {
		return Record{}, errors.NewValidationError("line", line,
			fmt.Sprintf("expected at least %d tab-separated fields, got %d", minFields, len(fields)))
	}
	return Record{
		VersionedID: fields[constants.VersionedIDColumn],
		LogicalKey:  fields[constants.LogicalKeyColumn],
		Fields:      fields,
	}, nil
}
