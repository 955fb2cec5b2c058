package output

import (
	"io"

	"github.com/agentstation/gbcatalog/internal/cmd/globals"
)

// Write renders data to w in the format selected by the global flags.
func Write(w io.Writer, data any, globalFlags *globals.Flags) error {
	return NewFormatter(DetectFormat(globalFlags.Output)).Format(w, data)
}

// WriteFormat renders data in an explicit format.
func WriteFormat(w io.Writer, format Format, data any) error {
	return NewFormatter(format).Format(w, data)
}
