// Package export writes the tool's two output files: the property graph JSON
// and the protocol operation batch JSON. These are the local stand-ins for
// the browser tool's downloads.
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/nvandessel/rankforge/internal/propgraph"
	"github.com/nvandessel/rankforge/internal/protocol"
)

// WritePropertyGraph writes g to path as indented JSON.
func WritePropertyGraph(path string, g propgraph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating property graph file")
	}
	defer f.Close()

	if err := EncodePropertyGraph(f, g); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// EncodePropertyGraph writes the property graph file format to w.
func EncodePropertyGraph(w io.Writer, g propgraph.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

// WriteBatch writes an operation batch to path as indented JSON. The batch
// file carries only the name and ops; the summary is in-memory metadata.
func WriteBatch(path string, b *protocol.Batch) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating batch file")
	}
	defer f.Close()

	if err := EncodeBatch(f, b); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// EncodeBatch writes the batch file format to w.
func EncodeBatch(w io.Writer, b *protocol.Batch) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}
