// internal/writers/registry.go
package writers

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"gmetrics/internal/assembly"
)

// WriteFunc serializes a full batch.
type WriteFunc func(w io.Writer, list []assembly.Record) error

// Writer registry (format → handler). Register in init() blocks.
var recordWriters = map[string]WriteFunc{}

// Register installs fn for format (last wins).
func Register(format string, fn WriteFunc) { recordWriters[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(recordWriters))
	for k := range recordWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format. Broken pipes are
// not reported.
func Write(format string, w io.Writer, list []assembly.Record) error {
	fn, ok := recordWriters[format]
	if !ok {
		return errors.Errorf("unknown output format %q (no writer registered)", format)
	}
	if err := fn(w, list); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}
