// internal/output/json.go
package output

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"gmetrics/internal/assembly"
	"gmetrics/internal/jsonutil"
	"gmetrics/pkg/api"
)

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, list []assembly.Record) error {
	return jsonutil.EncodePretty(w, toAPIList(list))
}

// ReadJSON decodes a JSON array previously written by WriteJSON.
// Pass-through columns are not recovered.
func ReadJSON(r io.Reader) ([]api.GenomeV1, error) {
	var rows []api.GenomeV1
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(r).Decode(&rows); err != nil {
		return nil, errors.Wrap(err, "decode records")
	}
	return rows, nil
}
