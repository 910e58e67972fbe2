// Package reference loads the input table of reference assemblies (one row
// per assembly to process). Rows are kept verbatim so selected columns can
// pass through to the output untouched.
package reference

import (
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// PassthroughKeys are copied verbatim into output records when a row has them.
var PassthroughKeys = []string{"taxid_input", "phylum", "gram_stain", "who_priority"}

var tableJSON = jsoniter.Config{EscapeHTML: true, UseNumber: true}.Froze()

// Row is one reference-table row.
type Row struct {
	Fields map[string]any
}

// Field is a named pass-through value; Value may be nil when the row holds
// an explicit null.
type Field struct {
	Key   string
	Value any
}

// Accession returns the trimmed assembly_accession (or accession) value, or
// "" when neither is a non-empty string.
func (r Row) Accession() string {
	for _, k := range []string{"assembly_accession", "accession"} {
		if s, ok := r.Fields[k].(string); ok && s != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// Passthrough returns the PassthroughKeys present in the row, in key order.
func (r Row) Passthrough() []Field {
	var out []Field
	for _, k := range PassthroughKeys {
		if v, ok := r.Fields[k]; ok {
			out = append(out, Field{Key: k, Value: v})
		}
	}
	return out
}

// Load reads a JSON array (".json") or a CSV table. A missing file yields no
// rows.
func Load(path string) ([]Row, error) {
	fh, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "open reference table")
	}
	defer fh.Close()

	var rows []Row
	if strings.EqualFold(filepath.Ext(path), ".json") {
		rows, err = ParseJSON(fh)
	} else {
		rows, err = ParseCSV(fh)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return rows, nil
}

// ParseJSON reads an array of objects. Numbers keep their original text.
func ParseJSON(r io.Reader) ([]Row, error) {
	var raw []map[string]any
	if err := tableJSON.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	rows := make([]Row, 0, len(raw))
	for _, m := range raw {
		if m == nil {
			m = map[string]any{}
		}
		rows = append(rows, Row{Fields: m})
	}
	return rows, nil
}

// ParseCSV reads a headed CSV table; every value is a string.
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		m := make(map[string]any, len(header))
		for i, h := range header {
			if i < len(rec) {
				m[h] = rec[i]
			} else {
				m[h] = nil
			}
		}
		rows = append(rows, Row{Fields: m})
	}
	return rows, nil
}
