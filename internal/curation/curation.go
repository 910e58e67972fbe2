// Package curation loads human-written display overrides and factoids keyed
// by assembly accession, and appends stub rows for accessions that still
// need curating.
package curation

import (
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"gmetrics/internal/logging"
)

// Default column layout for a new curation file.
var DefaultColumns = []string{"assembly_accession", "species", "factoid", "display_species", "display_strain_name"}

const accessionColumn = "assembly_accession"

// Entry is one curated row. Missing entries are the zero Entry.
type Entry struct {
	Accession         string `mapstructure:"assembly_accession"`
	Species           string `mapstructure:"species"`
	Factoid           string `mapstructure:"factoid"`
	DisplaySpecies    string `mapstructure:"display_species"`
	DisplayStrainName string `mapstructure:"display_strain_name"`
}

// Store is the loaded curation table.
type Store struct {
	entries map[string]Entry
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{entries: map[string]Entry{}} }

// Load reads the curation CSV at path. An empty path or a missing file
// yields an empty store.
func Load(path string) (*Store, error) {
	if path == "" {
		return NewStore(), nil
	}
	fh, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.New("curation").Info("no curation file; overrides left empty", "path", path)
		return NewStore(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "open curation file")
	}
	defer fh.Close()
	s, err := Parse(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return s, nil
}

// Parse reads curation rows from CSV with a header line. Rows without an
// accession are ignored; a later row for the same accession replaces an
// earlier one.
func Parse(r io.Reader) (*Store, error) {
	s := NewStore()
	header, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}
	for _, rec := range rows {
		e, err := decodeEntry(rowMap(header, rec))
		if err != nil {
			return nil, err
		}
		if e.Accession == "" {
			continue
		}
		s.entries[e.Accession] = e
	}
	return s, nil
}

// Lookup returns the entry for accession; absent accessions give the zero Entry.
func (s *Store) Lookup(accession string) Entry {
	if s == nil {
		return Entry{}
	}
	return s.entries[accession]
}

// Has reports whether accession has a curation row.
func (s *Store) Has(accession string) bool {
	if s == nil {
		return false
	}
	_, ok := s.entries[accession]
	return ok
}

// Len is the number of curated accessions.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Missing returns the accessions not yet curated, in input order, without
// duplicates.
func (s *Store) Missing(accessions []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(accessions))
	for _, a := range accessions {
		if a == "" || s.Has(a) {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

var trimStrings mapstructure.DecodeHookFuncType = func(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if s, ok := data.(string); ok && to.Kind() == reflect.String {
		return strings.TrimSpace(s), nil
	}
	return data, nil
}

func decodeEntry(m map[string]string) (Entry, error) {
	var e Entry
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &e,
		DecodeHook: trimStrings,
	})
	if err != nil {
		return Entry{}, err
	}
	if err := dec.Decode(m); err != nil {
		return Entry{}, errors.Wrap(err, "decode curation row")
	}
	return e, nil
}

// readTable returns the header and data rows. Short rows are padded with "".
func readTable(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "read header")
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrap(err, "read row")
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

func rowMap(header, rec []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(rec) {
			m[h] = rec[i]
		} else {
			m[h] = ""
		}
	}
	return m
}
