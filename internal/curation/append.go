package curation

import (
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Stub seeds a new curation row for an uncurated assembly.
type Stub struct {
	Accession string
	Species   string
}

// AppendMissing adds a stub row for every accession in stubs that the file
// at path does not already contain. Existing rows are never rewritten or
// reordered, and the file's own header (including extra columns) is reused.
// A new or empty file gets DefaultColumns. It returns the number of rows
// appended.
func AppendMissing(path string, stubs []Stub) (int, error) {
	header, existing, err := readExisting(path)
	if err != nil {
		return 0, err
	}
	if len(header) == 0 {
		header = DefaultColumns
	}

	var rows [][]string
	for _, st := range stubs {
		acc := strings.TrimSpace(st.Accession)
		if acc == "" {
			continue
		}
		if _, ok := existing[acc]; ok {
			continue
		}
		existing[acc] = struct{}{}
		rows = append(rows, stubRow(header, acc, st.Species))
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, errors.Wrap(err, "create curation dir")
	}
	fh, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return 0, errors.Wrap(err, "open curation file for append")
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "stat curation file")
	}
	if info.Size() > 0 && !endsWithNewline(fh, info.Size()) {
		if _, err := fh.WriteString("\n"); err != nil {
			return 0, errors.Wrap(err, "append curation rows")
		}
	}

	w := csv.NewWriter(fh)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return 0, errors.Wrap(err, "write curation header")
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return 0, errors.Wrap(err, "append curation rows")
	}
	return len(rows), nil
}

// readExisting returns the header and the accession set already on disk.
func readExisting(path string) ([]string, map[string]struct{}, error) {
	seen := map[string]struct{}{}
	fh, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, seen, nil
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "open curation file")
	}
	defer fh.Close()

	header, rows, err := readTable(fh)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parse %s", path)
	}
	col := -1
	for i, h := range header {
		if h == accessionColumn {
			col = i
			break
		}
	}
	if col < 0 && len(header) > 0 {
		return nil, nil, errors.Errorf("%s: header has no %s column", path, accessionColumn)
	}
	for _, rec := range rows {
		if col < len(rec) {
			if acc := strings.TrimSpace(rec[col]); acc != "" {
				seen[acc] = struct{}{}
			}
		}
	}
	return header, seen, nil
}

func stubRow(header []string, accession, species string) []string {
	row := make([]string, len(header))
	for i, h := range header {
		switch h {
		case accessionColumn:
			row[i] = accession
		case "species":
			row[i] = species
		}
	}
	return row
}

func endsWithNewline(f *os.File, size int64) bool {
	var last [1]byte
	if _, err := f.ReadAt(last[:], size-1); err != nil && err != io.EOF {
		return true
	}
	return last[0] == '\n'
}
