// Package gff counts coding, pseudogene, tRNA and mobile-element features in
// GFF3 annotation files.
package gff

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"gmetrics/internal/fileio"
)

// Feature types with dedicated counters.
const (
	TypeCDS        = "CDS"
	TypePseudogene = "pseudogene"
	TypeTRNA       = "tRNA"
)

const minColumns = 9

// Counts are per-file feature tallies.
//
// CDS rows flagged as pseudo and standalone pseudogene rows both add to
// Pseudogenes, so a pseudogene annotated twice is counted twice.
type Counts struct {
	CDS            int64
	Pseudogenes    int64
	MobileElements int64
	TRNA           int64
}

// Add classifies one feature row.
func (c *Counts) Add(featureType string, attrs Attributes) {
	switch featureType {
	case TypeCDS:
		c.CDS++
		if attrs.Has("pseudo") || attrs.Value("pseudogene") != "" {
			c.Pseudogenes++
		}
	case TypePseudogene:
		c.Pseudogenes++
	case TypeTRNA:
		c.TRNA++
	}
	if IsMobileElement(featureType, attrs) {
		c.MobileElements++
	}
}

// Scan streams a GFF file. Comment lines ('#') and blank lines are skipped,
// and rows with fewer than nine tab-separated columns are ignored.
func Scan(r io.Reader) (Counts, error) {
	var c Counts
	err := fileio.EachLine(r, func(line []byte) error {
		if len(line) == 0 || line[0] == '#' {
			return nil
		}
		cols := bytes.SplitN(line, []byte{'\t'}, minColumns+1)
		if len(cols) < minColumns {
			return nil
		}
		// columns past the ninth are ignored
		c.Add(string(cols[2]), ParseAttributes(string(cols[8])))
		return nil
	})
	return c, err
}

// ScanFile opens path (plain, gzip, or "-") and scans it.
func ScanFile(path string) (Counts, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return Counts{}, errors.Wrap(err, "open annotation file")
	}
	defer rc.Close()
	c, err := Scan(rc)
	if err != nil {
		return Counts{}, errors.Wrapf(err, "read %s", path)
	}
	return c, nil
}
