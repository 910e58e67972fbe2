// Package fasta computes base composition from FASTA sequence files.
package fasta

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"gmetrics/internal/fileio"
)

// Composition is the base tally of every sequence line in a file.
// Record boundaries are not tracked; multi-record files are summed.
type Composition struct {
	Length int64 // bases on non-header lines, any alphabet
	GC     int64 // G or C, either case
	N      int64 // ambiguous N, either case
}

// Add accumulates one sequence line.
func (c *Composition) Add(line []byte) {
	line = bytes.TrimSpace(line)
	c.Length += int64(len(line))
	for _, b := range line {
		switch b {
		case 'G', 'g', 'C', 'c':
			c.GC++
		case 'N', 'n':
			c.N++
		}
	}
}

// Scan streams r and tallies every line that is not a '>' header.
func Scan(r io.Reader) (Composition, error) {
	var c Composition
	err := fileio.EachLine(r, func(line []byte) error {
		if len(line) > 0 && line[0] == '>' {
			return nil
		}
		c.Add(line)
		return nil
	})
	return c, err
}

// ScanFile opens path (plain, gzip, or "-") and scans it.
func ScanFile(path string) (Composition, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return Composition{}, errors.Wrap(err, "open sequence file")
	}
	defer rc.Close()
	c, err := Scan(rc)
	if err != nil {
		return Composition{}, errors.Wrapf(err, "read %s", path)
	}
	return c, nil
}
