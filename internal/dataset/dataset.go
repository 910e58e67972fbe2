// Package dataset resolves extracted NCBI Datasets directories and finds the
// sequence and annotation files inside each assembly.
//
// Layout: <root>/data/<accession>/{*_genomic.fna, genomic.gff, ...} with the
// assembly report at <root>/data/assembly_data_report.jsonl.
package dataset

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"gmetrics/internal/metadata"
)

// ErrNotFound means no extracted dataset exists for an accession.
var ErrNotFound = errors.New("dataset not found")

// Dataset is one extracted archive.
type Dataset struct {
	Accession string
	Root      string
}

// ReportPath is where the assembly metadata report lives, if present.
func (d Dataset) ReportPath() string {
	return filepath.Join(d.Root, filepath.FromSlash(metadata.ReportFile))
}

// Fetcher supplies a dataset for an accession. Downloading and unpacking are
// left to implementations; the metrics pipeline only reads the result.
type Fetcher interface {
	Resolve(ctx context.Context, accession string) (Dataset, error)
}

// Cache resolves datasets already extracted under
// <WorkDir>/assemblies/<accession>/ncbi_dataset.
type Cache struct {
	WorkDir string
}

// Root returns the dataset root Cache expects for accession.
func (c Cache) Root(accession string) string {
	return filepath.Join(c.WorkDir, "assemblies", accession, "ncbi_dataset")
}

// Resolve implements Fetcher.
func (c Cache) Resolve(ctx context.Context, accession string) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	root := c.Root(accession)
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return Dataset{}, errors.Wrapf(ErrNotFound, "%s: %s", accession, root)
	}
	if err != nil {
		return Dataset{}, errors.Wrap(err, "stat dataset")
	}
	return Dataset{Accession: accession, Root: root}, nil
}
