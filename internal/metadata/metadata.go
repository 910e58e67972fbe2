// Package metadata reads NCBI Datasets assembly reports and reconciles their
// statistics with locally computed metrics.
//
// Report values win over local ones. A field the report leaves out (or
// reports as zero) is absent, and callers fall back to the local value for
// it rather than using zero.
package metadata

import "gmetrics/internal/opt"

// AssemblyMetadata is one report line. Accession and Species are required;
// every other field may be absent.
type AssemblyMetadata struct {
	Accession string
	Species   string

	TaxonomyID    opt.Value[int64]
	AssemblyLevel opt.Value[string]
	ReleaseDate   opt.Value[string]
	Strain        opt.Value[string]
	SpeciesANI    opt.Value[string]

	TotalSequenceLength opt.Value[int64]
	GCCount             opt.Value[int64]
	ATGCCount           opt.Value[int64]
	GCPercent           opt.Value[float64]
	TotalCDS            opt.Value[int64]
	Pseudogenes         opt.Value[int64]
}

// Index maps accession to its report record.
type Index map[string]AssemblyMetadata

// Lookup returns the record for accession, or nil.
func (ix Index) Lookup(accession string) *AssemblyMetadata {
	m, ok := ix[accession]
	if !ok {
		return nil
	}
	return &m
}
