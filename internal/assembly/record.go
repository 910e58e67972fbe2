package assembly

import (
	"gmetrics/internal/opt"
	"gmetrics/internal/reference"
)

// Record is the canonical per-assembly metric row handed to renderers.
// Report-derived fields stay absent when neither the report nor the
// curation file supplies them.
type Record struct {
	Species   string
	Accession string

	TaxonomyID    opt.Value[int64]
	AssemblyLevel opt.Value[string]
	ReleaseDate   opt.Value[string]
	Strain        opt.Value[string]
	SpeciesANI    opt.Value[string]

	DisplaySpecies    opt.Value[string]
	DisplayStrainName opt.Value[string]

	GenomeSizeMb        float64 // 3 decimals
	TotalCDS            int64
	Pseudogenes         int64
	TRNA                int64
	GCContentPct        float64 // 2 decimals
	MobileElements      int64
	MobileElementsPerMb float64 // 3 decimals

	Factoid string

	// Reference-table columns copied verbatim (taxid_input, phylum, ...).
	Passthrough []reference.Field
}

// WithPassthrough returns r with the row's pass-through columns attached.
func (r Record) WithPassthrough(row reference.Row) Record {
	r.Passthrough = row.Passthrough()
	return r
}
