// internal/output/api.go
package output

import (
	"gmetrics/internal/assembly"
	"gmetrics/pkg/api"
)

// ToAPI converts a record to the stable wire schema (v1).
func ToAPI(r assembly.Record) api.GenomeV1 {
	v := api.GenomeV1{
		Species:           r.Species,
		AssemblyAccession: r.Accession,
		TaxonomyID:        r.TaxonomyID.Ptr(),
		AssemblyLevel:     r.AssemblyLevel.Ptr(),
		ReleaseDate:       r.ReleaseDate.Ptr(),
		Strain:            r.Strain.Ptr(),
		SpeciesANI:        r.SpeciesANI.Ptr(),
		DisplaySpecies:    r.DisplaySpecies.Ptr(),
		DisplayStrainName: r.DisplayStrainName.Ptr(),
		GenomeSizeMb:      r.GenomeSizeMb,
		TotalCDSs:         r.TotalCDS,
		Pseudogenes:       r.Pseudogenes,
		TRNA:              r.TRNA,
		GCContentPct:      r.GCContentPct,
		ISElements:        r.MobileElements,
		ISElementsPerMb:   r.MobileElementsPerMb,
		Factoid:           r.Factoid,
	}
	for _, f := range r.Passthrough {
		v.Extra = append(v.Extra, api.ExtraField{Key: f.Key, Value: f.Value})
	}
	return v
}

func toAPIList(list []assembly.Record) []api.GenomeV1 {
	out := make([]api.GenomeV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPI(r))
	}
	return out
}
