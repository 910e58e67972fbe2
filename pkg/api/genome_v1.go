// pkg/api/genome_v1.go
package api

import (
	"bytes"
	"encoding/json"
)

// GenomeV1 is the stable JSON schema for one assembly's metrics.
// Keep fields, names, and types stable. Absent report fields encode as null.
type GenomeV1 struct {
	Species           string  `json:"species"`
	AssemblyAccession string  `json:"assembly_accession"`
	TaxonomyID        *int64  `json:"taxonomy_id"`
	AssemblyLevel     *string `json:"assembly_level"`
	ReleaseDate       *string `json:"release_date"`
	Strain            *string `json:"strain"`
	SpeciesANI        *string `json:"species_ani"`
	DisplaySpecies    *string `json:"display_species"`
	DisplayStrainName *string `json:"display_strain_name"`
	GenomeSizeMb      float64 `json:"genome_size_mb"`
	TotalCDSs         int64   `json:"total_cdss"`
	Pseudogenes       int64   `json:"pseudogenes"`
	TRNA              int64   `json:"trna"`
	GCContentPct      float64 `json:"gc_content_pct"`
	ISElements        int64   `json:"is_elements"`
	ISElementsPerMb   float64 `json:"is_elements_per_mb"`
	Factoid           string  `json:"factoid"`

	// Extra holds reference-table columns, emitted after the fixed keys in
	// order. A nil Value encodes as null.
	Extra []ExtraField `json:"-"`
}

// ExtraField is one pass-through column.
type ExtraField struct {
	Key   string
	Value any
}

// MarshalJSON writes the fixed fields followed by Extra. Strings are not
// HTML-escaped, so "R&D" stays readable.
func (g GenomeV1) MarshalJSON() ([]byte, error) {
	type base GenomeV1
	b, err := marshalRaw(base(g))
	if err != nil || len(g.Extra) == 0 {
		return b, err
	}
	var buf bytes.Buffer
	buf.Write(b[:len(b)-1])
	for _, f := range g.Extra {
		k, err := marshalRaw(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := marshalRaw(f.Value)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalRaw is json.Marshal without HTML escaping.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
