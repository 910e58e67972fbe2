package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gmetrics/internal/assembly"
	"gmetrics/internal/opt"
)

// Columns is the fixed CSV header; pass-through columns follow it in order
// of first appearance.
var Columns = []string{
	"species", "assembly_accession", "taxonomy_id", "assembly_level", "release_date",
	"strain", "species_ani", "display_species", "display_strain_name",
	"genome_size_mb", "total_cdss", "pseudogenes", "trna", "gc_content_pct",
	"is_elements", "is_elements_per_mb", "factoid",
}

// WriteCSV writes one row per record. Absent values are empty cells.
func WriteCSV(w io.Writer, list []assembly.Record) error {
	var extra []string
	seen := map[string]bool{}
	for _, r := range list {
		for _, f := range r.Passthrough {
			if !seen[f.Key] {
				seen[f.Key] = true
				extra = append(extra, f.Key)
			}
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string(nil), Columns...), extra...)); err != nil {
		return err
	}
	for _, r := range list {
		row := []string{
			r.Species, r.Accession,
			optCell(r.TaxonomyID), optCell(r.AssemblyLevel), optCell(r.ReleaseDate),
			optCell(r.Strain), optCell(r.SpeciesANI), optCell(r.DisplaySpecies), optCell(r.DisplayStrainName),
			formatFloat(r.GenomeSizeMb),
			strconv.FormatInt(r.TotalCDS, 10),
			strconv.FormatInt(r.Pseudogenes, 10),
			strconv.FormatInt(r.TRNA, 10),
			formatFloat(r.GCContentPct),
			strconv.FormatInt(r.MobileElements, 10),
			formatFloat(r.MobileElementsPerMb),
			r.Factoid,
		}
		vals := make(map[string]any, len(r.Passthrough))
		for _, f := range r.Passthrough {
			vals[f.Key] = f.Value
		}
		for _, k := range extra {
			row = append(row, anyCell(vals[k]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func optCell[T any](v opt.Value[T]) string {
	x, ok := v.Get()
	if !ok {
		return ""
	}
	return fmt.Sprint(x)
}

func anyCell(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
