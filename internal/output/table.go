package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"gmetrics/internal/assembly"
)

// WriteTable renders a terminal summary, one row per record, with a totals
// footer.
func WriteTable(w io.Writer, list []assembly.Record) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Accession", "Species", "Size (Mb)", "GC %", "CDS", "Pseudo", "tRNA", "IS", "IS/Mb"})

	var cds, pseudo, trna, mobile int64
	for _, r := range list {
		species := r.DisplaySpecies.Or(r.Species)
		t.AppendRow(table.Row{
			r.Accession, species,
			fmt.Sprintf("%.3f", r.GenomeSizeMb),
			fmt.Sprintf("%.2f", r.GCContentPct),
			r.TotalCDS, r.Pseudogenes, r.TRNA, r.MobileElements,
			fmt.Sprintf("%.3f", r.MobileElementsPerMb),
		})
		cds += r.TotalCDS
		pseudo += r.Pseudogenes
		trna += r.TRNA
		mobile += r.MobileElements
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d assemblies", len(list)), "", "", "", cds, pseudo, trna, mobile, ""})

	cfgs := make([]table.ColumnConfig, 0, 7)
	for n := 3; n <= 9; n++ {
		cfgs = append(cfgs, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	t.SetColumnConfigs(cfgs)

	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}
