// Package assembly turns one resolved assembly directory into a metric
// record by combining locally parsed counts, the assembly report, and the
// curation overlay.
package assembly

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"gmetrics/internal/common"
	"gmetrics/internal/curation"
	"gmetrics/internal/dataset"
	"gmetrics/internal/fasta"
	"gmetrics/internal/gff"
	"gmetrics/internal/metadata"
	"gmetrics/internal/opt"
)

// ErrIncomplete marks a directory without a sequence or annotation file.
// Such assemblies are skipped, never emitted.
var ErrIncomplete = errors.New("assembly missing sequence or annotation file")

const basesPerMb = 1_000_000

// Inputs are the local measurements for one assembly.
type Inputs struct {
	Sequence   fasta.Composition
	Annotation gff.Counts
}

// Assemble parses the files in dir and builds its record. The accession is
// the directory name. meta and cur may be nil.
func Assemble(dir string, meta metadata.Index, cur *curation.Store) (Record, error) {
	files, err := dataset.Locate(dir)
	if err != nil {
		return Record{}, err
	}
	if !files.Complete() {
		return Record{}, errors.Wrapf(ErrIncomplete, "%s (sequence=%q annotation=%q)", dir, files.Sequence, files.Annotation)
	}

	seq, err := fasta.ScanFile(files.Sequence)
	if err != nil {
		return Record{}, err
	}
	ann, err := gff.ScanFile(files.Annotation)
	if err != nil {
		return Record{}, err
	}

	accession := strings.TrimSpace(filepath.Base(dir))
	return Build(accession, meta.Lookup(accession), Inputs{Sequence: seq, Annotation: ann}, cur.Lookup(accession)), nil
}

// Build merges measurements, report, and curation into a record.
func Build(accession string, meta *metadata.AssemblyMetadata, in Inputs, cur curation.Entry) Record {
	rec := metadata.Reconcile(meta, metadata.Local{
		Length:      in.Sequence.Length,
		GC:          in.Sequence.GC,
		TotalCDS:    in.Annotation.CDS,
		Pseudogenes: in.Annotation.Pseudogenes,
	})

	sizeMb := float64(rec.Length) / basesPerMb
	r := Record{
		Species:             accession,
		Accession:           accession,
		GenomeSizeMb:        common.Round(sizeMb, 3),
		TotalCDS:            rec.TotalCDS,
		Pseudogenes:         rec.Pseudogenes,
		TRNA:                in.Annotation.TRNA,
		GCContentPct:        common.Round(rec.GCPercent, 2),
		MobileElements:      in.Annotation.MobileElements,
		MobileElementsPerMb: common.Round(common.Ratio(float64(in.Annotation.MobileElements), sizeMb), 3),
		Factoid:             cur.Factoid,
		DisplaySpecies:      nonEmpty(cur.DisplaySpecies),
		DisplayStrainName:   nonEmpty(cur.DisplayStrainName),
	}
	if meta != nil {
		if meta.Species != "" {
			r.Species = meta.Species
		}
		r.TaxonomyID = meta.TaxonomyID
		r.AssemblyLevel = meta.AssemblyLevel
		r.ReleaseDate = meta.ReleaseDate
		r.Strain = meta.Strain
		r.SpeciesANI = meta.SpeciesANI
	}
	return r
}

func nonEmpty(s string) opt.Value[string] {
	if s == "" {
		return opt.None[string]()
	}
	return opt.Some(s)
}
