package assembly

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmetrics/internal/curation"
	"gmetrics/internal/fasta"
	"gmetrics/internal/gff"
	"gmetrics/internal/metadata"
	"gmetrics/internal/opt"
)

var optTypes = cmp.AllowUnexported(opt.Value[int64]{}, opt.Value[string]{})

// writeAssembly lays out a one-assembly directory with a 1 Mb sequence at
// 50% GC and an annotation of ten CDS (one pseudo) plus two mobile elements.
func writeAssembly(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))

	var fa strings.Builder
	fa.WriteString(">NC_000001.1 test chromosome\n")
	line := strings.Repeat("GC", 25) + strings.Repeat("AT", 25)
	for i := 0; i < 10_000; i++ {
		fa.WriteString(line)
		fa.WriteByte('\n')
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "GCF_000001_ASM1v1_genomic.fna"), []byte(fa.String()), 0o644))

	var gf strings.Builder
	gf.WriteString("##gff-version 3\n")
	for i := 0; i < 10; i++ {
		attrs := fmt.Sprintf("ID=cds-%d;product=hypothetical protein", i)
		if i == 3 {
			attrs += ";pseudo=true"
		}
		fmt.Fprintf(&gf, "NC_000001.1\tRefSeq\tCDS\t%d\t%d\t.\t+\t0\t%s\n", i*100+1, i*100+90, attrs)
	}
	for i := 0; i < 2; i++ {
		fmt.Fprintf(&gf, "NC_000001.1\tRefSeq\tmobile_element\t%d\t%d\t.\t+\t.\tID=id-%d;mobile_element_type=insertion sequence\n", 5000+i*2000, 6000+i*2000, i)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "genomic.gff"), []byte(gf.String()), 0o644))
}

func TestAssembleWithoutReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "GCF_000001")
	writeAssembly(t, dir)

	got, err := Assemble(dir, nil, nil)
	require.NoError(t, err)

	want := Record{
		Species:             "GCF_000001",
		Accession:           "GCF_000001",
		GenomeSizeMb:        1.0,
		TotalCDS:            10,
		Pseudogenes:         1,
		GCContentPct:        50.0,
		MobileElements:      2,
		MobileElementsPerMb: 2.0,
	}
	if diff := cmp.Diff(want, got, optTypes); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleReportAndCuration(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "GCF_000001")
	writeAssembly(t, dir)

	meta := metadata.Index{"GCF_000001": {
		Accession:           "GCF_000001",
		Species:             "Testus maximus",
		TaxonomyID:          opt.Some[int64](99),
		AssemblyLevel:       opt.Some("Complete Genome"),
		TotalSequenceLength: opt.Some[int64](2_500_000),
		GCCount:             opt.Some[int64](1_000_000),
		ATGCCount:           opt.Some[int64](2_500_000),
		TotalCDS:            opt.Some[int64](2400),
	}}
	cur, err := curation.Parse(strings.NewReader(
		"assembly_accession,species,factoid,display_species,display_strain_name\n" +
			"GCF_000001,Testus maximus,Very large.,T. maximus,\n"))
	require.NoError(t, err)

	got, err := Assemble(dir, meta, cur)
	require.NoError(t, err)

	assert.Equal(t, "Testus maximus", got.Species)
	assert.Equal(t, 2.5, got.GenomeSizeMb, "report length wins over the parsed 1 Mb")
	assert.Equal(t, 40.0, got.GCContentPct)
	assert.Equal(t, int64(2400), got.TotalCDS)
	assert.Equal(t, int64(1), got.Pseudogenes, "no report value, local count kept")
	assert.Equal(t, 0.8, got.MobileElementsPerMb)
	assert.Equal(t, opt.Some[int64](99), got.TaxonomyID)
	assert.Equal(t, opt.Some("Complete Genome"), got.AssemblyLevel)
	assert.False(t, got.Strain.Present())
	assert.Equal(t, "Very large.", got.Factoid)
	assert.Equal(t, opt.Some("T. maximus"), got.DisplaySpecies)
	assert.False(t, got.DisplayStrainName.Present())
}

func TestAssembleIncomplete(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "genomic.fna"), []byte(">x\nACGT\n"), 0o644))

	_, err := Assemble(dir, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncomplete))
}

func TestBuildZeroGenomeGuardsDensity(t *testing.T) {
	r := Build("GCF_0", nil, Inputs{Annotation: gff.Counts{MobileElements: 5}}, curation.Entry{})
	assert.Zero(t, r.GenomeSizeMb)
	assert.Zero(t, r.MobileElementsPerMb)
	assert.Zero(t, r.GCContentPct)
	assert.Equal(t, int64(5), r.MobileElements)
}

func TestBuildRounding(t *testing.T) {
	in := Inputs{
		Sequence:   fasta.Composition{Length: 4_641_652, GC: 2_369_107},
		Annotation: gff.Counts{MobileElements: 49},
	}
	r := Build("GCF_000005845.2", nil, in, curation.Entry{})
	assert.Equal(t, 4.642, r.GenomeSizeMb)
	assert.Equal(t, 51.04, r.GCContentPct)
	// density uses the unrounded size: 49 / 4.641652
	assert.Equal(t, 10.557, r.MobileElementsPerMb)

	// 4.6415 is stored just below the tie
	in.Sequence = fasta.Composition{Length: 4_641_500, GC: 2_320_750}
	r = Build("GCF_000005845.2", nil, in, curation.Entry{})
	assert.Equal(t, 4.641, r.GenomeSizeMb)
}
