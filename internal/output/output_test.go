package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmetrics/internal/assembly"
	"gmetrics/internal/opt"
	"gmetrics/internal/reference"
)

func sample() []assembly.Record {
	return []assembly.Record{
		{
			Species:             "Escherichia coli",
			Accession:           "GCF_000005845.2",
			TaxonomyID:          opt.Some[int64](511145),
			AssemblyLevel:       opt.Some("Complete Genome"),
			GenomeSizeMb:        4.642,
			TotalCDS:            4300,
			Pseudogenes:         120,
			TRNA:                86,
			GCContentPct:        50.79,
			MobileElements:      40,
			MobileElementsPerMb: 8.617,
			Passthrough:         []reference.Field{{Key: "phylum", Value: "Pseudomonadota"}},
		},
		{
			Species:      "GCF_000001",
			Accession:    "GCF_000001",
			GenomeSizeMb: 1,
			Passthrough:  []reference.Field{{Key: "gram_stain", Value: nil}},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteJSON(&b, sample()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, float64(511145), got[0]["taxonomy_id"])
	assert.Equal(t, "Pseudomonadota", got[0]["phylum"])
	assert.Nil(t, got[1]["strain"])
	v, ok := got[1]["gram_stain"]
	assert.True(t, ok)
	assert.Nil(t, v)

	back, err := ReadJSON(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, "GCF_000005845.2", back[0].AssemblyAccession)
	assert.Equal(t, "Escherichia coli", back[0].Species)
	require.NotNil(t, back[0].TaxonomyID)
	assert.Equal(t, int64(511145), *back[0].TaxonomyID)
	assert.Nil(t, back[1].Strain)
}

func TestWriteJSONKeepsAmpersands(t *testing.T) {
	recs := sample()[:1]
	recs[0].Species = "A & B <x>"
	recs[0].Factoid = "R&D"
	var b bytes.Buffer
	require.NoError(t, WriteJSON(&b, recs))
	assert.Contains(t, b.String(), `"species": "A & B <x>"`)
	assert.Contains(t, b.String(), `"factoid": "R&D"`)
}

func TestWriteCSV(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteCSV(&b, sample()))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], ",factoid,phylum,gram_stain"))
	assert.Equal(t, "Escherichia coli,GCF_000005845.2,511145,Complete Genome,,,,,,4.642,4300,120,86,50.79,40,8.617,,Pseudomonadota,", lines[1])
	assert.Equal(t, "GCF_000001,GCF_000001,,,,,,,,1,0,0,0,0,0,0,,,", lines[2])
}

func TestWriteTable(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteTable(&b, sample()))
	s := b.String()
	assert.Contains(t, s, "GCF_000005845.2")
	assert.Contains(t, s, "4.642")
	assert.Contains(t, strings.ToLower(s), "2 assemblies")
}

func TestReadJSONRejectsGarbage(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{not an array"))
	assert.Error(t, err)
}
