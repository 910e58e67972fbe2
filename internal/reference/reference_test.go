package reference

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	in := `[
	  {"taxid_input": "562", "assembly_accession": " GCF_000005845.2 ", "phylum": "Pseudomonadota", "who_priority": null},
	  {"accession": "GCF_1", "taxid_input": 1280, "gram_stain": "positive"},
	  {"species": "no accession"}
	]`
	rows, err := ParseJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "GCF_000005845.2", rows[0].Accession())
	assert.Equal(t, []Field{
		{Key: "taxid_input", Value: "562"},
		{Key: "phylum", Value: "Pseudomonadota"},
		{Key: "who_priority", Value: nil},
	}, rows[0].Passthrough())

	assert.Equal(t, "GCF_1", rows[1].Accession())
	pt := rows[1].Passthrough()
	require.Len(t, pt, 2)
	assert.Equal(t, json.Number("1280"), pt[0].Value, "numbers pass through verbatim")

	assert.Equal(t, "", rows[2].Accession())
	assert.Empty(t, rows[2].Passthrough())
}

func TestParseCSV(t *testing.T) {
	in := "taxid_input,assembly_accession,species,phylum\n" +
		"1280,GCF_000013425.1,Staphylococcus aureus,Bacillota\n" +
		"562,GCF_000005845.2\n"
	rows, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "GCF_000013425.1", rows[0].Accession())
	assert.Equal(t, []Field{{Key: "taxid_input", Value: "1280"}, {Key: "phylum", Value: "Bacillota"}}, rows[0].Passthrough())
	assert.Equal(t, []Field{{Key: "taxid_input", Value: "562"}, {Key: "phylum", Value: nil}}, rows[1].Passthrough())
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	jp := filepath.Join(dir, "reference_genomes.json")
	require.NoError(t, os.WriteFile(jp, []byte(`[{"assembly_accession":"GCF_1"}]`), 0o644))
	cp := filepath.Join(dir, "reference_genomes.csv")
	require.NoError(t, os.WriteFile(cp, []byte("assembly_accession\nGCF_2\n"), 0o644))

	rows, err := Load(jp)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "GCF_1", rows[0].Accession())

	rows, err = Load(cp)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "GCF_2", rows[0].Accession())

	rows, err = Load(filepath.Join(dir, "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadMalformedJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`[{"assembly_accession":`), 0o644))
	_, err := Load(p)
	assert.Error(t, err)
}
