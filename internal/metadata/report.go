package metadata

import (
	"bytes"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"gmetrics/internal/fileio"
	"gmetrics/internal/logging"
	"gmetrics/internal/opt"
)

// ReportFile is the report's path relative to a dataset root.
const ReportFile = "data/assembly_data_report.jsonl"

var reportJSON = jsoniter.Config{
	EscapeHTML:             true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// Field aliases, tried in order. The first truthy value wins.
var (
	accessionPaths = [][]string{{"accession"}, {"assembly_accession"}, {"currentAccession"}}
	speciesPaths   = [][]string{
		{"organism", "organismName"},
		{"organism", "organism_name"},
		{"organism", "taxon", "name"},
	}
	taxonomyPaths = [][]string{
		{"organism", "tax_id"},
		{"organism", "taxId"},
		{"organism", "taxon", "tax_id"},
	}
	levelPaths   = [][]string{{"assembly_level"}, {"assemblyInfo", "assemblyLevel"}}
	releasePaths = [][]string{{"release_date"}, {"assemblyInfo", "releaseDate"}}
	strainPaths  = [][]string{
		{"organism", "infraspecific_names", "strain"},
		{"organism", "infraspecificNames", "strain"},
	}
	aniPaths = [][]string{{"averageNucleotideIdentity", "bestAniMatch", "organismName"}}

	totalLengthPaths = [][]string{{"assemblyStats", "totalSequenceLength"}}
	gcCountPaths     = [][]string{{"assemblyStats", "gcCount"}}
	atgcCountPaths   = [][]string{{"assemblyStats", "atgcCount"}}
	gcPercentPaths   = [][]string{{"assemblyStats", "gcPercent"}}
	cdsPaths         = [][]string{
		{"annotationInfo", "stats", "geneCounts", "proteinCoding"},
		{"annotationInfo", "stats", "geneCounts", "total"},
	}
	pseudogenePaths = [][]string{{"annotationInfo", "stats", "geneCounts", "pseudogene"}}
)

// ParseReport reads a JSON-lines report. Lines lacking an accession or a
// species are skipped. A line that is not valid JSON, or a numeric field that
// does not parse, is returned as an error; the report is expected to be
// well-formed.
func ParseReport(r io.Reader) (Index, error) {
	log := logging.New("metadata")
	ix := make(Index)
	ln := 0
	err := fileio.EachLine(r, func(line []byte) error {
		ln++
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			return nil
		}
		var rec map[string]any
		if err := reportJSON.Unmarshal(line, &rec); err != nil {
			return errors.Wrapf(err, "report line %d", ln)
		}
		m, ok, err := fromRecord(rec)
		if err != nil {
			return errors.Wrapf(err, "report line %d", ln)
		}
		if !ok {
			log.Debug("report line without accession or species", "line", ln)
			return nil
		}
		ix[m.Accession] = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ix, nil
}

// LoadReport parses the report at path. A missing file yields an empty index.
func LoadReport(path string) (Index, error) {
	fh, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.New("metadata").Info("no assembly report; using local metrics only", "path", path)
		return Index{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "open assembly report")
	}
	defer fh.Close()
	ix, err := ParseReport(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return ix, nil
}

func fromRecord(rec map[string]any) (AssemblyMetadata, bool, error) {
	accession := strings.TrimSpace(text(first(rec, accessionPaths)))
	species := strings.TrimSpace(text(first(rec, speciesPaths)))
	if accession == "" || species == "" {
		return AssemblyMetadata{}, false, nil
	}
	m := AssemblyMetadata{
		Accession:     accession,
		Species:       species,
		AssemblyLevel: optText(first(rec, levelPaths)),
		ReleaseDate:   optText(first(rec, releasePaths)),
		Strain:        optText(first(rec, strainPaths)),
		SpeciesANI:    optText(first(rec, aniPaths)),
	}
	ints := []struct {
		dst   *opt.Value[int64]
		paths [][]string
		name  string
		loose bool // unparseable means absent
	}{
		{&m.TaxonomyID, taxonomyPaths, "tax_id", true},
		{&m.TotalSequenceLength, totalLengthPaths, "totalSequenceLength", false},
		{&m.GCCount, gcCountPaths, "gcCount", false},
		{&m.ATGCCount, atgcCountPaths, "atgcCount", false},
		{&m.TotalCDS, cdsPaths, "geneCounts.proteinCoding", false},
		{&m.Pseudogenes, pseudogenePaths, "geneCounts.pseudogene", false},
	}
	for _, f := range ints {
		v, err := optInt(first(rec, f.paths))
		if err != nil && f.loose {
			logging.New("metadata").Debug("ignoring unparseable field", "field", f.name, "accession", accession, "err", err)
			v, err = opt.None[int64](), nil
		}
		if err != nil {
			return AssemblyMetadata{}, false, errors.Wrapf(err, "%s of %s", f.name, accession)
		}
		*f.dst = v
	}
	pct, err := optFloat(first(rec, gcPercentPaths))
	if err != nil {
		return AssemblyMetadata{}, false, errors.Wrapf(err, "gcPercent of %s", accession)
	}
	m.GCPercent = pct
	return m, true, nil
}

// lookup walks nested objects; any non-object along the way yields nil.
func lookup(rec map[string]any, path []string) any {
	var cur any = rec
	for _, k := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[k]
	}
	return cur
}

func first(rec map[string]any, paths [][]string) any {
	for _, p := range paths {
		if v := lookup(rec, p); truthy(v) {
			return v
		}
	}
	return nil
}

// truthy mirrors the report producers' convention: null, "", 0, false and
// empty containers all mean "not reported".
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case float64:
		return x != 0
	case map[string]any:
		return len(x) > 0
	case []any:
		return len(x) > 0
	}
	return true
}

func text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	}
	return ""
}

func optText(v any) opt.Value[string] {
	if s := text(v); s != "" {
		return opt.Some(s)
	}
	return opt.None[string]()
}

// optInt accepts JSON numbers and numeric strings ("4641652"); NCBI emits
// large counts as strings. Fractions truncate toward zero. Zero is absent.
func optInt(v any) (opt.Value[int64], error) {
	if !truthy(v) {
		return opt.None[int64](), nil
	}
	s := strings.TrimSpace(text(v))
	if s == "" {
		return opt.None[int64](), errors.Errorf("unexpected %T value", v)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n == 0 {
			return opt.None[int64](), nil
		}
		return opt.Some(n), nil
	}
	if _, isString := v.(string); !isString {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			if n := int64(f); n != 0 {
				return opt.Some(n), nil
			}
			return opt.None[int64](), nil
		}
	}
	return opt.None[int64](), errors.Errorf("not an integer: %q", s)
}

func optFloat(v any) (opt.Value[float64], error) {
	if !truthy(v) {
		return opt.None[float64](), nil
	}
	s := strings.TrimSpace(text(v))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return opt.None[float64](), errors.Errorf("not a number: %q", s)
	}
	if f == 0 {
		return opt.None[float64](), nil
	}
	return opt.Some(f), nil
}
