package dataset

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Recognized file suffixes and the name tokens preferred when several
// candidates exist.
var (
	SequenceSuffixes   = []string{".fna", ".fna.gz"}
	AnnotationSuffixes = []string{".gff", ".gff3", ".gff.gz", ".gff3.gz"}

	SequenceTokens   = []string{"genomic.fna", "genome.fna"}
	AnnotationTokens = []string{"genomic.gff", "genome.gff", ".gff3"}
)

// Files are the inputs chosen for one assembly.
type Files struct {
	Sequence   string
	Annotation string
}

// Complete reports whether both inputs were found.
func (f Files) Complete() bool { return f.Sequence != "" && f.Annotation != "" }

// FindAssemblies lists assembly directories under <root>/data in lexical
// order. A missing data directory yields none.
func FindAssemblies(root string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(root, "data"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "list assemblies")
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(root, "data", e.Name()))
		}
	}
	return dirs, nil
}

// SelectAssemblyDir picks the directory named accession, else the first
// available one as a best effort. dir is "" when the dataset holds no
// assemblies; exact reports whether the name matched.
func SelectAssemblyDir(root, accession string) (dir string, exact bool, err error) {
	dirs, err := FindAssemblies(root)
	if err != nil || len(dirs) == 0 {
		return "", false, err
	}
	for _, d := range dirs {
		if filepath.Base(d) == accession {
			return d, true, nil
		}
	}
	return dirs[0], false, nil
}

// Locate walks dir recursively and picks one sequence and one annotation file.
func Locate(dir string) (Files, error) {
	var seqs, anns []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		switch {
		case hasAnySuffix(name, SequenceSuffixes):
			seqs = append(seqs, p)
		case hasAnySuffix(name, AnnotationSuffixes):
			anns = append(anns, p)
		}
		return nil
	})
	if err != nil {
		return Files{}, errors.Wrapf(err, "scan %s", dir)
	}
	return Files{
		Sequence:   PickFile(seqs, SequenceTokens),
		Annotation: PickFile(anns, AnnotationTokens),
	}, nil
}

// PickFile returns the first path whose base name contains the earliest
// matching token, falling back to the first path. Empty input gives "".
func PickFile(paths []string, tokens []string) string {
	for _, tok := range tokens {
		for _, p := range paths {
			if strings.Contains(filepath.Base(p), tok) {
				return p
			}
		}
	}
	if len(paths) > 0 {
		return paths[0]
	}
	return ""
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
