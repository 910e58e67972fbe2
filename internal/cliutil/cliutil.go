// internal/cliutil/cliutil.go
package cliutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandDirs expands globs among positional arguments and keeps the
// directories, in argument order with duplicates removed. A glob that
// matches nothing or a literal path that is not a directory is an error.
func ExpandDirs(posArgs []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, a := range posArgs {
		if !hasGlobMeta(a) {
			info, err := os.Stat(a)
			if err != nil {
				return nil, errors.Wrapf(err, "input %q", a)
			}
			if !info.IsDir() {
				return nil, errors.Errorf("input %q is not a directory", a)
			}
			add(a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, errors.Errorf("bad glob %q: %v", a, err)
		}
		n := 0
		for _, p := range m {
			if info, err := os.Stat(p); err == nil && info.IsDir() {
				add(p)
				n++
			}
		}
		if n == 0 {
			return nil, errors.Errorf("no directory matched %q", a)
		}
	}
	return out, nil
}
