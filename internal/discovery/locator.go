package discovery

import (
	"os"
	"path/filepath"
	"strings"
)

// Locator finds a project under a list of workspace roots
type Locator struct {
	subpath   string
	separator string
}

// NewLocator creates a new Locator for the given subpath.
// Roots are split on separator, or on the platform list separator when it is empty.
func NewLocator(subpath, separator string) *Locator {
	return &Locator{
		subpath:   subpath,
		separator: separator,
	}
}

// Roots splits the workspace variable into candidate roots, dropping empty entries
func (l *Locator) Roots(value string) []string {
	var parts []string
	if l.separator == "" || l.separator == string(os.PathListSeparator) {
		parts = filepath.SplitList(value)
	} else {
		parts = strings.Split(value, l.separator)
	}

	roots := make([]string, 0, len(parts))
	for _, part := range parts {
		// Only exactly empty entries are dropped; roots are used verbatim
		if part == "" {
			continue
		}
		roots = append(roots, part)
	}
	return roots
}

// Candidates returns every project path that Find checks, in order
func (l *Locator) Candidates(value string) []string {
	roots := l.Roots(value)
	candidates := make([]string, 0, len(roots))
	for _, root := range roots {
		candidates = append(candidates, filepath.Join(root, l.subpath))
	}
	return candidates
}

// Find returns the first candidate that exists as a directory, or "" if none does
func (l *Locator) Find(value string) string {
	for _, candidate := range l.Candidates(value) {
		info, err := os.Stat(candidate)
		if err != nil {
			continue
		}
		if info.IsDir() {
			return candidate
		}
	}
	return ""
}
