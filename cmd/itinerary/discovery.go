package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-itinerary/internal/fileutil"
)

// itineraryPattern selects itinerary files when a directory is given.
const itineraryPattern = "**/*.{txt,md,text}"

// expandInputs replaces directories and glob patterns among inputs with the
// files they contain or match. Plain files and "-" pass through. Each path
// appears once, in first-seen order.
func expandInputs(inputs []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(paths ...string) {
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}

	for _, in := range inputs {
		switch {
		case in == stdio:
			add(in)

		case isDir(in):
			matches, err := doublestar.Glob(os.DirFS(in), itineraryPattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("%w: scanning %s: %v", ErrReadInput, in, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("%w: no itinerary files in %s", ErrNoInput, in)
			}
			slices.Sort(matches)
			for _, m := range matches {
				add(filepath.Join(in, filepath.FromSlash(m)))
			}

		case hasGlobMeta(in) && !fileutil.FileExists(in):
			if !doublestar.ValidatePathPattern(in) {
				return nil, fmt.Errorf("%w: bad pattern %q", ErrUsage, in)
			}
			matches, err := doublestar.FilepathGlob(in, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrUsage, in, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("%w: %q matches no files", ErrNoInput, in)
			}
			add(matches...)

		default:
			add(in)
		}
	}
	return out, nil
}

// hasGlobMeta reports whether s contains glob syntax.
func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
