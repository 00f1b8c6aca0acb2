package gateway

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverFiles lists the files in dir with the given extension, sorted by name.
func DiscoverFiles(dir, filetype string) ([]string, error) {
	filetype = strings.ToLower(strings.TrimPrefix(filetype, "."))
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range []string{"*." + filetype, "*." + strings.ToUpper(filetype)} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid input pattern %s: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
