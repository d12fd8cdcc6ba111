package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions is the extension allow-list used when none is configured.
var DefaultExtensions = []string{".py", ".js", ".cpp", ".java"}

// Discover traverses the directory tree rooted at root and returns the paths
// of all files whose name ends with one of the given extensions, in walk
// order. The suffix match is case-sensitive. A missing or unreadable root is
// a fatal error; so is any error encountered mid-walk — there is no
// partial-result recovery.
func Discover(root string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", root, err)
	}
	// A non-directory root has no files under it and yields an empty
	// result, not an error.
	if !info.IsDir() {
		return nil, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// WalkDir never descends into symlinked directories, so each
		// regular file is visited at most once.
		if matchesExtension(d.Name(), extensions) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", root, err)
	}

	return paths, nil
}

func matchesExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
