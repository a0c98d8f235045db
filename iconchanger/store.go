package iconchanger

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v6"
)

// Collection is the ordered set of icons loaded from an icons directory.
// It is never modified after LoadIcons returns.
type Collection []*Icon

// IsIconFilename reports whether name carries a .png extension in any letter case.
func IsIconFilename(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".png")
}

// ListIconFiles returns the candidate icon paths of dir in byte-wise filename order.
func ListIconFiles(fsys billy.Filesystem, dir string) ([]string, error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("while opening icons directory '%s': %w: %w", dir, ErrDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("while opening icons directory '%s': not a directory: %w", dir, ErrDirectory)
	}
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("while listing icons directory '%s': %w: %w", dir, ErrDirectory, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if IsIconFilename(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = fsys.Join(dir, name)
	}
	return paths, nil
}

// LoadIcons validates every candidate icon of dir. Files that fail validation are
// logged and skipped, so the result may be empty but is never nil.
func LoadIcons(fsys billy.Filesystem, dir string) (Collection, error) {
	paths, err := ListIconFiles(fsys, dir)
	if err != nil {
		return nil, err
	}
	icons := make(Collection, 0, len(paths))
	for _, path := range paths {
		icon, err := ValidateIcon(fsys, path)
		if err != nil {
			log.Printf("icons: skipping %s", err)
			continue
		}
		icons = append(icons, icon)
	}
	log.Printf("icons: loaded %d of %d candidates from %s", len(icons), len(paths), dir)
	return icons, nil
}
