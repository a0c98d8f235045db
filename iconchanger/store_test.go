package iconchanger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-git/go-billy/v6/memfs"
	"github.com/go-git/go-billy/v6/util"
)

func TestIsIconFilename(t *testing.T) {
	for name, want := range map[string]bool{
		"a.png":     true,
		"B.PNG":     true,
		"c.Png":     true,
		"d.jpg":     false,
		"png":       false,
		"e.png.bak": false,
		"fpng":      false,
	} {
		if got := IsIconFilename(name); got != want {
			t.Errorf("IsIconFilename(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLoadIcons(t *testing.T) {
	t.Run("returns icons in lexicographic filename order", func(t *testing.T) {
		fsys := memfs.New()
		fsys.MkdirAll("icons", 0755)
		// written in reverse so directory order cannot mask sorting
		for c := 'z'; c >= 'a'; c-- {
			writeIcon(t, fsys, fsys.Join("icons", fmt.Sprintf("%c.png", c)), 64, 64, uint8(c))
		}

		icons, err := LoadIcons(fsys, "icons")
		if err != nil {
			t.Fatalf("LoadIcons() error = %v", err)
		}
		if len(icons) != 26 {
			t.Fatalf("LoadIcons() returned %d icons, want 26", len(icons))
		}
		for i, icon := range icons {
			want := fmt.Sprintf("%c.png", 'a'+i)
			if icon.Name() != want {
				t.Errorf("icons[%d].Name() = %v, want %v", i, icon.Name(), want)
			}
		}
	})

	t.Run("orders by bytes, upper case first", func(t *testing.T) {
		fsys := memfs.New()
		fsys.MkdirAll("icons", 0755)
		for _, name := range []string{"b.png", "A.PNG", "a.png", "10.png", "2.png"} {
			writeIcon(t, fsys, fsys.Join("icons", name), 64, 64, 1)
		}

		icons, err := LoadIcons(fsys, "icons")
		if err != nil {
			t.Fatalf("LoadIcons() error = %v", err)
		}
		want := []string{"10.png", "2.png", "A.PNG", "a.png", "b.png"}
		if len(icons) != len(want) {
			t.Fatalf("LoadIcons() returned %d icons, want %d", len(icons), len(want))
		}
		for i := range want {
			if icons[i].Name() != want[i] {
				t.Errorf("icons[%d].Name() = %v, want %v", i, icons[i].Name(), want[i])
			}
		}
	})

	t.Run("skips invalid files without failing", func(t *testing.T) {
		fsys := memfs.New()
		fsys.MkdirAll("icons", 0755)
		writeIcon(t, fsys, "icons/a.png", 64, 64, 1)
		writeIcon(t, fsys, "icons/b.png", 65, 64, 1)
		writeIcon(t, fsys, "icons/c.png", 64, 64, 2)
		writeIcon(t, fsys, "icons/d.jpg", 64, 64, 3)
		util.WriteFile(fsys, "icons/e.png", []byte("garbage"), 0644)
		util.WriteFile(fsys, "icons/f.png", nil, 0644)
		fsys.MkdirAll("icons/g.png", 0755)

		icons, err := LoadIcons(fsys, "icons")
		if err != nil {
			t.Fatalf("LoadIcons() error = %v", err)
		}
		if len(icons) != 2 {
			t.Fatalf("LoadIcons() returned %d icons, want 2", len(icons))
		}
		if icons[0].Name() != "a.png" || icons[1].Name() != "c.png" {
			t.Errorf("LoadIcons() = [%s %s], want [a.png c.png]", icons[0].Name(), icons[1].Name())
		}
	})

	t.Run("empty directory yields an empty collection", func(t *testing.T) {
		fsys := memfs.New()
		fsys.MkdirAll("icons", 0755)

		icons, err := LoadIcons(fsys, "icons")
		if err != nil {
			t.Fatalf("LoadIcons() error = %v", err)
		}
		if icons == nil || len(icons) != 0 {
			t.Errorf("LoadIcons() = %#v, want an empty collection", icons)
		}
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		_, err := LoadIcons(memfs.New(), "nowhere")
		if !errors.Is(err, ErrDirectory) {
			t.Errorf("LoadIcons() error = %v, want %v", err, ErrDirectory)
		}
	})

	t.Run("file instead of directory is an error", func(t *testing.T) {
		fsys := memfs.New()
		util.WriteFile(fsys, "icons", []byte("x"), 0644)

		_, err := LoadIcons(fsys, "icons")
		if !errors.Is(err, ErrDirectory) {
			t.Errorf("LoadIcons() error = %v, want %v", err, ErrDirectory)
		}
	})
}
