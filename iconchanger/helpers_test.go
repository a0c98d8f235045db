package iconchanger

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/util"
)

func encodeTestPNG(t *testing.T, width, height int, shade uint8) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{shade, uint8(x), uint8(y), 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

// writeIcon writes a width x height PNG to name inside fsys
func writeIcon(t *testing.T, fsys billy.Basic, name string, width, height int, shade uint8) {
	t.Helper()
	if err := util.WriteFile(fsys, name, encodeTestPNG(t, width, height, shade), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func writeDiskIcon(t *testing.T, dir, name string, width, height int, shade uint8) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), encodeTestPNG(t, width, height, shade), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

type recordingMetadata struct {
	favicon string
	calls   int
}

func (m *recordingMetadata) SetFavicon(uri string) {
	m.favicon = uri
	m.calls++
}

func testCollection(names ...string) Collection {
	icons := make(Collection, len(names))
	for i, name := range names {
		icons[i] = &Icon{name: name, uri: dataURIPrefix + name, sha256: name}
	}
	return icons
}
