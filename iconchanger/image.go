package iconchanger

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/go-git/go-billy/v6"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// IconSize is the exact width and height every server icon must have.
const IconSize = 64

const dataURIPrefix = "data:image/png;base64,"

// Icon is a validated server icon, re-encoded as a PNG data URI.
type Icon struct {
	name   string
	uri    string
	sha256 string
}

// Name is the source filename the icon was loaded from.
func (i *Icon) Name() string { return i.name }

// DataURI is the inline representation sent in status responses.
func (i *Icon) DataURI() string { return i.uri }

// SHA256 is the hex digest of the encoded PNG payload.
func (i *Icon) SHA256() string { return i.sha256 }

// decodeIcon reads the image header first so that files announcing a size other
// than IconSize x IconSize are rejected before any pixel buffer is allocated.
func decodeIcon(fsys billy.Basic, filepath string) (image.Image, error) {
	f, err := fsys.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("while opening '%s': %w: %w", filepath, ErrNotFound, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("while decoding '%s': %w: %w", filepath, ErrDecode, err)
	}
	if cfg.Width != IconSize || cfg.Height != IconSize {
		return nil, fmt.Errorf("while checking '%s': got %dx%d, want %dx%d: %w",
			filepath, cfg.Width, cfg.Height, IconSize, IconSize, ErrInvalidDimensions)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("while rewinding '%s': %w: %w", filepath, ErrDecode, err)
	}
	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("while decoding '%s': %w: %w", filepath, ErrDecode, err)
	}
	return m, nil
}

// ValidateIcon checks that filepath is a regular file holding an IconSize x IconSize
// image and returns it re-encoded as a PNG data URI.
func ValidateIcon(fsys billy.Basic, filepath string) (*Icon, error) {
	info, err := fsys.Stat(filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("while checking '%s': %w", filepath, ErrNotFound)
		}
		return nil, fmt.Errorf("while checking '%s': %w: %w", filepath, ErrNotFound, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("while checking '%s': not a regular file: %w", filepath, ErrNotFound)
	}

	img, err := decodeIcon(fsys, filepath)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("while encoding '%s': %w: %w", filepath, ErrDecode, err)
	}

	return &Icon{
		name:   info.Name(),
		uri:    dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()),
		sha256: fmt.Sprintf("%x", sha256.Sum256(buf.Bytes())),
	}, nil
}
