package iconchanger

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/osfs"
	"github.com/go-git/go-billy/v6/util"
	"github.com/google/uuid"
)

// Mode decides how the next icon is picked.
type Mode int

const (
	ModeRandom Mode = iota
	ModeSequential
)

// DefaultMode is used when no config file exists or it cannot be read.
const DefaultMode = ModeRandom

const sequentialModeKey = "sequential-mode"

const configHeader = `#IconChanger config
#
#sequential-mode: boolean
#Determines if the icons should be displayed sequentially or in a random order
`

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	default:
		return "random"
	}
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return ModeRandom, nil
	case "sequential":
		return ModeSequential, nil
	default:
		return DefaultMode, fmt.Errorf("unknown mode '%s', want random or sequential", s)
	}
}

// ConfigStore persists the operating mode to a key=value file.
type ConfigStore struct {
	fs   billy.Filesystem
	name string
}

// NewConfigStore returns a store backed by the file at path on the local disk.
func NewConfigStore(path string) *ConfigStore {
	return NewConfigStoreFS(osfs.New(filepath.Dir(path)), filepath.Base(path))
}

// NewConfigStoreFS returns a store for the file name inside fsys.
func NewConfigStoreFS(fsys billy.Filesystem, name string) *ConfigStore {
	return &ConfigStore{fs: fsys, name: name}
}

// Load reads the mode. A missing file is created with the default mode. On any
// error DefaultMode is returned together with the error and the file is left as is.
func (c *ConfigStore) Load() (Mode, error) {
	data, err := util.ReadFile(c.fs, c.name)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("config: %s does not exist, creating it with mode %s", c.name, DefaultMode)
		if err := c.Save(DefaultMode); err != nil {
			return DefaultMode, err
		}
		return DefaultMode, nil
	}
	if err != nil {
		return DefaultMode, fmt.Errorf("while reading config '%s': %w: %w", c.name, ErrIO, err)
	}
	props, err := parseProperties(data)
	if err != nil {
		return DefaultMode, fmt.Errorf("while parsing config '%s': %w", c.name, err)
	}
	if props[sequentialModeKey] == "true" {
		return ModeSequential, nil
	}
	return ModeRandom, nil
}

// Save replaces the whole file with the given mode and the descriptive header.
func (c *ConfigStore) Save(mode Mode) error {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	fmt.Fprintf(&buf, "%s=%t\n", sequentialModeKey, mode == ModeSequential)

	tempFile := fmt.Sprintf("%s.%s.tmp", c.name, uuid.New())
	if err := util.WriteFile(c.fs, tempFile, buf.Bytes(), 0644); err != nil {
		c.fs.Remove(tempFile)
		return fmt.Errorf("while writing config '%s': %w: %w", c.name, ErrIO, err)
	}
	if err := c.fs.Rename(tempFile, c.name); err != nil {
		c.fs.Remove(tempFile)
		return fmt.Errorf("while replacing config '%s': %w: %w", c.name, ErrIO, err)
	}
	return nil
}

// parseProperties reads properties lines: the key ends at the first '=', ':' or
// whitespace, and one '=' or ':' may follow whitespace. A key on its own has an
// empty value. Blank lines and lines starting with # or ! are skipped, later keys
// override earlier ones. Backslash escapes and continuation lines are not supported.
func parseProperties(data []byte) (map[string]string, error) {
	props := map[string]string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		end := strings.IndexAny(line, "=: \t\f")
		if end == 0 {
			return nil, fmt.Errorf("line %d: empty key: %w", lineNumber, ErrMalformedConfig)
		}
		if end < 0 {
			props[line] = ""
			continue
		}
		key, rest := line[:end], line[end:]
		rest = strings.TrimLeft(rest, " \t\f")
		if rest != "" && (rest[0] == '=' || rest[0] == ':') {
			rest = rest[1:]
		}
		props[key] = strings.TrimSpace(rest)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	return props, nil
}
