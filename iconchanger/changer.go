package iconchanger

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/osfs"
)

// Options tells New where icons and the config file live.
type Options struct {
	// IconsDir is created when missing. With IconsFS set it is relative to it.
	IconsDir string
	// ConfigFile is the key=value mode file. With ConfigFS set it is relative to it.
	ConfigFile string

	IconsFS  billy.Filesystem
	ConfigFS billy.Filesystem
	Rand     *rand.Rand
}

// Changer owns the icons, the mode and the rotation state of one server.
type Changer struct {
	icons    Collection
	config   *ConfigStore
	selector *Selector
}

// New loads the icons and the mode. Only an unusable icons directory is an
// error; a broken config file is logged and the default mode is used.
func New(opts Options) (*Changer, error) {
	iconsFS, iconsDir := opts.IconsFS, opts.IconsDir
	if iconsFS == nil {
		if err := EnsureDir(opts.IconsDir); err != nil {
			return nil, err
		}
		iconsFS, iconsDir = osfs.New(opts.IconsDir), "."
	} else {
		if iconsDir == "" {
			iconsDir = "."
		}
		if err := iconsFS.MkdirAll(iconsDir, 0755); err != nil {
			return nil, fmt.Errorf("while creating icons directory '%s': %w: %w", iconsDir, ErrDirectory, err)
		}
	}
	icons, err := LoadIcons(iconsFS, iconsDir)
	if err != nil {
		return nil, err
	}

	var config *ConfigStore
	if opts.ConfigFS != nil {
		config = NewConfigStoreFS(opts.ConfigFS, opts.ConfigFile)
	} else {
		config = NewConfigStore(opts.ConfigFile)
	}
	mode, err := config.Load()
	if err != nil {
		log.Printf("config: %s; using mode %s for this run", err, mode)
	}
	log.Printf("config: icons are shown in %s order", mode)

	var selectorOpts []SelectorOption
	if opts.Rand != nil {
		selectorOpts = append(selectorOpts, WithRand(opts.Rand))
	}
	return &Changer{
		icons:    icons,
		config:   config,
		selector: NewSelector(icons, mode, selectorOpts...),
	}, nil
}

// EnsureDir creates dir on the local disk when it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("while creating '%s': %w: %w", dir, ErrDirectory, err)
	}
	return nil
}

func (c *Changer) Icons() Collection { return c.icons }

func (c *Changer) Mode() Mode { return c.selector.Mode() }

func (c *Changer) Next() (*Icon, bool) { return c.selector.Next() }

// SaveMode persists mode for the next start. The running selector keeps the
// mode it was built with.
func (c *Changer) SaveMode(mode Mode) error {
	return c.config.Save(mode)
}

// Apply is the status callback: it puts the next icon into md, if there is one.
func (c *Changer) Apply(md FaviconSetter) (*Icon, bool) {
	return c.selector.Apply(md)
}
