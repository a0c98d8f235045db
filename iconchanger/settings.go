package iconchanger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings configures the status server hosting the icon changer.
type Settings struct {
	Addr       string         `yaml:"addr"`
	IconsDir   string         `yaml:"icons_dir"`
	ConfigFile string         `yaml:"config_file"`
	Database   string         `yaml:"database"`
	Status     SettingsStatus `yaml:"status"`
}

type SettingsStatus struct {
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Protocol    int    `yaml:"protocol"`
	MaxPlayers  int    `yaml:"max_players"`
}

// DefaultSettings returns the settings used for every field left empty.
func DefaultSettings() Settings {
	return Settings{
		Addr:       ":8080",
		IconsDir:   "icons",
		ConfigFile: "config/iconchanger.cfg",
		Database:   "iconchanger.db",
		Status: SettingsStatus{
			Description: "A Minecraft Server",
			Version:     "1.17.1",
			Protocol:    756,
			MaxPlayers:  20,
		},
	}
}

// LoadSettings reads a YAML settings file. Empty fields get their defaults and
// relative paths are resolved against the directory of filename.
func LoadSettings(filename string) (*Settings, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	var ret Settings
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("while parsing settings '%s': %w", filename, err)
	}
	ret.applyDefaults()
	if ret.Status.MaxPlayers < 0 {
		return nil, fmt.Errorf("status.max_players must not be negative, got %d", ret.Status.MaxPlayers)
	}
	base := filepath.Dir(filename)
	ret.IconsDir = resolvePath(base, ret.IconsDir)
	ret.ConfigFile = resolvePath(base, ret.ConfigFile)
	ret.Database = resolvePath(base, ret.Database)
	return &ret, nil
}

func (s *Settings) applyDefaults() {
	def := DefaultSettings()
	if s.Addr == "" {
		s.Addr = def.Addr
	}
	if s.IconsDir == "" {
		s.IconsDir = def.IconsDir
	}
	if s.ConfigFile == "" {
		s.ConfigFile = def.ConfigFile
	}
	if s.Database == "" {
		s.Database = def.Database
	}
	if s.Status.Description == "" {
		s.Status.Description = def.Status.Description
	}
	if s.Status.Version == "" {
		s.Status.Version = def.Status.Version
	}
	if s.Status.Protocol == 0 {
		s.Status.Protocol = def.Status.Protocol
	}
	if s.Status.MaxPlayers == 0 {
		s.Status.MaxPlayers = def.Status.MaxPlayers
	}
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// Metadata is the status document before an icon is applied.
func (s *Settings) Metadata() ServerMetadata {
	return ServerMetadata{
		Version:     MetadataVersion{Name: s.Status.Version, Protocol: s.Status.Protocol},
		Players:     MetadataPlayers{Max: s.Status.MaxPlayers},
		Description: MetadataDescription{Text: s.Status.Description},
	}
}

// WriteSampleSettings writes a commented settings file with the default values.
func WriteSampleSettings(filename string) error {
	def := DefaultSettings()
	sample := fmt.Sprintf(`# iconchanger settings

# Address the status server listens on
addr: "%s"

# Folder with 64x64 .png icons, created if missing
icons_dir: %s

# key=value file holding sequential-mode, created if missing
config_file: %s

# sqlite catalog of loaded icons
database: %s

status:
  description: "%s"
  version: "%s"
  protocol: %d
  max_players: %d
`, def.Addr, def.IconsDir, def.ConfigFile, def.Database,
		def.Status.Description, def.Status.Version, def.Status.Protocol, def.Status.MaxPlayers)
	return os.WriteFile(filename, []byte(sample), 0644)
}
