package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/bullet/internal/types"
)

const (
	// FilePermissions is the default permission mode for regular files
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories
	DirPermissions = 0755
)

// ErrorKind classifies why a configuration could not be loaded.
type ErrorKind int

const (
	// ErrKindAbsent means no config file exists at any known location.
	ErrKindAbsent ErrorKind = iota
	// ErrKindIO means a config file exists but could not be read.
	ErrKindIO
	// ErrKindParse means the config file content is malformed.
	ErrKindParse
)

// LoadError is the typed failure surfaced when loading the configuration.
// It is terminal for matching but not for the process: the session enters
// its failed state, displays the error, and still accepts quit.
type LoadError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case ErrKindAbsent:
		return fmt.Sprintf("no config found (expected %s)", e.Path)
	case ErrKindIO:
		return fmt.Sprintf("cannot read config %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("cannot parse config %s: %v", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// candidates are the config file names probed inside Dir(), in order.
var candidates = []string{"config.json", "config.yaml", "config.yml", "config.toml"}

// Dir returns the bullet configuration directory, <documents>/bullet.
func Dir() (string, error) {
	docs, err := DocumentsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(docs, "bullet"), nil
}

// DocumentsDir returns the user's documents directory.
func DocumentsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "Documents"), nil
}

// AppDataDir returns the platform application-data directory.
func AppDataDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return dir, nil
}

// Load reads and parses the shortcut configuration. It is called once,
// before the event loop starts; the result is immutable for the session.
func Load() (*types.Config, *LoadError) {
	dir, err := Dir()
	if err != nil {
		return nil, &LoadError{Kind: ErrKindAbsent, Path: "documents/bullet", Err: err}
	}

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		return LoadFile(path)
	}

	return nil, &LoadError{Kind: ErrKindAbsent, Path: filepath.Join(dir, candidates[0])}
}

// LoadFile reads and parses one specific config file. The format is
// chosen by extension: .json (with jsonc comment stripping), .yaml/.yml,
// or .toml.
func LoadFile(path string) (*types.Config, *LoadError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: ErrKindIO, Path: path, Err: err}
	}

	var cfg types.Config
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &LoadError{Kind: ErrKindParse, Path: path, Err: err}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, &LoadError{Kind: ErrKindParse, Path: path, Err: err}
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return nil, &LoadError{Kind: ErrKindParse, Path: path, Err: err}
		}
	}

	if err := validate(&cfg); err != nil {
		return nil, &LoadError{Kind: ErrKindParse, Path: path, Err: err}
	}

	return &cfg, nil
}

// validate rejects values outside the closed kind/prefix tags. An empty
// alias list is deliberately not an error here: such an entry is merely
// unreachable, and the matcher tolerates it.
func validate(cfg *types.Config) error {
	for i, s := range cfg.Shortcuts {
		if !s.Kind.Valid() {
			return fmt.Errorf("shortcut %d: unknown kind %q", i, s.Kind)
		}
		if !s.PathPrefix.Valid() {
			return fmt.Errorf("shortcut %d: unknown path_prefix %q", i, s.PathPrefix)
		}
	}
	return nil
}

// ErrConfigExists is returned by Init when a config file is already present.
var ErrConfigExists = errors.New("config already exists")

const sampleConfig = `{
  // bullet shortcuts. Kinds: app, dir, file, url.
  // path_prefix (optional, dir/file only): documents, appdata.
  "shortcuts": [
    { "seq": ["ff", "firefox"], "kind": "app", "path": "firefox", "description": "Browser" },
    { "seq": ["notes"], "kind": "dir", "path": "notes", "path_prefix": "documents" },
    { "seq": ["hn"], "kind": "url", "path": "https://news.ycombinator.com", "description": "Hacker News" }
  ]
}
`

// Init creates the config directory and a commented sample config.json.
// It refuses to overwrite an existing config.
func Init() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	for _, name := range candidates {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return filepath.Join(dir, name), ErrConfigExists
		}
	}

	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(sampleConfig), FilePermissions); err != nil {
		return "", fmt.Errorf("failed to write sample config: %w", err)
	}
	return path, nil
}
