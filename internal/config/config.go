// Package config loads tsvfixture configuration from JSONC files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/calvinalkan/tsv-fixtures/internal/fs"

	"github.com/tailscale/hujson"
)

// FileName is the project config file name looked up in the working directory.
const FileName = ".tsvfixture.json"

// Error variables for config loading.
var (
	ErrFileNotFound = errors.New("config file not found")
	ErrFileRead     = errors.New("cannot read config file")
	ErrInvalid      = errors.New("invalid config file")
)

// Config holds all configuration options.
//
// Config never changes where a fixture is written: relative output paths
// always resolve against EffectiveCwd.
type Config struct {
	// From config files
	CreateDirs bool

	// Resolved paths (computed)
	EffectiveCwd string // Absolute working directory (from -C flag or os.Getwd)

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise

	// Ignored holds the errors of implicit config files that could not be
	// read or parsed. Each error names its file. They are skipped, never fatal.
	Ignored []string
}

// Default returns the default configuration.
func Default() Config {
	return Config{}
}

// ResolvePath resolves an output path against EffectiveCwd.
// Absolute paths are returned unchanged.
func (c Config) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(c.EffectiveCwd, path)
}

// fileConfig is the on-disk shape. Pointers distinguish "unset" from zero
// values. Unknown keys are ignored.
type fileConfig struct {
	CreateDirs *bool `json:"create_dirs"`
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	FS              fs.FS             // filesystem to read config files from
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	CreateDirs      bool              // --mkdir flag value; true forces create_dirs
	Env             map[string]string // environment variables
}

// globalPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/tsvfixture/config.json if set, otherwise
// ~/.config/tsvfixture/config.json. Returns empty string if home directory
// cannot be determined.
func globalPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "tsvfixture", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "tsvfixture", "config.json")
	}

	return ""
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/tsvfixture/config.json or $XDG_CONFIG_HOME/tsvfixture/config.json)
// 3. Project config file at default location (.tsvfixture.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty)
// 5. CLI overrides.
//
// Only the explicit file can make Load fail. Unreadable or malformed
// global and project files are skipped and listed in Sources.Ignored.
//
// All paths in the returned Config are resolved to absolute paths.
func Load(input LoadInput) (Config, error) {
	fsys := input.FS
	if fsys == nil {
		fsys = fs.NewReal()
	}

	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
	}

	cfg := Default()

	if path := globalPath(input.Env); path != "" {
		overlay, loaded, err := loadFile(fsys, path, false)
		if err != nil {
			cfg.Sources.Ignored = append(cfg.Sources.Ignored, err.Error())
		} else if loaded {
			cfg.Sources.Global = path
			cfg = merge(cfg, overlay)
		}
	}

	projectPath, mustExist := filepath.Join(workDir, FileName), false
	if input.ConfigPath != "" {
		projectPath, mustExist = input.ConfigPath, true
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(workDir, projectPath)
		}
	}

	overlay, loaded, err := loadFile(fsys, projectPath, mustExist)

	switch {
	case err != nil && mustExist:
		return Config{}, err
	case err != nil:
		cfg.Sources.Ignored = append(cfg.Sources.Ignored, err.Error())
	case loaded:
		cfg.Sources.Project = projectPath
		cfg = merge(cfg, overlay)
	}

	if input.CreateDirs {
		cfg.CreateDirs = true
	}

	cfg.EffectiveCwd = workDir

	return cfg, nil
}

// loadFile loads a config file. If mustExist is false, a missing file
// returns loaded=false and no error.
func loadFile(fsys fs.FS, path string, mustExist bool) (fileConfig, bool, error) {
	if mustExist {
		exists, err := fsys.Exists(path)
		if err != nil {
			return fileConfig{}, false, fmt.Errorf("%w: %s: %w", ErrFileRead, path, err)
		}

		if !exists {
			return fileConfig{}, false, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return fileConfig{}, false, nil
		}

		return fileConfig{}, false, fmt.Errorf("%w: %s: %w", ErrFileRead, path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrInvalid, path, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (fileConfig, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg fileConfig

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

func merge(base Config, overlay fileConfig) Config {
	if overlay.CreateDirs != nil {
		base.CreateDirs = *overlay.CreateDirs
	}

	return base
}
