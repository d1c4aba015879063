// Package project locates and loads widl.toml, the schema project manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded widl.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Schemas SchemasConfig `toml:"schemas"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type SchemasConfig struct {
	// Files lists schema paths relative to the manifest directory, in
	// compilation order.
	Files []string `toml:"files"`
	// Output is an optional layout-table export path.
	Output string `toml:"output"`
}

// FindManifest walks up from startDir to locate widl.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "widl.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// LoadFrom locates the manifest upward from startDir and loads it.
func LoadFrom(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("schemas") {
		return Config{}, fmt.Errorf("%s: missing [schemas]", path)
	}
	if !meta.IsDefined("schemas", "files") || len(cfg.Schemas.Files) == 0 {
		return Config{}, fmt.Errorf("%s: missing [schemas].files", path)
	}
	return cfg, nil
}

// SchemaPaths resolves the manifest's schema list against its root
// directory, preserving order.
func (m *Manifest) SchemaPaths() []string {
	paths := make([]string, 0, len(m.Config.Schemas.Files))
	for _, rel := range m.Config.Schemas.Files {
		paths = append(paths, filepath.Join(m.Root, filepath.FromSlash(rel)))
	}
	return paths
}

// OutputPath resolves the export target, or "" when none is configured.
func (m *Manifest) OutputPath() string {
	out := strings.TrimSpace(m.Config.Schemas.Output)
	if out == "" {
		return ""
	}
	return filepath.Join(m.Root, filepath.FromSlash(out))
}
