// Package config holds the settings of a tangramkit run. Settings come from
// defaults, then an optional TOML or YAML file, then command line flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"tangramkit/pathdata"
	"tangramkit/shapegraph"
)

// Transform configures the path coordinate transformer.
type Transform struct {
	OffsetX float64       `toml:"offset_x" yaml:"offset_x"`
	OffsetY float64       `toml:"offset_y" yaml:"offset_y"`
	Scale   float64       `toml:"scale" yaml:"scale"`
	Mode    pathdata.Mode `toml:"mode" yaml:"mode"`
}

// Graph configures the path-to-graph builder.
type Graph struct {
	// Pool is a file holding the id pool, as a JSON array or one id per line.
	Pool string `toml:"pool" yaml:"pool"`
	// Generate draws fresh ids when no pool file is given.
	Generate bool   `toml:"generate" yaml:"generate"`
	Format   string `toml:"format" yaml:"format"`
}

type Config struct {
	Transform Transform `toml:"transform" yaml:"transform"`
	Graph     Graph     `toml:"graph" yaml:"graph"`
}

// Default returns the settings used when nothing else is given: the
// identity transform and fragment output.
func Default() Config {
	return Config{
		Transform: Transform{Scale: 1, Mode: pathdata.OffsetThenScale},
		Graph:     Graph{Format: string(shapegraph.FormatFragments)},
	}
}

// Load reads the file at path over the defaults. The format follows the
// extension: .toml, or .yaml / .yml. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		return cfg, errors.Errorf("config %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise give meaningless
// output.
func (c Config) Validate() error {
	if c.Transform.Scale == 0 {
		return errors.New("transform scale must not be 0")
	}
	switch c.Transform.Mode {
	case pathdata.OffsetThenScale, pathdata.ScaleThenOffset:
	default:
		return errors.Wrapf(pathdata.ErrUnknownMode, "%v", c.Transform.Mode)
	}
	if _, err := shapegraph.ParseFormat(c.Graph.Format); err != nil {
		return err
	}
	return nil
}

// PathTransform returns the transform described by c.
func (c Config) PathTransform() pathdata.Transform {
	return pathdata.Transform{
		OffsetX: c.Transform.OffsetX,
		OffsetY: c.Transform.OffsetY,
		Scale:   c.Transform.Scale,
		Mode:    c.Transform.Mode,
	}
}
