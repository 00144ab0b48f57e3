package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tangramkit/pathdata"
	"tangramkit/shapegraph"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, pathdata.Transform{Scale: 1}, cfg.PathTransform())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "kit.toml", `
[transform]
offset_x = 10.5
offset_y = -4
scale = 52.5
mode = "scale-then-offset"

[graph]
pool = "ids.json"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, pathdata.Transform{OffsetX: 10.5, OffsetY: -4, Scale: 52.5, Mode: pathdata.ScaleThenOffset}, cfg.PathTransform())
	assert.Equal(t, "ids.json", cfg.Graph.Pool)
	assert.Equal(t, string(shapegraph.FormatJSON), cfg.Graph.Format)
	assert.False(t, cfg.Graph.Generate)
}

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "kit.yml", "transform:\n  offset_x: 3\ngraph:\n  generate: true\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Transform.OffsetX)
	assert.Equal(t, 1.0, cfg.Transform.Scale)
	assert.Equal(t, pathdata.OffsetThenScale, cfg.Transform.Mode)
	assert.True(t, cfg.Graph.Generate)
	assert.Equal(t, string(shapegraph.FormatFragments), cfg.Graph.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "kit.ini", "scale=2"))
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = Load(writeFile(t, "bad.toml", "[transform]\nmode = \"sideways\"\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "transform: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Transform.Scale = 0
	assert.ErrorContains(t, cfg.Validate(), "scale")

	cfg = Default()
	cfg.Transform.Mode = pathdata.Mode(9)
	assert.True(t, errors.Is(cfg.Validate(), pathdata.ErrUnknownMode))

	cfg = Default()
	cfg.Graph.Format = "xml"
	assert.True(t, errors.Is(cfg.Validate(), shapegraph.ErrUnknownFormat))
}
