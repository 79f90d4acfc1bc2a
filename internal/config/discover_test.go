package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/drivkit/internal/errors"
)

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"flat":            {"DRIVKIT_MODEL", "model"},
		"snake to camel":  {"DRIVKIT_OUTPUT_DIRECTORY", "outputDirectory"},
		"nested":          {"DRIVKIT_COMMIT__MESSAGE_LIMIT", "commit.messageLimit"},
		"nested compound": {"DRIVKIT_AUDIO_REVIEW__INCLUDE_RECENT_DIFFS", "audioReview.includeRecentDiffs"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, envTransform(tt.in))
		})
	}
}

func writeConfigDir(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverFileLayerOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	override := t.TempDir()
	path := writeConfigDir(t, override, "config.yaml", "model: from-override\ncommit:\n  cached: true\n")

	layer, files, err := DiscoverFileLayer(DiscoverOptions{
		ConfigDirOverride: override,
		WarningWriter:     &bytes.Buffer{},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{path}, files)
	assert.Equal(t, "from-override", layer["model"])
	assert.Equal(t, true, layer["commit"].(map[string]any)["cached"])
}

func TestDiscoverFileLayerUserThenProject(t *testing.T) {
	userRoot := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", userRoot)
	writeConfigDir(t, filepath.Join(userRoot, "drivkit"), "config.yaml",
		"model: user-model\ncommit:\n  messageLimit: 3\n")

	workDir := t.TempDir()
	writeConfigDir(t, filepath.Join(workDir, DefaultConfigDirName), "config.yaml",
		"model: project-model\n")

	layer, files, err := DiscoverFileLayer(DiscoverOptions{
		WorkDir:       workDir,
		WarningWriter: &bytes.Buffer{},
	})
	require.NoError(t, err)

	require.Len(t, files, 2)
	// Project config overrides the user config; untouched user keys survive.
	assert.Equal(t, "project-model", layer["model"])
	assert.Equal(t, 3, layer["commit"].(map[string]any)["messageLimit"])
}

func TestDiscoverFileLayerLegacyJSON(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	path := writeConfigDir(t, dir, "config.json", `{"model": "from-json"}`)

	var warnings bytes.Buffer
	layer, files, err := DiscoverFileLayer(DiscoverOptions{
		ConfigDirOverride: dir,
		WarningWriter:     &warnings,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{path}, files)
	assert.Equal(t, "from-json", layer["model"])
	assert.Contains(t, warnings.String(), "deprecated JSON config")
}

func TestDiscoverFileLayerPrefersYAMLOverJSON(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	writeConfigDir(t, dir, "config.json", `{"model": "from-json"}`)
	yamlPath := writeConfigDir(t, dir, "config.yaml", "model: from-yaml\n")

	var warnings bytes.Buffer
	layer, files, err := DiscoverFileLayer(DiscoverOptions{
		ConfigDirOverride: dir,
		WarningWriter:     &warnings,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{yamlPath}, files)
	assert.Equal(t, "from-yaml", layer["model"])
	assert.Empty(t, warnings.String())
}

func TestDiscoverFileLayerMalformedYAML(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	writeConfigDir(t, dir, "config.yaml", "model: [unclosed\n")

	_, _, err := DiscoverFileLayer(DiscoverOptions{
		ConfigDirOverride: dir,
		WarningWriter:     &bytes.Buffer{},
	})

	var discErr *errors.ConfigDiscoveryError
	require.ErrorAs(t, err, &discErr)
}

func TestDiscoverFileLayerNoFiles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	layer, files, err := DiscoverFileLayer(DiscoverOptions{
		WorkDir:       t.TempDir(),
		WarningWriter: &bytes.Buffer{},
	})
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Empty(t, layer)
}

func TestEnvLayer(t *testing.T) {
	t.Setenv("DRIVKIT_MODEL", "env-model")
	t.Setenv("DRIVKIT_COMMIT__MESSAGE_LIMIT", "7")

	layer, err := EnvLayer()
	require.NoError(t, err)

	assert.Equal(t, "env-model", layer["model"])
	assert.Equal(t, "7", layer["commit"].(map[string]any)["messageLimit"])
}
