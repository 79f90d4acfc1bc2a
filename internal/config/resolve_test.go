package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/drivkit/internal/errors"
)

func testGetenv(key string) string {
	if key == CredentialEnvVar {
		return "sk-test"
	}
	return ""
}

func TestResolveMergePrecedence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	workDir := t.TempDir()
	writeConfigDir(t, filepath.Join(workDir, DefaultConfigDirName), "config.yaml",
		"model: gpt-4-from-file\ncommit:\n  cached: true\n")

	res, err := Resolve(ResolveOptions{
		Identity:      CommandIdentity{Name: CommandCommit},
		Raw:           map[string]any{"model": "gpt-4-from-cli", "add": true},
		WorkDir:       workDir,
		WarningWriter: &bytes.Buffer{},
		Getenv:        testGetenv,
	})
	require.NoError(t, err)

	cfg := res.Config
	assert.Equal(t, "gpt-4-from-cli", cfg.Model)
	// File and CLI each contribute their own commit field.
	assert.True(t, cfg.Commit.Cached)
	assert.True(t, cfg.Commit.Add)
	// Everything else stays at defaults.
	assert.Equal(t, 10, cfg.Commit.MessageLimit)
	assert.Equal(t, "main", cfg.Release.To)
	assert.False(t, cfg.Verbose)

	require.NotNil(t, res.Secure)
	assert.Equal(t, "sk-test", res.Secure.OpenAIAPIKey)
	assert.Len(t, res.ConfigFiles, 1)
}

func TestResolveEnvBetweenFileAndCLI(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DRIVKIT_MODEL", "env-model")
	t.Setenv("DRIVKIT_COMMIT__MESSAGE_LIMIT", "7")

	workDir := t.TempDir()
	writeConfigDir(t, filepath.Join(workDir, DefaultConfigDirName), "config.yaml",
		"model: file-model\n")

	res, err := Resolve(ResolveOptions{
		Identity:      CommandIdentity{Name: CommandCommit},
		Raw:           map[string]any{},
		WorkDir:       workDir,
		WarningWriter: &bytes.Buffer{},
		Getenv:        testGetenv,
	})
	require.NoError(t, err)

	// Environment beats the file; string values coerce into typed fields.
	assert.Equal(t, "env-model", res.Config.Model)
	assert.Equal(t, 7, res.Config.Commit.MessageLimit)

	res, err = Resolve(ResolveOptions{
		Identity:      CommandIdentity{Name: CommandCommit},
		Raw:           map[string]any{"model": "cli-model"},
		WorkDir:       workDir,
		WarningWriter: &bytes.Buffer{},
		Getenv:        testGetenv,
	})
	require.NoError(t, err)
	assert.Equal(t, "cli-model", res.Config.Model)
}

func TestResolveMissingCredential(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Resolve(ResolveOptions{
		Identity:      CommandIdentity{Name: CommandCommit},
		Raw:           map[string]any{},
		WorkDir:       t.TempDir(),
		WarningWriter: &bytes.Buffer{},
		Getenv:        func(string) string { return "" },
	})

	var credErr *errors.MissingCredentialError
	require.ErrorAs(t, err, &credErr)
}

func TestResolveMetaSkipsCredential(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	res, err := Resolve(ResolveOptions{
		Identity:      CommandIdentity{Name: CommandCheckConfig},
		Raw:           map[string]any{},
		WorkDir:       t.TempDir(),
		WarningWriter: &bytes.Buffer{},
		Getenv:        func(string) string { return "" },
	})
	require.NoError(t, err)
	assert.Nil(t, res.Secure)
}

func TestResolveSchemaFailureFailsFast(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Resolve(ResolveOptions{
		Identity:      CommandIdentity{Name: CommandCommit},
		Raw:           map[string]any{"bogus": true},
		WorkDir:       t.TempDir(),
		WarningWriter: &bytes.Buffer{},
		Getenv:        testGetenv,
	})

	var schemaErr *errors.SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)
}

func TestResolveFiltersContextDirectories(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	probe := func(path string) (bool, error) {
		return path == "/readable", nil
	}
	var warnings bytes.Buffer

	res, err := Resolve(ResolveOptions{
		Identity:      CommandIdentity{Name: CommandCommit},
		Raw:           map[string]any{"contextDirectories": []string{"/readable", "/gone"}},
		WorkDir:       t.TempDir(),
		WarningWriter: &warnings,
		Getenv:        testGetenv,
		Probe:         probe,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/readable"}, res.Config.ContextDirectories)
	assert.Contains(t, warnings.String(), "skipping: /gone")
}

func TestResolveCrossWirings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	res, err := Resolve(ResolveOptions{
		Identity:      CommandIdentity{Name: CommandTree},
		Raw:           map[string]any{"exclude": []string{"dist"}},
		WorkDir:       t.TempDir(),
		WarningWriter: &bytes.Buffer{},
		Getenv:        testGetenv,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"dist"}, res.Config.ExcludedPatterns)
	assert.Equal(t, []string{"dist"}, res.Config.Tree.Exclude)
}

func TestResolveConfigDirOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	override := t.TempDir()
	writeConfigDir(t, override, "config.yaml", "model: override-model\n")

	// The working directory carries its own config, which the explicit
	// --config-dir must displace.
	workDir := t.TempDir()
	writeConfigDir(t, filepath.Join(workDir, DefaultConfigDirName), "config.yaml",
		"model: local-model\n")

	res, err := Resolve(ResolveOptions{
		Identity:      CommandIdentity{Name: CommandCommit},
		Raw:           map[string]any{"configDir": override},
		WorkDir:       workDir,
		WarningWriter: &bytes.Buffer{},
		Getenv:        testGetenv,
	})
	require.NoError(t, err)

	assert.Equal(t, "override-model", res.Config.Model)
	assert.Equal(t, override, res.Config.ConfigDirectory)
}

func TestCheckConfigNeedsNoCredential(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	writeConfigDir(t, dir, "config.yaml", "model: checked-model\n")

	report, err := CheckConfig(DiscoverOptions{
		ConfigDirOverride: dir,
		WarningWriter:     &bytes.Buffer{},
	})
	require.NoError(t, err)

	assert.Equal(t, "checked-model", report.Config.Model)
	assert.Len(t, report.Files, 1)
	// Defaults back-fill everything the file leaves out.
	assert.Equal(t, 10, report.Config.Commit.MessageLimit)
}

func TestInitConfigWritesTemplateOnce(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), DefaultConfigDirName)

	path, err := InitConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, ConfigFilePath(dir), path)

	// A second run must refuse to overwrite.
	_, err = InitConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
