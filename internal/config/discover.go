package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/raveheart1/drivkit/internal/errors"
)

// EnvPrefix is the prefix for environment variable overrides. Nested keys
// use a double underscore: DRIVKIT_COMMIT__MESSAGE_LIMIT -> commit.messageLimit.
const EnvPrefix = "DRIVKIT_"

// DiscoverOptions configures the hierarchical config file walk.
type DiscoverOptions struct {
	// WorkDir is where the upward walk starts (default: current directory).
	WorkDir string
	// ConfigDirName is the per-directory config directory name (default .drivkit).
	ConfigDirName string
	// ConfigDirOverride, when set (--config-dir), replaces the hierarchical
	// walk with that single project-level directory.
	ConfigDirOverride string
	// WarningWriter receives non-fatal discovery warnings (default: os.Stderr).
	WarningWriter io.Writer
}

// DiscoverFileLayer loads the hierarchically-discovered configuration file
// layer. Files are applied lowest precedence first: the user-level config,
// then each directory from the repository root down to the working
// directory. The second return value is the chain of files actually loaded.
// Any unreadable or malformed file fails with a ConfigDiscoveryError.
func DiscoverFileLayer(opts DiscoverOptions) (map[string]any, []string, error) {
	warn := opts.WarningWriter
	if warn == nil {
		warn = os.Stderr
	}
	dirName := opts.ConfigDirName
	if dirName == "" {
		dirName = DefaultConfigDirName
	}

	dirs, err := discoveryChain(opts.WorkDir, dirName, opts.ConfigDirOverride)
	if err != nil {
		return nil, nil, err
	}

	k := koanf.New(".")
	var loaded []string
	for _, dir := range dirs {
		path, err := loadConfigDir(k, dir, warn)
		if err != nil {
			return nil, nil, err
		}
		if path != "" {
			loaded = append(loaded, path)
		}
	}
	return k.Raw(), loaded, nil
}

// discoveryChain builds the ordered list of config directories to consult,
// lowest precedence first. The upward walk is bounded at the repository root
// when the working directory is inside a git repository.
func discoveryChain(workDir, dirName, override string) ([]string, error) {
	var chain []string
	if userDir, err := os.UserConfigDir(); err == nil {
		chain = append(chain, filepath.Join(userDir, "drivkit"))
	}

	if override != "" {
		return append(chain, override), nil
	}

	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &errors.ConfigDiscoveryError{Path: ".", Err: err}
		}
		workDir = cwd
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return nil, &errors.ConfigDiscoveryError{Path: workDir, Err: err}
	}

	root := repositoryRoot(abs)
	if root == "" {
		return append(chain, filepath.Join(abs, dirName)), nil
	}

	// Repo root first so directories closer to the working directory
	// override it.
	var levels []string
	for dir := abs; strings.HasPrefix(dir, root); dir = filepath.Dir(dir) {
		levels = append([]string{filepath.Join(dir, dirName)}, levels...)
		if dir == root {
			break
		}
	}
	return append(chain, levels...), nil
}

// repositoryRoot returns the root of the git repository containing dir, or
// "" when dir is not inside a repository.
func repositoryRoot(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	wt, err := repo.Worktree()
	if err != nil {
		return ""
	}
	return wt.Filesystem.Root()
}

// loadConfigDir loads one directory's config file into k. YAML is preferred;
// a legacy JSON file is honored with a warning when no YAML file exists.
// Returns the loaded path, or "" when the directory carries no config.
func loadConfigDir(k *koanf.Koanf, dir string, warn io.Writer) (string, error) {
	yamlPath := ConfigFilePath(dir)
	if fileExists(yamlPath) {
		if err := ValidateYAMLSyntax(yamlPath); err != nil {
			return "", &errors.ConfigDiscoveryError{Path: yamlPath, Err: err}
		}
		if err := k.Load(file.Provider(yamlPath), kyaml.Parser()); err != nil {
			return "", &errors.ConfigDiscoveryError{Path: yamlPath, Err: err}
		}
		return yamlPath, nil
	}

	jsonPath := LegacyConfigFilePath(dir)
	if fileExists(jsonPath) {
		fmt.Fprintf(warn, "Warning: using deprecated JSON config at %s; migrate to config.yaml\n", jsonPath)
		if err := k.Load(file.Provider(jsonPath), kjson.Parser()); err != nil {
			return "", &errors.ConfigDiscoveryError{Path: jsonPath, Err: err}
		}
		return jsonPath, nil
	}
	return "", nil
}

// EnvLayer loads DRIVKIT_* environment overrides as a merge layer sitting
// between the file layer and CLI arguments.
func EnvLayer() (map[string]any, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}
	return k.Raw(), nil
}

// envTransform converts environment variable names to canonical config keys.
// Example: DRIVKIT_OUTPUT_DIRECTORY -> outputDirectory,
// DRIVKIT_COMMIT__MESSAGE_LIMIT -> commit.messageLimit.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	segments := strings.Split(s, "__")
	for i, seg := range segments {
		segments[i] = snakeToCamel(seg)
	}
	return strings.Join(segments, ".")
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

// fileExists returns true if the file exists and is statable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
