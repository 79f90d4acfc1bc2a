package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/raveheart1/drivkit/internal/errors"
)

// DirProber reports whether a directory is readable. Returning an error
// means the probe itself failed (distinct from a clean "not readable").
type DirProber func(path string) (bool, error)

// ValidateContextDirectories filters candidate context directories down to
// the subsequence confirmed readable, preserving input order and duplicates.
// Unreadable entries and failed probes are dropped with distinct warnings;
// processing always continues. Probes run sequentially so every warning is
// attributable to one path. A nil probe uses the filesystem.
func ValidateContextDirectories(dirs []string, probe DirProber, warn io.Writer) []string {
	if probe == nil {
		probe = probeReadableDir
	}
	if warn == nil {
		warn = os.Stderr
	}
	valid := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		readable, err := probe(dir)
		switch {
		case err != nil:
			fmt.Fprintf(warn, "Warning: context directory probe threw %v, skipping: %s\n", err, dir)
		case !readable:
			fmt.Fprintf(warn, "Warning: context directory not readable, skipping: %s\n", dir)
		default:
			valid = append(valid, dir)
		}
	}
	return valid
}

// probeReadableDir is the default readability probe: the path must stat as a
// directory and be openable. A stat failure is a probe error; an open
// failure on an existing directory is a clean "not readable".
func probeReadableDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, nil
	}
	f.Close()
	return true, nil
}

// ValidateConfigDirectory checks the config directory and returns its
// absolute path. A path that exists but is not a directory, or is not
// writable, fails hard. A missing directory is non-fatal: two warnings are
// logged, the absolute path is returned unchanged, and downstream defaulting
// proceeds without creating it.
func ValidateConfigDirectory(path string, warn io.Writer) (string, error) {
	if warn == nil {
		warn = os.Stderr
	}
	abs, err := filepath.Abs(expandHomePath(path))
	if err != nil {
		return "", &errors.ConfigDirectoryError{Path: path, Reason: err.Error()}
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		fmt.Fprintf(warn, "Warning: config directory does not exist: %s\n", abs)
		fmt.Fprintf(warn, "Warning: continuing with built-in defaults; the directory will not be created\n")
		return abs, nil
	}
	if err != nil {
		return "", &errors.ConfigDirectoryError{Path: abs, Reason: err.Error()}
	}
	if !info.IsDir() {
		return "", &errors.ConfigDirectoryError{Path: abs, Reason: "exists but is not a directory"}
	}

	probe, err := os.CreateTemp(abs, ".drivkit-write-probe-*")
	if err != nil {
		return "", &errors.ConfigDirectoryError{Path: abs, Reason: "exists but is not writable"}
	}
	probe.Close()
	os.Remove(probe.Name())

	return abs, nil
}

// UserConfigPath returns the user-level config file path, following the XDG
// Base Directory Specification via os.UserConfigDir.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "drivkit", "config.yaml"), nil
}

// ConfigFilePath returns the config file path inside a config directory.
func ConfigFilePath(configDir string) string {
	return filepath.Join(configDir, "config.yaml")
}

// LegacyConfigFilePath returns the legacy JSON config file path inside a
// config directory, still honored when no YAML file exists.
func LegacyConfigFilePath(configDir string) string {
	return filepath.Join(configDir, "config.json")
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
