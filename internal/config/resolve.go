package config

import (
	"io"
	"os"
)

// ResolveOptions configures one run of the resolution pipeline.
type ResolveOptions struct {
	// Identity is the dispatched command, resolved by the cli layer.
	Identity CommandIdentity
	// Raw is the flat raw CLI input (only flags the user actually passed).
	Raw map[string]any
	// WorkDir anchors hierarchical config discovery (default: cwd).
	WorkDir string
	// WarningWriter receives non-fatal warnings (default: os.Stderr).
	WarningWriter io.Writer
	// Getenv is injectable for tests (default: os.Getenv).
	Getenv func(string) string
	// Probe is injectable for tests (default: filesystem readability probe).
	Probe DirProber
}

// Resolution is the produced artifact: the fully-populated config plus the
// command identity, handed to the command-dispatch layer.
type Resolution struct {
	Config      *Config
	Secure      *SecureConfig
	Identity    CommandIdentity
	ConfigFiles []string
}

// Resolve runs the full pipeline: schema validation, CLI transformation,
// file discovery, the four-layer deep merge, directory validation, the
// post-merge cross-wirings, and credential resolution. It runs once, early,
// before any command work; every fallible step either fails fast or
// degrades with a logged warning.
func Resolve(opts ResolveOptions) (*Resolution, error) {
	warn := opts.WarningWriter
	if warn == nil {
		warn = os.Stderr
	}

	raw, err := DecodeRawInput(opts.Raw)
	if err != nil {
		return nil, err
	}

	cliLayer, err := Transform(raw, opts.Identity)
	if err != nil {
		return nil, err
	}

	// An explicit --config-dir is checked hard (exists+dir+writable, with
	// graceful non-existence) and replaces the hierarchical walk.
	var configDirOverride string
	if raw.ConfigDir != nil {
		configDirOverride, err = ValidateConfigDirectory(*raw.ConfigDir, warn)
		if err != nil {
			return nil, err
		}
	}

	fileLayer, files, err := DiscoverFileLayer(DiscoverOptions{
		WorkDir:           opts.WorkDir,
		ConfigDirOverride: configDirOverride,
		WarningWriter:     warn,
	})
	if err != nil {
		return nil, err
	}

	envLayer, err := EnvLayer()
	if err != nil {
		return nil, err
	}

	merged := MergeLayers(GetDefaults(), fileLayer, envLayer, cliLayer)

	cfg, err := Unmarshal(merged)
	if err != nil {
		return nil, err
	}

	cfg.ContextDirectories = ValidateContextDirectories(cfg.ContextDirectories, opts.Probe, warn)
	if cfg.ExcludedPatterns == nil {
		cfg.ExcludedPatterns = append([]string(nil), DefaultExcludedPatterns...)
	}

	applyCrossWirings(cfg)

	res := &Resolution{Config: cfg, Identity: opts.Identity, ConfigFiles: files}

	if !opts.Identity.IsMeta() {
		secure, err := ResolveSecure(opts.Getenv)
		if err != nil {
			return nil, err
		}
		res.Secure = secure
	}

	return res, nil
}

// applyCrossWirings performs the narrow post-merge wirings that copy a
// resolved value from one section into another. Each is idempotent and
// fills a target only when it is still unset.
func applyCrossWirings(cfg *Config) {
	if len(cfg.Tree.Directories) == 0 && cfg.AudioReview.Directory != "" {
		cfg.Tree.Directories = []string{cfg.AudioReview.Directory}
	}
	if len(cfg.Tree.Exclude) == 0 && len(cfg.ExcludedPatterns) > 0 {
		cfg.Tree.Exclude = append([]string(nil), cfg.ExcludedPatterns...)
	}
}
