// Package config implements configuration resolution for the drivkit CLI.
// One fully-populated Config is produced per invocation by deep-merging four
// layers in increasing precedence: built-in defaults, the hierarchically
// discovered config file, DRIVKIT_* environment overrides, and command-line
// arguments. Every command sub-section is guaranteed present in the result.
package config

// Config is the fully resolved drivkit configuration. All sub-sections are
// value types: after resolution each is populated, at minimum from the
// defaults table.
type Config struct {
	Model                string   `koanf:"model"`
	Verbose              bool     `koanf:"verbose"`
	Debug                bool     `koanf:"debug"`
	DryRun               bool     `koanf:"dryRun"`
	ContextDirectories   []string `koanf:"contextDirectories"`
	ConfigDirectory      string   `koanf:"configDirectory"`
	OutputDirectory      string   `koanf:"outputDirectory"`
	PreferencesDirectory string   `koanf:"preferencesDirectory"`
	ExcludedPatterns     []string `koanf:"excludedPatterns"`

	Commit      CommitConfig      `koanf:"commit"`
	Release     ReleaseConfig     `koanf:"release"`
	AudioCommit AudioCommitConfig `koanf:"audioCommit"`
	AudioReview AudioReviewConfig `koanf:"audioReview"`
	Review      ReviewConfig      `koanf:"review"`
	Publish     PublishConfig     `koanf:"publish"`
	Link        LinkConfig        `koanf:"link"`
	Unlink      UnlinkConfig      `koanf:"unlink"`
	Tree        TreeConfig        `koanf:"tree"`
	Development DevelopmentConfig `koanf:"development"`
	Versions    VersionsConfig    `koanf:"versions"`
	Precommit   PrecommitConfig   `koanf:"precommit"`
}

// OpenAITuning holds per-command model tuning knobs. Embedded in the
// sub-sections that drive a model call (commit, audioCommit, release).
type OpenAITuning struct {
	MaxOutputTokens int     `koanf:"maxOutputTokens"`
	Temperature     float64 `koanf:"temperature"`
	ReasoningLevel  string  `koanf:"reasoningLevel"`
}

// CommitConfig configures the commit command.
type CommitConfig struct {
	Add           bool   `koanf:"add"`
	Cached        bool   `koanf:"cached"`
	SendIt        bool   `koanf:"sendit"`
	SkipFileCheck bool   `koanf:"skipFileCheck"`
	MessageLimit  int    `koanf:"messageLimit"`
	Context       string `koanf:"context"`
	Direction     string `koanf:"direction"`
	OpenAITuning  `koanf:",squash"`
}

// ReleaseConfig configures the release command.
type ReleaseConfig struct {
	From         string `koanf:"from"`
	To           string `koanf:"to"`
	MergeMethod  string `koanf:"mergeMethod"`
	MessageLimit int    `koanf:"messageLimit"`
	Context      string `koanf:"context"`
	NoMilestones bool   `koanf:"noMilestones"`
	OpenAITuning `koanf:",squash"`
}

// AudioCommitConfig configures the audio-commit command.
type AudioCommitConfig struct {
	File         string `koanf:"file"`
	KeepTemp     bool   `koanf:"keepTemp"`
	OpenAITuning `koanf:",squash"`
}

// AudioReviewConfig configures the audio-review command. It shares the
// review-context knobs with ReviewConfig; flags setting those populate both.
type AudioReviewConfig struct {
	File          string `koanf:"file"`
	KeepTemp      bool   `koanf:"keepTemp"`
	Directory     string `koanf:"directory"`
	ReviewContext `koanf:",squash"`
}

// ReviewContext selects which repository context feeds a review prompt.
type ReviewContext struct {
	IncludeCommitHistory bool `koanf:"includeCommitHistory"`
	IncludeRecentDiffs   bool `koanf:"includeRecentDiffs"`
	IncludeReleaseNotes  bool `koanf:"includeReleaseNotes"`
	IncludeGithubIssues  bool `koanf:"includeGithubIssues"`
	CommitHistoryLimit   int  `koanf:"commitHistoryLimit"`
	DiffHistoryLimit     int  `koanf:"diffHistoryLimit"`
	ReleaseNotesLimit    int  `koanf:"releaseNotesLimit"`
	GithubIssuesLimit    int  `koanf:"githubIssuesLimit"`
}

// ReviewConfig configures the review command.
type ReviewConfig struct {
	Note          string `koanf:"note"`
	Context       string `koanf:"context"`
	SendIt        bool   `koanf:"sendit"`
	MessageLimit  int    `koanf:"messageLimit"`
	ReviewContext `koanf:",squash"`
}

// PublishConfig configures the publish command.
type PublishConfig struct {
	MergeMethod              string   `koanf:"mergeMethod"`
	DependencyUpdatePatterns []string `koanf:"dependencyUpdatePatterns"`
	RequiredEnvVars          []string `koanf:"requiredEnvVars"`
	LinkWorkspacePackages    bool     `koanf:"linkWorkspacePackages"`
	TargetVersion            string   `koanf:"targetVersion"`
	NoMilestones             bool     `koanf:"noMilestones"`
	SendIt                   bool     `koanf:"sendit"`
}

// LinkConfig configures the link command. ScopeRoots maps an npm-style
// package scope to the filesystem directory holding its local checkouts.
type LinkConfig struct {
	ScopeRoots      map[string]string `koanf:"scopeRoots"`
	Externals       []string          `koanf:"externals"`
	PackageArgument string            `koanf:"packageArgument"`
}

// UnlinkConfig configures the unlink command.
type UnlinkConfig struct {
	ScopeRoots       map[string]string `koanf:"scopeRoots"`
	WorkspaceFile    string            `koanf:"workspaceFile"`
	CleanNodeModules bool              `koanf:"cleanNodeModules"`
	PackageArgument  string            `koanf:"packageArgument"`
}

// TreeConfig configures the tree meta-command, which runs a built-in
// command across every package of a multi-package workspace.
type TreeConfig struct {
	Directories     []string `koanf:"directories"`
	Exclude         []string `koanf:"exclude"`
	StartFrom       string   `koanf:"startFrom"`
	Cmd             string   `koanf:"cmd"`
	Parallel        bool     `koanf:"parallel"`
	Continue        bool     `koanf:"continue"`
	BuiltInCommand  string   `koanf:"builtInCommand"`
	PackageArgument string   `koanf:"packageArgument"`
}

// DevelopmentConfig configures the development command.
type DevelopmentConfig struct {
	TargetVersion string `koanf:"targetVersion"`
	NoMilestones  bool   `koanf:"noMilestones"`
}

// VersionsConfig configures the versions command.
type VersionsConfig struct {
	Directories []string `koanf:"directories"`
	Subcommand  string   `koanf:"subcommand"`
}

// PrecommitConfig configures the precommit command.
type PrecommitConfig struct {
	Context      string `koanf:"context"`
	MessageLimit int    `koanf:"messageLimit"`
	SendIt       bool   `koanf:"sendit"`
}

// SecureConfig holds secrets resolved from the environment. Never read from
// config files or CLI flags, and never written anywhere.
type SecureConfig struct {
	OpenAIAPIKey string
}
