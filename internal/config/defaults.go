package config

// Default model and per-command tuning applied when neither the config file
// nor the CLI supplies a value.
const (
	DefaultModel           = "gpt-4o-mini"
	DefaultMaxOutputTokens = 10000
	DefaultTemperature     = 1.0
	DefaultReasoningLevel  = "medium"
	DefaultConfigDirName   = ".drivkit"
	DefaultOutputDirName   = "output/drivkit"
	DefaultPreferencesDir  = "~/.drivkit/preferences"
)

// DefaultExcludedPatterns is the static exclusion list used when neither the
// config file nor the CLI supplies excludedPatterns.
var DefaultExcludedPatterns = []string{
	"node_modules",
	"dist",
	"build",
	"coverage",
	"*.lock",
	"package-lock.json",
	"pnpm-lock.yaml",
	"yarn.lock",
}

// GetDefaults returns the merge floor: a fully-populated layer covering every
// top-level scalar and every command sub-section. Callers receive a fresh map
// on every call; merges never mutate it in place.
func GetDefaults() map[string]any {
	return map[string]any{
		"model":                DefaultModel,
		"verbose":              false,
		"debug":                false,
		"dryRun":               false,
		"contextDirectories":   []string{},
		"configDirectory":      DefaultConfigDirName,
		"outputDirectory":      DefaultOutputDirName,
		"preferencesDirectory": DefaultPreferencesDir,
		"excludedPatterns":     append([]string(nil), DefaultExcludedPatterns...),
		"commit": map[string]any{
			"add":             false,
			"cached":          false,
			"sendit":          false,
			"skipFileCheck":   false,
			"messageLimit":    10,
			"context":         "",
			"direction":       "",
			"maxOutputTokens": DefaultMaxOutputTokens,
			"temperature":     DefaultTemperature,
			"reasoningLevel":  DefaultReasoningLevel,
		},
		"release": map[string]any{
			"from":            "",
			"to":              "main",
			"mergeMethod":     "squash",
			"messageLimit":    50,
			"context":         "",
			"noMilestones":    false,
			"maxOutputTokens": DefaultMaxOutputTokens,
			"temperature":     DefaultTemperature,
			"reasoningLevel":  DefaultReasoningLevel,
		},
		"audioCommit": map[string]any{
			"file":            "",
			"keepTemp":        false,
			"maxOutputTokens": DefaultMaxOutputTokens,
			"temperature":     DefaultTemperature,
			"reasoningLevel":  DefaultReasoningLevel,
		},
		"audioReview": map[string]any{
			"file":                 "",
			"keepTemp":             false,
			"directory":            "",
			"includeCommitHistory": true,
			"includeRecentDiffs":   true,
			"includeReleaseNotes":  false,
			"includeGithubIssues":  true,
			"commitHistoryLimit":   10,
			"diffHistoryLimit":     5,
			"releaseNotesLimit":    3,
			"githubIssuesLimit":    20,
		},
		"review": map[string]any{
			"note":                 "",
			"context":              "",
			"sendit":               false,
			"messageLimit":         10,
			"includeCommitHistory": true,
			"includeRecentDiffs":   true,
			"includeReleaseNotes":  false,
			"includeGithubIssues":  true,
			"commitHistoryLimit":   10,
			"diffHistoryLimit":     5,
			"releaseNotesLimit":    3,
			"githubIssuesLimit":    20,
		},
		"publish": map[string]any{
			"mergeMethod":              "squash",
			"dependencyUpdatePatterns": []string{},
			"requiredEnvVars":          []string{},
			"linkWorkspacePackages":    true,
			"targetVersion":            "",
			"noMilestones":             false,
			"sendit":                   false,
		},
		"link": map[string]any{
			"scopeRoots":      map[string]any{},
			"externals":       []string{},
			"packageArgument": "",
		},
		"unlink": map[string]any{
			"scopeRoots":       map[string]any{},
			"workspaceFile":    "pnpm-workspace.yaml",
			"cleanNodeModules": false,
			"packageArgument":  "",
		},
		"tree": map[string]any{
			"directories":     []string{},
			"exclude":         []string{},
			"startFrom":       "",
			"cmd":             "",
			"parallel":        false,
			"continue":        false,
			"builtInCommand":  "",
			"packageArgument": "",
		},
		"development": map[string]any{
			"targetVersion": "",
			"noMilestones":  false,
		},
		"versions": map[string]any{
			"directories": []string{},
			"subcommand":  "",
		},
		"precommit": map[string]any{
			"context":      "",
			"messageLimit": 10,
			"sendit":       false,
		},
	}
}

// GetDefaultConfigTemplate returns a fully commented config template written
// by 'drivkit --init-config' to help users discover the available options.
func GetDefaultConfigTemplate() string {
	return `# drivkit configuration
# Values here sit between built-in defaults and CLI flags:
#   defaults < this file < DRIVKIT_* environment variables < CLI flags

model: gpt-4o-mini              # Model used for generated messages
verbose: false                  # Verbose progress output
debug: false                    # Debug logging
dryRun: false                   # Print actions without performing them
outputDirectory: output/drivkit # Where generated artifacts are written
preferencesDirectory: ~/.drivkit/preferences
contextDirectories: []          # Extra directories to feed model context
excludedPatterns:               # Paths excluded from diffs and trees
  - node_modules
  - dist
  - build
  - coverage
  - "*.lock"

commit:
  add: false                    # Stage modified files before committing
  cached: false                 # Diff the index instead of the worktree
  sendit: false                 # Commit without confirmation
  messageLimit: 10              # Commit-history entries fed to the model

release:
  to: main                      # Release target branch
  mergeMethod: squash           # squash | merge | rebase
  messageLimit: 50

review:
  includeCommitHistory: true
  includeRecentDiffs: true
  includeReleaseNotes: false
  includeGithubIssues: true

link:
  scopeRoots: {}                # e.g. "@myorg": ../myorg

tree:
  directories: []               # Workspace package directories
  exclude: []                   # Patterns skipped during the tree walk
`
}
