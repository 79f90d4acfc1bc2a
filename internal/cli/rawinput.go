package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagRawKeys maps CLI flag names onto flat raw-input keys. Only flags the
// user actually set enter the raw input, so the transformer can distinguish
// "unset" from "explicitly falsy".
var flagRawKeys = map[string]string{
	"model":                      "model",
	"verbose":                    "verbose",
	"debug":                      "debug",
	"dry-run":                    "dryRun",
	"config-dir":                 "configDir",
	"output-dir":                 "outputDir",
	"preferences-dir":            "preferencesDir",
	"context-directories":        "contextDirectories",
	"excluded-patterns":          "excludedPatterns",
	"exclude":                    "exclude",
	"excluded-paths":             "excludedPaths",
	"max-output-tokens":          "maxOutputTokens",
	"temperature":                "temperature",
	"reasoning-level":            "reasoningLevel",
	"context":                    "context",
	"message-limit":              "messageLimit",
	"add":                        "add",
	"cached":                     "cached",
	"sendit":                     "sendit",
	"skip-file-check":            "skipFileCheck",
	"from":                       "from",
	"to":                         "to",
	"merge-method":               "mergeMethod",
	"no-milestones":              "noMilestones",
	"target-version":             "targetVersion",
	"file":                       "file",
	"keep-temp":                  "keepTemp",
	"include-commit-history":     "includeCommitHistory",
	"include-recent-diffs":       "includeRecentDiffs",
	"include-release-notes":      "includeReleaseNotes",
	"include-github-issues":      "includeGithubIssues",
	"commit-history-limit":       "commitHistoryLimit",
	"diff-history-limit":         "diffHistoryLimit",
	"release-notes-limit":        "releaseNotesLimit",
	"github-issues-limit":        "githubIssuesLimit",
	"dependency-update-patterns": "dependencyUpdatePatterns",
	"required-env-vars":          "requiredEnvVars",
	"link-workspace-packages":    "linkWorkspacePackages",
	"scope-roots":                "scopeRoots",
	"externals":                  "externals",
	"workspace-file":             "workspaceFile",
	"clean-node-modules":         "cleanNodeModules",
	"directory":                  "directory",
	"directories":                "directories",
	"start-from":                 "startFrom",
	"cmd":                        "cmd",
	"parallel":                   "parallel",
	"continue":                   "continue",
}

// buildRawInput collects every flag the user set, local and inherited, into
// the flat raw-input map consumed by config.Resolve.
func buildRawInput(cmd *cobra.Command) map[string]any {
	raw := map[string]any{}
	seen := map[string]struct{}{}
	collect := func(f *pflag.Flag) {
		key, known := flagRawKeys[f.Name]
		if !known {
			return
		}
		if _, dup := seen[f.Name]; dup {
			return
		}
		seen[f.Name] = struct{}{}
		if v, ok := flagValue(f); ok {
			raw[key] = v
		}
	}
	cmd.Flags().Visit(collect)
	cmd.InheritedFlags().Visit(collect)
	return raw
}

// flagValue converts a set pflag value into the natural Go type for the raw
// input map.
func flagValue(f *pflag.Flag) (any, bool) {
	switch f.Value.Type() {
	case "bool":
		return f.Value.String() == "true", true
	case "int":
		n, err := strconv.Atoi(f.Value.String())
		return n, err == nil
	case "float64":
		x, err := strconv.ParseFloat(f.Value.String(), 64)
		return x, err == nil
	case "stringSlice", "stringArray":
		sv, ok := f.Value.(pflag.SliceValue)
		if !ok {
			return nil, false
		}
		return sv.GetSlice(), true
	default:
		return f.Value.String(), true
	}
}
