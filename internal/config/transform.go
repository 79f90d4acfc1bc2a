package config

import (
	"encoding/json"

	"github.com/raveheart1/drivkit/internal/errors"
)

// Canonical section keys for the per-command sub-objects.
const (
	sectionCommit      = "commit"
	sectionRelease     = "release"
	sectionAudioCommit = "audioCommit"
	sectionAudioReview = "audioReview"
	sectionReview      = "review"
	sectionPublish     = "publish"
	sectionLink        = "link"
	sectionUnlink      = "unlink"
	sectionTree        = "tree"
	sectionDevelopment = "development"
	sectionVersions    = "versions"
	sectionPrecommit   = "precommit"
)

// commandSections maps dispatch command names onto canonical section keys.
var commandSections = map[string]string{
	CommandCommit:      sectionCommit,
	CommandAudioCommit: sectionAudioCommit,
	CommandAudioReview: sectionAudioReview,
	CommandRelease:     sectionRelease,
	CommandReview:      sectionReview,
	CommandPublish:     sectionPublish,
	CommandLink:        sectionLink,
	CommandUnlink:      sectionUnlink,
	CommandTree:        sectionTree,
	CommandDevelopment: sectionDevelopment,
	CommandVersions:    sectionVersions,
	CommandPrecommit:   sectionPrecommit,
}

// sectionTriggers is the single activation table: a sub-object is created
// iff at least one of its trigger fields was supplied, or the dispatched
// command matches it. Fan-out fields (file, keepTemp, the review-context
// flags, targetVersion, noMilestones, mergeMethod) are triggers of every
// section they populate.
var sectionTriggers = map[string][]func(*RawInput) bool{
	sectionCommit: {
		has(func(r *RawInput) any { return r.Direction }),
		has(func(r *RawInput) any { return r.Add }),
		has(func(r *RawInput) any { return r.Cached }),
		has(func(r *RawInput) any { return r.SkipFileCheck }),
	},
	sectionRelease: {
		has(func(r *RawInput) any { return r.From }),
		has(func(r *RawInput) any { return r.To }),
		has(func(r *RawInput) any { return r.MergeMethod }),
		has(func(r *RawInput) any { return r.NoMilestones }),
	},
	sectionAudioCommit: {
		has(func(r *RawInput) any { return r.File }),
		has(func(r *RawInput) any { return r.KeepTemp }),
	},
	sectionAudioReview: {
		has(func(r *RawInput) any { return r.File }),
		has(func(r *RawInput) any { return r.KeepTemp }),
		has(func(r *RawInput) any { return r.IncludeCommitHistory }),
		has(func(r *RawInput) any { return r.IncludeRecentDiffs }),
		has(func(r *RawInput) any { return r.IncludeReleaseNotes }),
		has(func(r *RawInput) any { return r.IncludeGithubIssues }),
		has(func(r *RawInput) any { return r.CommitHistoryLimit }),
		has(func(r *RawInput) any { return r.DiffHistoryLimit }),
		has(func(r *RawInput) any { return r.ReleaseNotesLimit }),
		has(func(r *RawInput) any { return r.GithubIssuesLimit }),
	},
	sectionReview: {
		has(func(r *RawInput) any { return r.Note }),
		has(func(r *RawInput) any { return r.IncludeCommitHistory }),
		has(func(r *RawInput) any { return r.IncludeRecentDiffs }),
		has(func(r *RawInput) any { return r.IncludeReleaseNotes }),
		has(func(r *RawInput) any { return r.IncludeGithubIssues }),
		has(func(r *RawInput) any { return r.CommitHistoryLimit }),
		has(func(r *RawInput) any { return r.DiffHistoryLimit }),
		has(func(r *RawInput) any { return r.ReleaseNotesLimit }),
		has(func(r *RawInput) any { return r.GithubIssuesLimit }),
	},
	sectionPublish: {
		hasSlice(func(r *RawInput) []string { return r.DependencyUpdatePatterns }),
		hasSlice(func(r *RawInput) []string { return r.RequiredEnvVars }),
		has(func(r *RawInput) any { return r.LinkWorkspacePackages }),
		has(func(r *RawInput) any { return r.MergeMethod }),
		has(func(r *RawInput) any { return r.TargetVersion }),
		has(func(r *RawInput) any { return r.NoMilestones }),
	},
	sectionLink: {
		has(func(r *RawInput) any { return r.ScopeRoots }),
		hasSlice(func(r *RawInput) []string { return r.Externals }),
	},
	sectionUnlink: {
		has(func(r *RawInput) any { return r.WorkspaceFile }),
		has(func(r *RawInput) any { return r.CleanNodeModules }),
	},
	sectionTree: {
		hasSlice(func(r *RawInput) []string { return r.Directories }),
		has(func(r *RawInput) any { return r.Directory }),
		has(func(r *RawInput) any { return r.StartFrom }),
		has(func(r *RawInput) any { return r.Cmd }),
		has(func(r *RawInput) any { return r.Parallel }),
		has(func(r *RawInput) any { return r.Continue }),
	},
	sectionDevelopment: {
		has(func(r *RawInput) any { return r.TargetVersion }),
		has(func(r *RawInput) any { return r.NoMilestones }),
	},
	sectionVersions: {
		has(func(r *RawInput) any { return r.Subcommand }),
	},
	sectionPrecommit: {},
}

// Transform converts validated raw CLI input into a partial canonical layer.
// Fields absent from the input are absent from the output; nothing is
// defaulted here. The returned map is the highest-precedence merge layer.
func Transform(raw *RawInput, id CommandIdentity) (map[string]any, error) {
	out := map[string]any{}

	placeTopLevel(raw, out)

	excluded := resolveExcludedPatterns(raw)
	if excluded != nil {
		out["excludedPatterns"] = excluded
	}

	var scopeRoots map[string]any
	if raw.ScopeRoots != nil {
		parsed, err := parseScopeRoots(*raw.ScopeRoots)
		if err != nil {
			return nil, err
		}
		scopeRoots = parsed
	}

	for _, section := range sectionOrder {
		if !sectionActive(raw, id, section) {
			continue
		}
		fields := map[string]any{}
		populateSection(section, raw, id, fields, excluded, scopeRoots)
		out[section] = fields
	}

	propagateShared(raw, out)

	return out, nil
}

// sectionOrder keeps transformer output deterministic for tests and diffing.
var sectionOrder = []string{
	sectionCommit, sectionRelease, sectionAudioCommit, sectionAudioReview,
	sectionReview, sectionPublish, sectionLink, sectionUnlink, sectionTree,
	sectionDevelopment, sectionVersions, sectionPrecommit,
}

func sectionActive(raw *RawInput, id CommandIdentity, section string) bool {
	if commandSections[id.Name] == section {
		return true
	}
	for _, present := range sectionTriggers[section] {
		if present(raw) {
			return true
		}
	}
	return false
}

// placeTopLevel applies the direct renames (configDir -> configDirectory and
// friends) and copies the plain top-level scalars.
func placeTopLevel(raw *RawInput, out map[string]any) {
	setString(out, "model", raw.Model)
	setBool(out, "verbose", raw.Verbose)
	setBool(out, "debug", raw.Debug)
	setBool(out, "dryRun", raw.DryRun)
	setString(out, "configDirectory", raw.ConfigDir)
	setString(out, "outputDirectory", raw.OutputDir)
	setString(out, "preferencesDirectory", raw.PreferencesDir)
	if raw.ContextDirectories != nil {
		out["contextDirectories"] = raw.ContextDirectories
	}
}

// resolveExcludedPatterns applies alias precedence: excludedPatterns beats
// exclude beats excludedPaths. Returns nil when no alias was supplied.
func resolveExcludedPatterns(raw *RawInput) []string {
	switch {
	case raw.ExcludedPatterns != nil:
		return raw.ExcludedPatterns
	case raw.Exclude != nil:
		return raw.Exclude
	case raw.ExcludedPaths != nil:
		return raw.ExcludedPaths
	default:
		return nil
	}
}

// parseScopeRoots decodes the JSON-in-string scope-roots flag. The raw
// string is echoed in the failure so the user sees exactly what was rejected.
func parseScopeRoots(s string) (map[string]any, error) {
	var roots map[string]any
	if err := json.Unmarshal([]byte(s), &roots); err != nil {
		return nil, &errors.InvalidJSONError{Flag: "scope-roots", Raw: s, Err: err}
	}
	return roots, nil
}

func populateSection(section string, raw *RawInput, id CommandIdentity, fields map[string]any, excluded []string, scopeRoots map[string]any) {
	switch section {
	case sectionCommit:
		setBool(fields, "add", raw.Add)
		setBool(fields, "cached", raw.Cached)
		setBool(fields, "sendit", raw.SendIt)
		setBool(fields, "skipFileCheck", raw.SkipFileCheck)
		placeDirected(fields, "direction", raw.PipedInput, raw.Direction)
		placeTuning(raw, fields)
	case sectionRelease:
		setString(fields, "from", raw.From)
		setString(fields, "to", raw.To)
		setString(fields, "mergeMethod", raw.MergeMethod)
		setBool(fields, "noMilestones", raw.NoMilestones)
		placeTuning(raw, fields)
	case sectionAudioCommit:
		setString(fields, "file", raw.File)
		setBool(fields, "keepTemp", raw.KeepTemp)
		placeTuning(raw, fields)
	case sectionAudioReview:
		setString(fields, "file", raw.File)
		setBool(fields, "keepTemp", raw.KeepTemp)
		if id.Name == CommandAudioReview {
			setString(fields, "directory", raw.Directory)
		}
		placeReviewContext(raw, fields)
	case sectionReview:
		setBool(fields, "sendit", raw.SendIt)
		placeDirected(fields, "note", raw.PipedInput, raw.Note)
		placeReviewContext(raw, fields)
	case sectionPublish:
		if raw.DependencyUpdatePatterns != nil {
			fields["dependencyUpdatePatterns"] = raw.DependencyUpdatePatterns
		}
		if raw.RequiredEnvVars != nil {
			fields["requiredEnvVars"] = raw.RequiredEnvVars
		}
		setBool(fields, "linkWorkspacePackages", raw.LinkWorkspacePackages)
		setString(fields, "mergeMethod", raw.MergeMethod)
		setString(fields, "targetVersion", raw.TargetVersion)
		setBool(fields, "noMilestones", raw.NoMilestones)
		setBool(fields, "sendit", raw.SendIt)
	case sectionLink:
		if scopeRoots != nil {
			fields["scopeRoots"] = scopeRoots
		}
		if raw.Externals != nil {
			fields["externals"] = raw.Externals
		}
		if id.Name == CommandLink && id.Package != "" {
			fields["packageArgument"] = id.Package
		}
	case sectionUnlink:
		if scopeRoots != nil {
			fields["scopeRoots"] = scopeRoots
		}
		setString(fields, "workspaceFile", raw.WorkspaceFile)
		setBool(fields, "cleanNodeModules", raw.CleanNodeModules)
		if id.Name == CommandUnlink && id.Package != "" {
			fields["packageArgument"] = id.Package
		}
	case sectionTree:
		// directories (plural) wins; the singular form wraps into a
		// one-element sequence only when the plural is absent.
		if raw.Directories != nil {
			fields["directories"] = raw.Directories
		} else if raw.Directory != nil {
			fields["directories"] = []string{*raw.Directory}
		}
		if id.Name == CommandTree && excluded != nil {
			fields["exclude"] = excluded
		}
		setString(fields, "startFrom", raw.StartFrom)
		setString(fields, "cmd", raw.Cmd)
		setBool(fields, "parallel", raw.Parallel)
		setBool(fields, "continue", raw.Continue)
		if id.BuiltIn != "" {
			fields["builtInCommand"] = id.BuiltIn
		}
		if id.Name == CommandTree && id.Package != "" {
			fields["packageArgument"] = id.Package
		}
	case sectionDevelopment:
		setString(fields, "targetVersion", raw.TargetVersion)
		setBool(fields, "noMilestones", raw.NoMilestones)
	case sectionVersions:
		setString(fields, "subcommand", raw.Subcommand)
		if id.Name == CommandVersions && raw.Directories != nil {
			fields["directories"] = raw.Directories
		}
	case sectionPrecommit:
		setBool(fields, "sendit", raw.SendIt)
	}
}

// propagateShared copies the single shared context/messageLimit values into
// every commit/release/review sub-object already being populated for this
// invocation. Sections not already present are left untouched.
func propagateShared(raw *RawInput, out map[string]any) {
	for _, section := range []string{sectionCommit, sectionRelease, sectionReview} {
		fields, ok := out[section].(map[string]any)
		if !ok {
			continue
		}
		setString(fields, "context", raw.Context)
		setInt(fields, "messageLimit", raw.MessageLimit)
	}
}

// placeDirected implements stdin-vs-positional precedence: piped input, when
// any bytes were read, always wins over the positional value.
func placeDirected(fields map[string]any, key string, piped, positional *string) {
	switch {
	case piped != nil:
		fields[key] = *piped
	case positional != nil:
		fields[key] = *positional
	}
}

func placeTuning(raw *RawInput, fields map[string]any) {
	setInt(fields, "maxOutputTokens", raw.MaxOutputTokens)
	setFloat(fields, "temperature", raw.Temperature)
	setString(fields, "reasoningLevel", raw.ReasoningLevel)
}

func placeReviewContext(raw *RawInput, fields map[string]any) {
	setBool(fields, "includeCommitHistory", raw.IncludeCommitHistory)
	setBool(fields, "includeRecentDiffs", raw.IncludeRecentDiffs)
	setBool(fields, "includeReleaseNotes", raw.IncludeReleaseNotes)
	setBool(fields, "includeGithubIssues", raw.IncludeGithubIssues)
	setInt(fields, "commitHistoryLimit", raw.CommitHistoryLimit)
	setInt(fields, "diffHistoryLimit", raw.DiffHistoryLimit)
	setInt(fields, "releaseNotesLimit", raw.ReleaseNotesLimit)
	setInt(fields, "githubIssuesLimit", raw.GithubIssuesLimit)
}

func has(get func(*RawInput) any) func(*RawInput) bool {
	return func(r *RawInput) bool {
		v := get(r)
		switch p := v.(type) {
		case *string:
			return p != nil
		case *bool:
			return p != nil
		case *int:
			return p != nil
		case *float64:
			return p != nil
		default:
			return false
		}
	}
}

func hasSlice(get func(*RawInput) []string) func(*RawInput) bool {
	return func(r *RawInput) bool { return get(r) != nil }
}

func setString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func setBool(m map[string]any, key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}

func setInt(m map[string]any, key string, v *int) {
	if v != nil {
		m[key] = *v
	}
}

func setFloat(m map[string]any, key string, v *float64) {
	if v != nil {
		m[key] = *v
	}
}
