package config

import (
	stderrors "errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/raveheart1/drivkit/internal/errors"
)

// RawInput is the flat, all-optional view of one invocation's CLI input.
// Every command's flags share this single namespace. Pointer fields
// distinguish "unset" from "explicitly falsy"; only flags the user actually
// passed are populated.
type RawInput struct {
	Model                *string  `flag:"model"`
	Verbose              *bool    `flag:"verbose"`
	Debug                *bool    `flag:"debug"`
	DryRun               *bool    `flag:"dryRun"`
	ConfigDir            *string  `flag:"configDir"`
	OutputDir            *string  `flag:"outputDir"`
	PreferencesDir       *string  `flag:"preferencesDir"`
	ContextDirectories   []string `flag:"contextDirectories"`
	ExcludedPatterns     []string `flag:"excludedPatterns"`
	Exclude              []string `flag:"exclude"`
	ExcludedPaths        []string `flag:"excludedPaths"`

	// Shared across commit/release/review (propagated only into sub-sections
	// already being populated for this invocation).
	Context      *string `flag:"context"`
	MessageLimit *int    `flag:"messageLimit" validate:"omitempty,gte=0"`

	// OpenAI tuning, propagated into whichever of commit/audioCommit/release
	// is active.
	MaxOutputTokens *int     `flag:"maxOutputTokens" validate:"omitempty,gt=0"`
	Temperature     *float64 `flag:"temperature" validate:"omitempty,gte=0,lte=2"`
	ReasoningLevel  *string  `flag:"reasoningLevel" validate:"omitempty,oneof=low medium high"`

	// commit
	Add           *bool   `flag:"add"`
	Cached        *bool   `flag:"cached"`
	SendIt        *bool   `flag:"sendit"`
	SkipFileCheck *bool   `flag:"skipFileCheck"`
	Direction     *string `flag:"direction"`

	// Piped stdin, set only when at least one byte was read. Whitespace-only
	// input still counts as present and beats the positional.
	PipedInput *string `flag:"pipedInput"`

	// release
	From         *string `flag:"from"`
	To           *string `flag:"to"`
	MergeMethod  *string `flag:"mergeMethod" validate:"omitempty,oneof=merge squash rebase"`
	NoMilestones *bool   `flag:"noMilestones"`

	// audio-commit / audio-review
	File     *string `flag:"file"`
	KeepTemp *bool   `flag:"keepTemp"`

	// review (context selection flags also populate audioReview)
	Note                 *string `flag:"note"`
	IncludeCommitHistory *bool   `flag:"includeCommitHistory"`
	IncludeRecentDiffs   *bool   `flag:"includeRecentDiffs"`
	IncludeReleaseNotes  *bool   `flag:"includeReleaseNotes"`
	IncludeGithubIssues  *bool   `flag:"includeGithubIssues"`
	CommitHistoryLimit   *int    `flag:"commitHistoryLimit" validate:"omitempty,gte=0"`
	DiffHistoryLimit     *int    `flag:"diffHistoryLimit" validate:"omitempty,gte=0"`
	ReleaseNotesLimit    *int    `flag:"releaseNotesLimit" validate:"omitempty,gte=0"`
	GithubIssuesLimit    *int    `flag:"githubIssuesLimit" validate:"omitempty,gte=0"`

	// publish / development
	DependencyUpdatePatterns []string `flag:"dependencyUpdatePatterns"`
	RequiredEnvVars          []string `flag:"requiredEnvVars"`
	LinkWorkspacePackages    *bool    `flag:"linkWorkspacePackages"`
	TargetVersion            *string  `flag:"targetVersion"`

	// link / unlink. ScopeRoots arrives JSON-encoded as a string.
	ScopeRoots       *string  `flag:"scopeRoots"`
	Externals        []string `flag:"externals"`
	WorkspaceFile    *string  `flag:"workspaceFile"`
	CleanNodeModules *bool    `flag:"cleanNodeModules"`

	// tree
	Directory   *string  `flag:"directory"`
	Directories []string `flag:"directories"`
	StartFrom   *string  `flag:"startFrom"`
	Cmd         *string  `flag:"cmd"`
	Parallel    *bool    `flag:"parallel"`
	Continue    *bool    `flag:"continue"`

	// versions
	Subcommand *string `flag:"subcommand"`
}

var rawValidator = newRawValidator()

func newRawValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("flag"), ",", 2)[0]
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// DecodeRawInput validates a flat raw-input map and decodes it into a typed
// RawInput. Unknown keys, type mismatches, and out-of-range enum values fail
// with a SchemaValidationError naming the offending fields. Absent fields
// stay nil; nothing is defaulted or mutated here.
func DecodeRawInput(raw map[string]any) (*RawInput, error) {
	var ri RawInput
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &ri,
		TagName:     "flag",
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, schemaErrorFromDecode(err)
	}
	if err := rawValidator.Struct(&ri); err != nil {
		return nil, schemaErrorFromValidate(err)
	}
	return &ri, nil
}

// schemaErrorFromDecode maps a mapstructure failure onto the typed schema
// error. Unknown keys arrive as an "invalid keys: a, b" list; type
// mismatches quote the struct field, which is mapped back to its flag name.
func schemaErrorFromDecode(err error) error {
	msgs := []string{err.Error()}
	var joined interface{ Unwrap() []error }
	if stderrors.As(err, &joined) {
		msgs = msgs[:0]
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, e.Error())
		}
	}
	fields := map[string]struct{}{}
	for _, msg := range msgs {
		if idx := strings.Index(msg, "invalid keys: "); idx >= 0 {
			for _, key := range strings.Split(msg[idx+len("invalid keys: "):], ", ") {
				if key = strings.TrimSpace(key); key != "" {
					fields[key] = struct{}{}
				}
			}
			continue
		}
		if f := quotedToken(msg); f != "" {
			fields[flagNameForField(f)] = struct{}{}
		}
	}
	return &errors.SchemaValidationError{
		Fields: sortedKeys(fields),
		Detail: strings.Join(msgs, "; "),
	}
}

// rawFieldFlags maps RawInput struct field names onto their flag names for
// error reporting.
var rawFieldFlags = buildRawFieldFlags()

func buildRawFieldFlags() map[string]string {
	out := map[string]string{}
	t := reflect.TypeOf(RawInput{})
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		name := strings.SplitN(fld.Tag.Get("flag"), ",", 2)[0]
		if name != "" {
			out[fld.Name] = name
		}
	}
	return out
}

func flagNameForField(field string) string {
	// Errors may carry a dotted path; only the leaf names a RawInput field.
	if idx := strings.LastIndexByte(field, '.'); idx >= 0 {
		field = field[idx+1:]
	}
	if name, ok := rawFieldFlags[field]; ok {
		return name
	}
	return field
}

func schemaErrorFromValidate(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return &errors.SchemaValidationError{Detail: err.Error()}
	}
	fields := map[string]struct{}{}
	details := []string{}
	for _, fe := range verrs {
		fields[fe.Field()] = struct{}{}
		switch fe.Tag() {
		case "oneof":
			details = append(details, fe.Field()+" must be one of: "+fe.Param())
		default:
			details = append(details, fe.Field()+" failed "+fe.Tag()+" validation")
		}
	}
	return &errors.SchemaValidationError{
		Fields: sortedKeys(fields),
		Detail: strings.Join(details, "; "),
	}
}

// quotedToken returns the first single-quoted token in s, the convention
// mapstructure uses to name the offending key.
func quotedToken(s string) string {
	start := strings.IndexByte(s, '\'')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(s[start+1:], '\'')
	if end < 0 {
		return ""
	}
	return s[start+1 : start+1+end]
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
