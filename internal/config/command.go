package config

import (
	"github.com/raveheart1/drivkit/internal/errors"
)

// Command names accepted as the first positional token. Matching is
// case-sensitive with no normalization.
const (
	CommandCommit      = "commit"
	CommandAudioCommit = "audio-commit"
	CommandAudioReview = "audio-review"
	CommandRelease     = "release"
	CommandReview      = "review"
	CommandPublish     = "publish"
	CommandLink        = "link"
	CommandUnlink      = "unlink"
	CommandTree        = "tree"
	CommandDevelopment = "development"
	CommandVersions    = "versions"
	CommandPrecommit   = "precommit"

	// Meta states selected by flag rather than positional token. Both run
	// without a credential; init-config also bypasses the merge pipeline.
	CommandInitConfig  = "init-config"
	CommandCheckConfig = "check-config"
)

// AllowedCommands is the fixed dispatch allow-list, in display order.
var AllowedCommands = []string{
	CommandCommit,
	CommandAudioCommit,
	CommandAudioReview,
	CommandRelease,
	CommandReview,
	CommandPublish,
	CommandLink,
	CommandUnlink,
	CommandTree,
	CommandDevelopment,
	CommandVersions,
	CommandPrecommit,
}

// TreeBuiltIns are the commands the tree meta-command can run per workspace
// package, given as its second positional token.
var TreeBuiltIns = []string{
	CommandCommit,
	CommandPublish,
	CommandLink,
	CommandUnlink,
	CommandDevelopment,
	"updates",
	"pull",
}

// CommandIdentity is the resolved command for this invocation.
type CommandIdentity struct {
	// Name is an entry of AllowedCommands, or a meta state name.
	Name string
	// BuiltIn is the tree sub-command, set only for two-level tree dispatch.
	BuiltIn string
	// Package scopes tree/link/unlink to a single workspace package.
	Package string
}

// IsMeta reports whether the identity is a flag-selected meta state that
// bypasses the credential resolver.
func (id CommandIdentity) IsMeta() bool {
	return id.Name == CommandInitConfig || id.Name == CommandCheckConfig
}

// ValidateCommand checks name against the allow-list and returns it
// unchanged. Unknown names fail with an InvalidCommandError listing every
// allowed command.
func ValidateCommand(name string) (string, error) {
	for _, allowed := range AllowedCommands {
		if name == allowed {
			return name, nil
		}
	}
	return "", &errors.InvalidCommandError{Name: name, Allowed: AllowedCommands}
}

// ResolveTreeIdentity applies two-level tree dispatch to the positional
// tokens following "tree". A first token naming a supported built-in becomes
// the BuiltIn; the next token becomes the Package. A first token that is not
// a built-in is rejected so typos do not silently become package arguments.
func ResolveTreeIdentity(args []string) (CommandIdentity, error) {
	id := CommandIdentity{Name: CommandTree}
	if len(args) == 0 {
		return id, nil
	}
	if !isTreeBuiltIn(args[0]) {
		return CommandIdentity{}, &errors.InvalidCommandError{Name: args[0], Allowed: TreeBuiltIns}
	}
	id.BuiltIn = args[0]
	if len(args) > 1 {
		id.Package = args[1]
	}
	return id, nil
}

// ResolvePackageIdentity handles link/unlink, where a single positional
// token is a package-scoping argument. The literal "status" gets no special
// treatment; it is a package name like any other.
func ResolvePackageIdentity(name string, args []string) CommandIdentity {
	id := CommandIdentity{Name: name}
	if len(args) > 0 {
		id.Package = args[0]
	}
	return id
}

func isTreeBuiltIn(name string) bool {
	for _, b := range TreeBuiltIns {
		if name == b {
			return true
		}
	}
	return false
}
