package cli

import (
	stderrors "errors"

	"github.com/raveheart1/drivkit/internal/errors"
)

// Exit codes for the drivkit CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitResolutionFailed indicates configuration resolution failed.
	ExitResolutionFailed = 1

	// ExitInvalidArguments indicates invalid command arguments or raw input.
	ExitInvalidArguments = 2

	// ExitMissingCredential indicates a required credential was absent.
	ExitMissingCredential = 3
)

// ExitCode maps an Execute error onto the exit-code table. The process
// boundary (cmd/drivkit) calls os.Exit with the result; nothing inside the
// CLI terminates the process directly.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var schemaErr *errors.SchemaValidationError
	var cmdErr *errors.InvalidCommandError
	var jsonErr *errors.InvalidJSONError
	var credErr *errors.MissingCredentialError
	switch {
	case stderrors.As(err, &schemaErr),
		stderrors.As(err, &cmdErr),
		stderrors.As(err, &jsonErr):
		return ExitInvalidArguments
	case stderrors.As(err, &credErr):
		return ExitMissingCredential
	default:
		return ExitResolutionFailed
	}
}

// toCLIError wraps a typed pipeline error into a categorized display error
// with remediation guidance.
func toCLIError(err error) *errors.CLIError {
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		return cliErr
	}
	var schemaErr *errors.SchemaValidationError
	var cmdErr *errors.InvalidCommandError
	var jsonErr *errors.InvalidJSONError
	var credErr *errors.MissingCredentialError
	var dirErr *errors.ConfigDirectoryError
	switch {
	case stderrors.As(err, &schemaErr):
		return errors.NewArgumentError(err.Error(),
			"Run 'drivkit <command> --help' to see the accepted flags and values")
	case stderrors.As(err, &cmdErr):
		return errors.NewArgumentError(err.Error(),
			"Run 'drivkit --help' to list the available commands")
	case stderrors.As(err, &jsonErr):
		return errors.NewArgumentError(err.Error(),
			`Pass scope roots as a JSON object, e.g. --scope-roots '{"@myorg":"../myorg"}'`)
	case stderrors.As(err, &credErr):
		return errors.NewCredentialError(err.Error(),
			"Export the credential in your shell profile, not in config files")
	case stderrors.As(err, &dirErr):
		return errors.NewConfigError(err.Error(),
			"Point --config-dir at a writable directory")
	default:
		return errors.Wrap(err, errors.Configuration)
	}
}
