package config

import (
	"os"

	"github.com/raveheart1/drivkit/internal/errors"
)

// CredentialEnvVar names the sole required credential. It is read only from
// the environment, never from config files or CLI flags, so it cannot end up
// persisted or in shell history.
const CredentialEnvVar = "OPENAI_API_KEY"

// VCSCredentialEnvVar names the optional VCS-hosting credential. Commands
// that need it validate it themselves; the resolver does not require it.
const VCSCredentialEnvVar = "GITHUB_TOKEN"

// ResolveSecure extracts the required credential from the environment. An
// absent or empty value fails with a MissingCredentialError. The meta states
// (init-config, check-config) bypass this resolver entirely; its contract is
// never relaxed.
//
// getenv is injectable for tests; nil uses os.Getenv.
func ResolveSecure(getenv func(string) string) (*SecureConfig, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	key := getenv(CredentialEnvVar)
	if key == "" {
		return nil, &errors.MissingCredentialError{EnvVar: CredentialEnvVar}
	}
	return &SecureConfig{OpenAIAPIKey: key}, nil
}
