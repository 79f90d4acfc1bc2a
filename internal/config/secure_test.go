package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/drivkit/internal/errors"
)

func TestResolveSecure(t *testing.T) {
	t.Parallel()

	env := map[string]string{CredentialEnvVar: "sk-test"}
	sec, err := ResolveSecure(func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, "sk-test", sec.OpenAIAPIKey)
}

func TestResolveSecureMissing(t *testing.T) {
	t.Parallel()

	tests := map[string]func(string) string{
		"absent": func(string) string { return "" },
		"empty":  func(k string) string { return map[string]string{CredentialEnvVar: ""}[k] },
	}

	for name, getenv := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ResolveSecure(getenv)
			var credErr *errors.MissingCredentialError
			require.ErrorAs(t, err, &credErr)
			assert.Equal(t, CredentialEnvVar, credErr.EnvVar)
			assert.Equal(t, "credential required; set OPENAI_API_KEY", credErr.Error())
		})
	}
}
