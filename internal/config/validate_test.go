package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAMLSyntaxFromBytes(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		data    string
		wantErr bool
	}{
		"valid":      {data: "model: gpt-4o\ncommit:\n  cached: true\n"},
		"empty":      {data: ""},
		"whitespace": {data: "\n  \n"},
		"unclosed":   {data: "model: [unclosed\n", wantErr: true},
		"bad indent": {data: "commit:\n cached: true\n  add: true\n", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := ValidateYAMLSyntaxFromBytes([]byte(tt.data), "config.yaml")
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "config.yaml", verr.FilePath)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateYAMLSyntaxMissingFileIsFine(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateYAMLSyntax("/no/such/config.yaml"))
}
