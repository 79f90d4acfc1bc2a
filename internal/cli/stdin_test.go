package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPipedFrom(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input      string
		isTerminal bool
		want       *string
	}{
		"terminal yields nothing": {
			input:      "typed later",
			isTerminal: true,
			want:       nil,
		},
		"empty pipe yields nothing": {
			input: "",
			want:  nil,
		},
		"piped text": {
			input: "fix the flaky test\n",
			want:  ptr("fix the flaky test\n"),
		},
		"whitespace-only still counts": {
			input: "  \n",
			want:  ptr("  \n"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := readPipedFrom(strings.NewReader(tt.input), tt.isTerminal)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func ptr(s string) *string { return &s }
