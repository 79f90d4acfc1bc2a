package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/drivkit/internal/errors"
)

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	name, err := ValidateCommand("commit")
	require.NoError(t, err)
	assert.Equal(t, "commit", name)
}

func TestValidateCommandCaseSensitive(t *testing.T) {
	t.Parallel()

	_, err := ValidateCommand("COMMIT")
	var cmdErr *errors.InvalidCommandError
	require.ErrorAs(t, err, &cmdErr)
}

func TestValidateCommandUnknownListsAllowList(t *testing.T) {
	t.Parallel()

	_, err := ValidateCommand("nonsense")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid command: nonsense, allowed commands: ")
	for _, allowed := range AllowedCommands {
		assert.Contains(t, err.Error(), allowed)
	}
}

func TestResolveTreeIdentity(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args    []string
		want    CommandIdentity
		wantErr bool
	}{
		"bare tree": {
			args: nil,
			want: CommandIdentity{Name: CommandTree},
		},
		"built-in": {
			args: []string{"publish"},
			want: CommandIdentity{Name: CommandTree, BuiltIn: "publish"},
		},
		"built-in with package": {
			args: []string{"commit", "@myorg/core"},
			want: CommandIdentity{Name: CommandTree, BuiltIn: "commit", Package: "@myorg/core"},
		},
		"updates built-in": {
			args: []string{"updates"},
			want: CommandIdentity{Name: CommandTree, BuiltIn: "updates"},
		},
		"unsupported built-in": {
			args:    []string{"release"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			id, err := ResolveTreeIdentity(tt.args)
			if tt.wantErr {
				var cmdErr *errors.InvalidCommandError
				require.ErrorAs(t, err, &cmdErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestResolvePackageIdentity(t *testing.T) {
	t.Parallel()

	id := ResolvePackageIdentity(CommandUnlink, []string{"status"})
	assert.Equal(t, CommandIdentity{Name: CommandUnlink, Package: "status"}, id)

	id = ResolvePackageIdentity(CommandLink, nil)
	assert.Equal(t, CommandIdentity{Name: CommandLink}, id)
}

func TestIsMeta(t *testing.T) {
	t.Parallel()

	assert.True(t, CommandIdentity{Name: CommandInitConfig}.IsMeta())
	assert.True(t, CommandIdentity{Name: CommandCheckConfig}.IsMeta())
	assert.False(t, CommandIdentity{Name: CommandCommit}.IsMeta())
}
