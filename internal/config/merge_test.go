package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLayersPrecedence(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{"model": "default", "verbose": false}
	file := map[string]any{"model": "from-file"}
	cli := map[string]any{"model": "from-cli"}

	merged := MergeLayers(defaults, file, cli)

	assert.Equal(t, "from-cli", merged["model"])
	// Untouched default survives.
	assert.Equal(t, false, merged["verbose"])
}

func TestMergeLayersNilNeverErases(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{"model": "default"}
	file := map[string]any{"model": nil}

	merged := MergeLayers(defaults, file)
	assert.Equal(t, "default", merged["model"])
}

func TestMergeLayersSubObjectsMergeFieldByField(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{
		"commit": map[string]any{"add": false, "cached": false, "messageLimit": 10},
	}
	file := map[string]any{
		"commit": map[string]any{"cached": true},
	}
	cli := map[string]any{
		"commit": map[string]any{"add": true},
	}

	merged := MergeLayers(defaults, file, cli)

	commit := merged["commit"].(map[string]any)
	assert.Equal(t, true, commit["add"])
	assert.Equal(t, true, commit["cached"])
	// Sub-objects are merged, never replaced wholesale.
	assert.Equal(t, 10, commit["messageLimit"])
}

func TestMergeLayersScopeRootsKeyWise(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{
		"link": map[string]any{"scopeRoots": map[string]any{}},
	}
	file := map[string]any{
		"link": map[string]any{"scopeRoots": map[string]any{"@a": "../a", "@b": "../b"}},
	}
	cli := map[string]any{
		"link": map[string]any{"scopeRoots": map[string]any{"@b": "../b-cli", "@c": "../c"}},
	}

	merged := MergeLayers(defaults, file, cli)

	roots := merged["link"].(map[string]any)["scopeRoots"].(map[string]any)
	assert.Equal(t, "../a", roots["@a"])
	assert.Equal(t, "../b-cli", roots["@b"])
	assert.Equal(t, "../c", roots["@c"])
}

func TestMergeLayersIdempotent(t *testing.T) {
	t.Parallel()

	resolved := MergeLayers(GetDefaults(), map[string]any{"model": "m"})
	again := MergeLayers(resolved, resolved, resolved)
	assert.Equal(t, resolved, again)
}

func TestMergeLayersDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{
		"commit": map[string]any{"add": false},
	}
	cli := map[string]any{
		"commit": map[string]any{"add": true},
	}

	_ = MergeLayers(defaults, cli)
	assert.Equal(t, false, defaults["commit"].(map[string]any)["add"])
}

func TestMergeLayersSequencesOverride(t *testing.T) {
	t.Parallel()

	defaults := map[string]any{"excludedPatterns": []string{"node_modules", "dist"}}
	cli := map[string]any{"excludedPatterns": []string{"coverage"}}

	merged := MergeLayers(defaults, cli)
	// Override-only, never concatenated.
	assert.Equal(t, []string{"coverage"}, merged["excludedPatterns"])
}

func TestUnmarshalPopulatesEverySection(t *testing.T) {
	t.Parallel()

	cfg, err := Unmarshal(GetDefaults())
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, 10, cfg.Commit.MessageLimit)
	assert.Equal(t, "main", cfg.Release.To)
	assert.Equal(t, "squash", cfg.Publish.MergeMethod)
	assert.Equal(t, "pnpm-workspace.yaml", cfg.Unlink.WorkspaceFile)
	assert.NotNil(t, cfg.Link.ScopeRoots)
	assert.Equal(t, DefaultExcludedPatterns, cfg.ExcludedPatterns)
	assert.True(t, cfg.Review.IncludeCommitHistory)
	assert.Equal(t, DefaultTemperature, cfg.AudioCommit.Temperature)
}
