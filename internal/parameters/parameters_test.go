package parameters

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("minimax, max_depth=5,randomness = 0.2,,expr=a=b")
	assert.Equal(t, Params{
		"minimax":    "",
		"max_depth":  "5",
		"randomness": "0.2",
		"expr":       "a=b",
	}, params)
	assert.Equal(t, []string{"expr", "max_depth", "minimax", "randomness"}, params.Keys())
	assert.Empty(t, NewFromConfigString(""))
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("minimax,max_depth=5,randomness=0.2,seed=18446744073709551615,bad=x")

	isMinimax, err := PopParamOr(params, "minimax", false)
	require.NoError(t, err)
	assert.True(t, isMinimax)

	depth, err := PopParamOr(params, "max_depth", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, depth)

	randomness, err := PopParamOr(params, "randomness", float32(0))
	require.NoError(t, err)
	assert.Equal(t, float32(0.2), randomness)

	seed, err := PopParamOr(params, "seed", uint64(0))
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), seed)

	missing, err := PopParamOr(params, "missing", 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, missing)

	_, err = PopParamOr(params, "bad", 1)
	require.Error(t, err)
	// Failed parameters are not popped.
	require.Error(t, CheckAllUsed(params))
	_, err = PopParamOr(params, "bad", "")
	require.NoError(t, err)
	require.NoError(t, CheckAllUsed(params))
}

func TestBoolParams(t *testing.T) {
	params := NewFromConfigString("a,b=false,c=1,d=maybe")
	for key, want := range map[string]bool{"a": true, "b": false, "c": true, "e": false} {
		got, err := GetParamOr(params, key, false)
		require.NoError(t, err)
		assert.Equalf(t, want, got, "key %q", key)
	}
	_, err := GetParamOr(params, "d", false)
	require.Error(t, err)
}
