package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "minimax.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "tictactoe", config.Game)
	assert.Equal(t, FirstHuman, config.First)
	assert.Empty(t, config.Difficulty)
	assert.Equal(t, uint64(0), config.Seed)
	assert.False(t, config.NoColor)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
game: Othello
difficulty: Medium
first: AI
seed: 42
no-color: true
`)
	config := MustLoad(path)
	assert.Equal(t, "othello", config.Game)
	assert.Equal(t, "medium", config.Difficulty)
	assert.Equal(t, FirstAI, config.First)
	assert.Equal(t, uint64(42), config.Seed)
	assert.True(t, config.NoColor)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "game: othello\ndifficulty: hard\n")
	t.Setenv("MINIMAX_DIFFICULTY", "easy")
	t.Setenv("MINIMAX_AI_CONFIG", "random")
	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "othello", config.Game)
	assert.Equal(t, "easy", config.Difficulty)
	assert.Equal(t, "random", config.AIConfig)
}

func TestInvalid(t *testing.T) {
	for _, contents := range []string{
		"game: chess\n",
		"game: tictactoe\ndifficulty: medium\n",
		"first: nobody\n",
	} {
		_, err := Load(writeConfig(t, contents))
		require.Errorf(t, err, "configuration %q", contents)
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Panics(t, func() { MustLoad(writeConfig(t, "game: chess\n")) })
}

func TestUsage(t *testing.T) {
	assert.Contains(t, Usage(), "MINIMAX_GAME")
}
