package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/gamemath/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApplicationConfigDefaults(t *testing.T) {
	config, err := ParseApplicationConfig([]byte(`iterations = 500`))
	require.NoError(t, err)

	assert.Equal(t, 500, config.Iterations)
	assert.Equal(t, DefaultRounds, config.Rounds)
	assert.Equal(t, DefaultWarmUp, config.WarmUp)
	assert.Equal(t, core.InfoLevel, config.Level())
	assert.True(t, config.Matches("anything"))
}

func TestParseApplicationConfig(t *testing.T) {
	config, err := ParseApplicationConfig([]byte(`
name = "nightly"
iterations = 200
warm_up = 3
rounds = 7
filter = "^Matrix"
log_level = "debug"
`))
	require.NoError(t, err)

	assert.Equal(t, "nightly", config.Name)
	assert.Equal(t, 3, config.WarmUp)
	assert.Equal(t, 7, config.Rounds)
	assert.Equal(t, core.DebugLevel, config.Level())
	assert.True(t, config.Matches("MatrixInvert"))
	assert.False(t, config.Matches("Vector3Add"))
}

func TestParseApplicationConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero iterations", `iterations = 0`},
		{"negative warm up", `warm_up = -1`},
		{"zero rounds", `rounds = 0`},
		{"bad filter", `filter = "("`},
		{"bad level", `log_level = "loud"`},
		{"unknown key", `threads = 4`},
		{"wrong type", `iterations = "many"`},
		{"malformed", `iterations =`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseApplicationConfig([]byte(tt.data))
			assert.ErrorIs(t, err, core.ErrInvalidConfig)
		})
	}
}

func TestLoadApplicationConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.toml")
	require.NoError(t, os.WriteFile(path, []byte("rounds = 2\n"), 0o644))

	config, err := LoadApplicationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, config.Rounds)

	_, err = LoadApplicationConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
