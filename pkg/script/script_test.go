package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ResultValue(t *testing.T) {
	env, err := NewEnv()
	require.NoError(t, err)

	result, err := env.Run(`vars["a"] + vars["b"]`, map[string]any{"a": int64(2), "b": int64(3)}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Value)
	assert.Empty(t, result.SetVars)
}

func TestRun_SetVariable(t *testing.T) {
	env, err := NewEnv()
	require.NoError(t, err)

	result, err := env.Run(`set_variable("approved", vars["amount"] < 1000.0)`, map[string]any{"amount": 500.0}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, true, result.SetVars["approved"])
}

func TestRun_ItemAndIndex(t *testing.T) {
	env, err := NewEnv()
	require.NoError(t, err)

	result, err := env.Run(`set_variable("seen", item)`, map[string]any{}, "HR", 2)
	require.NoError(t, err)
	assert.Equal(t, "HR", result.SetVars["seen"])

	result, err = env.Run(`index + 1`, map[string]any{}, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Value)
}

func TestRun_CompileError(t *testing.T) {
	env, err := NewEnv()
	require.NoError(t, err)

	_, err = env.Run(`this is not CEL ((`, map[string]any{}, nil, 0)
	require.Error(t, err)
}

func TestRun_NoHostEscape(t *testing.T) {
	env, err := NewEnv()
	require.NoError(t, err)

	// The sandbox exposes no I/O or reflection surface; unknown functions
	// fail at compile time.
	_, err = env.Run(`os.exit(1)`, map[string]any{}, nil, 0)
	require.Error(t, err)
}

func TestRun_IndependentCallsDoNotShareAssignments(t *testing.T) {
	env, err := NewEnv()
	require.NoError(t, err)

	first, err := env.Run(`set_variable("x", 1)`, map[string]any{}, nil, 0)
	require.NoError(t, err)
	second, err := env.Run(`2 > 1`, map[string]any{}, nil, 0)
	require.NoError(t, err)

	assert.Len(t, first.SetVars, 1)
	assert.Empty(t, second.SetVars)
}
