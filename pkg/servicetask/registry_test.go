package servicetask

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	r := NewRegistry()
	r.Register("echo", TaskFunc(func(_ context.Context, taskCtx Context, properties map[string]string) (map[string]any, error) {
		return map[string]any{"instance": taskCtx.InstanceID, "prop": properties["key"]}, nil
	}))

	task, err := r.Resolve("echo")
	require.NoError(t, err)

	result, err := task.Execute(context.Background(), Context{InstanceID: "i-1"}, map[string]string{"key": "value"})
	require.NoError(t, err)
	assert.Equal(t, "i-1", result["instance"])
	assert.Equal(t, "value", result["prop"])
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	_, err := NewRegistry().Resolve("nope")
	require.Error(t, err)
	assert.True(t, engineerr.As(err, engineerr.KindExecutor))
}

func TestExtractOutput(t *testing.T) {
	result := map[string]any{
		"body": map[string]any{
			"status": float64(200),
			"items":  []any{map[string]any{"id": "first"}, map[string]any{"id": "second"}},
		},
	}

	out, err := ExtractOutput(result, map[string]string{
		"http_status": "body.status",
		"second_id":   "body.items[1].id",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(200), out["http_status"])
	assert.Equal(t, "second", out["second_id"])
}

func TestExtractOutput_Errors(t *testing.T) {
	result := map[string]any{"list": []any{1}}

	_, err := ExtractOutput(result, map[string]string{"v": "missing.path"})
	assert.Error(t, err)

	_, err = ExtractOutput(result, map[string]string{"v": "list[5]"})
	assert.Error(t, err)

	_, err = ExtractOutput(result, map[string]string{"v": "list[bad]"})
	assert.Error(t, err)
}
