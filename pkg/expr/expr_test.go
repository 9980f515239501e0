package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
)

func TestEvaluate_Comparisons(t *testing.T) {
	ctx := Context{"amount": float64(500), "name": "alice", "active": true}

	tests := []struct {
		expr string
		want bool
	}{
		{"${amount > 1000}", false},
		{"${amount > 100}", true},
		{"${amount >= 500}", true},
		{"${amount < 500}", false},
		{"${amount <= 500}", true},
		{"${amount == 500}", true},
		{"${amount != 500}", false},
		{"${name == 'alice'}", true},
		{"${name == \"bob\"}", false},
		{"${active}", true},
		{"${!active}", false},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_BooleanOperators(t *testing.T) {
	ctx := Context{"a": float64(1), "b": float64(2)}

	tests := []struct {
		expr string
		want bool
	}{
		{"${a == 1 && b == 2}", true},
		{"${a == 1 && b == 3}", false},
		{"${a == 2 || b == 2}", true},
		{"${a == 2 || b == 3}", false},
		{"${(a == 2 || b == 2) && a == 1}", true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_NullSemantics(t *testing.T) {
	ctx := Context{"present": float64(1), "obj": map[string]any{"inner": nil}}

	// Absent identifier resolves to null rather than raising.
	got, err := Evaluate("${missing == null}", ctx)
	require.NoError(t, err)
	assert.True(t, got)

	// Property access on null is null-safe.
	got, err = Evaluate("${missing.deeper == null}", ctx)
	require.NoError(t, err)
	assert.True(t, got)

	// Any operator other than ==/!= on null returns false.
	got, err = Evaluate("${missing > 1}", ctx)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = Evaluate("${present != null}", ctx)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEvaluate_PropertyAndIndexAccess(t *testing.T) {
	ctx := Context{
		"order": map[string]any{
			"total": float64(42),
			"items": []any{"first", "second"},
		},
	}

	got, err := Evaluate("${order.total == 42}", ctx)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Evaluate("${order.items[1] == 'second'}", ctx)
	require.NoError(t, err)
	assert.True(t, got)

	// Out-of-bounds index is an evaluation error, not null.
	_, err = Evaluate("${order.items[5] == null}", ctx)
	require.Error(t, err)
	assert.True(t, engineerr.As(err, engineerr.KindExpression))
}

func TestEvaluate_NumericStringCoercion(t *testing.T) {
	ctx := Context{"count": "7", "limit": float64(10)}

	got, err := Evaluate("${limit > count}", ctx)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Evaluate("${count == 7}", ctx)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEvaluate_IntegerWidening(t *testing.T) {
	// In-process writes can leave int/int64 in the context; JSON decode
	// leaves float64. All compare alike.
	ctx := Context{"i": 5, "i64": int64(6)}

	got, err := Evaluate("${i < i64}", ctx)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Evaluate("${i == 5}", ctx)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEvaluate_SyntaxErrors(t *testing.T) {
	tests := []string{
		"amount > 1000",      // missing ${} wrapper
		"${amount >}",        // dangling operator
		"${(amount > 1}",     // unbalanced paren
		"${amount > 1 extra}", // trailing tokens
		"${'unterminated}",   // bad string literal
		"${amount # 1}",      // invalid character
	}
	for _, e := range tests {
		t.Run(e, func(t *testing.T) {
			_, err := Evaluate(e, Context{"amount": float64(1)})
			require.Error(t, err)
			assert.True(t, engineerr.As(err, engineerr.KindExpression))
		})
	}
}

func TestEvaluate_Truthiness(t *testing.T) {
	tests := []struct {
		expr string
		ctx  Context
		want bool
	}{
		{"${s}", Context{"s": ""}, false},
		{"${s}", Context{"s": "x"}, true},
		{"${n}", Context{"n": float64(0)}, false},
		{"${list}", Context{"list": []any{}}, false},
		{"${list}", Context{"list": []any{1}}, true},
	}
	for _, tt := range tests {
		got, err := Evaluate(tt.expr, tt.ctx)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.expr)
	}
}
