package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableValueCoerce(t *testing.T) {
	// JSON decoding hands integers back as float64; Coerce restores the
	// declared type without changing the value.
	v, err := VariableValue{Type: ValueTypeInteger, Value: float64(42)}.Coerce()
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Value)

	v, err = VariableValue{Type: ValueTypeFloat, Value: 3}.Coerce()
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.Value)

	v, err = VariableValue{Type: ValueTypeBoolean, Value: true}.Coerce()
	require.NoError(t, err)
	assert.Equal(t, true, v.Value)

	_, err = VariableValue{Type: ValueTypeBoolean, Value: "true"}.Coerce()
	assert.Error(t, err, "no silent cross-type coercion")

	_, err = VariableValue{Type: ValueTypeInteger, Value: 1.5}.Coerce()
	assert.Error(t, err)

	_, err = VariableValue{Type: ValueTypeString, Value: 7}.Coerce()
	assert.Error(t, err)

	_, err = VariableValue{Type: "mystery", Value: 1}.Coerce()
	assert.Error(t, err)

	// json admits any shape.
	_, err = VariableValue{Type: ValueTypeJSON, Value: map[string]any{"k": []any{1, 2}}}.Coerce()
	assert.NoError(t, err)
}

func TestScopedName(t *testing.T) {
	assert.Equal(t, "amount", ScopedName("", "amount"))
	assert.Equal(t, "Sub_1:amount", ScopedName("Sub_1", "amount"))
}
