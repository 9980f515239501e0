package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenMarshalRoundTrip(t *testing.T) {
	tok := NewToken("inst-1", "Task_1")
	tok.ScopeID = "Sub_1/A_instance_2"
	tok.Data["item"] = "HR"

	b, err := tok.Marshal()
	require.NoError(t, err)

	back, err := UnmarshalToken(b)
	require.NoError(t, err)
	assert.Equal(t, tok.ID, back.ID)
	assert.Equal(t, "inst-1", back.InstanceID)
	assert.Equal(t, "Task_1", back.NodeID)
	assert.Equal(t, TokenActive, back.State)
	assert.Equal(t, "Sub_1/A_instance_2", back.ScopeID)
	assert.Equal(t, "HR", back.Data["item"])
}

func TestClone_IndependentData(t *testing.T) {
	tok := NewToken("inst-1", "Task_1")
	tok.Data["k"] = "v"

	c := tok.Clone()
	c.Data["k"] = "changed"

	assert.Equal(t, "v", tok.Data["k"])
	assert.NotEqual(t, tok.ID, c.ID)
	assert.Equal(t, tok.InstanceID, c.InstanceID)
}

func TestScopeHelpers(t *testing.T) {
	assert.Equal(t, "outer", ChildScope("", "outer"))
	assert.Equal(t, "outer/inner", ChildScope("outer", "inner"))

	assert.Equal(t, "", ParentScope("outer"))
	assert.Equal(t, "outer", ParentScope("outer/inner"))

	assert.Equal(t, "A_instance_2", MultiInstanceSegment("A", 2))
}

func TestScopeChain(t *testing.T) {
	assert.Equal(t, []string{""}, ScopeChain(""))
	assert.Equal(t, []string{"a", ""}, ScopeChain("a"))
	assert.Equal(t, []string{"a/b/c", "a/b", "a", ""}, ScopeChain("a/b/c"))
}
