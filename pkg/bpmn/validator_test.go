package bpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(result *ValidationResult) []ErrorCode {
	out := make([]ErrorCode, len(result.Errors))
	for i, e := range result.Errors {
		out[i] = e.Code
	}
	return out
}

func TestValidate_EmptyXML(t *testing.T) {
	result := Validate("   ")
	assert.False(t, result.Valid)
	assert.Contains(t, codes(result), CodeEmptyXML)
}

func TestValidate_ParseError(t *testing.T) {
	result := Validate("<unclosed")
	assert.False(t, result.Valid)
	assert.Contains(t, codes(result), CodeXMLParseError)
}

func TestValidate_MissingProcess(t *testing.T) {
	result := Validate(`<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"/>`)
	assert.False(t, result.Valid)
	assert.Contains(t, codes(result), CodeSchemaError)
}

func TestValidate_DuplicateIDs(t *testing.T) {
	result := Validate(`<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="N"/>
    <endEvent id="N"/>
    <sequenceFlow id="F" sourceRef="N" targetRef="N"/>
  </process>
</definitions>`)
	assert.False(t, result.Valid)
	assert.Contains(t, codes(result), CodeDuplicateID)
}

func TestValidate_DanglingFlowReference(t *testing.T) {
	result := Validate(`<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Ghost"/>
  </process>
</definitions>`)
	assert.False(t, result.Valid)
	assert.Contains(t, codes(result), CodeInvalidReference)
}

func TestValidate_FlowMissingEndpoints(t *testing.T) {
	result := Validate(`<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1"/>
  </process>
</definitions>`)
	assert.False(t, result.Valid)
	assert.Contains(t, codes(result), CodeInvalidFlow)
}

func TestValidate_MalformedExtension(t *testing.T) {
	result := Validate(`<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
  xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="P">
    <startEvent id="Start_1"/>
    <serviceTask id="Svc_1">
      <extensionElements>
        <pythmata:serviceTaskConfig/>
      </extensionElements>
    </serviceTask>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Svc_1"/>
  </process>
</definitions>`)
	assert.False(t, result.Valid)
	assert.Contains(t, codes(result), CodeExtensionError)
}

func TestValidate_ValidDocument(t *testing.T) {
	result := Validate(simpleLinearXML)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestHasCycle(t *testing.T) {
	cyclic := `<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <task id="A"/>
    <task id="B"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="A"/>
    <sequenceFlow id="F_2" sourceRef="A" targetRef="B"/>
    <sequenceFlow id="F_3" sourceRef="B" targetRef="A"/>
  </process>
</definitions>`
	graph, err := Parse(cyclic)
	require.NoError(t, err)
	found, at := graph.HasCycle()
	assert.True(t, found)
	assert.Equal(t, "A", at)

	acyclic, err := Parse(simpleLinearXML)
	require.NoError(t, err)
	found, _ = acyclic.HasCycle()
	assert.False(t, found)
}
