package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/pythmata/ent/activitylog"
	"github.com/codeready-toolchain/pythmata/ent/processinstance"
	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
	"github.com/codeready-toolchain/pythmata/pkg/models"
)

const linearXML = `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <task id="Task_1"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Task_1"/>
    <sequenceFlow id="F_2" sourceRef="Task_1" targetRef="End_1"/>
  </process>
</definitions>`

// A simple linear flow: the token walks Start_1 → Task_1 → End_1, the
// instance completes, and the audit trail records every hop.
func TestLinearFlow(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-linear", linearXML)

	h.run(t, "inst-s1", "def-linear", nil)
	h.awaitStatus(t, "inst-s1", processinstance.StatusCOMPLETED)

	assert.Empty(t, h.liveTokens(t, "inst-s1"), "completed instance holds zero live tokens")

	types := h.activityTypes(t, "inst-s1")
	assert.Contains(t, types, "INSTANCE_CREATED")
	assert.Contains(t, types, "INSTANCE_COMPLETED")

	completed := h.nodeLogs(t, "inst-s1", activitylog.ActivityTypeNODE_COMPLETED)
	assert.Equal(t, []string{"Start_1", "Task_1", "End_1"}, completed)
}

// Delivering the same (instance_id, definition_id) twice
// creates at most one instance row and one initial token.
func TestIdempotentStart(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-linear", linearXML)

	ctx := context.Background()
	_, err := h.Instances.CreateInstance(ctx, "inst-dup", "def-linear", nil, "")
	require.NoError(t, err)
	_, err = h.Instances.CreateInstance(ctx, "inst-dup", "def-linear", nil, "")
	require.NoError(t, err, "duplicate delivery must be idempotent, not an error")

	tokens := h.liveTokens(t, "inst-dup")
	assert.Len(t, tokens, 1, "second delivery must not plant a second token")

	count, err := h.DB.ProcessInstance.Query().Where(processinstance.ID("inst-dup")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// Exclusive gateway with a default flow: amount=500 fails ${amount > 1000},
// so the default flow wins.
func TestExclusiveGatewayDefault(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-xor", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <exclusiveGateway id="GW" default="F_B"/>
    <task id="BigOrder"/>
    <task id="SmallOrder"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_0" sourceRef="Start_1" targetRef="GW"/>
    <sequenceFlow id="F_A" sourceRef="GW" targetRef="BigOrder">
      <conditionExpression>${amount &gt; 1000}</conditionExpression>
    </sequenceFlow>
    <sequenceFlow id="F_B" sourceRef="GW" targetRef="SmallOrder"/>
    <sequenceFlow id="F_1" sourceRef="BigOrder" targetRef="End_1"/>
    <sequenceFlow id="F_2" sourceRef="SmallOrder" targetRef="End_1"/>
  </process>
</definitions>`)

	h.run(t, "inst-s2", "def-xor", map[string]models.VariableValue{"amount": intVar(500)})
	h.awaitStatus(t, "inst-s2", processinstance.StatusCOMPLETED)

	completed := h.nodeLogs(t, "inst-s2", activitylog.ActivityTypeNODE_COMPLETED)
	assert.Contains(t, completed, "SmallOrder")
	assert.NotContains(t, completed, "BigOrder")
}

// The condition branch wins when it evaluates truthy.
func TestExclusiveGatewayCondition(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-xor", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <exclusiveGateway id="GW" default="F_B"/>
    <task id="BigOrder"/>
    <task id="SmallOrder"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_0" sourceRef="Start_1" targetRef="GW"/>
    <sequenceFlow id="F_A" sourceRef="GW" targetRef="BigOrder">
      <conditionExpression>${amount &gt; 1000}</conditionExpression>
    </sequenceFlow>
    <sequenceFlow id="F_B" sourceRef="GW" targetRef="SmallOrder"/>
    <sequenceFlow id="F_1" sourceRef="BigOrder" targetRef="End_1"/>
    <sequenceFlow id="F_2" sourceRef="SmallOrder" targetRef="End_1"/>
  </process>
</definitions>`)

	h.run(t, "inst-s2b", "def-xor", map[string]models.VariableValue{"amount": intVar(5000)})
	h.awaitStatus(t, "inst-s2b", processinstance.StatusCOMPLETED)

	completed := h.nodeLogs(t, "inst-s2b", activitylog.ActivityTypeNODE_COMPLETED)
	assert.Contains(t, completed, "BigOrder")
	assert.NotContains(t, completed, "SmallOrder")
}

// Parallel split/join: the join forwards exactly one token and the
// instance completes exactly once.
func TestParallelSplitJoin(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-par", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <parallelGateway id="Split"/>
    <task id="Task_A"/>
    <task id="Task_B"/>
    <parallelGateway id="Join"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_0" sourceRef="Start_1" targetRef="Split"/>
    <sequenceFlow id="F_A" sourceRef="Split" targetRef="Task_A"/>
    <sequenceFlow id="F_B" sourceRef="Split" targetRef="Task_B"/>
    <sequenceFlow id="F_JA" sourceRef="Task_A" targetRef="Join"/>
    <sequenceFlow id="F_JB" sourceRef="Task_B" targetRef="Join"/>
    <sequenceFlow id="F_E" sourceRef="Join" targetRef="End_1"/>
  </process>
</definitions>`)

	h.run(t, "inst-s3", "def-par", nil)
	h.awaitStatus(t, "inst-s3", processinstance.StatusCOMPLETED)

	assert.Empty(t, h.liveTokens(t, "inst-s3"))

	completed := h.nodeLogs(t, "inst-s3", activitylog.ActivityTypeNODE_COMPLETED)
	assert.Contains(t, completed, "Task_A")
	assert.Contains(t, completed, "Task_B")

	// One INSTANCE_COMPLETED row, and the end event fires exactly once —
	// the join never forwards more than one token per matched split.
	var instanceCompleted, endCompleted int
	for _, ty := range h.activityTypes(t, "inst-s3") {
		if ty == "INSTANCE_COMPLETED" {
			instanceCompleted++
		}
	}
	for _, n := range completed {
		if n == "End_1" {
			endCompleted++
		}
	}
	assert.Equal(t, 1, instanceCompleted)
	assert.Equal(t, 1, endCompleted)
}

// Parallel multi-instance over ["HR","IT","Finance"]: three scoped
// children run, then one successor token continues with the per-item data
// stripped.
func TestParallelMultiInstance(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-mi", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="P">
    <startEvent id="Start_1"/>
    <scriptTask id="A">
      <multiInstanceLoopCharacteristics collection="departments"/>
      <extensionElements>
        <pythmata:scriptConfig>
          <pythmata:scriptContent>set_variable("seen_" + string(index), item)</pythmata:scriptContent>
        </pythmata:scriptConfig>
      </extensionElements>
    </scriptTask>
    <task id="Task_1"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="A"/>
    <sequenceFlow id="F_2" sourceRef="A" targetRef="Task_1"/>
    <sequenceFlow id="F_3" sourceRef="Task_1" targetRef="End_1"/>
  </process>
</definitions>`)

	departments := jsonVar([]any{"HR", "IT", "Finance"})
	h.run(t, "inst-s4", "def-mi", map[string]models.VariableValue{"departments": departments})
	h.awaitStatus(t, "inst-s4", processinstance.StatusCOMPLETED)

	assert.Empty(t, h.liveTokens(t, "inst-s4"))

	// Each of the three children ran its body in its own scope.
	ctx := context.Background()
	for i, dept := range []string{"HR", "IT", "Finance"} {
		name := "seen_" + string(rune('0'+i))
		v, ok, err := h.Fast.ResolveVariable(ctx, "inst-s4", models.MultiInstanceSegment("A", i), name)
		// Fast-store state is cleared on completion; fall back to the durable row.
		if err == nil && !ok {
			vars, derr := h.Instances.GetInstanceVariables(ctx, "inst-s4", nil)
			require.NoError(t, derr)
			found := false
			for _, row := range vars {
				if row.Name == name {
					found = true
					assert.Equal(t, dept, row.ValueData["value"])
				}
			}
			assert.True(t, found, "variable %s not recorded", name)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, dept, v.Value)
	}

	completed := h.nodeLogs(t, "inst-s4", activitylog.ActivityTypeNODE_COMPLETED)
	assert.Contains(t, completed, "A")
	assert.Contains(t, completed, "Task_1")
}

// Multi-instance edge case — an empty collection skips the activity and
// emits the successor immediately.
func TestMultiInstanceEmptyCollection(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-mi-empty", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <task id="A">
      <multiInstanceLoopCharacteristics collection="departments"/>
    </task>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="A"/>
    <sequenceFlow id="F_2" sourceRef="A" targetRef="End_1"/>
  </process>
</definitions>`)

	h.run(t, "inst-mi-empty", "def-mi-empty", map[string]models.VariableValue{"departments": jsonVar([]any{})})
	h.awaitStatus(t, "inst-mi-empty", processinstance.StatusCOMPLETED)
	assert.Empty(t, h.liveTokens(t, "inst-mi-empty"))
}

// Sequential multi-instance runs children one at a time over the collection.
func TestSequentialMultiInstance(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-mi-seq", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="P">
    <startEvent id="Start_1"/>
    <scriptTask id="A">
      <multiInstanceLoopCharacteristics isSequential="true" collection="steps"/>
      <extensionElements>
        <pythmata:scriptConfig>
          <pythmata:scriptContent>set_variable("last", item)</pythmata:scriptContent>
        </pythmata:scriptConfig>
      </extensionElements>
    </scriptTask>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="A"/>
    <sequenceFlow id="F_2" sourceRef="A" targetRef="End_1"/>
  </process>
</definitions>`)

	h.run(t, "inst-mi-seq", "def-mi-seq", map[string]models.VariableValue{"steps": jsonVar([]any{"one", "two", "three"})})
	h.awaitStatus(t, "inst-mi-seq", processinstance.StatusCOMPLETED)

	vars, err := h.Instances.GetInstanceVariables(context.Background(), "inst-mi-seq", nil)
	require.NoError(t, err)
	var last any
	for _, row := range vars {
		if row.Name == "last" {
			last = row.ValueData["value"]
		}
	}
	assert.Equal(t, "three", last, "children must run in collection order")
}

// Call activity with variable mapping: input_vars copies into the
// child, output_vars copies back, the parent resumes past the activity.
func TestCallActivityVariableMapping(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "ChildProcess", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="Child">
    <startEvent id="Start_1"/>
    <scriptTask id="Work">
      <extensionElements>
        <pythmata:scriptConfig>
          <pythmata:scriptContent>set_variable("result", "done")</pythmata:scriptContent>
        </pythmata:scriptConfig>
      </extensionElements>
    </scriptTask>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Work"/>
    <sequenceFlow id="F_2" sourceRef="Work" targetRef="End_1"/>
  </process>
</definitions>`)
	h.deploy(t, "ParentProcess", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="Parent">
    <startEvent id="Start_1"/>
    <callActivity id="Call_1" calledElement="ChildProcess">
      <extensionElements>
        <pythmata:callActivityConfig>
          <pythmata:inputVariables>
            <pythmata:variable name="subprocess_var" source="parent_var"/>
          </pythmata:inputVariables>
          <pythmata:outputVariables>
            <pythmata:variable name="parent_result" source="result"/>
          </pythmata:outputVariables>
        </pythmata:callActivityConfig>
      </extensionElements>
    </callActivity>
    <task id="After"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Call_1"/>
    <sequenceFlow id="F_2" sourceRef="Call_1" targetRef="After"/>
    <sequenceFlow id="F_3" sourceRef="After" targetRef="End_1"/>
  </process>
</definitions>`)

	h.run(t, "inst-parent", "ParentProcess", map[string]models.VariableValue{"parent_var": strVar("hello")})
	h.awaitStatus(t, "inst-parent", processinstance.StatusCOMPLETED)

	vars, err := h.Instances.GetInstanceVariables(context.Background(), "inst-parent", nil)
	require.NoError(t, err)
	var parentResult any
	for _, row := range vars {
		if row.Name == "parent_result" {
			parentResult = row.ValueData["value"]
		}
	}
	assert.Equal(t, "done", parentResult)

	// The child instance completed and holds no live tokens.
	children, err := h.DB.ProcessInstance.Query().
		Where(processinstance.DefinitionID("ChildProcess")).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, processinstance.StatusCOMPLETED, children[0].Status)
	assert.Empty(t, h.liveTokens(t, children[0].ID))
}

// Script failures move the instance to ERROR and retain the token at the
// failing node for resume.
func TestScriptFailureMovesInstanceToError(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-bad-script", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="P">
    <startEvent id="Start_1"/>
    <scriptTask id="Broken">
      <extensionElements>
        <pythmata:scriptConfig>
          <pythmata:scriptContent>1 / 0</pythmata:scriptContent>
        </pythmata:scriptConfig>
      </extensionElements>
    </scriptTask>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Broken"/>
    <sequenceFlow id="F_2" sourceRef="Broken" targetRef="End_1"/>
  </process>
</definitions>`)

	ctx := context.Background()
	_, err := h.Instances.CreateInstance(ctx, "inst-err", "def-bad-script", nil, "")
	require.NoError(t, err)
	require.Error(t, h.Sched.RunInstance(ctx, "inst-err", "def-bad-script"))

	h.awaitStatus(t, "inst-err", processinstance.StatusERROR)

	tokens := h.liveTokens(t, "inst-err")
	require.Len(t, tokens, 1, "the failing token is retained for resume")
	assert.Equal(t, "Broken", tokens[0].NodeID)
	assert.Contains(t, h.activityTypes(t, "inst-err"), "NODE_ERROR")
}

// Suspend∘resume is the identity on token positions and variables.
func TestSuspendResumeIdentity(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-linear", linearXML)

	ctx := context.Background()
	_, err := h.Instances.CreateInstance(ctx, "inst-sr", "def-linear", map[string]models.VariableValue{"v": strVar("x")}, "")
	require.NoError(t, err)

	before := h.liveTokens(t, "inst-sr")

	require.NoError(t, h.Instances.SuspendInstance(ctx, "inst-sr"))
	h.awaitStatus(t, "inst-sr", processinstance.StatusSUSPENDED)

	after := h.liveTokens(t, "inst-sr")
	require.Len(t, after, len(before))
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, before[0].NodeID, after[0].NodeID)

	v, ok, err := h.Fast.ResolveVariable(ctx, "inst-sr", "", "v")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "x", v.Value)

	require.NoError(t, h.Instances.ResumeInstance(ctx, "inst-sr"))
	require.NoError(t, h.Sched.RunInstance(ctx, "inst-sr", "def-linear"))
	h.awaitStatus(t, "inst-sr", processinstance.StatusCOMPLETED)
}

// terminate_instance clears every fast-store key and completes the record.
func TestTerminateClearsState(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-linear", linearXML)

	ctx := context.Background()
	_, err := h.Instances.CreateInstance(ctx, "inst-term", "def-linear", nil, "")
	require.NoError(t, err)
	require.NotEmpty(t, h.liveTokens(t, "inst-term"))

	require.NoError(t, h.Instances.TerminateInstance(ctx, "inst-term"))
	h.awaitStatus(t, "inst-term", processinstance.StatusCOMPLETED)
	assert.Empty(t, h.liveTokens(t, "inst-term"))
}

// A cyclic definition is rejected before any token is planted — loops must
// be modeled as multi-instance activities.
func TestCyclicDefinitionRejected(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-cycle", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <task id="A"/>
    <task id="B"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="A"/>
    <sequenceFlow id="F_2" sourceRef="A" targetRef="B"/>
    <sequenceFlow id="F_3" sourceRef="B" targetRef="A"/>
  </process>
</definitions>`)

	_, err := h.Instances.CreateInstance(context.Background(), "inst-cycle", "def-cycle", nil, "")
	require.Error(t, err)
	assert.True(t, engineerr.As(err, engineerr.KindDefinition))
	assert.Empty(t, h.liveTokens(t, "inst-cycle"))
}

// A script's own value is bound as {taskId}_result, so a downstream
// gateway condition can route on it.
func TestScriptResultRoutesGateway(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-script-result", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="P">
    <startEvent id="Start_1"/>
    <scriptTask id="Work">
      <extensionElements>
        <pythmata:scriptConfig>
          <pythmata:scriptContent>"done"</pythmata:scriptContent>
        </pythmata:scriptConfig>
      </extensionElements>
    </scriptTask>
    <exclusiveGateway id="GW" default="F_B"/>
    <task id="Succeeded"/>
    <task id="Failed"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_0" sourceRef="Start_1" targetRef="Work"/>
    <sequenceFlow id="F_1" sourceRef="Work" targetRef="GW"/>
    <sequenceFlow id="F_A" sourceRef="GW" targetRef="Succeeded">
      <conditionExpression>${Work_result == 'done'}</conditionExpression>
    </sequenceFlow>
    <sequenceFlow id="F_B" sourceRef="GW" targetRef="Failed"/>
    <sequenceFlow id="F_2" sourceRef="Succeeded" targetRef="End_1"/>
    <sequenceFlow id="F_3" sourceRef="Failed" targetRef="End_1"/>
  </process>
</definitions>`)

	h.run(t, "inst-script-result", "def-script-result", nil)
	h.awaitStatus(t, "inst-script-result", processinstance.StatusCOMPLETED)

	completed := h.nodeLogs(t, "inst-script-result", activitylog.ActivityTypeNODE_COMPLETED)
	assert.Contains(t, completed, "Succeeded")
	assert.NotContains(t, completed, "Failed")

	vars, err := h.Instances.GetInstanceVariables(context.Background(), "inst-script-result", nil)
	require.NoError(t, err)
	var result any
	for _, row := range vars {
		if row.Name == "Work_result" {
			result = row.ValueData["value"]
		}
	}
	assert.Equal(t, "done", result)
}
