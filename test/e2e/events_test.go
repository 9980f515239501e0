package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/pythmata/ent/activitylog"
	"github.com/codeready-toolchain/pythmata/ent/processinstance"
	"github.com/codeready-toolchain/pythmata/ent/timerjob"
	"github.com/codeready-toolchain/pythmata/pkg/models"
)

// A message intermediate catch parks the token WAITING; publishing the
// message resumes it with the payload copied into token data.
func TestMessageIntermediateCatch(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-msg", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <intermediateCatchEvent id="Catch_1">
      <messageEventDefinition messageRef="order_placed"/>
    </intermediateCatchEvent>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Catch_1"/>
    <sequenceFlow id="F_2" sourceRef="Catch_1" targetRef="End_1"/>
  </process>
</definitions>`)

	ctx := context.Background()
	h.run(t, "inst-msg", "def-msg", nil)

	// The token is parked WAITING on the subscription.
	require.Eventually(t, func() bool {
		tokens := h.liveTokens(t, "inst-msg")
		return len(tokens) == 1 && tokens[0].State == models.TokenWaiting && tokens[0].NodeID == "Catch_1"
	}, 5*time.Second, 20*time.Millisecond)

	subs, err := h.Fast.FindMessageSubscriptions(ctx, "order_placed")
	require.NoError(t, err)
	require.Len(t, subs, 1)

	require.NoError(t, h.Fast.PublishMessage(ctx, "order_placed", "", map[string]any{"order_id": "o-1"}))

	h.awaitStatus(t, "inst-msg", processinstance.StatusCOMPLETED)
	assert.Empty(t, h.liveTokens(t, "inst-msg"))

	// The subscription was removed on resolution.
	subs, err = h.Fast.FindMessageSubscriptions(ctx, "order_placed")
	require.NoError(t, err)
	assert.Empty(t, subs)
}

// A signal boundary event on a waiting message catch interrupts it: the
// catch's token is cancelled and the flow continues from the boundary.
func TestInterruptingSignalBoundary(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-sig", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <intermediateCatchEvent id="Hold">
      <messageEventDefinition messageRef="never_sent"/>
    </intermediateCatchEvent>
    <boundaryEvent id="B_1" attachedToRef="Hold">
      <signalEventDefinition signalRef="abort"/>
    </boundaryEvent>
    <endEvent id="End_1"/>
    <endEvent id="End_Aborted"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Hold"/>
    <sequenceFlow id="F_2" sourceRef="Hold" targetRef="End_1"/>
    <sequenceFlow id="F_3" sourceRef="B_1" targetRef="End_Aborted"/>
  </process>
</definitions>`)

	ctx := context.Background()
	h.run(t, "inst-sig", "def-sig", nil)

	require.Eventually(t, func() bool {
		tokens := h.liveTokens(t, "inst-sig")
		return len(tokens) == 1 && tokens[0].State == models.TokenWaiting
	}, 5*time.Second, 20*time.Millisecond)

	// The boundary subscription was armed when the activity started; a
	// signal publish fires it and cancels the waiting activity token.
	require.NoError(t, h.Fast.PublishSignal(ctx, "abort", "", map[string]any{"reason": "operator"}))

	h.awaitStatus(t, "inst-sig", processinstance.StatusCOMPLETED)

	completed := h.nodeLogs(t, "inst-sig", activitylog.ActivityTypeNODE_COMPLETED)
	assert.Contains(t, completed, "End_Aborted")
	assert.NotContains(t, completed, "End_1")
}

// Inclusive gateway: both truthy branches run, the join waits for exactly
// the taken set.
func TestInclusiveGateway(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-or", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <inclusiveGateway id="Split"/>
    <task id="Email"/>
    <task id="Invoice"/>
    <task id="Archive"/>
    <inclusiveGateway id="Join"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_0" sourceRef="Start_1" targetRef="Split"/>
    <sequenceFlow id="F_A" sourceRef="Split" targetRef="Email">
      <conditionExpression>${notify}</conditionExpression>
    </sequenceFlow>
    <sequenceFlow id="F_B" sourceRef="Split" targetRef="Invoice">
      <conditionExpression>${amount &gt; 0}</conditionExpression>
    </sequenceFlow>
    <sequenceFlow id="F_C" sourceRef="Split" targetRef="Archive">
      <conditionExpression>${amount &gt; 100000}</conditionExpression>
    </sequenceFlow>
    <sequenceFlow id="F_JA" sourceRef="Email" targetRef="Join"/>
    <sequenceFlow id="F_JB" sourceRef="Invoice" targetRef="Join"/>
    <sequenceFlow id="F_JC" sourceRef="Archive" targetRef="Join"/>
    <sequenceFlow id="F_E" sourceRef="Join" targetRef="End_1"/>
  </process>
</definitions>`)

	vars := map[string]models.VariableValue{
		"notify": {Type: models.ValueTypeBoolean, Value: true},
		"amount": intVar(500),
	}
	h.run(t, "inst-or", "def-or", vars)
	h.awaitStatus(t, "inst-or", processinstance.StatusCOMPLETED)

	completed := h.nodeLogs(t, "inst-or", activitylog.ActivityTypeNODE_COMPLETED)
	assert.Contains(t, completed, "Email")
	assert.Contains(t, completed, "Invoice")
	assert.NotContains(t, completed, "Archive")
	assert.Empty(t, h.liveTokens(t, "inst-or"))
}

// Embedded subprocess: entry appends a scope segment, exit strips it, and
// the parent flow continues once the body is done.
func TestSubProcess(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-sub", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <subProcess id="Sub_1">
      <startEvent id="SubStart"/>
      <task id="SubTask"/>
      <endEvent id="SubEnd"/>
      <sequenceFlow id="SF_1" sourceRef="SubStart" targetRef="SubTask"/>
      <sequenceFlow id="SF_2" sourceRef="SubTask" targetRef="SubEnd"/>
    </subProcess>
    <task id="After"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Sub_1"/>
    <sequenceFlow id="F_2" sourceRef="Sub_1" targetRef="After"/>
    <sequenceFlow id="F_3" sourceRef="After" targetRef="End_1"/>
  </process>
</definitions>`)

	h.run(t, "inst-sub", "def-sub", nil)
	h.awaitStatus(t, "inst-sub", processinstance.StatusCOMPLETED)

	completed := h.nodeLogs(t, "inst-sub", activitylog.ActivityTypeNODE_COMPLETED)
	assert.Contains(t, completed, "SubTask")
	assert.Contains(t, completed, "After")
	assert.Empty(t, h.liveTokens(t, "inst-sub"))
}

// Compensation: handlers registered on activity completion replay in LIFO
// order when a compensation throw event fires.
func TestCompensationLIFO(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-comp", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="P">
    <startEvent id="Start_1"/>
    <task id="Book"/>
    <boundaryEvent id="CompBook" attachedToRef="Book">
      <compensateEventDefinition/>
    </boundaryEvent>
    <task id="UndoBook" isForCompensation="true">
      <extensionElements>
        <pythmata:taskConfig>
          <pythmata:script>set_variable("undo_book", "yes")</pythmata:script>
        </pythmata:taskConfig>
      </extensionElements>
    </task>
    <association id="A_1" sourceRef="CompBook" targetRef="UndoBook"/>
    <task id="Charge"/>
    <boundaryEvent id="CompCharge" attachedToRef="Charge">
      <compensateEventDefinition/>
    </boundaryEvent>
    <task id="UndoCharge" isForCompensation="true">
      <extensionElements>
        <pythmata:taskConfig>
          <pythmata:script>set_variable("undo_charge", "yes")</pythmata:script>
        </pythmata:taskConfig>
      </extensionElements>
    </task>
    <association id="A_2" sourceRef="CompCharge" targetRef="UndoCharge"/>
    <intermediateThrowEvent id="Throw_1">
      <compensateEventDefinition/>
    </intermediateThrowEvent>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Book"/>
    <sequenceFlow id="F_2" sourceRef="Book" targetRef="Charge"/>
    <sequenceFlow id="F_3" sourceRef="Charge" targetRef="Throw_1"/>
    <sequenceFlow id="F_4" sourceRef="Throw_1" targetRef="End_1"/>
  </process>
</definitions>`)

	h.run(t, "inst-comp", "def-comp", nil)
	h.awaitStatus(t, "inst-comp", processinstance.StatusCOMPLETED)

	// Both handlers ran.
	vars, err := h.Instances.GetInstanceVariables(context.Background(), "inst-comp", nil)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, row := range vars {
		seen[row.Name] = true
	}
	assert.True(t, seen["undo_book"])
	assert.True(t, seen["undo_charge"])

	// LIFO: Charge registered last, so UndoCharge replays first.
	completed := h.nodeLogs(t, "inst-comp", activitylog.ActivityTypeNODE_COMPLETED)
	undoChargeIdx, undoBookIdx := -1, -1
	for i, n := range completed {
		switch n {
		case "UndoCharge":
			undoChargeIdx = i
		case "UndoBook":
			undoBookIdx = i
		}
	}
	require.GreaterOrEqual(t, undoChargeIdx, 0)
	require.GreaterOrEqual(t, undoBookIdx, 0)
	assert.Less(t, undoChargeIdx, undoBookIdx, "compensation must replay in reverse registration order")
}

// A timer start event produces exactly one scheduler job; firing it
// creates a fresh instance via process.started.
func TestTimerStartEvent(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-timer", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="P">
    <startEvent id="Start_1">
      <timerEventDefinition/>
      <extensionElements>
        <pythmata:timerEventConfig timerType="duration" timerValue="PT1S"/>
      </extensionElements>
    </startEvent>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="End_1"/>
  </process>
</definitions>`)

	ctx := context.Background()
	require.NoError(t, h.Sched.Rescan(ctx))

	// Exactly one job row, mirrored to the fast store for rehydration.
	jobs, err := h.DB.TimerJob.Query().Where(timerjob.DefinitionID("def-timer")).All(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "duration", jobs[0].TimerType)
	assert.True(t, jobs[0].Active)

	meta, err := h.Fast.GetTimerMetadata(ctx, "def-timer", "Start_1")
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "PT1S", meta.TimerDef)

	// The fire creates one instance and runs it to completion.
	require.Eventually(t, func() bool {
		instances, err := h.DB.ProcessInstance.Query().
			Where(processinstance.DefinitionID("def-timer"), processinstance.StatusEQ(processinstance.StatusCOMPLETED)).
			All(ctx)
		return err == nil && len(instances) == 1
	}, 15*time.Second, 50*time.Millisecond)

	// A one-shot duration job deactivates after firing — no pile-up.
	job, err := h.DB.TimerJob.Get(ctx, jobs[0].ID)
	require.NoError(t, err)
	assert.False(t, job.Active)
}

// An intermediate timer catch parks the token until the scheduler fires it.
func TestTimerIntermediateCatch(t *testing.T) {
	h := newHarness(t)
	h.deploy(t, "def-timer-catch", `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="P">
    <startEvent id="Start_1"/>
    <intermediateCatchEvent id="Wait_1">
      <timerEventDefinition/>
      <extensionElements>
        <pythmata:timerEventConfig timerType="duration" timerValue="PT1S"/>
      </extensionElements>
    </intermediateCatchEvent>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Wait_1"/>
    <sequenceFlow id="F_2" sourceRef="Wait_1" targetRef="End_1"/>
  </process>
</definitions>`)

	h.run(t, "inst-timer-catch", "def-timer-catch", nil)

	tokens := h.liveTokens(t, "inst-timer-catch")
	require.Len(t, tokens, 1)
	assert.Equal(t, models.TokenWaiting, tokens[0].State)

	h.awaitStatus(t, "inst-timer-catch", processinstance.StatusCOMPLETED)
	assert.Empty(t, h.liveTokens(t, "inst-timer-catch"))
}
