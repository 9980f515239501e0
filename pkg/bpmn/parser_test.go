package bpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleLinearXML = `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"
                  xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <bpmn:process id="Process_1" isExecutable="true">
    <bpmn:startEvent id="Start_1">
      <bpmn:outgoing>Flow_1</bpmn:outgoing>
    </bpmn:startEvent>
    <bpmn:task id="Task_1" name="Do work">
      <bpmn:incoming>Flow_1</bpmn:incoming>
      <bpmn:outgoing>Flow_2</bpmn:outgoing>
    </bpmn:task>
    <bpmn:endEvent id="End_1">
      <bpmn:incoming>Flow_2</bpmn:incoming>
    </bpmn:endEvent>
    <bpmn:sequenceFlow id="Flow_1" sourceRef="Start_1" targetRef="Task_1"/>
    <bpmn:sequenceFlow id="Flow_2" sourceRef="Task_1" targetRef="End_1"/>
  </bpmn:process>
</bpmn:definitions>`

func TestParse_SimpleLinearFlow(t *testing.T) {
	graph, err := Parse(simpleLinearXML)
	require.NoError(t, err)

	assert.Equal(t, "Process_1", graph.ProcessID)
	require.Len(t, graph.Nodes, 3)
	require.Len(t, graph.Flows, 2)

	start, ok := graph.NodeByID("Start_1")
	require.True(t, ok)
	assert.Equal(t, KindStartEvent, start.Kind)

	task, ok := graph.NodeByID("Task_1")
	require.True(t, ok)
	assert.Equal(t, KindTask, task.Kind)
	assert.Equal(t, "Do work", task.Name)

	out := graph.OutgoingFlows("Task_1")
	require.Len(t, out, 1)
	assert.Equal(t, "End_1", out[0].TargetRef)

	in := graph.IncomingFlows("Task_1")
	require.Len(t, in, 1)
	assert.Equal(t, "Start_1", in[0].SourceRef)
}

func TestParse_ExclusiveGatewayWithConditionsAndDefault(t *testing.T) {
	xml := `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <exclusiveGateway id="GW" default="F_B"/>
    <task id="A"/>
    <task id="B"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_0" sourceRef="Start_1" targetRef="GW"/>
    <sequenceFlow id="F_A" sourceRef="GW" targetRef="A">
      <conditionExpression>${amount &gt; 1000}</conditionExpression>
    </sequenceFlow>
    <sequenceFlow id="F_B" sourceRef="GW" targetRef="B"/>
    <sequenceFlow id="F_1" sourceRef="A" targetRef="End_1"/>
    <sequenceFlow id="F_2" sourceRef="B" targetRef="End_1"/>
  </process>
</definitions>`

	graph, err := Parse(xml)
	require.NoError(t, err)

	gw, ok := graph.NodeByID("GW")
	require.True(t, ok)
	assert.Equal(t, KindGatewayExclusive, gw.Kind)
	assert.Equal(t, "F_B", gw.DefaultFlow)

	flows := graph.OutgoingFlows("GW")
	require.Len(t, flows, 2)
	assert.Equal(t, "F_A", flows[0].ID)
	assert.Equal(t, "${amount > 1000}", flows[0].ConditionExpression)
	assert.Empty(t, flows[1].ConditionExpression)
}

func TestParse_VendorExtensions(t *testing.T) {
	xml := `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="P">
    <startEvent id="Start_1"/>
    <scriptTask id="Script_1">
      <extensionElements>
        <pythmata:scriptConfig>
          <pythmata:scriptContent>set_variable("x", 1)</pythmata:scriptContent>
        </pythmata:scriptConfig>
      </extensionElements>
    </scriptTask>
    <serviceTask id="Svc_1">
      <extensionElements>
        <pythmata:serviceTaskConfig taskName="http">
          <pythmata:properties>
            <pythmata:property name="url" value="http://example.test"/>
          </pythmata:properties>
          <pythmata:outputMapping>
            <pythmata:map source="body.status" target="http_status"/>
          </pythmata:outputMapping>
        </pythmata:serviceTaskConfig>
      </extensionElements>
    </serviceTask>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Script_1"/>
    <sequenceFlow id="F_2" sourceRef="Script_1" targetRef="Svc_1"/>
    <sequenceFlow id="F_3" sourceRef="Svc_1" targetRef="End_1"/>
  </process>
</definitions>`

	graph, err := Parse(xml)
	require.NoError(t, err)

	script, ok := graph.NodeByID("Script_1")
	require.True(t, ok)
	assert.Equal(t, `set_variable("x", 1)`, script.Script)

	svc, ok := graph.NodeByID("Svc_1")
	require.True(t, ok)
	require.NotNil(t, svc.ServiceTaskConfig)
	assert.Equal(t, "http", svc.ServiceTaskConfig.TaskName)
	assert.Equal(t, "http://example.test", svc.ServiceTaskConfig.Properties["url"])
	assert.Equal(t, "body.status", svc.ServiceTaskConfig.OutputMapping["http_status"])
}

func TestParse_TimerStartEvent(t *testing.T) {
	xml := `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="P">
    <startEvent id="Start_1">
      <timerEventDefinition/>
      <extensionElements>
        <pythmata:timerEventConfig timerType="duration" timerValue="PT1H"/>
      </extensionElements>
    </startEvent>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="End_1"/>
  </process>
</definitions>`

	graph, err := Parse(xml)
	require.NoError(t, err)

	start, ok := graph.NodeByID("Start_1")
	require.True(t, ok)
	assert.Equal(t, EventTimer, start.EventDefinition)
	require.NotNil(t, start.Timer)
	assert.Equal(t, "duration", start.Timer.Type)
	assert.Equal(t, "PT1H", start.Timer.Value)
}

func TestParse_TimerStandardChildren(t *testing.T) {
	xml := `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1">
      <timerEventDefinition>
        <timeDuration>PT30M</timeDuration>
      </timerEventDefinition>
    </startEvent>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="End_1"/>
  </process>
</definitions>`

	graph, err := Parse(xml)
	require.NoError(t, err)

	start, _ := graph.NodeByID("Start_1")
	require.NotNil(t, start.Timer)
	assert.Equal(t, "duration", start.Timer.Type)
	assert.Equal(t, "PT30M", start.Timer.Value)
}

func TestParse_BoundaryEvent(t *testing.T) {
	xml := `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <task id="Task_1"/>
    <boundaryEvent id="B_1" attachedToRef="Task_1" cancelActivity="false">
      <messageEventDefinition messageRef="news"/>
    </boundaryEvent>
    <endEvent id="End_1"/>
    <endEvent id="End_2"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Task_1"/>
    <sequenceFlow id="F_2" sourceRef="Task_1" targetRef="End_1"/>
    <sequenceFlow id="F_3" sourceRef="B_1" targetRef="End_2"/>
  </process>
</definitions>`

	graph, err := Parse(xml)
	require.NoError(t, err)

	b, ok := graph.NodeByID("B_1")
	require.True(t, ok)
	assert.Equal(t, KindBoundaryEvent, b.Kind)
	assert.Equal(t, "Task_1", b.AttachedTo)
	assert.False(t, b.Interrupting)
	assert.Equal(t, EventMessage, b.EventDefinition)
	assert.Equal(t, "news", b.EventName)

	boundaries := graph.BoundaryEventsFor("Task_1")
	require.Len(t, boundaries, 1)
	assert.Equal(t, "B_1", boundaries[0].ID)
}

func TestParse_SubProcessFlattening(t *testing.T) {
	xml := `<?xml version="1.0"?>
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
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Sub_1"/>
    <sequenceFlow id="F_2" sourceRef="Sub_1" targetRef="End_1"/>
  </process>
</definitions>`

	graph, err := Parse(xml)
	require.NoError(t, err)

	sub, ok := graph.NodeByID("Sub_1")
	require.True(t, ok)
	assert.Equal(t, KindSubProcess, sub.Kind)
	assert.False(t, sub.IsTransaction)
	assert.Equal(t, "SubStart", sub.ContainedStartID)

	inner, ok := graph.NodeByID("SubTask")
	require.True(t, ok)
	assert.Equal(t, "Sub_1", inner.ContainerID)

	outer, ok := graph.NodeByID("Start_1")
	require.True(t, ok)
	assert.Empty(t, outer.ContainerID)
}

func TestParse_MultiInstanceCharacteristics(t *testing.T) {
	xml := `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <task id="A">
      <multiInstanceLoopCharacteristics collection="departments">
        <completionCondition>${count &gt;= 2}</completionCondition>
      </multiInstanceLoopCharacteristics>
    </task>
    <task id="B">
      <multiInstanceLoopCharacteristics isSequential="true">
        <loopCardinality>3</loopCardinality>
      </multiInstanceLoopCharacteristics>
    </task>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="A"/>
    <sequenceFlow id="F_2" sourceRef="A" targetRef="B"/>
    <sequenceFlow id="F_3" sourceRef="B" targetRef="End_1"/>
  </process>
</definitions>`

	graph, err := Parse(xml)
	require.NoError(t, err)

	a, _ := graph.NodeByID("A")
	require.NotNil(t, a.MultiInstance)
	assert.True(t, a.MultiInstance.Parallel)
	assert.Equal(t, "departments", a.MultiInstance.CollectionRef)
	assert.Equal(t, "${count >= 2}", a.MultiInstance.CompletionCondition)

	b, _ := graph.NodeByID("B")
	require.NotNil(t, b.MultiInstance)
	assert.False(t, b.MultiInstance.Parallel)
	assert.Equal(t, "3", b.MultiInstance.Cardinality)
}

func TestParse_CallActivityMappings(t *testing.T) {
	xml := `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL"
             xmlns:pythmata="http://pythmata.org/schema/1.0/bpmn">
  <process id="P">
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
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Call_1"/>
    <sequenceFlow id="F_2" sourceRef="Call_1" targetRef="End_1"/>
  </process>
</definitions>`

	graph, err := Parse(xml)
	require.NoError(t, err)

	call, _ := graph.NodeByID("Call_1")
	assert.Equal(t, "ChildProcess", call.CalledElement)
	assert.Equal(t, map[string]string{"subprocess_var": "parent_var"}, call.InputVars)
	assert.Equal(t, map[string]string{"parent_result": "result"}, call.OutputVars)
}

func TestParse_CompensationAssociation(t *testing.T) {
	xml := `<?xml version="1.0"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <process id="P">
    <startEvent id="Start_1"/>
    <task id="Book"/>
    <boundaryEvent id="CompB" attachedToRef="Book">
      <compensateEventDefinition/>
    </boundaryEvent>
    <task id="CancelBooking" isForCompensation="true"/>
    <association id="Assoc_1" sourceRef="CompB" targetRef="CancelBooking"/>
    <endEvent id="End_1"/>
    <sequenceFlow id="F_1" sourceRef="Start_1" targetRef="Book"/>
    <sequenceFlow id="F_2" sourceRef="Book" targetRef="End_1"/>
  </process>
</definitions>`

	graph, err := Parse(xml)
	require.NoError(t, err)

	handler, ok := graph.NodeByID("CancelBooking")
	require.True(t, ok)
	assert.Equal(t, KindCompensationHandler, handler.Kind)
	assert.Equal(t, "CompB", handler.BoundaryEventID)
}

func TestParse_RejectsInvalidXML(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)

	_, err = Parse("<not-bpmn/>")
	require.Error(t, err)
}
