// Package bpmn parses BPMN 2.0 XML (plus the pythmata vendor extension
// namespace) into an immutable ProcessGraph, and validates it independently
// of execution.
package bpmn

// NodeKind discriminates the sum-of-variants Node model.
type NodeKind string

const (
	KindStartEvent        NodeKind = "StartEvent"
	KindEndEvent          NodeKind = "EndEvent"
	KindIntermediateEvent NodeKind = "IntermediateEvent"
	KindBoundaryEvent     NodeKind = "BoundaryEvent"
	KindTask              NodeKind = "Task"
	KindServiceTask       NodeKind = "ServiceTask"
	KindScriptTask        NodeKind = "ScriptTask"
	KindGatewayExclusive  NodeKind = "GatewayExclusive"
	KindGatewayParallel   NodeKind = "GatewayParallel"
	KindGatewayInclusive  NodeKind = "GatewayInclusive"
	KindSubProcess        NodeKind = "SubProcess"
	KindCallActivity      NodeKind = "CallActivity"
	KindCompensationHandler NodeKind = "CompensationHandler"
)

// EventDefinition is the optional payload carried by event nodes.
type EventDefinition string

const (
	EventNone         EventDefinition = ""
	EventTimer        EventDefinition = "timer"
	EventMessage      EventDefinition = "message"
	EventSignal       EventDefinition = "signal"
	EventError        EventDefinition = "error"
	EventCompensation EventDefinition = "compensation"
)

// Variable describes a declared input/output variable binding on a task.
type Variable struct {
	Name string
	Type string
}

// MultiInstance captures loop characteristics on an activity.
type MultiInstance struct {
	CollectionRef       string // variable name holding the collection, or ""
	Cardinality         string // literal or expression, or ""
	Parallel            bool
	CompletionCondition string // ${...} expression with `count` bound, or ""
}

// ServiceTaskConfig is the vendor extension payload for service tasks.
type ServiceTaskConfig struct {
	TaskName       string
	Properties     map[string]string
	OutputMapping  map[string]string // scope-local variable name -> dotted path into the result
}

// TimerDefinition is the vendor extension payload for timer events.
type TimerDefinition struct {
	Type  string // duration | repetition | date
	Value string // raw ISO-8601 expression
}

// Node is a single BPMN flow element. Not every field is populated for every
// Kind — callers switch on Kind before reading kind-specific fields.
type Node struct {
	ID       string
	Kind     NodeKind
	Name     string
	Incoming []string
	Outgoing []string

	// Event fields
	EventDefinition EventDefinition
	Timer           *TimerDefinition
	EventName       string // message/signal ref, for EventMessage/EventSignal
	AttachedTo      string // BoundaryEvent only
	Interrupting    bool   // BoundaryEvent only

	// Gateway fields
	DefaultFlow string

	// Task fields
	Script            string
	InputVariables    []Variable
	OutputVariables   []Variable
	ServiceTaskConfig *ServiceTaskConfig

	// SubProcess / CallActivity fields
	CalledElement string            // CallActivity: definition id to invoke
	InputVars     map[string]string // CallActivity: child variable name -> parent variable name
	OutputVars    map[string]string // CallActivity: parent variable name -> child variable name
	MultiInstance *MultiInstance

	// CompensationHandler fields
	BoundaryEventID string // the compensation boundary event this handler serves

	// ContainerID is the enclosing SubProcess/Transaction node's ID, or ""
	// for top-level nodes. Populated by the parser when it flattens a
	// subProcess element's children into the graph.
	ContainerID string

	// ContainedStartID (SubProcess only) is the ID of the single start
	// event nested directly inside this subprocess.
	ContainedStartID string
	// IsTransaction marks a <transaction> element rather
	// than a plain <subProcess>.
	IsTransaction bool
}

// SequenceFlow connects two nodes, optionally gated by a condition.
type SequenceFlow struct {
	ID                   string
	SourceRef            string
	TargetRef            string
	ConditionExpression  string
}

// DataObject is a named BPMN data object declaration.
type DataObject struct {
	ID   string
	Name string
	Type string
}

// ProcessGraph is the derived, immutable representation of a parsed
// definition. It is never persisted — it is reconstructed from
// ProcessDefinition.BpmnXML on demand and may be cached by (id, version).
type ProcessGraph struct {
	ProcessID   string
	Nodes       []*Node
	Flows       []*SequenceFlow
	DataObjects []*DataObject

	byID       map[string]*Node
	outFlows   map[string][]*SequenceFlow
	inFlows    map[string][]*SequenceFlow
}

// Index builds the lookup tables used by NodeByID/OutgoingFlows/IncomingFlows.
// Called once after parsing.
func (g *ProcessGraph) Index() {
	g.byID = make(map[string]*Node, len(g.Nodes))
	for _, n := range g.Nodes {
		g.byID[n.ID] = n
	}
	g.outFlows = make(map[string][]*SequenceFlow)
	g.inFlows = make(map[string][]*SequenceFlow)
	for _, f := range g.Flows {
		g.outFlows[f.SourceRef] = append(g.outFlows[f.SourceRef], f)
		g.inFlows[f.TargetRef] = append(g.inFlows[f.TargetRef], f)
	}
}

func (g *ProcessGraph) NodeByID(id string) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// OutgoingFlows returns a node's outgoing flows in source-declaration order
// (the order they appear in g.Flows), required by exclusive-gateway
// evaluation order.
func (g *ProcessGraph) OutgoingFlows(nodeID string) []*SequenceFlow {
	return g.outFlows[nodeID]
}

func (g *ProcessGraph) IncomingFlows(nodeID string) []*SequenceFlow {
	return g.inFlows[nodeID]
}

// StartEvents returns every StartEvent node in declaration order.
func (g *ProcessGraph) StartEvents() []*Node {
	var out []*Node
	for _, n := range g.Nodes {
		if n.Kind == KindStartEvent {
			out = append(out, n)
		}
	}
	return out
}

// BoundaryEventsFor returns boundary events attached to the given activity.
func (g *ProcessGraph) BoundaryEventsFor(activityID string) []*Node {
	var out []*Node
	for _, n := range g.Nodes {
		if n.Kind == KindBoundaryEvent && n.AttachedTo == activityID {
			out = append(out, n)
		}
	}
	return out
}
