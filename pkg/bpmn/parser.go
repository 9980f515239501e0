package bpmn

import (
	"encoding/xml"
	"strings"

	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
)

// Namespaces recognized by the parser.
const (
	NSBPMN      = "http://www.omg.org/spec/BPMN/20100524/MODEL"
	NSExtension = "http://pythmata.org/schema/1.0/bpmn"
)

// xmlElement is a generic node used to walk the document without binding to
// the full BPMN XSD — the grammar we actually need is a small subset
// of elements plus the vendor extension, so a typed-struct decode for every
// BPMN element would be far larger than what parsing requires.
type xmlElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr    `xml:",any,attr"`
	Children []xmlElement  `xml:",any"`
	Content  string        `xml:",chardata"`
}

func (e *xmlElement) attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (e *xmlElement) local() string { return e.XMLName.Local }

func (e *xmlElement) find(local string) *xmlElement {
	for i := range e.Children {
		if e.Children[i].local() == local {
			return &e.Children[i]
		}
	}
	return nil
}

func (e *xmlElement) findAll(local string) []*xmlElement {
	var out []*xmlElement
	for i := range e.Children {
		if e.Children[i].local() == local {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

// findDeep performs a depth-first search for the first descendant with the
// given local name, mirroring ElementTree's ".//" used throughout the source
// parser.
func (e *xmlElement) findDeep(local string) *xmlElement {
	for i := range e.Children {
		c := &e.Children[i]
		if c.local() == local {
			return c
		}
		if found := c.findDeep(local); found != nil {
			return found
		}
	}
	return nil
}

func (e *xmlElement) findAllDeep(local string) []*xmlElement {
	var out []*xmlElement
	for i := range e.Children {
		c := &e.Children[i]
		if c.local() == local {
			out = append(out, c)
		}
		out = append(out, c.findAllDeep(local)...)
	}
	return out
}

// Parse parses BPMN XML into an immutable ProcessGraph. It fails with a
// KindDefinition error on any schema violation: duplicate IDs, missing
// sourceRef/targetRef, unknown references, or an unsupported element.
// Cycle detection is NOT performed here (nor by Validate) — call HasCycle
// before execution.
func Parse(xmlDoc string) (*ProcessGraph, error) {
	result := Validate(xmlDoc)
	if !result.Valid {
		return nil, engineerr.NewDefinitionError("invalid BPMN XML: %s", result.Errors[0].Message)
	}

	var root xmlElement
	if err := xml.Unmarshal([]byte(xmlDoc), &root); err != nil {
		return nil, engineerr.WrapDefinitionError(err, "parsing BPMN XML")
	}

	process := root.findDeep("process")
	if process == nil {
		return nil, engineerr.NewDefinitionError("no <process> element found in BPMN XML")
	}

	graph := &ProcessGraph{ProcessID: process.attr("id")}
	if err := parseContainer(graph, process, ""); err != nil {
		return nil, err
	}
	resolveCompensationAssociations(graph, process)

	graph.Index()
	return graph, nil
}

// parseContainer parses the flow elements directly inside a <process>,
// <subProcess>, or <transaction> element, tagging every node it produces
// with containerID. Subprocess content is flattened into the same flat
// graph rather than kept as a nested tree — scope entry/exit is then a
// matter of comparing a token's scope chain against ContainerID at
// execution time.
func parseContainer(graph *ProcessGraph, container *xmlElement, containerID string) error {
	start := len(graph.Nodes)
	for i := range container.Children {
		elem := &container.Children[i]
		switch elem.local() {
		case "task", "userTask", "manualTask", "businessRuleTask":
			if elem.attr("isForCompensation") == "true" {
				graph.Nodes = append(graph.Nodes, parseCompensationHandler(elem))
			} else {
				graph.Nodes = append(graph.Nodes, parseTask(elem, KindTask))
			}
		case "serviceTask":
			graph.Nodes = append(graph.Nodes, parseServiceTask(elem))
		case "scriptTask":
			graph.Nodes = append(graph.Nodes, parseScriptTask(elem))
		case "startEvent":
			graph.Nodes = append(graph.Nodes, parseEvent(elem, KindStartEvent))
		case "endEvent":
			graph.Nodes = append(graph.Nodes, parseEvent(elem, KindEndEvent))
		case "intermediateCatchEvent", "intermediateThrowEvent":
			graph.Nodes = append(graph.Nodes, parseEvent(elem, KindIntermediateEvent))
		case "boundaryEvent":
			graph.Nodes = append(graph.Nodes, parseBoundaryEvent(elem))
		case "exclusiveGateway":
			graph.Nodes = append(graph.Nodes, parseGateway(elem, KindGatewayExclusive))
		case "parallelGateway":
			graph.Nodes = append(graph.Nodes, parseGateway(elem, KindGatewayParallel))
		case "inclusiveGateway":
			graph.Nodes = append(graph.Nodes, parseGateway(elem, KindGatewayInclusive))
		case "subProcess", "transaction":
			sp := parseSubProcess(elem)
			sp.IsTransaction = elem.local() == "transaction"
			graph.Nodes = append(graph.Nodes, sp)
			if err := parseContainer(graph, elem, sp.ID); err != nil {
				return err
			}
			for _, n := range graph.Nodes {
				if n.ContainerID == sp.ID && n.Kind == KindStartEvent {
					sp.ContainedStartID = n.ID
					break
				}
			}
		case "callActivity":
			graph.Nodes = append(graph.Nodes, parseCallActivity(elem))
		case "sequenceFlow":
			graph.Flows = append(graph.Flows, parseSequenceFlow(elem))
		case "dataObject", "dataObjectReference":
			graph.DataObjects = append(graph.DataObjects, &DataObject{
				ID:   elem.attr("id"),
				Name: elem.attr("name"),
				Type: elem.attr("itemSubjectRef"),
			})
		case "extensionElements", "laneSet", "documentation", "association":
			// ignored here — associations are resolved in a second pass
		default:
			return engineerr.NewDefinitionError("unsupported BPMN element <%s>", elem.local())
		}
	}
	for _, n := range graph.Nodes[start:] {
		if n.ContainerID == "" && n.ID != "" {
			n.ContainerID = containerID
		}
	}
	return nil
}

// resolveCompensationAssociations links compensation boundary events to the
// compensation handler they serve via <association> elements (sourceRef the
// boundary event, targetRef the handler), since BPMN expresses that wiring
// out-of-band from the flow graph itself.
func resolveCompensationAssociations(graph *ProcessGraph, process *xmlElement) {
	byID := make(map[string]*Node, len(graph.Nodes))
	for _, n := range graph.Nodes {
		byID[n.ID] = n
	}
	for _, assoc := range process.findAllDeep("association") {
		source := byID[assoc.attr("sourceRef")]
		target := byID[assoc.attr("targetRef")]
		if source == nil || target == nil {
			continue
		}
		if source.Kind == KindBoundaryEvent && source.EventDefinition == EventCompensation {
			target.BoundaryEventID = source.ID
		}
	}
}

func flowRefs(elem *xmlElement, local string) []string {
	var out []string
	for _, c := range elem.findAll(local) {
		if v := strings.TrimSpace(c.Content); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func baseNode(elem *xmlElement, kind NodeKind) *Node {
	return &Node{
		ID:       elem.attr("id"),
		Kind:     kind,
		Name:     elem.attr("name"),
		Incoming: flowRefs(elem, "incoming"),
		Outgoing: flowRefs(elem, "outgoing"),
	}
}

func taskConfig(elem *xmlElement) *xmlElement {
	ext := elem.find("extensionElements")
	if ext == nil {
		return nil
	}
	return ext.findDeep("taskConfig")
}

func parseTask(elem *xmlElement, kind NodeKind) *Node {
	n := baseNode(elem, kind)
	n.MultiInstance = parseMultiInstance(elem)
	cfg := taskConfig(elem)
	if cfg == nil {
		return n
	}
	if script := cfg.findDeep("script"); script != nil {
		n.Script = strings.TrimSpace(script.Content)
	}
	if iv := cfg.find("inputVariables"); iv != nil {
		for _, v := range iv.findAll("variable") {
			n.InputVariables = append(n.InputVariables, Variable{Name: v.attr("name"), Type: v.attr("type")})
		}
	}
	if ov := cfg.find("outputVariables"); ov != nil {
		for _, v := range ov.findAll("variable") {
			n.OutputVariables = append(n.OutputVariables, Variable{Name: v.attr("name"), Type: v.attr("type")})
		}
	}
	return n
}

func parseCompensationHandler(elem *xmlElement) *Node {
	n := parseTask(elem, KindCompensationHandler)
	return n
}

func parseScriptTask(elem *xmlElement) *Node {
	n := baseNode(elem, KindScriptTask)
	n.MultiInstance = parseMultiInstance(elem)
	ext := elem.find("extensionElements")
	if ext == nil {
		if s := elem.find("script"); s != nil {
			n.Script = strings.TrimSpace(s.Content)
		}
		return n
	}
	if cfg := ext.findDeep("scriptConfig"); cfg != nil {
		if content := cfg.findDeep("scriptContent"); content != nil {
			n.Script = strings.TrimSpace(content.Content)
		} else {
			n.Script = strings.TrimSpace(cfg.Content)
		}
	}
	return n
}

func parseServiceTask(elem *xmlElement) *Node {
	n := baseNode(elem, KindServiceTask)
	n.MultiInstance = parseMultiInstance(elem)
	ext := elem.find("extensionElements")
	if ext == nil {
		return n
	}
	cfg := ext.findDeep("serviceTaskConfig")
	if cfg == nil {
		return n
	}
	stc := &ServiceTaskConfig{
		TaskName:   cfg.attr("taskName"),
		Properties: map[string]string{},
	}
	if props := cfg.find("properties"); props != nil {
		for _, p := range props.findAll("property") {
			stc.Properties[p.attr("name")] = p.attr("value")
		}
	}
	if om := cfg.find("outputMapping"); om != nil {
		stc.OutputMapping = map[string]string{}
		for _, m := range om.findAll("map") {
			// target is the scope-local variable written; source is the
			// dotted path into the task's result map.
			stc.OutputMapping[m.attr("target")] = m.attr("source")
		}
	}
	n.ServiceTaskConfig = stc
	return n
}

func parseEvent(elem *xmlElement, kind NodeKind) *Node {
	n := baseNode(elem, kind)
	n.EventDefinition, n.Timer = parseEventDefinition(elem)
	n.EventName = parseEventName(elem)
	return n
}

func parseBoundaryEvent(elem *xmlElement) *Node {
	n := baseNode(elem, KindBoundaryEvent)
	n.AttachedTo = elem.attr("attachedToRef")
	n.Interrupting = elem.attr("cancelActivity") != "false" // BPMN default is true
	n.EventDefinition, n.Timer = parseEventDefinition(elem)
	n.EventName = parseEventName(elem)
	return n
}

// parseEventName resolves the correlation name for message/signal events.
// Rather than cross-referencing a top-level <message>/<signal> catalog
// (which this grammar doesn't otherwise need), the ref ID itself is used as
// the subscription name — callers only ever compare it for equality.
func parseEventName(elem *xmlElement) string {
	for _, c := range elem.Children {
		switch c.local() {
		case "messageEventDefinition":
			return c.attr("messageRef")
		case "signalEventDefinition":
			return c.attr("signalRef")
		}
	}
	return ""
}

var eventDefinitionSuffixes = map[string]EventDefinition{
	"timerEventDefinition":        EventTimer,
	"messageEventDefinition":      EventMessage,
	"signalEventDefinition":       EventSignal,
	"errorEventDefinition":        EventError,
	"compensateEventDefinition":   EventCompensation,
}

func parseEventDefinition(elem *xmlElement) (EventDefinition, *TimerDefinition) {
	for _, c := range elem.Children {
		if def, ok := eventDefinitionSuffixes[c.local()]; ok {
			if def == EventTimer {
				return def, parseTimerConfig(elem)
			}
			return def, nil
		}
	}
	return EventNone, nil
}

func parseTimerConfig(elem *xmlElement) *TimerDefinition {
	if ext := elem.find("extensionElements"); ext != nil {
		if cfg := ext.findDeep("timerEventConfig"); cfg != nil {
			return &TimerDefinition{Type: cfg.attr("timerType"), Value: cfg.attr("timerValue")}
		}
	}
	// Fall back to the standard BPMN timer children when the vendor
	// extension is absent.
	def := elem.find("timerEventDefinition")
	if def == nil {
		return nil
	}
	if d := def.find("timeDuration"); d != nil {
		return &TimerDefinition{Type: "duration", Value: strings.TrimSpace(d.Content)}
	}
	if c := def.find("timeCycle"); c != nil {
		return &TimerDefinition{Type: "repetition", Value: strings.TrimSpace(c.Content)}
	}
	if t := def.find("timeDate"); t != nil {
		return &TimerDefinition{Type: "date", Value: strings.TrimSpace(t.Content)}
	}
	return nil
}

func parseGateway(elem *xmlElement, kind NodeKind) *Node {
	n := baseNode(elem, kind)
	n.DefaultFlow = elem.attr("default")
	return n
}

func parseSubProcess(elem *xmlElement) *Node {
	n := baseNode(elem, KindSubProcess)
	n.MultiInstance = parseMultiInstance(elem)
	return n
}

func parseCallActivity(elem *xmlElement) *Node {
	n := baseNode(elem, KindCallActivity)
	n.CalledElement = elem.attr("calledElement")
	n.MultiInstance = parseMultiInstance(elem)
	ext := elem.find("extensionElements")
	if ext == nil {
		return n
	}
	cfg := ext.findDeep("callActivityConfig")
	if cfg == nil {
		return n
	}
	if iv := cfg.find("inputVariables"); iv != nil {
		n.InputVars = map[string]string{}
		for _, v := range iv.findAll("variable") {
			n.InputVars[v.attr("name")] = v.attr("source")
		}
	}
	if ov := cfg.find("outputVariables"); ov != nil {
		n.OutputVars = map[string]string{}
		for _, v := range ov.findAll("variable") {
			n.OutputVars[v.attr("name")] = v.attr("source")
		}
	}
	return n
}

func parseMultiInstance(elem *xmlElement) *MultiInstance {
	mi := elem.find("multiInstanceLoopCharacteristics")
	if mi == nil {
		return nil
	}
	out := &MultiInstance{Parallel: mi.attr("isSequential") != "true"}
	if card := mi.find("loopCardinality"); card != nil {
		out.Cardinality = strings.TrimSpace(card.Content)
	}
	if coll := mi.attr("collection"); coll != "" {
		out.CollectionRef = coll
	} else if ref := mi.find("loopDataInputRef"); ref != nil {
		out.CollectionRef = strings.TrimSpace(ref.Content)
	}
	if cond := mi.find("completionCondition"); cond != nil {
		out.CompletionCondition = strings.TrimSpace(cond.Content)
	}
	return out
}

func parseSequenceFlow(elem *xmlElement) *SequenceFlow {
	f := &SequenceFlow{
		ID:        elem.attr("id"),
		SourceRef: elem.attr("sourceRef"),
		TargetRef: elem.attr("targetRef"),
	}
	if cond := elem.find("conditionExpression"); cond != nil {
		f.ConditionExpression = strings.TrimSpace(cond.Content)
	}
	return f
}
