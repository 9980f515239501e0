package bpmn

import (
	"encoding/xml"
	"strings"
)

// ErrorCode classifies a validation failure.
type ErrorCode string

const (
	CodeEmptyXML          ErrorCode = "EMPTY_XML"
	CodeXMLParseError     ErrorCode = "XML_PARSE_ERROR"
	CodeSchemaError       ErrorCode = "SCHEMA_ERROR"
	CodeExtensionError    ErrorCode = "EXTENSION_ERROR"
	CodeDuplicateID       ErrorCode = "DUPLICATE_ID"
	CodeInvalidFlow       ErrorCode = "INVALID_FLOW"
	CodeInvalidReference  ErrorCode = "INVALID_REFERENCE"
	CodeMissingAttribute  ErrorCode = "MISSING_ATTRIBUTE"
	CodeInvalidStructure  ErrorCode = "INVALID_STRUCTURE"
)

// ValidationIssue is a single collected validation error.
type ValidationIssue struct {
	Code      ErrorCode
	Message   string
	ElementID string
}

// ValidationResult is the non-throwing counterpart to Parse.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationIssue
}

func (r *ValidationResult) add(code ErrorCode, message, elementID string) {
	r.Errors = append(r.Errors, ValidationIssue{Code: code, Message: message, ElementID: elementID})
	r.Valid = false
}

// Validate checks BPMN XML for structural well-formedness: duplicate IDs,
// dangling sequence-flow references, and required attributes. It never
// raises — callers inspect Result.Errors. Validation is lax with respect to
// vendor extensions: the pythmata namespace elements are only checked when
// present.
func Validate(xmlDoc string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	trimmed := strings.TrimSpace(xmlDoc)
	if trimmed == "" {
		result.add(CodeEmptyXML, "XML content is empty", "")
		return result
	}

	var root xmlElement
	if err := xml.Unmarshal([]byte(trimmed), &root); err != nil {
		result.add(CodeXMLParseError, err.Error(), "")
		return result
	}

	process := root.findDeep("process")
	if process == nil {
		result.add(CodeSchemaError, "no <process> element found", "")
		return result
	}
	if process.attr("id") == "" {
		result.add(CodeMissingAttribute, "process element missing required 'id' attribute", "")
	}

	ids := map[string]bool{}
	var walk func(e *xmlElement)
	walk = func(e *xmlElement) {
		if id := e.attr("id"); id != "" {
			if ids[id] {
				result.add(CodeDuplicateID, "duplicate ID '"+id+"' found", id)
			}
			ids[id] = true
		}
		for i := range e.Children {
			walk(&e.Children[i])
		}
	}
	walk(&root)

	var nodeElems, flowElems []*xmlElement
	for i := range process.Children {
		c := &process.Children[i]
		switch c.local() {
		case "sequenceFlow":
			flowElems = append(flowElems, c)
		case "startEvent", "endEvent", "task", "serviceTask", "scriptTask",
			"userTask", "intermediateCatchEvent", "intermediateThrowEvent",
			"boundaryEvent", "exclusiveGateway", "parallelGateway",
			"inclusiveGateway", "subProcess", "transaction", "callActivity":
			nodeElems = append(nodeElems, c)
		}
	}

	if len(nodeElems) > 0 && len(flowElems) == 0 {
		result.add(CodeInvalidStructure, "process contains nodes but no sequence flows", "")
	}

	for _, f := range flowElems {
		src, tgt := f.attr("sourceRef"), f.attr("targetRef")
		if src == "" || tgt == "" {
			result.add(CodeInvalidFlow, "sequence flow '"+f.attr("id")+"' missing source or target reference", f.attr("id"))
			continue
		}
		if !ids[src] || !ids[tgt] {
			result.add(CodeInvalidReference, "sequence flow '"+f.attr("id")+"' references a non-existent node", f.attr("id"))
		}
	}

	for _, n := range nodeElems {
		if ext := n.find("extensionElements"); ext != nil {
			validateExtension(n, ext, result)
		}
	}

	return result
}

// validateExtension checks the pythmata vendor extension shapes.
// Unknown extension elements are not an error — only malformed known ones are.
func validateExtension(owner, ext *xmlElement, result *ValidationResult) {
	if cfg := ext.findDeep("serviceTaskConfig"); cfg != nil && cfg.attr("taskName") == "" {
		result.add(CodeExtensionError, "serviceTaskConfig on '"+owner.attr("id")+"' missing required taskName", owner.attr("id"))
	}
	if cfg := ext.findDeep("timerEventConfig"); cfg != nil {
		if cfg.attr("timerType") == "" || cfg.attr("timerValue") == "" {
			result.add(CodeExtensionError, "timerEventConfig on '"+owner.attr("id")+"' missing timerType or timerValue", owner.attr("id"))
		}
	}
}

// HasCycle performs a depth-first traversal from every start event and
// returns true if a back-edge is found. Cycles are rejected
// unconditionally before execution — loops must be modeled as multi-instance
// activities, since the run loop is a bounded iterator over active tokens.
func (g *ProcessGraph) HasCycle() (bool, string) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		color[n.ID] = white
	}

	var visit func(nodeID string) (bool, string)
	visit = func(nodeID string) (bool, string) {
		color[nodeID] = gray
		for _, f := range g.OutgoingFlows(nodeID) {
			switch color[f.TargetRef] {
			case gray:
				return true, f.TargetRef
			case white:
				if found, at := visit(f.TargetRef); found {
					return true, at
				}
			}
		}
		color[nodeID] = black
		return false, ""
	}

	for _, start := range g.StartEvents() {
		if color[start.ID] == white {
			if found, at := visit(start.ID); found {
				return true, at
			}
		}
	}
	return false, ""
}
