package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/models"
)

// dispatchSubProcess enters an embedded subProcess/transaction: it leaves a
// WAITING marker token at the subprocess node itself (so an attached
// boundary event has something to cancel, and dispatchSubProcessEnd has
// something to find once every internal branch finishes) and places a fresh
// token at the subprocess's own start event, one scope segment deeper.
func (d *Dispatcher) dispatchSubProcess(ctx context.Context, graph *bpmn.ProcessGraph, definitionID string, tok *models.Token, node *bpmn.Node) error {
	if node.ContainedStartID == "" {
		return fmt.Errorf("subprocess %s has no contained start event", node.ID)
	}

	if err := d.registerBoundarySubscriptions(ctx, graph, definitionID, tok, node); err != nil {
		return err
	}
	if err := d.registerCompensationHandlers(ctx, graph, tok, node); err != nil {
		return err
	}

	if node.IsTransaction {
		if err := d.Instances.StartTransaction(ctx, tok.InstanceID, node.ID); err != nil {
			return fmt.Errorf("starting transaction %s: %w", node.ID, err)
		}
	}

	return d.enterSubProcessBody(ctx, tok, node)
}

// enterSubProcessBody parks tok as the WAITING marker at the subprocess node
// and places a fresh token at the contained start event, one scope segment
// deeper. Shared between a plain subprocess entry and each per-item child of
// a multi-instance subprocess (the marker keeps the child's mi_* data so
// dispatchSubProcessEnd knows to fold rather than advance).
func (d *Dispatcher) enterSubProcessBody(ctx context.Context, tok *models.Token, node *bpmn.Node) error {
	if node.ContainedStartID == "" {
		return fmt.Errorf("subprocess %s has no contained start event", node.ID)
	}
	childScope := models.ChildScope(tok.ScopeID, node.ID)

	if err := d.Tokens.UpdateState(ctx, tok, models.TokenWaiting); err != nil {
		return fmt.Errorf("parking subprocess marker at %s: %w", node.ID, err)
	}

	_, err := d.Tokens.Place(ctx, tok.InstanceID, node.ContainedStartID, childScope, models.TokenActive, nil)
	if err != nil {
		return fmt.Errorf("entering subprocess %s: %w", node.ID, err)
	}
	return d.nodeCompleted(ctx, tok, node.ID, map[string]any{"status": "entered"})
}

// dispatchCallActivity starts a new process instance for node.CalledElement,
// carrying variables from the caller's scope across. The calling token is
// parked WAITING at the call activity itself; resumeParent (in event.go)
// advances it once the called instance's root token reaches its end event.
func (d *Dispatcher) dispatchCallActivity(ctx context.Context, graph *bpmn.ProcessGraph, definitionID string, tok *models.Token, node *bpmn.Node) error {
	if node.CalledElement == "" {
		return fmt.Errorf("call activity %s has no calledElement", node.ID)
	}

	if err := d.registerBoundarySubscriptions(ctx, graph, definitionID, tok, node); err != nil {
		return err
	}
	if err := d.registerCompensationHandlers(ctx, graph, tok, node); err != nil {
		return err
	}

	vars, err := d.callActivityInputs(ctx, tok, node)
	if err != nil {
		return err
	}

	childInstanceID := newID()
	if _, err := d.Instances.CreateChildInstance(ctx, childInstanceID, node.CalledElement, vars, "", tok.InstanceID, node.ID); err != nil {
		return fmt.Errorf("starting called process %s for call activity %s: %w", node.CalledElement, node.ID, err)
	}

	if err := d.Tokens.UpdateState(ctx, tok, models.TokenWaiting); err != nil {
		return fmt.Errorf("parking call activity %s: %w", node.ID, err)
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, map[string]any{"called_element": node.CalledElement, "child_instance_id": childInstanceID}); err != nil {
		return err
	}
	if d.Timers != nil {
		d.Timers.Submit(childInstanceID)
	}
	return nil
}

// callActivityInputs builds the variable map handed to a called process. With
// an input_vars mapping configured, only the mapped names cross the boundary
// ({childVar: parentVar}, each parentVar resolved through the caller's scope
// chain); without one, every variable visible at the root scope is copied.
func (d *Dispatcher) callActivityInputs(ctx context.Context, tok *models.Token, node *bpmn.Node) (map[string]models.VariableValue, error) {
	if len(node.InputVars) > 0 {
		out := make(map[string]models.VariableValue, len(node.InputVars))
		for childVar, parentVar := range node.InputVars {
			v, ok, err := d.Fast.ResolveVariable(ctx, tok.InstanceID, tok.ScopeID, parentVar)
			if err != nil {
				return nil, fmt.Errorf("resolving input variable %s for call activity %s: %w", parentVar, node.ID, err)
			}
			if !ok {
				d.Log.Warn("call activity input variable not set in caller", "variable", parentVar, "node", node.ID)
				continue
			}
			out[childVar] = v
		}
		return out, nil
	}

	all, err := d.Fast.AllVariables(ctx, tok.InstanceID)
	if err != nil {
		return nil, fmt.Errorf("loading variables to pass into call activity %s: %w", node.ID, err)
	}
	out := make(map[string]models.VariableValue, len(all))
	for k, v := range all {
		if !strings.Contains(k, ":") { // root-scope entries only
			out[k] = v
		}
	}
	return out, nil
}
