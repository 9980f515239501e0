package executor

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/models"
)

// dispatchStartEvent is a no-op pass-through: the instance manager already
// planted this token ACTIVE here, so there's nothing left to do but advance.
func (d *Dispatcher) dispatchStartEvent(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
		return err
	}
	return d.moveSingle(ctx, graph, tok, node)
}

// dispatchEndEvent consumes the token, replays compensation if this is a
// compensation end event, resumes a waiting caller if this is a called
// process's root, and completes the instance once no tokens remain.
// An end event nested inside a subProcess/transaction (node.ContainerID set)
// never terminates the whole instance directly: it only pops the subprocess's
// scope once every token inside it has finished, per dispatchSubProcessEnd.
func (d *Dispatcher) dispatchEndEvent(ctx context.Context, graph *bpmn.ProcessGraph, definitionID string, tok *models.Token, node *bpmn.Node) error {
	if node.EventDefinition == bpmn.EventCompensation {
		if err := d.throwCompensation(ctx, graph, definitionID, tok); err != nil {
			return err
		}
	}

	if node.ContainerID != "" {
		return d.dispatchSubProcessEnd(ctx, graph, tok, node)
	}

	if err := d.Tokens.Consume(ctx, tok); err != nil {
		return err
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
		return err
	}

	if tok.ParentInstanceID != "" {
		if err := d.resumeParent(ctx, tok); err != nil {
			return err
		}
	}

	remaining, err := d.Tokens.All(ctx, tok.InstanceID)
	if err != nil {
		return fmt.Errorf("checking remaining tokens for %s: %w", tok.InstanceID, err)
	}
	if len(remaining) == 0 {
		return d.Instances.CompleteInstance(ctx, tok.InstanceID)
	}
	return nil
}

// dispatchSubProcessEnd runs when a token reaches an end event nested inside
// a subProcess/transaction: the subprocess only completes once every token
// inside its scope has finished, at which point its marker token is
// consumed and a single successor token resumes the parent scope.
func (d *Dispatcher) dispatchSubProcessEnd(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	if err := d.Tokens.Consume(ctx, tok); err != nil {
		return err
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
		return err
	}

	remaining, err := d.Tokens.TokensInScope(ctx, tok.InstanceID, tok.ScopeID)
	if err != nil {
		return fmt.Errorf("checking remaining subprocess tokens for scope %s: %w", tok.ScopeID, err)
	}
	if len(remaining) > 0 {
		return nil
	}

	container, ok := graph.NodeByID(node.ContainerID)
	if !ok {
		return fmt.Errorf("subprocess container %s not found in graph", node.ContainerID)
	}
	parentScope := models.ParentScope(tok.ScopeID)

	markers, err := d.Tokens.TokensAtNode(ctx, tok.InstanceID, container.ID)
	if err != nil {
		return fmt.Errorf("loading subprocess marker at %s: %w", container.ID, err)
	}
	var marker *models.Token
	for _, mkr := range markers {
		if mkr.ScopeID == parentScope && mkr.State == models.TokenWaiting {
			if err := d.Tokens.Consume(ctx, mkr); err != nil {
				return fmt.Errorf("consuming subprocess marker %s: %w", container.ID, err)
			}
			marker = mkr
			break
		}
	}

	if container.IsTransaction {
		if err := d.Instances.CompleteTransaction(ctx, tok.InstanceID); err != nil {
			return fmt.Errorf("completing transaction %s: %w", container.ID, err)
		}
	}

	if marker != nil && container.MultiInstance != nil {
		if _, expanded := marker.Data["mi_index"]; expanded {
			// Per-item child of a multi-instance subprocess: fold into the
			// group instead of advancing the container's outgoing flow.
			return d.foldCompletedChild(ctx, graph, marker, container)
		}
	}

	if err := d.nodeCompleted(ctx, tok, container.ID, nil); err != nil {
		return err
	}

	outgoing := graph.OutgoingFlows(container.ID)
	if len(outgoing) == 0 {
		d.Log.Warn("subprocess has no outgoing flow", "node", container.ID, "instance", tok.InstanceID)
		return nil
	}
	_, err = d.Tokens.Place(ctx, tok.InstanceID, outgoing[0].TargetRef, parentScope, models.TokenActive, nil)
	return err
}

// resumeParent advances the caller's waiting token past its call activity
// once the called process's root token reaches an end event, first copying
// the configured output variables from the child instance back into the
// caller's scope.
func (d *Dispatcher) resumeParent(ctx context.Context, tok *models.Token) error {
	parentGraph, err := d.Instances.LoadGraph(ctx, tok.ParentInstanceID)
	if err != nil {
		return fmt.Errorf("loading parent graph for %s: %w", tok.ParentInstanceID, err)
	}
	parentNode, ok := parentGraph.NodeByID(tok.ParentActivityID)
	if !ok {
		return fmt.Errorf("parent activity %s not found in parent graph", tok.ParentActivityID)
	}
	waiting, err := d.Tokens.TokensAtNode(ctx, tok.ParentInstanceID, tok.ParentActivityID)
	if err != nil {
		return fmt.Errorf("loading parent tokens at %s: %w", tok.ParentActivityID, err)
	}
	for _, w := range waiting {
		if w.State != models.TokenWaiting {
			continue
		}
		if err := d.copyOutputVars(ctx, tok.InstanceID, tok.ParentInstanceID, w.ScopeID, parentNode); err != nil {
			return err
		}
		if err := d.Tokens.UpdateState(ctx, w, models.TokenActive); err != nil {
			return fmt.Errorf("reactivating parent token at %s: %w", tok.ParentActivityID, err)
		}
		if err := d.moveSingle(ctx, parentGraph, w, parentNode); err != nil {
			return fmt.Errorf("resuming parent instance %s: %w", tok.ParentInstanceID, err)
		}
		if d.Timers != nil {
			d.Timers.Submit(tok.ParentInstanceID)
		}
		return nil
	}
	d.Log.Warn("no waiting parent token found for call activity resume", "parent_instance", tok.ParentInstanceID, "activity", tok.ParentActivityID)
	return nil
}

// copyOutputVars applies a call activity's output_vars mapping: for each
// {parentVar: childVar} pair, read childVar from the child instance's root
// scope and write parentVar into the caller's scope. Runs before the child's
// fast-store state is cleared by instance completion.
func (d *Dispatcher) copyOutputVars(ctx context.Context, childInstanceID, parentInstanceID, parentScope string, parentNode *bpmn.Node) error {
	for parentVar, childVar := range parentNode.OutputVars {
		v, ok, err := d.Fast.ResolveVariable(ctx, childInstanceID, "", childVar)
		if err != nil {
			return fmt.Errorf("reading output variable %s from child %s: %w", childVar, childInstanceID, err)
		}
		if !ok {
			d.Log.Warn("call activity output variable not set in child", "variable", childVar, "child_instance", childInstanceID)
			continue
		}
		if err := d.Instances.SetVariable(ctx, parentInstanceID, parentScope, parentVar, v); err != nil {
			return fmt.Errorf("writing output variable %s to parent %s: %w", parentVar, parentInstanceID, err)
		}
	}
	return nil
}

// dispatchIntermediateOrBoundary covers intermediate catch/throw events and
// boundary events, branching on EventDefinition.
func (d *Dispatcher) dispatchIntermediateOrBoundary(ctx context.Context, graph *bpmn.ProcessGraph, definitionID string, tok *models.Token, node *bpmn.Node) error {
	if node.Kind == bpmn.KindBoundaryEvent {
		return d.dispatchBoundaryFired(ctx, graph, tok, node)
	}

	switch node.EventDefinition {
	case bpmn.EventNone:
		if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
			return err
		}
		return d.moveSingle(ctx, graph, tok, node)

	case bpmn.EventTimer:
		// A re-dispatch after the scheduler flipped the token back to ACTIVE
		// means the timer fired: advance instead of re-scheduling.
		if tok.Data["resolved_event"] == node.ID {
			if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
				return err
			}
			return d.moveSingle(ctx, graph, tok, node)
		}
		if d.Timers == nil {
			return fmt.Errorf("intermediate timer event %s: no timer scheduler configured", node.ID)
		}
		if err := d.registerBoundarySubscriptions(ctx, graph, definitionID, tok, node); err != nil {
			return err
		}
		if err := d.Timers.Schedule(ctx, tok.InstanceID, definitionID, node.ID, node.Timer); err != nil {
			return fmt.Errorf("scheduling timer for %s: %w", node.ID, err)
		}
		return d.Tokens.UpdateState(ctx, tok, models.TokenWaiting)

	case bpmn.EventMessage:
		if tok.Data["resolved_event"] == node.ID {
			if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
				return err
			}
			return d.moveSingle(ctx, graph, tok, node)
		}
		if err := d.registerBoundarySubscriptions(ctx, graph, definitionID, tok, node); err != nil {
			return err
		}
		correlation, _ := tok.Data["correlation_value"].(string)
		if err := d.Fast.SubscribeMessage(ctx, node.EventName, tok.InstanceID, node.ID, correlation); err != nil {
			return fmt.Errorf("subscribing message %s: %w", node.EventName, err)
		}
		return d.Tokens.UpdateState(ctx, tok, models.TokenWaiting)

	case bpmn.EventSignal:
		if tok.Data["resolved_event"] == node.ID {
			if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
				return err
			}
			return d.moveSingle(ctx, graph, tok, node)
		}
		if err := d.registerBoundarySubscriptions(ctx, graph, definitionID, tok, node); err != nil {
			return err
		}
		correlation, _ := tok.Data["correlation_value"].(string)
		if err := d.Fast.SubscribeSignal(ctx, node.EventName, tok.InstanceID, node.ID, correlation); err != nil {
			return fmt.Errorf("subscribing signal %s: %w", node.EventName, err)
		}
		return d.Tokens.UpdateState(ctx, tok, models.TokenWaiting)

	case bpmn.EventCompensation:
		if err := d.throwCompensation(ctx, graph, definitionID, tok); err != nil {
			return err
		}
		if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
			return err
		}
		return d.moveSingle(ctx, graph, tok, node)

	case bpmn.EventError:
		// An error end/intermediate throw — propagate as an executor error so
		// the containing activity's error-boundary handling (or instance
		// ERROR state, absent one) takes over.
		return fmt.Errorf("error event %s thrown", node.ID)

	default:
		return fmt.Errorf("intermediate event %s: unsupported event definition %q", node.ID, node.EventDefinition)
	}
}

// dispatchBoundaryFired runs once a previously-registered boundary
// subscription/timer has actually fired and the scheduler has moved a token
// onto the boundary node itself. Interrupting boundaries cancel the
// attached activity's own token before taking the boundary's outgoing flow.
func (d *Dispatcher) dispatchBoundaryFired(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	if node.Interrupting {
		attached, err := d.Tokens.TokensAtNode(ctx, tok.InstanceID, node.AttachedTo)
		if err != nil {
			return fmt.Errorf("loading attached-activity tokens for %s: %w", node.AttachedTo, err)
		}
		for _, a := range attached {
			if a.State == models.TokenActive || a.State == models.TokenWaiting {
				if err := d.Tokens.Consume(ctx, a); err != nil {
					return fmt.Errorf("cancelling attached activity %s: %w", node.AttachedTo, err)
				}
			}
		}
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
		return err
	}
	return d.moveSingle(ctx, graph, tok, node)
}
