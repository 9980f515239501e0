package executor

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
	"github.com/codeready-toolchain/pythmata/pkg/models"
)

// registerCompensationHandlers checks whether node carries a compensation
// boundary event and, if so, appends an entry to the compensation registry
// so a later throw event can replay it.
func (d *Dispatcher) registerCompensationHandlers(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	for _, boundary := range graph.BoundaryEventsFor(node.ID) {
		if boundary.EventDefinition != bpmn.EventCompensation {
			continue
		}
		handler := handlerForBoundary(graph, boundary.ID)
		if handler == nil {
			continue
		}
		entry := faststore.CompensationEntry{
			ActivityID:      node.ID,
			HandlerID:       handler.ID,
			BoundaryEventID: boundary.ID,
			Snapshot:        map[string]any{"activity_data": tok.Data},
		}
		if err := d.Fast.RegisterCompensation(ctx, tok.InstanceID, entry); err != nil {
			return fmt.Errorf("registering compensation for %s: %w", node.ID, err)
		}
	}
	return nil
}

func handlerForBoundary(graph *bpmn.ProcessGraph, boundaryID string) *bpmn.Node {
	for _, n := range graph.Nodes {
		if n.Kind == bpmn.KindCompensationHandler && n.BoundaryEventID == boundaryID {
			return n
		}
	}
	return nil
}

// dispatchCompensationHandler runs a handler node's script (if any) when it
// was placed in COMPENSATION state; a handler token must never be dispatched
// any other way, since handlers only run as compensation replay.
func (d *Dispatcher) dispatchCompensationHandler(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	if tok.State != models.TokenCompensation {
		return d.Tokens.Consume(ctx, tok)
	}

	if node.Script != "" {
		vars, err := d.Fast.AllVariables(ctx, tok.InstanceID)
		if err != nil {
			return fmt.Errorf("loading variables for compensation handler %s: %w", node.ID, err)
		}
		flat := make(map[string]any, len(vars))
		for k, v := range vars {
			flat[k] = v.Value
		}
		if _, err := d.Scripts.Run(node.Script, flat, tok.Data, 0); err != nil {
			return fmt.Errorf("compensation handler %s failed: %w", node.ID, err)
		}
	}

	if err := d.nodeCompleted(ctx, tok, node.ID, map[string]any{"compensated_activity_id": tok.Data["compensated_activity_id"]}); err != nil {
		return err
	}
	return d.Tokens.Consume(ctx, tok)
}

// throwCompensation replays every registered handler for instanceID in LIFO
// order, running each one synchronously to completion before returning —
// the throw event's own successor flow is only taken once every handler has
// finished; only then is the throw event's own successor flow taken.
func (d *Dispatcher) throwCompensation(ctx context.Context, graph *bpmn.ProcessGraph, definitionID string, tok *models.Token) error {
	entries, err := d.Fast.ListCompensation(ctx, tok.InstanceID)
	if err != nil {
		return fmt.Errorf("listing compensation registry for %s: %w", tok.InstanceID, err)
	}
	for _, entry := range entries {
		handler, ok := graph.NodeByID(entry.HandlerID)
		if !ok {
			d.Log.Warn("compensation handler node missing from graph", "handler", entry.HandlerID, "instance", tok.InstanceID)
			continue
		}
		data := map[string]any{
			"compensated_activity_id": entry.ActivityID,
			"compensation_scope_id":   tok.ScopeID,
		}
		for k, v := range entry.Snapshot {
			data[k] = v
		}
		handlerTok, err := d.Tokens.Place(ctx, tok.InstanceID, handler.ID, tok.ScopeID, models.TokenCompensation, data)
		if err != nil {
			return fmt.Errorf("placing compensation token for %s: %w", entry.HandlerID, err)
		}
		if err := d.Dispatch(ctx, graph, definitionID, handlerTok); err != nil {
			return fmt.Errorf("compensation handler %s: %w", entry.HandlerID, err)
		}
	}
	return nil
}
