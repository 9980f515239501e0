package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/expr"
	"github.com/codeready-toolchain/pythmata/pkg/models"
)

// dispatchMultiInstanceActivity intercepts any Task/ScriptTask/ServiceTask/
// SubProcess carrying loop characteristics, ahead of the plain per-kind
// handler: an unexpanded arrival is split into per-item scoped tokens
// (parallel) or the first sequential instance; a per-item arrival (tagged
// mi_index) runs the activity body once and then folds back into the shared
// completion counter.
func (d *Dispatcher) dispatchMultiInstanceActivity(ctx context.Context, graph *bpmn.ProcessGraph, definitionID string, tok *models.Token, node *bpmn.Node) error {
	if _, expanded := tok.Data["mi_index"]; !expanded {
		// Boundary/compensation wiring applies to the activity as a whole,
		// not to each per-item child, so it runs once here at group entry.
		if err := d.registerBoundarySubscriptions(ctx, graph, definitionID, tok, node); err != nil {
			return err
		}
		if err := d.registerCompensationHandlers(ctx, graph, tok, node); err != nil {
			return err
		}
		return d.expandMultiInstance(ctx, graph, tok, node)
	}

	if node.Kind == bpmn.KindSubProcess {
		// A per-item subprocess child enters the subprocess body; the fold
		// back into the counter happens at the subprocess's end event
		// (dispatchSubProcessEnd detects the mi-tagged marker).
		return d.enterSubProcessBody(ctx, tok, node)
	}
	return d.runMultiInstanceChild(ctx, graph, tok, node)
}

func (d *Dispatcher) expandMultiInstance(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	mi := node.MultiInstance
	collection, err := d.resolveCollection(ctx, tok, mi)
	if err != nil {
		return err
	}
	total := len(collection)

	if total == 0 {
		// Empty collection: skip the activity entirely and emit the
		// successor immediately.
		return d.skipEmptyMultiInstance(ctx, graph, tok, node)
	}

	if err := d.Fast.InitMultiInstance(ctx, tok.InstanceID, node.ID, total); err != nil {
		return fmt.Errorf("initializing multi-instance counter for %s: %w", node.ID, err)
	}

	parentScope := tok.ScopeID
	if err := d.Tokens.Consume(ctx, tok); err != nil {
		return err
	}

	if mi.Parallel {
		for i, item := range collection {
			data := childItemData(tok.Data, item, i, total, parentScope, true)
			scope := models.ChildScope(parentScope, models.MultiInstanceSegment(node.ID, i))
			if _, err := d.Tokens.Place(ctx, tok.InstanceID, node.ID, scope, models.TokenActive, data); err != nil {
				return fmt.Errorf("placing multi-instance child %d for %s: %w", i, node.ID, err)
			}
		}
		return nil
	}

	// Sequential: only the first instance becomes active now; each fold
	// creates the next.
	data := childItemData(tok.Data, collection[0], 0, total, parentScope, false)
	scope := models.ChildScope(parentScope, models.MultiInstanceSegment(node.ID, 0))
	_, err = d.Tokens.Place(ctx, tok.InstanceID, node.ID, scope, models.TokenActive, data)
	return err
}

func childItemData(base map[string]any, item any, index, total int, parentScope string, parallel bool) map[string]any {
	data := cloneData(base)
	data["item"] = item
	data["index"] = index
	data["mi_index"] = index
	data["mi_total"] = total
	data["parent_scope"] = parentScope
	data["is_parallel"] = parallel
	return data
}

func (d *Dispatcher) skipEmptyMultiInstance(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	if err := d.Tokens.Consume(ctx, tok); err != nil {
		return err
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, map[string]any{"skipped": "empty_collection"}); err != nil {
		return err
	}
	outgoing := graph.OutgoingFlows(node.ID)
	if len(outgoing) == 0 {
		d.Log.Warn("multi-instance activity has no outgoing flow", "node", node.ID, "instance", tok.InstanceID)
		return nil
	}
	_, err := d.Tokens.Place(ctx, tok.InstanceID, outgoing[0].TargetRef, tok.ScopeID, models.TokenActive, nil)
	return err
}

func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

// resolveCollection reads the loop collection from the scope's variables —
// a literal cardinality is treated as a range [0, n).
func (d *Dispatcher) resolveCollection(ctx context.Context, tok *models.Token, mi *bpmn.MultiInstance) ([]any, error) {
	if mi.CollectionRef != "" {
		v, ok, err := d.Fast.ResolveVariable(ctx, tok.InstanceID, tok.ScopeID, mi.CollectionRef)
		if err != nil {
			return nil, fmt.Errorf("resolving multi-instance collection %s: %w", mi.CollectionRef, err)
		}
		if !ok {
			return nil, fmt.Errorf("multi-instance collection variable %s not found", mi.CollectionRef)
		}
		items, ok := v.Value.([]any)
		if !ok {
			return nil, fmt.Errorf("multi-instance collection %s is not an array", mi.CollectionRef)
		}
		return items, nil
	}
	if mi.Cardinality != "" {
		n, err := parseCardinality(mi.Cardinality)
		if err != nil {
			return nil, err
		}
		items := make([]any, n)
		for i := range items {
			items[i] = i
		}
		return items, nil
	}
	return nil, fmt.Errorf("multi-instance activity has neither a collection nor a cardinality")
}

func parseCardinality(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("parsing loopCardinality %q: %w", s, err)
	}
	return n, nil
}

// runMultiInstanceChild executes the activity's normal body for one item,
// then folds the completed child back into the shared counter.
func (d *Dispatcher) runMultiInstanceChild(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	if err := d.runActivityBody(ctx, tok, node); err != nil {
		return err
	}
	if err := d.Tokens.UpdateState(ctx, tok, models.TokenCompleted); err != nil {
		return err
	}
	if err := d.Tokens.Consume(ctx, tok); err != nil {
		return err
	}
	return d.foldCompletedChild(ctx, graph, tok, node)
}

// foldCompletedChild advances the multi-instance group after one child's
// completion: parallel children bump the shared counter and check the
// completion condition; sequential children start the next index. The child's
// own token has already been removed by the caller.
func (d *Dispatcher) foldCompletedChild(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	mi := node.MultiInstance

	if mi.Parallel {
		completed, total, err := d.Fast.IncrMultiInstanceCompleted(ctx, tok.InstanceID, node.ID)
		if err != nil {
			return fmt.Errorf("incrementing multi-instance counter for %s: %w", node.ID, err)
		}
		done := completed >= total
		if !done && mi.CompletionCondition != "" {
			// Completion condition sees `count` = number of COMPLETED
			// children, read fresh from the shared counter.
			evalCtx, err := d.exprContext(ctx, tok)
			if err != nil {
				return err
			}
			evalCtx["count"] = float64(completed)
			done, err = expr.Evaluate(mi.CompletionCondition, evalCtx)
			if err != nil {
				return fmt.Errorf("evaluating completion condition for %s: %w", node.ID, err)
			}
			if done {
				if err := d.cancelOutstandingChildren(ctx, tok, node); err != nil {
					return err
				}
			}
		}
		if !done {
			return nil
		}
		return d.completeMultiInstance(ctx, graph, tok, node)
	}

	// Sequential: advance to the next index, or finish.
	total := intField(tok.Data, "mi_total")
	index := intField(tok.Data, "mi_index")
	next := index + 1
	if next >= total {
		return d.completeMultiInstance(ctx, graph, tok, node)
	}
	parentScope := parentScopeOf(tok)
	v, ok, err := d.Fast.ResolveVariable(ctx, tok.InstanceID, parentScope, mi.CollectionRef)
	if err != nil {
		return fmt.Errorf("re-resolving sequential collection for %s: %w", node.ID, err)
	}
	var item any = next
	if ok {
		if collection, isSlice := v.Value.([]any); isSlice && next < len(collection) {
			item = collection[next]
		}
	}
	data := childItemData(tok.Data, item, next, total, parentScope, false)
	scope := models.ChildScope(parentScope, models.MultiInstanceSegment(node.ID, next))
	_, err = d.Tokens.Place(ctx, tok.InstanceID, node.ID, scope, models.TokenActive, data)
	return err
}

// cancelOutstandingChildren removes every still-live token inside the
// multi-instance group's child scopes, once a completion condition has been
// met before all children finished.
func (d *Dispatcher) cancelOutstandingChildren(ctx context.Context, tok *models.Token, node *bpmn.Node) error {
	prefix := models.ChildScope(parentScopeOf(tok), node.ID+"_instance_")
	all, err := d.Tokens.All(ctx, tok.InstanceID)
	if err != nil {
		return err
	}
	for _, t := range all {
		if strings.HasPrefix(t.ScopeID, prefix) && (t.State == models.TokenActive || t.State == models.TokenWaiting) {
			if err := d.Tokens.Consume(ctx, t); err != nil {
				return fmt.Errorf("cancelling outstanding multi-instance child at %s: %w", t.NodeID, err)
			}
		}
	}
	return nil
}

// completeMultiInstance collapses the group and places a single successor
// token in the parent scope, with the per-item fields stripped.
func (d *Dispatcher) completeMultiInstance(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	if err := d.Fast.ClearMultiInstance(ctx, tok.InstanceID, node.ID); err != nil {
		return fmt.Errorf("clearing multi-instance counter for %s: %w", node.ID, err)
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
		return err
	}
	outgoing := graph.OutgoingFlows(node.ID)
	if len(outgoing) == 0 {
		d.Log.Warn("multi-instance activity has no outgoing flow", "node", node.ID, "instance", tok.InstanceID)
		return nil
	}
	_, err := d.Tokens.Place(ctx, tok.InstanceID, outgoing[0].TargetRef, parentScopeOf(tok), models.TokenActive, nil)
	return err
}

// parentScopeOf recovers the scope the multi-instance group was entered in.
// Children carry it explicitly in data (the token's own ScopeID has the
// per-item segment appended).
func parentScopeOf(tok *models.Token) string {
	if s, ok := tok.Data["parent_scope"].(string); ok {
		return s
	}
	return models.ParentScope(tok.ScopeID)
}

func intField(data map[string]any, key string) int {
	switch n := data[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
