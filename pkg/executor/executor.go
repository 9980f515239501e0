// Package executor implements the node executors: the per-Kind behavior
// invoked once a token has been moved onto a node. One Dispatcher carries a
// handler per NodeKind so the run loop (pkg/scheduler) has a single entry
// point per token.
package executor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/pythmata/ent/activitylog"
	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
	"github.com/codeready-toolchain/pythmata/pkg/expr"
	"github.com/codeready-toolchain/pythmata/pkg/faststore"
	"github.com/codeready-toolchain/pythmata/pkg/instance"
	"github.com/codeready-toolchain/pythmata/pkg/models"
	"github.com/codeready-toolchain/pythmata/pkg/script"
	"github.com/codeready-toolchain/pythmata/pkg/servicetask"
	"github.com/codeready-toolchain/pythmata/pkg/token"

	"github.com/google/uuid"
)

// TimerScheduler is the narrow interface the Dispatcher needs from
// pkg/scheduler: register/cancel a timer job for a specific instance+node,
// and hand an instance to the run-loop worker pool (a call activity starting
// a child, or a child's end event resuming its caller). Kept as an interface
// here (rather than importing pkg/scheduler directly) to avoid a cycle —
// pkg/scheduler imports pkg/executor, not vice versa.
type TimerScheduler interface {
	Schedule(ctx context.Context, instanceID, definitionID, nodeID string, def *bpmn.TimerDefinition) error
	Cancel(ctx context.Context, instanceID, nodeID string) error
	Submit(instanceID string)
}

// Dispatcher routes an ACTIVE token to the behavior for its current node.
type Dispatcher struct {
	Tokens     *token.Manager
	Fast       *faststore.Store
	Instances  *instance.Manager
	Scripts    *script.Env
	Services   *servicetask.Registry
	Timers     TimerScheduler
	Log        *slog.Logger
}

func New(tokens *token.Manager, fast *faststore.Store, instances *instance.Manager, scripts *script.Env, services *servicetask.Registry, timers TimerScheduler, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{Tokens: tokens, Fast: fast, Instances: instances, Scripts: scripts, Services: services, Timers: timers, Log: log}
}

// Dispatch runs the node behavior for tok, which must currently be ACTIVE.
// graph is the ProcessGraph backing tok.InstanceID, loaded once per run-loop
// pass by the caller (pkg/scheduler).
func (d *Dispatcher) Dispatch(ctx context.Context, graph *bpmn.ProcessGraph, definitionID string, tok *models.Token) error {
	node, ok := graph.NodeByID(tok.NodeID)
	if !ok {
		return engineerr.NewExecutorError("token %s references unknown node %s", tok.ID, tok.NodeID)
	}

	if err := d.Instances.WriteActivityLog(ctx, tok.InstanceID, activitylog.ActivityTypeNODE_ENTERED, node.ID, nil); err != nil {
		return err
	}

	var err error
	switch {
	case node.Kind == bpmn.KindStartEvent:
		err = d.dispatchStartEvent(ctx, graph, tok, node)
	case node.Kind == bpmn.KindEndEvent:
		err = d.dispatchEndEvent(ctx, graph, definitionID, tok, node)
	case node.MultiInstance != nil && (node.Kind == bpmn.KindTask || node.Kind == bpmn.KindScriptTask || node.Kind == bpmn.KindServiceTask || node.Kind == bpmn.KindSubProcess):
		err = d.dispatchMultiInstanceActivity(ctx, graph, definitionID, tok, node)
	case node.Kind == bpmn.KindTask:
		err = d.dispatchTask(ctx, graph, definitionID, tok, node)
	case node.Kind == bpmn.KindScriptTask:
		err = d.dispatchScriptTask(ctx, graph, definitionID, tok, node)
	case node.Kind == bpmn.KindServiceTask:
		err = d.dispatchServiceTask(ctx, graph, definitionID, tok, node)
	case node.Kind == bpmn.KindGatewayExclusive, node.Kind == bpmn.KindGatewayParallel, node.Kind == bpmn.KindGatewayInclusive:
		err = d.dispatchGateway(ctx, graph, tok, node)
	case node.Kind == bpmn.KindIntermediateEvent, node.Kind == bpmn.KindBoundaryEvent:
		err = d.dispatchIntermediateOrBoundary(ctx, graph, definitionID, tok, node)
	case node.Kind == bpmn.KindSubProcess:
		err = d.dispatchSubProcess(ctx, graph, definitionID, tok, node)
	case node.Kind == bpmn.KindCallActivity:
		err = d.dispatchCallActivity(ctx, graph, definitionID, tok, node)
	case node.Kind == bpmn.KindCompensationHandler:
		err = d.dispatchCompensationHandler(ctx, graph, tok, node)
	default:
		err = engineerr.NewExecutorError("node %s: unsupported kind %s", node.ID, node.Kind)
	}

	if err != nil {
		if errorBoundaryEligible(node.Kind) {
			handled, berr := d.tryErrorBoundary(ctx, graph, tok, node, err)
			if berr != nil {
				return berr
			}
			if handled {
				return nil
			}
		}
		_ = d.Instances.WriteActivityLog(ctx, tok.InstanceID, activitylog.ActivityTypeNODE_ERROR, node.ID, map[string]any{"error": err.Error()})
		return err
	}
	return nil
}

func errorBoundaryEligible(kind bpmn.NodeKind) bool {
	switch kind {
	case bpmn.KindTask, bpmn.KindScriptTask, bpmn.KindServiceTask, bpmn.KindSubProcess, bpmn.KindCallActivity:
		return true
	default:
		return false
	}
}

// tryErrorBoundary moves tok onto an attached error boundary event's
// outgoing flow instead of propagating cause to the instance, if node has
// one.
func (d *Dispatcher) tryErrorBoundary(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node, cause error) (bool, error) {
	for _, b := range graph.BoundaryEventsFor(node.ID) {
		if b.EventDefinition != bpmn.EventError {
			continue
		}
		flows := graph.OutgoingFlows(b.ID)
		if len(flows) == 0 {
			continue
		}
		if _, err := d.Tokens.Move(ctx, tok, flows[0].TargetRef); err != nil {
			return false, err
		}
		_ = d.Instances.WriteActivityLog(ctx, tok.InstanceID, activitylog.ActivityTypeNODE_ERROR, node.ID,
			map[string]any{"error": cause.Error(), "handled_by": b.ID})
		return true, nil
	}
	return false, nil
}

// moveSingle advances tok along its node's one-and-only outgoing flow — the
// common case for tasks and events with exactly one exit (tasks with
// multiple outgoing flows must be preceded by an explicit gateway, not
// auto-split by the executor).
func (d *Dispatcher) moveSingle(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	flows := graph.OutgoingFlows(node.ID)
	if len(flows) == 0 {
		d.Log.Warn("node has no outgoing flow; token left in place", "node", node.ID, "instance", tok.InstanceID)
		return nil
	}
	_, err := d.Tokens.Move(ctx, tok, flows[0].TargetRef)
	return err
}

// nodeCompleted is a thin wrapper so every node kind logs NODE_COMPLETED the
// same way before handing control back to the run loop.
func (d *Dispatcher) nodeCompleted(ctx context.Context, tok *models.Token, nodeID string, details map[string]any) error {
	return d.Instances.WriteActivityLog(ctx, tok.InstanceID, activitylog.ActivityTypeNODE_COMPLETED, nodeID, details)
}

// exprContext builds the evaluation context for gateway conditions and
// completion conditions: every variable visible from the token's scope,
// flattened to its bare name with the innermost declaration winning, plus
// the token's own data fields.
func (d *Dispatcher) exprContext(ctx context.Context, tok *models.Token) (expr.Context, error) {
	vars, err := d.Fast.AllVariables(ctx, tok.InstanceID)
	if err != nil {
		return nil, fmt.Errorf("loading variables for %s: %w", tok.InstanceID, err)
	}

	// Hash fields are "{scope}:{name}" (bare "{name}" at the root). Group by
	// scope first, then overlay outermost -> innermost so the innermost
	// declaration of a name shadows its ancestors.
	byScope := map[string]map[string]any{}
	for k, v := range vars {
		scope, name := "", k
		if idx := strings.LastIndex(k, ":"); idx >= 0 {
			scope, name = k[:idx], k[idx+1:]
		}
		if byScope[scope] == nil {
			byScope[scope] = map[string]any{}
		}
		byScope[scope][name] = v.Value
	}

	evalCtx := expr.Context{}
	chain := models.ScopeChain(tok.ScopeID)
	for i := len(chain) - 1; i >= 0; i-- {
		for name, value := range byScope[chain[i]] {
			evalCtx[name] = value
		}
	}
	for k, v := range tok.Data {
		evalCtx[k] = v
	}
	return evalCtx, nil
}

// inferValueType maps a decoded Go value (from CEL or JSON) onto the
// declared-type tag the durable/fast variable stores require.
func inferValueType(v any) models.ValueType {
	switch v.(type) {
	case bool:
		return models.ValueTypeBoolean
	case string:
		return models.ValueTypeString
	case int, int64:
		return models.ValueTypeInteger
	case float64, float32:
		return models.ValueTypeFloat
	default:
		return models.ValueTypeJSON
	}
}

func newID() string { return uuid.New().String() }
