package executor

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
	"github.com/codeready-toolchain/pythmata/pkg/expr"
	"github.com/codeready-toolchain/pythmata/pkg/models"
)

// dispatchGateway routes to the exclusive/parallel/inclusive handler.
func (d *Dispatcher) dispatchGateway(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	switch node.Kind {
	case bpmn.KindGatewayExclusive:
		return d.dispatchExclusiveGateway(ctx, graph, tok, node)
	case bpmn.KindGatewayParallel:
		return d.dispatchParallelGateway(ctx, graph, tok, node)
	case bpmn.KindGatewayInclusive:
		return d.dispatchInclusiveGateway(ctx, graph, tok, node)
	default:
		return engineerr.NewExecutorError("node %s: not a gateway", node.ID)
	}
}

// evaluateFlows returns, in declaration order, the IDs of outgoing flows
// whose condition is truthy, plus the default flow (if any). Non-default
// flows with no condition are treated as always-true.
func (d *Dispatcher) evaluateFlows(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) (truthy []*bpmn.SequenceFlow, defaultFlow *bpmn.SequenceFlow, err error) {
	evalCtx, err := d.exprContext(ctx, tok)
	if err != nil {
		return nil, nil, err
	}
	for _, flow := range graph.OutgoingFlows(node.ID) {
		if flow.ID == node.DefaultFlow {
			defaultFlow = flow
			continue
		}
		if flow.ConditionExpression == "" {
			truthy = append(truthy, flow)
			continue
		}
		ok, err := expr.Evaluate(flow.ConditionExpression, evalCtx)
		if err != nil {
			return nil, nil, engineerr.WrapExpressionError(err, "evaluating condition on flow %s", flow.ID)
		}
		if ok {
			truthy = append(truthy, flow)
		}
	}
	return truthy, defaultFlow, nil
}

// dispatchExclusiveGateway takes the first truthy flow in declaration
// order, falling back to the default flow.
func (d *Dispatcher) dispatchExclusiveGateway(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	truthy, defaultFlow, err := d.evaluateFlows(ctx, graph, tok, node)
	if err != nil {
		return err
	}
	var target string
	switch {
	case len(truthy) > 0:
		target = truthy[0].TargetRef
	case defaultFlow != nil:
		target = defaultFlow.TargetRef
	default:
		return &engineerr.NoValidPathError{NodeID: node.ID}
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
		return err
	}
	_, err = d.Tokens.Move(ctx, tok, target)
	return err
}

// dispatchParallelGateway: a join (>1 incoming) waits for every branch to
// arrive before collapsing to one successor token; a split (<=1 incoming)
// fans out to every outgoing flow.
func (d *Dispatcher) dispatchParallelGateway(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	incoming := graph.IncomingFlows(node.ID)
	if len(incoming) > 1 {
		return d.joinParallel(ctx, graph, tok, node, len(incoming))
	}

	outgoing := graph.OutgoingFlows(node.ID)
	targets := make([]string, len(outgoing))
	for i, f := range outgoing {
		targets[i] = f.TargetRef
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
		return err
	}
	_, err := d.Tokens.Split(ctx, tok, targets)
	return err
}

// joinParallel parks tok as WAITING until every incoming branch has
// arrived at node, then consumes all arrivals and places a single new
// token on the outgoing flow.
func (d *Dispatcher) joinParallel(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node, required int) error {
	arrived, err := d.Tokens.TokensAtNode(ctx, tok.InstanceID, node.ID)
	if err != nil {
		return fmt.Errorf("loading arrivals at gateway %s: %w", node.ID, err)
	}
	active := activeAt(arrived, tok.ScopeID)
	if len(active) < required {
		return d.Tokens.UpdateState(ctx, tok, models.TokenWaiting)
	}

	for _, a := range active {
		if err := d.Tokens.Consume(ctx, a); err != nil {
			return fmt.Errorf("consuming join arrival at %s: %w", node.ID, err)
		}
	}
	outgoing := graph.OutgoingFlows(node.ID)
	if len(outgoing) == 0 {
		d.Log.Warn("parallel join has no outgoing flow", "node", node.ID, "instance", tok.InstanceID)
		return nil
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
		return err
	}
	_, err = d.Tokens.Place(ctx, tok.InstanceID, outgoing[0].TargetRef, tok.ScopeID, models.TokenActive, tok.Data)
	return err
}

func activeAt(tokens []*models.Token, scopeID string) []*models.Token {
	var out []*models.Token
	for _, t := range tokens {
		if t.ScopeID == scopeID && (t.State == models.TokenActive || t.State == models.TokenWaiting) {
			out = append(out, t)
		}
	}
	return out
}

// dispatchInclusiveGateway: a join waits for every branch taken by the
// matching split (tracked via token.Data["active_flows"]); a split takes
// every truthy flow (or the default, if none) and stamps the chosen set
// onto each resulting token for the join to synchronize against.
func (d *Dispatcher) dispatchInclusiveGateway(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	incoming := graph.IncomingFlows(node.ID)
	if len(incoming) > 1 {
		return d.joinInclusive(ctx, graph, tok, node)
	}
	return d.splitInclusive(ctx, graph, tok, node)
}

func (d *Dispatcher) splitInclusive(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	truthy, defaultFlow, err := d.evaluateFlows(ctx, graph, tok, node)
	if err != nil {
		return err
	}
	if len(truthy) == 0 && defaultFlow != nil {
		truthy = append(truthy, defaultFlow)
	}
	if len(truthy) == 0 {
		return &engineerr.NoValidPathError{NodeID: node.ID}
	}

	activeFlows := make([]string, len(truthy))
	targets := make([]string, len(truthy))
	for i, f := range truthy {
		activeFlows[i] = f.ID
		targets[i] = f.TargetRef
	}
	tok.Data["active_flows"] = activeFlows

	if err := d.nodeCompleted(ctx, tok, node.ID, map[string]any{"active_flows": activeFlows}); err != nil {
		return err
	}
	_, err = d.Tokens.Split(ctx, tok, targets)
	return err
}

func (d *Dispatcher) joinInclusive(ctx context.Context, graph *bpmn.ProcessGraph, tok *models.Token, node *bpmn.Node) error {
	arrived, err := d.Tokens.TokensAtNode(ctx, tok.InstanceID, node.ID)
	if err != nil {
		return fmt.Errorf("loading arrivals at gateway %s: %w", node.ID, err)
	}
	active := activeAt(arrived, tok.ScopeID)

	expected := map[string]bool{}
	for _, a := range active {
		if flows, ok := a.Data["active_flows"].([]any); ok {
			for _, f := range flows {
				if s, ok := f.(string); ok {
					expected[s] = true
				}
			}
		} else if flows, ok := a.Data["active_flows"].([]string); ok {
			for _, s := range flows {
				expected[s] = true
			}
		}
	}
	if len(expected) == 0 || len(active) < len(expected) {
		return d.Tokens.UpdateState(ctx, tok, models.TokenWaiting)
	}

	for _, a := range active {
		if err := d.Tokens.Consume(ctx, a); err != nil {
			return fmt.Errorf("consuming inclusive join arrival at %s: %w", node.ID, err)
		}
	}
	outgoing := graph.OutgoingFlows(node.ID)
	if len(outgoing) == 0 {
		d.Log.Warn("inclusive join has no outgoing flow", "node", node.ID, "instance", tok.InstanceID)
		return nil
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
		return err
	}
	_, err = d.Tokens.Place(ctx, tok.InstanceID, outgoing[0].TargetRef, tok.ScopeID, models.TokenActive, nil)
	return err
}
