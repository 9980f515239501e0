package executor

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/pythmata/ent/activitylog"
	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/models"
	"github.com/codeready-toolchain/pythmata/pkg/script"
	"github.com/codeready-toolchain/pythmata/pkg/servicetask"
)

// runActivityBody executes one item's worth of work for an activity, with
// no logging/advance of its own — the shared core a multi-instance child
// re-enters once per item instead of going through the full dispatchX path.
func (d *Dispatcher) runActivityBody(ctx context.Context, tok *models.Token, node *bpmn.Node) error {
	switch node.Kind {
	case bpmn.KindTask:
		return nil
	case bpmn.KindScriptTask:
		_, err := d.runScriptBody(ctx, tok, node)
		return err
	case bpmn.KindServiceTask:
		return d.runServiceBody(ctx, tok, node)
	default:
		return fmt.Errorf("multi-instance activity %s: unsupported kind %s for per-item execution", node.ID, node.Kind)
	}
}

// dispatchTask handles a plain/user/manual/business-rule task: no behavior
// of its own, just logs entry/completion and advances.
func (d *Dispatcher) dispatchTask(ctx context.Context, graph *bpmn.ProcessGraph, definitionID string, tok *models.Token, node *bpmn.Node) error {
	if err := d.registerBoundarySubscriptions(ctx, graph, definitionID, tok, node); err != nil {
		return err
	}
	if err := d.registerCompensationHandlers(ctx, graph, tok, node); err != nil {
		return err
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
		return err
	}
	return d.moveSingle(ctx, graph, tok, node)
}

// dispatchScriptTask evaluates node.Script in the CEL sandbox, applies any
// set_variable calls to the token's scope, and advances.
func (d *Dispatcher) dispatchScriptTask(ctx context.Context, graph *bpmn.ProcessGraph, definitionID string, tok *models.Token, node *bpmn.Node) error {
	result, err := d.runScriptBody(ctx, tok, node)
	if err != nil {
		return err
	}

	if err := d.registerBoundarySubscriptions(ctx, graph, definitionID, tok, node); err != nil {
		return err
	}
	if err := d.registerCompensationHandlers(ctx, graph, tok, node); err != nil {
		return err
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, map[string]any{"result": result.Value}); err != nil {
		return err
	}
	return d.moveSingle(ctx, graph, tok, node)
}

// runScriptBody runs node.Script against the current scope's variables and
// applies every set_variable call — the part of dispatchScriptTask shared
// with a multi-instance child's per-item execution.
func (d *Dispatcher) runScriptBody(ctx context.Context, tok *models.Token, node *bpmn.Node) (*script.Result, error) {
	vars, err := d.Fast.AllVariables(ctx, tok.InstanceID)
	if err != nil {
		return nil, fmt.Errorf("loading variables for script task %s: %w", node.ID, err)
	}
	flat := make(map[string]any, len(vars))
	for k, v := range vars {
		flat[k] = v.Value
	}

	item := tok.Data["item"]
	index := intField(tok.Data, "index")

	result, err := d.Scripts.Run(node.Script, flat, item, index)
	if err != nil {
		return nil, fmt.Errorf("script task %s failed: %w", node.ID, err)
	}

	// The script's own value is bound as {taskId}_result so downstream
	// conditions can route on it.
	if result.Value != nil {
		vv := models.VariableValue{Type: inferValueType(result.Value), Value: result.Value}
		if err := d.Instances.SetVariable(ctx, tok.InstanceID, tok.ScopeID, node.ID+"_result", vv); err != nil {
			return nil, fmt.Errorf("script task %s: storing result: %w", node.ID, err)
		}
	}

	for name, value := range result.SetVars {
		vv := models.VariableValue{Type: inferValueType(value), Value: value}
		if err := d.Instances.SetVariable(ctx, tok.InstanceID, tok.ScopeID, name, vv); err != nil {
			return nil, fmt.Errorf("script task %s: setting variable %s: %w", node.ID, name, err)
		}
	}
	return result, nil
}

// dispatchServiceTask resolves the named task from the registry, invokes
// it, applies output_mapping, and advances. Failures log
// SERVICE_TASK_EXECUTED with an error detail before propagating.
func (d *Dispatcher) dispatchServiceTask(ctx context.Context, graph *bpmn.ProcessGraph, definitionID string, tok *models.Token, node *bpmn.Node) error {
	if err := d.runServiceBody(ctx, tok, node); err != nil {
		return err
	}

	if err := d.registerBoundarySubscriptions(ctx, graph, definitionID, tok, node); err != nil {
		return err
	}
	if err := d.registerCompensationHandlers(ctx, graph, tok, node); err != nil {
		return err
	}
	if err := d.nodeCompleted(ctx, tok, node.ID, nil); err != nil {
		return err
	}
	return d.moveSingle(ctx, graph, tok, node)
}

// runServiceBody resolves and invokes the named service task and applies its
// output_mapping — the part of dispatchServiceTask shared with a
// multi-instance child's per-item execution.
func (d *Dispatcher) runServiceBody(ctx context.Context, tok *models.Token, node *bpmn.Node) error {
	cfg := node.ServiceTaskConfig
	if cfg == nil || cfg.TaskName == "" {
		return fmt.Errorf("service task %s: missing serviceTaskConfig/taskName", node.ID)
	}

	impl, err := d.Services.Resolve(cfg.TaskName)
	if err != nil {
		return err
	}

	vars, err := d.Fast.AllVariables(ctx, tok.InstanceID)
	if err != nil {
		return fmt.Errorf("loading variables for service task %s: %w", node.ID, err)
	}
	flatVars := make(map[string]any, len(vars))
	for k, v := range vars {
		flatVars[k] = v.Value
	}

	taskCtx := servicetask.Context{
		InstanceID: tok.InstanceID,
		TaskID:     node.ID,
		Token:      tok.Data,
		Variables:  flatVars,
	}

	result, err := impl.Execute(ctx, taskCtx, cfg.Properties)
	if err != nil {
		_ = d.Instances.WriteActivityLog(ctx, tok.InstanceID, activitylog.ActivityTypeSERVICE_TASK_EXECUTED, node.ID,
			map[string]any{"task_name": cfg.TaskName, "status": "ERROR", "error": err.Error()})
		return fmt.Errorf("service task %s (%s): %w", node.ID, cfg.TaskName, err)
	}

	mapped, err := servicetask.ExtractOutput(result, cfg.OutputMapping)
	if err != nil {
		return fmt.Errorf("service task %s: applying output_mapping: %w", node.ID, err)
	}
	for name, value := range mapped {
		vv := models.VariableValue{Type: inferValueType(value), Value: value}
		if err := d.Instances.SetVariable(ctx, tok.InstanceID, tok.ScopeID, name, vv); err != nil {
			return fmt.Errorf("service task %s: setting variable %s: %w", node.ID, name, err)
		}
	}

	return d.Instances.WriteActivityLog(ctx, tok.InstanceID, activitylog.ActivityTypeSERVICE_TASK_EXECUTED, node.ID,
		map[string]any{"task_name": cfg.TaskName, "status": "SUCCESS"})
}
