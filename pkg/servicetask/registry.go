// Package servicetask implements the pluggable service-task registry: a
// process-wide map from task_name to an implementation, injected into the
// engine at construction rather than held as package-level mutable state.
package servicetask

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
)

// Context is what a service-task implementation receives:
// token/variables/task_id/instance_id.
type Context struct {
	InstanceID string
	TaskID     string
	Token      map[string]any
	Variables  map[string]any
}

// Task is an injected service-task implementation.
type Task interface {
	Execute(ctx context.Context, taskCtx Context, properties map[string]string) (map[string]any, error)
}

// TaskFunc adapts a plain function to Task.
type TaskFunc func(ctx context.Context, taskCtx Context, properties map[string]string) (map[string]any, error)

func (f TaskFunc) Execute(ctx context.Context, taskCtx Context, properties map[string]string) (map[string]any, error) {
	return f(ctx, taskCtx, properties)
}

// Registry resolves task_name to a Task. The embedder populates it —
// the engine only reads from it.
type Registry struct {
	tasks map[string]Task
}

func NewRegistry() *Registry {
	return &Registry{tasks: map[string]Task{}}
}

// Register adds or replaces the implementation for name.
func (r *Registry) Register(name string, t Task) {
	r.tasks[name] = t
}

// Resolve looks up name, returning an ExecutorError if unregistered so the
// run loop can move the instance to ERROR.
func (r *Registry) Resolve(name string) (Task, error) {
	t, ok := r.tasks[name]
	if !ok {
		return nil, engineerr.NewExecutorError("no service task registered for %q", name)
	}
	return t, nil
}

// ExtractOutput applies an output_mapping (dotted paths with `[i]`
// array indexing) over a result map, returning the scope-local variables to
// write.
func ExtractOutput(result map[string]any, outputMapping map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(outputMapping))
	for varName, path := range outputMapping {
		v, err := extractPath(result, path)
		if err != nil {
			return nil, fmt.Errorf("output_mapping %q -> %q: %w", path, varName, err)
		}
		out[varName] = v
	}
	return out, nil
}

// MarshalVariables and UnmarshalResult are the JSON codec boundary used by
// GRPCServiceTaskClient to pass variable context and results as bytes,
// matching the proto's variables_json/result_json fields.
func MarshalVariables(vars map[string]any) ([]byte, error) { return json.Marshal(vars) }

func UnmarshalResult(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
