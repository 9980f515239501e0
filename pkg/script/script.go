// Package script provides the sandboxed script-task execution environment,
// built on google/cel-go: a small variable-scoped expression compiled and
// run against a fixed activation. CEL gives a sandboxed, side-effect-free
// evaluator with no arbitrary function calls and no reflection surface.
package script

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
)

// Result is what a script task produces: the expression's value (stored by
// the executor as `{taskId}_result`) and any scope variables set via
// set_variable during evaluation.
type Result struct {
	Value   any
	SetVars map[string]any
}

// Env is the base CEL environment: variables plus size/collection helpers
// (`len, str, int, float, bool, list` map onto CEL's own conversion and
// standard-library functions, already part of cel.NewEnv's default
// declarations — only `set_variable` needs a custom binding).
type Env struct {
	base *cel.Env
}

// NewEnv builds the shared CEL environment. One Env is reused across script
// executions; each Run call extends it with a call-scoped set_variable
// binding so concurrent Run calls never share mutable state.
func NewEnv() (*Env, error) {
	base, err := cel.NewEnv(
		cel.Variable("vars", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("item", cel.DynType),
		cel.Variable("index", cel.IntType),
	)
	if err != nil {
		return nil, engineerr.WrapExpressionError(err, "building script sandbox environment")
	}
	return &Env{base: base}, nil
}

// Run compiles and evaluates a script body (a bare CEL expression, not
// wrapped in ${...} — script tasks are full expressions, unlike gateway
// conditions) against vars/item/index, and returns its Value plus any
// set_variable calls recorded during evaluation.
func (e *Env) Run(body string, vars map[string]any, item any, index int) (*Result, error) {
	assignments := map[string]any{}
	callEnv, err := e.base.Extend(
		cel.Function("set_variable",
			cel.Overload("set_variable_string_dyn",
				[]*cel.Type{cel.StringType, cel.DynType}, cel.BoolType,
				cel.BinaryBinding(func(lhs, rhs ref.Val) ref.Val {
					name, ok := lhs.Value().(string)
					if !ok {
						return types.NewErr("set_variable: name must be a string")
					}
					assignments[name] = rhs.Value()
					return types.True
				}),
			),
		),
	)
	if err != nil {
		return nil, engineerr.WrapExpressionError(err, "preparing script call environment")
	}

	ast, issues := callEnv.Compile(body)
	if issues != nil && issues.Err() != nil {
		return nil, engineerr.WrapExpressionError(issues.Err(), "compiling script %q", body)
	}
	prg, err := callEnv.Program(ast)
	if err != nil {
		return nil, engineerr.WrapExpressionError(err, "preparing script program")
	}

	out, _, err := prg.Eval(map[string]any{
		"vars":  vars,
		"item":  item,
		"index": index,
	})
	if err != nil {
		return nil, engineerr.WrapExpressionError(err, "evaluating script %q", body)
	}

	return &Result{Value: out.Value(), SetVars: assignments}, nil
}
