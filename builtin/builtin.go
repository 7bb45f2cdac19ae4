// Package builtin implements the process-wide, immutable registry of
// built-in functions: a fixed mapping from name to arity and implementation,
// consulted by the evaluator whenever an identifier does not resolve in the
// current environment.
//
// The registry is intentionally the single authoritative copy. An earlier
// draft of this language (see DESIGN.md) kept two overlapping builtin
// tables that could drift out of sync; this package exists so there is
// exactly one place that knows a built-in's name, arity and behaviour.
package builtin

import (
	"fmt"
	"io"

	"github.com/lumenlang/lumen/object"
)

// Func is the shape of a built-in's implementation. Args has already been
// arity-checked by Call by the time Func runs.
type Func func(ctx Context, args []object.Object) object.Object

// Context carries per-call, non-language state into a built-in — currently
// just the output sink that I/O builtins (puts) write to. It is threaded in
// explicitly rather than stored globally so tests can capture output.
type Context struct {
	Output io.Writer
}

// entry pairs a built-in's arity with its implementation. Arity is checked
// centrally in Call so individual implementations never need to.
type entry struct {
	arity int
	fn    Func
}

// registry is seeded once at package init and never mutated afterwards.
var registry = map[string]entry{
	"length": {arity: 1, fn: length},
	"first":  {arity: 1, fn: first},
	"last":   {arity: 1, fn: last},
	"rest":   {arity: 1, fn: rest},
	"push":   {arity: 2, fn: push},
	"puts":   {arity: -1, fn: puts}, // variadic: arity check is skipped for -1
}

// Lookup reports whether name is a registered built-in and, if so, its
// arity (for constructing an object.Builtin handle without invoking it).
func Lookup(name string) (arity int, ok bool) {
	e, ok := registry[name]
	if !ok {
		return 0, false
	}
	return e.arity, true
}

// Call resolves name, checks its arity against args, and dispatches. It
// returns an *object.Error, never panics, for both an unknown name and an
// arity mismatch — unknown names are a programmer error in the evaluator
// (it must only call Call after Lookup succeeded) but are handled
// defensively all the same.
func Call(ctx Context, name string, args []object.Object) object.Object {
	e, ok := registry[name]
	if !ok {
		return newError("identifier not found: %s", name)
	}
	if e.arity >= 0 && len(args) != e.arity {
		return newError("wrong number of arguments: got=%d, expected=%d", len(args), e.arity)
	}
	return e.fn(ctx, args)
}

func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}

func length(_ Context, args []object.Object) object.Object {
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int32(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int32(len(arg.Elements))}
	default:
		return newError("argument to `length` not supported, got %s", args[0].Type())
	}
}

func first(_ Context, args []object.Object) object.Object {
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to `first` must be array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return &object.Null{}
	}
	return arr.Elements[0]
}

func last(_ Context, args []object.Object) object.Object {
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to `last` must be array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return &object.Null{}
	}
	return arr.Elements[len(arr.Elements)-1]
}

func rest(_ Context, args []object.Object) object.Object {
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to `rest` must be array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return &object.Null{}
	}
	newElements := make([]object.Object, len(arr.Elements)-1)
	copy(newElements, arr.Elements[1:])
	return &object.Array{Elements: newElements}
}

// push returns a new array with elem appended; it never mutates its input,
// so a binding that aliases the original array keeps seeing the original
// length.
func push(_ Context, args []object.Object) object.Object {
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to `push` must be array, got %s", args[0].Type())
	}
	newElements := make([]object.Object, len(arr.Elements), len(arr.Elements)+1)
	copy(newElements, arr.Elements)
	newElements = append(newElements, args[1])
	return &object.Array{Elements: newElements}
}

// puts writes each argument's Inspect() form to ctx.Output, space separated
// and newline terminated, and evaluates to Null. It is variadic (arity -1 in
// the registry) so `puts()` and `puts(a, b, c)` are both accepted.
func puts(ctx Context, args []object.Object) object.Object {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Inspect()
	}
	w := ctx.Output
	if w == nil {
		return &object.Null{}
	}
	for i, p := range parts {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, p)
	}
	fmt.Fprintln(w)
	return &object.Null{}
}
