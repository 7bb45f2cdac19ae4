// Package object defines Lumen's runtime value model: the tagged union of
// objects produced by evaluation, plus the lexical Environment (environment.go)
// that binds names to them.
//
// Every concrete type implements Object, exposing a Type tag (one of the
// constants below, used verbatim in diagnostic messages such as "type
// mismatch: INTEGER + BOOLEAN") and Inspect, a human-readable rendering used
// by the REPL and by tests.
package object

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lumenlang/lumen/ast"
)

// Type is the stable, diagnostic-facing name of an Object's concrete kind.
type Type string

const (
	INTEGER_OBJ      Type = "INTEGER"
	STRING_OBJ       Type = "STRING"
	BOOLEAN_OBJ      Type = "BOOLEAN"
	NULL_OBJ         Type = "NULL"
	ARRAY_OBJ        Type = "ARRAY"
	RETURN_VALUE_OBJ Type = "RETURN_VALUE"
	ERROR_OBJ        Type = "ERROR"
	FUNCTION_OBJ     Type = "FUNCTION"
	BUILTIN_OBJ      Type = "CORE_FUNCTION"
)

// Object is implemented by every runtime value.
type Object interface {
	Type() Type
	Inspect() string
}

// Integer is a signed 32-bit integer value.
type Integer struct {
	Value int32
}

func (i *Integer) Type() Type      { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// String is a UTF-8 text value.
type String struct {
	Value string
}

func (s *String) Type() Type      { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

// Boolean wraps a Go bool. The type does not make instances canonical: two
// Booleans with the same Value may be distinct pointers, and Equal compares
// them by Value.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// Null is the language's single nil value. Every Null is equal to every
// other Null and to nothing else.
type Null struct{}

func (n *Null) Type() Type      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// Array is an ordered, heterogeneous, 0-indexed sequence of Objects.
// push/rest never mutate their input array: push returns a new array, and
// rest returns a new array, or Null when its input is empty.
type Array struct {
	Elements []Object
}

func (a *Array) Type() Type { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	elements := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		elements = append(elements, e.Inspect())
	}
	var out bytes.Buffer
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")
	return out.String()
}

// ReturnValue is the sentinel wrapper that threads a `return` expression's
// value up through nested block evaluation to the enclosing function call,
// which unwraps it. Program-level evaluation also unwraps it, since a
// top-level return simply ends evaluation with that value.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() Type      { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Error is a first-class runtime error. It propagates exactly like
// ReturnValue: any Error produced while evaluating a sub-expression is
// returned immediately, short-circuiting the rest of evaluation.
type Error struct {
	Message string
}

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }

// Function is a user-defined function value: its parameter list, its body,
// and the environment active at the point of its literal. That captured
// environment is what makes Function a closure.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() Type { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	var out bytes.Buffer
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}

// Builtin is a handle to a built-in function resolved from the registry in
// package builtin. It carries only the name and arity; dispatch happens
// through builtin.Call so that the registry remains the single source of
// truth for built-in semantics.
type Builtin struct {
	Name  string
	Arity int
}

func (b *Builtin) Type() Type      { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return "builtin function: " + b.Name }

// Equal implements the value model's equality rule: structural for scalars,
// arrays (element-wise) and strings; Null equals only Null; Function is
// never equal to anything, including itself, mirroring NaN.
func Equal(a, b Object) bool {
	switch a := a.(type) {
	case *Integer:
		bv, ok := b.(*Integer)
		return ok && a.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && a.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && a.Value == bv.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(a.Elements) != len(bv.Elements) {
			return false
		}
		for i := range a.Elements {
			if !Equal(a.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
