package builtin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenlang/lumen/object"
)

func TestLengthString(t *testing.T) {
	result := Call(Context{}, "length", []object.Object{&object.String{Value: "hello"}})
	integer, ok := result.(*object.Integer)
	assert.True(t, ok)
	assert.EqualValues(t, 5, integer.Value)
}

func TestLengthArity(t *testing.T) {
	cases := []struct {
		args     []object.Object
		expected string
	}{
		{nil, "wrong number of arguments: got=0, expected=1"},
		{[]object.Object{&object.Integer{Value: 1}, &object.Integer{Value: 2}}, "wrong number of arguments: got=2, expected=1"},
	}
	for _, c := range cases {
		result := Call(Context{}, "length", c.args)
		err, ok := result.(*object.Error)
		assert.True(t, ok)
		assert.Equal(t, c.expected, err.Message)
	}
}

func TestLengthUnsupportedType(t *testing.T) {
	result := Call(Context{}, "length", []object.Object{&object.Integer{Value: 1}})
	err, ok := result.(*object.Error)
	assert.True(t, ok)
	assert.Equal(t, "argument to `length` not supported, got INTEGER", err.Message)
}

func TestFirstAndLastOnEmptyArrayAreNull(t *testing.T) {
	empty := &object.Array{}
	_, ok := Call(Context{}, "first", []object.Object{empty}).(*object.Null)
	assert.True(t, ok)
	_, ok = Call(Context{}, "last", []object.Object{empty}).(*object.Null)
	assert.True(t, ok)
}

func TestRestOnEmptyArrayIsNull(t *testing.T) {
	_, ok := Call(Context{}, "rest", []object.Object{&object.Array{}}).(*object.Null)
	assert.True(t, ok)
}

func TestPushDoesNotMutateInput(t *testing.T) {
	original := &object.Array{Elements: []object.Object{&object.Integer{Value: 1}}}
	result := Call(Context{}, "push", []object.Object{original, &object.Integer{Value: 2}})

	pushed, ok := result.(*object.Array)
	assert.True(t, ok)
	assert.Len(t, original.Elements, 1)
	assert.Len(t, pushed.Elements, 2)
}

func TestPutsWritesSpaceSeparatedLine(t *testing.T) {
	var buf bytes.Buffer
	result := Call(Context{Output: &buf}, "puts", []object.Object{&object.Integer{Value: 1}, &object.String{Value: "hi"}})

	_, ok := result.(*object.Null)
	assert.True(t, ok)
	assert.Equal(t, "1 hi\n", buf.String())
}

func TestUnknownBuiltin(t *testing.T) {
	result := Call(Context{}, "nope", nil)
	err, ok := result.(*object.Error)
	assert.True(t, ok)
	assert.Equal(t, "identifier not found: nope", err.Message)
}
