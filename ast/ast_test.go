package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenlang/lumen/token"
)

func TestLetStatementString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name:  &Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"},
				Value: &Identifier{Token: token.Token{Type: token.IDENT, Literal: "y"}, Value: "y"},
			},
		},
	}

	assert.Equal(t, "let x = y;", program.String())
}

func TestInfixExpressionStringIsFullyParenthesised(t *testing.T) {
	one := &IntegerLiteral{Token: token.Token{Literal: "1"}, Value: 1}
	two := &IntegerLiteral{Token: token.Token{Literal: "2"}, Value: 2}
	three := &IntegerLiteral{Token: token.Token{Literal: "3"}, Value: 3}

	expr := &InfixExpression{
		Left:     &InfixExpression{Left: one, Operator: "+", Right: two},
		Operator: "+",
		Right:    three,
	}

	assert.Equal(t, "((1 + 2) + 3)", expr.String())
}
