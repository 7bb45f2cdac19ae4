package parser

import (
	"github.com/lumenlang/lumen/ast"
	"github.com/lumenlang/lumen/token"
)

// prefixParseFn parses an expression that begins with the current token,
// e.g. a literal, an identifier, or a prefix operator.
type prefixParseFn func(p *Parser) ast.Expression

// infixParseFn parses the continuation of an expression given the
// already-parsed left operand, e.g. the right-hand side of a binary
// operator or the argument list of a call.
type infixParseFn func(p *Parser, left ast.Expression) ast.Expression

// registerRules wires every token kind the grammar recognises in prefix or
// infix position to its parsing function. This is the parser registry of
// §4.2: a fixed table built once per Parser and consulted by parseExpression.
func (p *Parser) registerRules() {
	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:    (*Parser).parseIdentifier,
		token.INT:      (*Parser).parseIntegerLiteral,
		token.STRING:   (*Parser).parseStringLiteral,
		token.TRUE:     (*Parser).parseBoolean,
		token.FALSE:    (*Parser).parseBoolean,
		token.BANG:     (*Parser).parsePrefixExpression,
		token.MINUS:    (*Parser).parsePrefixExpression,
		token.LPAREN:   (*Parser).parseGroupedExpression,
		token.LBRACKET: (*Parser).parseArrayLiteral,
		token.IF:       (*Parser).parseIfExpression,
		token.FUNCTION: (*Parser).parseFunctionLiteral,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:     (*Parser).parseInfixExpression,
		token.MINUS:    (*Parser).parseInfixExpression,
		token.SLASH:    (*Parser).parseInfixExpression,
		token.ASTERISK: (*Parser).parseInfixExpression,
		token.EQ:       (*Parser).parseInfixExpression,
		token.NOT_EQ:   (*Parser).parseInfixExpression,
		token.LT:       (*Parser).parseInfixExpression,
		token.GT:       (*Parser).parseInfixExpression,
		token.LPAREN:   (*Parser).parseCallExpression,
		token.LBRACKET: (*Parser).parseIndexExpression,
	}
}
