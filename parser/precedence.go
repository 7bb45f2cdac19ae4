package parser

import "github.com/lumenlang/lumen/token"

// Precedence levels, lowest to highest. The Pratt loop in parseExpression
// compares the current threshold against the precedence of the upcoming
// infix operator to decide whether to keep consuming: a strictly-increasing
// comparison is what makes same-precedence operators associate left, e.g.
// "a + b + c" parses as "(a + b) + c" rather than "a + (b + c)".
const (
	LOWEST      int = iota
	EQUALS          // == !=
	LESSGREATER     // < >
	SUM             // + -
	PRODUCT         // * /
	PREFIX          // -x or !x
	CALL            // myFunction(x)
	INDEX           // myArray[x]
)

// precedences maps infix operator tokens to their binding power. Tokens
// absent from this table (statement terminators, closing delimiters, EOF)
// fall back to LOWEST, which is exactly what stops the Pratt loop.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

// peekPrecedence and curPrecedence (see parser.go) both funnel through this
// lookup so the table stays the single source of truth for the language's
// operator precedence.
func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}
