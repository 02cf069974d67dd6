package regex

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Operator alphabet recognized by the shunting yard. '.' is reserved for the
// concatenation marker this package injects; it must never appear as an
// operand in input regex text.
const (
	opUnion  = '|'
	opStar   = '*'
	opPlus   = '+'
	opQMark  = '?'
	opLParen = '('
	opRParen = ')'
	opConcat = '.'

	starPrec   = 4
	qMarkPrec  = 4
	plusPrec   = 3
	concatPrec = 2
	unionPrec  = 1
)

func isOperator(r rune) bool {
	switch r {
	case opUnion, opStar, opPlus, opQMark, opLParen, opRParen, opConcat:
		return true
	default:
		return false
	}
}

func isOperand(r rune) bool { return !isOperator(r) }

// isUnaryPostfix reports whether r is one of the postfix repetition
// operators (*, +, ?), which can terminate a left operand for the purposes
// of implicit-concatenation insertion.
func isUnaryPostfix(r rune) bool {
	return r == opStar || r == opPlus || r == opQMark
}

// insertConcatenationOperator scans regex left to right and emits an
// explicit '.' between any pair of adjacent characters that denotes an
// implicit juxtaposition: the left side ends an operand-like construct
// (operand, postfix operator, or closing paren) and the right side starts
// one (operand or opening paren).
func insertConcatenationOperator(regex string) string {
	runes := []rune(regex)
	var out strings.Builder
	for i, r := range runes {
		out.WriteRune(r)
		if i+1 >= len(runes) {
			break
		}
		next := runes[i+1]
		leftEndsOperand := isOperand(r) || isUnaryPostfix(r) || r == opRParen
		rightStartsOperand := isOperand(next) || next == opLParen
		if leftEndsOperand && rightStartsOperand {
			out.WriteRune(opConcat)
		}
	}
	return out.String()
}

// precedence follows the table in the spec: * = 4, + = 3, . (concatenation,
// injected by insertConcatenationOperator) = 2, | = 1. ? is not singled out
// by the spec's rationale (which concerns + only) and is treated the same
// as the other pure postfix-wrap operator, *.
func precedence(op rune) int {
	switch op {
	case opStar:
		return starPrec
	case opQMark:
		return qMarkPrec
	case opPlus:
		return plusPrec
	case opConcat:
		return concatPrec
	case opUnion:
		return unionPrec
	default:
		return 0
	}
}

// toPostfix converts an infix regex (operators | * + ? ( )) to postfix,
// injecting explicit concatenation first. It returns a MalformedRegexError
// for unbalanced parentheses.
func toPostfix(pattern string) (string, error) {
	if strings.ContainsRune(pattern, opConcat) {
		return "", malformed(pattern, "'.' is reserved for the injected concatenation marker and cannot be used as an operand")
	}
	withConcat := insertConcatenationOperator(pattern)

	ops := arraystack.New()
	var out strings.Builder

	popOp := func() rune { v, _ := ops.Pop(); return v.(rune) }
	peekOp := func() (rune, bool) {
		v, ok := ops.Peek()
		if !ok {
			return 0, false
		}
		return v.(rune), true
	}

	for _, r := range withConcat {
		switch {
		case r == opLParen:
			ops.Push(r)
		case r == opRParen:
			found := false
			for {
				top, ok := peekOp()
				if !ok {
					break
				}
				if top == opLParen {
					popOp()
					found = true
					break
				}
				out.WriteRune(popOp())
			}
			if !found {
				return "", malformed(pattern, "unbalanced parenthesis: missing '('")
			}
		case isOperator(r):
			for {
				top, ok := peekOp()
				if !ok || top == opLParen {
					break
				}
				if precedence(top) < precedence(r) {
					break
				}
				out.WriteRune(popOp())
			}
			ops.Push(r)
		default:
			out.WriteRune(r)
		}
	}

	for !ops.Empty() {
		top := popOp()
		if top == opLParen {
			return "", malformed(pattern, "unbalanced parenthesis: missing ')'")
		}
		out.WriteRune(top)
	}

	return out.String(), nil
}
