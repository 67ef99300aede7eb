package shunting

import (
	"math"
	"strconv"
	"strings"
)

// Infix rendering with minimal parenthesization: a child is wrapped in
// parentheses only when its own binding strength is too weak for the
// position it occupies. Compiling the rendered text rebuilds the exact
// same tree shape, so evaluation results are preserved bit for bit.

func opSymbol(kind OpKind) string {
	switch kind {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "^"
	case OpNeg:
		return "-"
	case OpPos:
		return "+"
	case OpFact:
		return "!"
	}
	panic("unhandled operator kind")
}

func (e *constExpr) precedence() int {
	return precAtom
}

// Non-finite values have no literal syntax, so they render as small
// expressions that evaluate back to them: an overflowing literal for
// the infinities, an indeterminate quotient for NaN.
func (e *constExpr) String() string {
	switch {
	case math.IsInf(e.value, 1):
		return "1e999"
	case math.IsInf(e.value, -1):
		return "(-1e999)"
	case math.IsNaN(e.value):
		return "(0 / 0)"
	}
	return strconv.FormatFloat(e.value, 'g', -1, 64)
}

func (e *refExpr) precedence() int {
	return precAtom
}

func (e *refExpr) String() string {
	return e.variable
}

func (e *unaryExpr) precedence() int {
	if e.op == OpFact {
		return precPostfix
	}
	return precPower
}

func (e *unaryExpr) String() string {
	child := e.child.String()
	if e.op == OpFact {
		// the postfix operand must bind at least as tightly as '!'
		if e.child.precedence() < precPostfix {
			child = "(" + child + ")"
		}
		return child + "!"
	}
	if e.child.precedence() < e.precedence() {
		child = "(" + child + ")"
	}
	return opSymbol(e.op) + child
}

func (e *binaryExpr) precedence() int {
	switch e.op {
	case OpAdd, OpSub:
		return precTerm
	case OpMul, OpDiv, OpMod:
		return precFactor
	case OpPow:
		return precPower
	}
	panic("unhandled binary operator")
}

// String parenthesizes a child of equal precedence on the operator's
// non-associative side, so grouping survives the round trip even for
// nominally associative operators (float addition is not associative).
func (e *binaryExpr) String() string {
	prec := e.precedence()
	left := e.left.String()
	right := e.right.String()

	if e.op == OpPow {
		if e.left.precedence() <= prec {
			left = "(" + left + ")"
		}
		if e.right.precedence() < prec {
			right = "(" + right + ")"
		}
	} else {
		if e.left.precedence() < prec {
			left = "(" + left + ")"
		}
		if e.right.precedence() <= prec {
			right = "(" + right + ")"
		}
	}

	return left + " " + opSymbol(e.op) + " " + right
}

func (e *callExpr) precedence() int {
	return precAtom
}

func (e *callExpr) String() string {
	args := make([]string, len(e.args))
	for i, arg := range e.args {
		args[i] = arg.String()
	}
	return e.name + "(" + strings.Join(args, ", ") + ")"
}
