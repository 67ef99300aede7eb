package shunting

import "strconv"

// A ParseError is any error reported by Compile. Every error resulting
// from invalid input text implements it.
type ParseError interface {
	error
	parseError()
}

// An EvalError is any error reported by Expression.Eval.
type EvalError interface {
	error
	evalError()
}

// LexError reports an input character that cannot start or continue any
// token, or a malformed number.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Pos is its byte offset in the input.
	Pos int
}

func (e *LexError) Error() string {
	return errpos(e.Pos, "unexpected character "+strconv.QuoteRune(e.Char))
}

func (e *LexError) parseError() {}

// UnbalancedParensError reports a parenthesis with no counterpart.
type UnbalancedParensError struct {
	// Pos is the byte offset of the offending parenthesis, or the input
	// length when an opening parenthesis is never closed.
	Pos int
}

func (e *UnbalancedParensError) Error() string {
	return errpos(e.Pos, "unbalanced parenthesis")
}

func (e *UnbalancedParensError) parseError() {}

// MalformedExpressionError reports input that lexes but does not form a
// single expression: empty input, adjacent operands, or a dangling
// operator.
type MalformedExpressionError struct {
	// Detail describes what was wrong.
	Detail string
}

func (e *MalformedExpressionError) Error() string {
	return "malformed expression: " + e.Detail
}

func (e *MalformedExpressionError) parseError() {}

// ArityMismatchError reports a call to a known function with the wrong
// number of arguments. It is a ParseError when Compile detects it and an
// EvalError when a hand-built tree trips it at evaluation.
type ArityMismatchError struct {
	// Function is the name of the function being called.
	Function string
	// Expected is the declared argument count; for variadic functions it
	// is the minimum.
	Expected int
	// Got is the number of arguments the call supplied.
	Got int
	// Variadic marks Expected as a lower bound.
	Variadic bool
}

func (e *ArityMismatchError) Error() string {
	what := strconv.Itoa(e.Expected)
	if e.Variadic {
		what = "at least " + what
	}
	return "function " + e.Function + " takes " + what +
		" argument(s), got " + strconv.Itoa(e.Got)
}

func (e *ArityMismatchError) parseError() {}

func (e *ArityMismatchError) evalError() {}

// UndefinedVariableError reports a variable reference with no binding in
// the evaluation context.
type UndefinedVariableError struct {
	// Name is the unbound variable name.
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return "undefined variable '" + e.Name + "'"
}

func (e *UndefinedVariableError) evalError() {}

// UnknownFunctionError reports a call to a name that is not a builtin.
type UnknownFunctionError struct {
	// Name is the unknown function name.
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return "unknown function '" + e.Name + "'"
}

func (e *UnknownFunctionError) evalError() {}

func errpos(pos int, msg string) string {
	return msg + " at offset " + strconv.Itoa(pos)
}
