package shunting

import "math"

// An OpKind identifies one of the arithmetic operators. Precedence and
// associativity of each kind are fixed for the lifetime of the process.
type OpKind int

const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpNeg
	OpPos
	OpFact
)

// An Expression is the immutable result of compiling an input string.
// It can be evaluated any number of times, against different contexts,
// without re-parsing. Concurrent evaluations are safe as long as each
// goroutine uses its own Context.
type Expression interface {
	// Eval computes the numeric value of the expression. Variables are
	// resolved against ctx at each call; a nil ctx has no bindings.
	// Floating-point domain issues (division by zero, negative square
	// roots, ...) are not errors: they produce NaN or infinities per
	// IEEE-754.
	Eval(ctx *Context) (float64, error)

	// String renders the expression back to infix form with minimal
	// parenthesization. Compiling the result yields an equivalent
	// expression; the original spelling is not preserved.
	String() string

	precedence() int
}

// Compile parses an infix expression into an Expression tree.
func Compile(input string) (Expression, error) {
	return buildAST(input)
}

type constExpr struct {
	value float64
}

func (e *constExpr) Eval(*Context) (float64, error) {
	return e.value, nil
}

type refExpr struct {
	variable string
}

func (e *refExpr) Eval(ctx *Context) (float64, error) {
	if ctx == nil {
		return math.NaN(), &UndefinedVariableError{Name: e.variable}
	}
	value, ok := ctx.Get(e.variable)
	if ok == false {
		return math.NaN(), &UndefinedVariableError{Name: e.variable}
	}
	return value, nil
}

type unaryExpr struct {
	op    OpKind
	child Expression
}

func (e *unaryExpr) Eval(ctx *Context) (float64, error) {
	value, err := e.child.Eval(ctx)
	if err != nil {
		return math.NaN(), err
	}
	switch e.op {
	case OpNeg:
		return -value, nil
	case OpPos:
		return value, nil
	case OpFact:
		return math.Gamma(value + 1), nil
	}
	panic("unhandled unary operator")
}

type binaryExpr struct {
	op          OpKind
	left, right Expression
}

func (e *binaryExpr) Eval(ctx *Context) (float64, error) {
	valueLeft, err := e.left.Eval(ctx)
	if err != nil {
		return math.NaN(), err
	}

	valueRight, err := e.right.Eval(ctx)
	if err != nil {
		return math.NaN(), err
	}

	switch e.op {
	case OpAdd:
		return valueLeft + valueRight, nil
	case OpSub:
		return valueLeft - valueRight, nil
	case OpMul:
		return valueLeft * valueRight, nil
	case OpDiv:
		return valueLeft / valueRight, nil
	case OpMod:
		return math.Mod(valueLeft, valueRight), nil
	case OpPow:
		return math.Pow(valueLeft, valueRight), nil
	}
	panic("unhandled binary operator")
}

type callExpr struct {
	name string
	args []Expression
}

func (e *callExpr) Eval(ctx *Context) (float64, error) {
	fn, ok := functions[e.name]
	if ok == false {
		return math.NaN(), &UnknownFunctionError{Name: e.name}
	}
	if err := fn.checkArity(e.name, len(e.args)); err != nil {
		return math.NaN(), err
	}

	values := make([]float64, len(e.args))
	for i, arg := range e.args {
		value, err := arg.Eval(ctx)
		if err != nil {
			return math.NaN(), err
		}
		values[i] = value
	}
	return fn.evaluer(values), nil
}
