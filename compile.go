package shunting

import (
	"errors"
	"io"
	"math"
	"strconv"
)

// Operator precedence ranks, lowest binding first. Unary minus shares
// the rank of '^' so that -2^2 reads -(2^2) and 2^-3 reads 2^(-3).
const (
	precTerm    = 2
	precFactor  = 3
	precPower   = 5
	precPostfix = 6
	precAtom    = 7
)

type outQueue struct {
	q []Expression
}

func (o *outQueue) unsafePop() Expression {
	expr := o.q[len(o.q)-1]
	o.q = o.q[0 : len(o.q)-1]
	return expr
}

func (o *outQueue) push(e Expression) {
	o.q = append(o.q, e)
}

func (o *outQueue) size() int {
	return len(o.q)
}

type queuePoper func(*outQueue) Expression

type operatorType uint

const (
	opStandard operatorType = iota
	opFunction
	opLeftParenthesis
)

type operator struct {
	oType            operatorType
	symbol           string
	precedence, card int
	leftAssociative  bool
	poper            queuePoper

	// function call frame state
	name   string
	base   int
	commas int
}

type opStack struct {
	s []operator
}

func (o *opStack) unsafePop() operator {
	op := o.s[len(o.s)-1]
	o.s = o.s[0 : len(o.s)-1]
	return op
}

func (o *opStack) push(op operator) {
	o.s = append(o.s, op)
}

func (o *opStack) size() int {
	return len(o.s)
}

func (o *opStack) unsafeTop() operator {
	return o.s[len(o.s)-1]
}

func (o *opStack) countComma() {
	o.s[len(o.s)-1].commas++
}

type function struct {
	arity    int
	variadic bool
	evaluer  func([]float64) float64
}

func (f function) checkArity(name string, got int) error {
	if f.variadic == true {
		if got >= f.arity {
			return nil
		}
	} else if got == f.arity {
		return nil
	}
	return &ArityMismatchError{
		Function: name,
		Expected: f.arity,
		Got:      got,
		Variadic: f.variadic,
	}
}

var operators = make(map[TokenType]operator)
var unaryOperators = make(map[TokenType]operator)
var functions = make(map[string]function)

func poperForBinaryOperator(kind OpKind) queuePoper {
	return func(output *outQueue) Expression {
		right := output.unsafePop()
		left := output.unsafePop()
		return &binaryExpr{op: kind, left: left, right: right}
	}
}

func poperForUnaryOperator(kind OpKind) queuePoper {
	return func(output *outQueue) Expression {
		return &unaryExpr{op: kind, child: output.unsafePop()}
	}
}

func registerOperator(t TokenType,
	symbol string,
	kind OpKind,
	precedence int,
	leftAssociative bool) {
	operators[t] = operator{
		oType:           opStandard,
		symbol:          symbol,
		poper:           poperForBinaryOperator(kind),
		precedence:      precedence,
		leftAssociative: leftAssociative,
		card:            2,
	}
}

func registerUnaryOperator(t TokenType,
	symbol string,
	kind OpKind,
	precedence int,
	leftAssociative bool) {
	unaryOperators[t] = operator{
		oType:           opStandard,
		symbol:          symbol,
		poper:           poperForUnaryOperator(kind),
		precedence:      precedence,
		leftAssociative: leftAssociative,
		card:            1,
	}
}

func registerFunction(name string, arity int, evaluer func([]float64) float64) {
	functions[name] = function{arity: arity, evaluer: evaluer}
}

func registerVariadicFunction(name string, minArity int, evaluer func([]float64) float64) {
	functions[name] = function{arity: minArity, variadic: true, evaluer: evaluer}
}

func registerUnaryFunction(name string, fn func(float64) float64) {
	registerFunction(name, 1, func(args []float64) float64 { return fn(args[0]) })
}

func init() {
	registerOperator(tokPlus, "+", OpAdd, precTerm, true)
	registerOperator(tokMinus, "-", OpSub, precTerm, true)
	registerOperator(tokMult, "*", OpMul, precFactor, true)
	registerOperator(tokDivide, "/", OpDiv, precFactor, true)
	registerOperator(tokMod, "%", OpMod, precFactor, true)
	registerOperator(tokPower, "^", OpPow, precPower, false)

	registerUnaryOperator(tokPlus, "+", OpPos, precPower, false)
	registerUnaryOperator(tokMinus, "-", OpNeg, precPower, false)
	registerUnaryOperator(tokBang, "!", OpFact, precPostfix, true)

	registerFunction("pi", 0, func([]float64) float64 { return math.Pi })
	registerFunction("e", 0, func([]float64) float64 { return math.E })

	registerUnaryFunction("sin", math.Sin)
	registerUnaryFunction("cos", math.Cos)
	registerUnaryFunction("tan", math.Tan)
	registerUnaryFunction("asin", math.Asin)
	registerUnaryFunction("acos", math.Acos)
	registerUnaryFunction("atan", math.Atan)
	registerUnaryFunction("sqrt", math.Sqrt)
	registerUnaryFunction("abs", math.Abs)
	registerUnaryFunction("exp", math.Exp)
	registerUnaryFunction("ln", math.Log)
	registerUnaryFunction("log10", math.Log10)
	registerUnaryFunction("ceil", math.Ceil)
	registerUnaryFunction("floor", math.Floor)

	registerFunction("atan2", 2, func(args []float64) float64 {
		return math.Atan2(args[0], args[1])
	})

	registerVariadicFunction("min", 1, func(args []float64) float64 {
		res := args[0]
		for _, v := range args[1:] {
			res = math.Min(res, v)
		}
		return res
	})
	registerVariadicFunction("max", 1, func(args []float64) float64 {
		res := args[0]
		for _, v := range args[1:] {
			res = math.Max(res, v)
		}
		return res
	})
}

func popOperatorFromStack(output *outQueue, stack *opStack) error {
	op := stack.unsafePop()
	if output.size() < op.card {
		return &MalformedExpressionError{
			Detail: "operator '" + op.symbol + "' is missing its operand(s)",
		}
	}
	//will pop the required operands and push the combined node
	output.push(op.poper(output))
	return nil
}

// parser reads tokens from the lexer with one token of lookahead, which
// is needed to tell a function call from a variable reference.
type parser struct {
	lexer   *Lexer
	pending *Token
}

func (p *parser) next() (Token, error) {
	if p.pending != nil {
		t := *p.pending
		p.pending = nil
		return t, nil
	}
	return p.lexer.Next()
}

func (p *parser) stash(t Token) {
	p.pending = &t
}

func buildAST(input string) (Expression, error) {
	p := &parser{lexer: NewLexer(input)}

	output := outQueue{}
	stack := opStack{}

	// true when the previous token can end an operand, which makes a
	// following '+' or '-' binary rather than unary
	afterOperand := false

	for {
		t, err := p.next()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		switch t.Type {
		case tokValue:
			// out-of-range literals saturate to +/-Inf, in line with
			// the IEEE-754 numeric domain
			value, err := strconv.ParseFloat(t.Value, 64)
			if err != nil && errors.Is(err, strconv.ErrRange) == false {
				return nil, &MalformedExpressionError{
					Detail: "invalid number " + strconv.Quote(t.Value),
				}
			}
			output.push(&constExpr{value: value})
			afterOperand = true

		case tokIdent:
			nt, err := p.next()
			if err == nil && nt.Type == tokOParen {
				// function call: the frame acts as its own
				// parenthesis barrier
				stack.push(operator{
					oType: opFunction,
					name:  t.Value,
					base:  output.size(),
				})
				afterOperand = false
				continue
			}
			if err == nil {
				p.stash(nt)
			} else if err != io.EOF {
				return nil, err
			}
			output.push(&refExpr{variable: t.Value})
			afterOperand = true

		case tokComma:
			for stack.size() > 0 && stack.unsafeTop().oType == opStandard {
				if err := popOperatorFromStack(&output, &stack); err != nil {
					return nil, err
				}
			}
			if stack.size() == 0 || stack.unsafeTop().oType != opFunction {
				return nil, &MalformedExpressionError{
					Detail: "misplaced ','",
				}
			}
			stack.countComma()
			afterOperand = false

		case tokPlus, tokMinus, tokMult, tokDivide, tokMod, tokPower, tokBang:
			op1, ok := operators[t.Type]
			if afterOperand == false || t.Type == tokBang {
				if u, isUnary := unaryOperators[t.Type]; isUnary {
					op1, ok = u, true
				}
			}
			if ok == false {
				return nil, &MalformedExpressionError{
					Detail: "misplaced '" + t.Value + "'",
				}
			}
			for stack.size() > 0 {
				op2 := stack.unsafeTop()
				if op2.oType != opStandard {
					break
				}

				if op2.precedence > op1.precedence ||
					(op1.leftAssociative && op1.precedence == op2.precedence) {
					if err := popOperatorFromStack(&output, &stack); err != nil {
						return nil, err
					}
					continue
				}

				break
			}
			stack.push(op1)
			// '!' is postfix: its operand is already complete
			afterOperand = t.Type == tokBang

		case tokOParen:
			stack.push(operator{oType: opLeftParenthesis})
			afterOperand = false

		case tokCParen:
			for stack.size() > 0 && stack.unsafeTop().oType == opStandard {
				if err := popOperatorFromStack(&output, &stack); err != nil {
					return nil, err
				}
			}
			if stack.size() == 0 {
				return nil, &UnbalancedParensError{Pos: t.Pos}
			}

			top := stack.unsafePop()
			if top.oType == opFunction {
				call, err := reduceCall(top, &output)
				if err != nil {
					return nil, err
				}
				output.push(call)
			}
			afterOperand = true
		}
	}

	for stack.size() > 0 {
		if stack.unsafeTop().oType != opStandard {
			return nil, &UnbalancedParensError{Pos: len(input)}
		}
		if err := popOperatorFromStack(&output, &stack); err != nil {
			return nil, err
		}
	}

	if output.size() == 0 {
		return nil, &MalformedExpressionError{Detail: "empty expression"}
	}
	if output.size() != 1 {
		return nil, &MalformedExpressionError{
			Detail: "expected a single expression, got " +
				strconv.Itoa(output.size()) + " of them",
		}
	}

	return output.unsafePop(), nil
}

// reduceCall pops the arguments of a completed call frame and builds
// the call node. Builtin arity is checked here, at parse time; calls to
// unregistered names are left for evaluation to reject.
func reduceCall(frame operator, output *outQueue) (Expression, error) {
	// without commas the list holds zero or one argument; with commas,
	// exactly one more argument than commas. Anything else means
	// adjacent operands or a dangling comma.
	nargs := output.size() - frame.base
	wellFormed := nargs >= 0 &&
		((frame.commas == 0 && nargs <= 1) || nargs == frame.commas+1)
	if wellFormed == false {
		return nil, &MalformedExpressionError{
			Detail: "malformed argument list for '" + frame.name + "'",
		}
	}

	if fn, ok := functions[frame.name]; ok == true {
		if err := fn.checkArity(frame.name, nargs); err != nil {
			return nil, err
		}
	}

	args := make([]Expression, nargs)
	for i := nargs - 1; i >= 0; i-- {
		args[i] = output.unsafePop()
	}
	return &callExpr{name: frame.name, args: args}, nil
}
