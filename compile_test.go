package shunting

import (
	. "gopkg.in/check.v1"
)

type CompileSuite struct{}

var _ = Suite(&CompileSuite{})

type InputAndTree struct {
	input, tree string
}

// The rendered form exposes the tree shape, which makes precedence and
// associativity decisions easy to assert on.
func (s *CompileSuite) TestTreeShape(c *C) {
	tests := []InputAndTree{
		{"2+3*4", "2 + 3 * 4"},
		{"2*3+4", "2 * 3 + 4"},
		{"(2+3)*4", "(2 + 3) * 4"},
		{"2^3^2", "2 ^ 3 ^ 2"},
		{"(2^3)^2", "(2 ^ 3) ^ 2"},
		{"-2^2", "-2 ^ 2"},
		{"(-2)^2", "(-2) ^ 2"},
		{"2^-3", "2 ^ -3"},
		{"3--2", "3 - -2"},
		{"1-2-3", "1 - 2 - 3"},
		{"1-(2-3)", "1 - (2 - 3)"},
		{"a/(b*c)", "a / (b * c)"},
		{"((a))", "a"},
		{"5%3", "5 % 3"},
		{"-(1+2)", "-(1 + 2)"},
		{"+x", "+x"},
		{"-3!", "-3!"},
		{"(1+2)!", "(1 + 2)!"},
		{"3!!", "3!!"},
		{"3! ^ 2", "3! ^ 2"},
		{"sin( x )+atan2(1,2)", "sin(x) + atan2(1, 2)"},
		{"max(1 , -2, x)", "max(1, -2, x)"},
		{"pi()/4", "pi() / 4"},
	}

	for i, t := range tests {
		e, err := Compile(t.input)
		if c.Check(err, IsNil, Commentf("[%d: %s]: got error: %s", i, t.input, err)) == false {
			continue
		}
		c.Check(e.String(), Equals, t.tree, Commentf("[%d: %s]", i, t.input))
	}
}

type CompileError struct {
	input, error string
}

func (s *CompileSuite) TestCompilationError(c *C) {
	tests := []CompileError{
		{"( 2.0 ))", "unbalanced parenthesis at offset 7"},
		{"(( foo )", "unbalanced parenthesis at offset 8"},
		{"(1 + 2", "unbalanced parenthesis at offset 6"},
		{"1 +", "malformed expression: operator '+' is missing its operand(s)"},
		{"(5 + )", "malformed expression: operator '+' is missing its operand(s)"},
		{"* 5", "malformed expression: operator '*' is missing its operand(s)"},
		{"1 2", "malformed expression: expected a single expression, got 2 of them"},
		{"", "malformed expression: empty expression"},
		{"   ", "malformed expression: empty expression"},
		{"()", "malformed expression: empty expression"},
		{"sin(0.0),", "malformed expression: misplaced ','"},
		{"(1, 2)", "malformed expression: misplaced ','"},
		{"atan2(0.0 +,2.1)", "malformed expression: operator '+' is missing its operand(s)"},
		{"sin(1, 2)", "function sin takes 1 argument(s), got 2"},
		{"sin()", "function sin takes 1 argument(s), got 0"},
		{"atan2(1)", "function atan2 takes 2 argument(s), got 1"},
		{"max()", "function max takes at least 1 argument(s), got 0"},
		{"pi(3)", "function pi takes 0 argument(s), got 1"},
		{"cos(1,)", "malformed expression: malformed argument list for 'cos'"},
		{"max(1 2)", "malformed expression: malformed argument list for 'max'"},
		{"foo(1 2)", "malformed expression: malformed argument list for 'foo'"},
		{"2 + @", "unexpected character '@' at offset 4"},
	}

	for i, t := range tests {
		_, err := Compile(t.input)
		if c.Check(err, Not(IsNil), Commentf("[%d: %s]", i, t.input)) == false {
			continue
		}
		c.Check(err.Error(), Equals, t.error, Commentf("[%d: %s]", i, t.input))
		_, isParseError := err.(ParseError)
		c.Check(isParseError, Equals, true, Commentf("[%d: %s]", i, t.input))
	}
}

func (s *CompileSuite) TestArityIsCheckedAtCompileTime(c *C) {
	_, err := Compile("sin(1, 2)")
	c.Assert(err, Not(IsNil))
	aerr, ok := err.(*ArityMismatchError)
	c.Assert(ok, Equals, true)
	c.Check(aerr.Function, Equals, "sin")
	c.Check(aerr.Expected, Equals, 1)
	c.Check(aerr.Got, Equals, 2)
	c.Check(aerr.Variadic, Equals, false)
}

func (s *CompileSuite) TestUnknownFunctionsCompile(c *C) {
	// unknown names are an evaluation error, not a parse error, so
	// that the two error families stay disjoint
	e, err := Compile("gamma(3)")
	c.Assert(err, IsNil)
	_, err = e.Eval(nil)
	c.Assert(err, Not(IsNil))
	c.Check(err.Error(), Equals, "unknown function 'gamma'")
}
