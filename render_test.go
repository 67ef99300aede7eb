package shunting

import (
	"math"

	. "gopkg.in/check.v1"
)

type RenderSuite struct {
	ctx *Context
}

var _ = Suite(&RenderSuite{})

func (s *RenderSuite) SetUpSuite(c *C) {
	s.ctx = NewContext()
	s.ctx.Set("a", 1.5)
	s.ctx.Set("b", -2.25)
	s.ctx.Set("c", 3.0)
	s.ctx.Set("x", 0.75)
}

func (s *RenderSuite) TestConstantRendering(c *C) {
	tests := []InputAndTree{
		{"1500", "1500"},
		{"1.5e3", "1500"},
		{"0.5", "0.5"},
		{"1e22", "1e+22"},
		{"1.12345", "1.12345"},
		{"1e999", "1e999"},
	}
	for i, t := range tests {
		e, err := Compile(t.input)
		c.Assert(err, IsNil, Commentf("[%d: %s]", i, t.input))
		c.Check(e.String(), Equals, t.tree, Commentf("[%d: %s]", i, t.input))
	}
}

// Non-finite constants render as expressions that compile back to the
// same value, since there is no literal spelling for them.
func (s *RenderSuite) TestNonFiniteConstantRendering(c *C) {
	cases := []struct {
		value    float64
		rendered string
	}{
		{math.Inf(1), "1e999"},
		{math.Inf(-1), "(-1e999)"},
		{math.NaN(), "(0 / 0)"},
	}
	for i, t := range cases {
		e := &constExpr{value: t.value}
		c.Check(e.String(), Equals, t.rendered, Commentf("[%d]", i))

		back, err := Compile(e.String())
		c.Assert(err, IsNil, Commentf("[%d]", i))
		res, err := back.Eval(nil)
		c.Assert(err, IsNil, Commentf("[%d]", i))
		if math.IsNaN(t.value) == true {
			c.Check(math.IsNaN(res), Equals, true)
		} else {
			c.Check(res, Equals, t.value, Commentf("[%d]", i))
		}
	}
}

// Rendering then re-compiling must rebuild the same tree, so redundant
// parentheses disappear but grouping never changes.
func (s *RenderSuite) TestRoundTrip(c *C) {
	inputs := []string{
		"2 + 3 * 4",
		"(2 + 3) * 4",
		"2 ^ 3 ^ 2",
		"(2 ^ 3) ^ 2",
		"-2 ^ 2",
		"(-2) ^ 2",
		"2 ^ -3",
		"3 - -2",
		"1 - (2 - 3)",
		"((1 - 2)) - 3",
		"a / (b * c)",
		"a / b * c",
		"a % b % c",
		"-(a + b)",
		"+a",
		"- - a",
		"a! + (b + c)!",
		"3!!",
		"-3!",
		"3! ^ 2",
		"sin(x) + atan2(a, b)",
		"max(a, b, c) * min(a, b)",
		"pi() / e()",
		"sqrt(abs(b)) - ln(exp(x))",
		"1e999",
		"-1e999",
		"1e999 - 1e999",
	}

	for i, input := range inputs {
		first, err := Compile(input)
		c.Assert(err, IsNil, Commentf("[%d: %s]", i, input))

		second, err := Compile(first.String())
		c.Assert(err, IsNil, Commentf("[%d: %s] rendered as %q", i, input, first.String()))

		// same tree, hence a stable rendering
		c.Check(second.String(), Equals, first.String(), Commentf("[%d: %s]", i, input))

		want, err := first.Eval(s.ctx)
		c.Assert(err, IsNil, Commentf("[%d: %s]", i, input))
		got, err := second.Eval(s.ctx)
		c.Assert(err, IsNil, Commentf("[%d: %s]", i, input))

		if math.IsNaN(want) == true {
			c.Check(math.IsNaN(got), Equals, true, Commentf("[%d: %s]", i, input))
		} else {
			c.Check(got, Equals, want, Commentf("[%d: %s]", i, input))
		}
	}
}
