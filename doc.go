// This file is part of go-shunting.
//
// go-shunting is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-shunting is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public
// License along with go-shunting.  If not, see
// <http://www.gnu.org/licenses/>.

/*
Package shunting parses and evaluates infix mathematical expressions.

An expression is compiled once with Compile, using the classic two
stack shunting-yard algorithm, into an immutable Expression tree. The
tree can then be evaluated any number of times, without re-parsing,
against a Context of variable bindings:

	expr, err := shunting.Compile("x * x + 1")
	if err != nil {
		// ...
	}
	ctx := shunting.NewContext()
	ctx.Set("x", 5.0)
	res, err := expr.Eval(ctx) // 26, nil

The usual operators are supported: '+', '-', '*', '/', '%', '^'
(right associative), unary '+' and '-', and the postfix factorial '!'.
Builtin functions cover the common transcendentals (sin, cos, tan and
their inverses, sqrt, abs, exp, ln, log10, ceil, floor, atan2), the
variadic min and max, and the niladic constants pi() and e().

The numeric domain is IEEE-754 float64 throughout. Out of domain
operations such as a division by zero or the square root of a negative
number are not errors: they produce NaN or infinities, which flow
through the computation as ordinary values.

Errors

Compile reports invalid input as a ParseError: a LexError for an
unrecognized character or malformed number, UnbalancedParensError,
MalformedExpressionError, or ArityMismatchError for a builtin called
with the wrong number of arguments. Eval reports an EvalError: an
UndefinedVariableError for an unbound variable or an
UnknownFunctionError for a call to a name that is not a builtin.
*/
package shunting
