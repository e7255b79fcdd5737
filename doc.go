// Package calculator evaluates arithmetic expressions on float64.
//
// Expressions are written the usual way: "2 + 3*4", "(2+3)*4", "2^3^2" (which
// is 2^(3^2)), and "sqrt(16)". A '-' at the start of an expression, after an
// operator, or after an open parenthesis is the sign of the number that
// follows it, so "3*-2" is -6 and "(-2)^2" is 4.
//
// Evaluation runs in three stages, each usable on its own: Tokenize scans the
// text, Parse reorders the tokens into postfix order with the shunting yard
// algorithm, and Evaluate computes the result on a value stack. EvalString
// runs all three. Every stage is a pure function of its input, so any number
// of evaluations may run concurrently.
//
// Division by zero and square roots of negative numbers are not errors; they
// produce infinities and NaN as IEEE-754 arithmetic does.
package calculator
