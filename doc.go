// Package arith evaluates elementary arithmetic expressions.
//
// The evaluator is a recursive-descent parser that computes its result in
// the same pass that reads the input; no syntax tree is built. Expressions
// may contain decimal literals, unary negation, the four operators
// + - * /, and nested parentheses, with the usual precedence and
// left-to-right grouping. Spaces between tokens are ignored.
//
// Every failure is reported as a typed error carrying the column at which
// it occurred, so callers embedding the evaluator can point at the
// offending input.
package arith
