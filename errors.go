package arith

import "strconv"

// NumberError is an error indicating that a number was expected but no
// digits were consumable at that position. It implements InputError.
type NumberError struct {
	// Col is the position where a number was expected.
	Col int
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "expected a number")
}

func (err *NumberError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position at which the imbalance was detected.
	Col int
	// Left is "(" when an opening parenthesis was never closed.
	Left string
	// Right is ")" when a closing parenthesis matches no opening one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// DivisionError is an error indicating that the right operand of / evaluated
// to exactly zero. It implements InputError.
type DivisionError struct {
	// Col is the position of the / operator.
	Col int
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// CharError is an error indicating a character outside the expression
// alphabet where a token was required. It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Rune is the character that was not understood.
	Rune rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Rune))
}

func (err *CharError) Pos() int {
	return err.Col
}

// DepthError is an error indicating that parentheses nested deeper than the
// evaluation's limit. It implements InputError.
type DepthError struct {
	// Col is the position of the parenthesis that exceeded the limit.
	Col int
	// Limit is the nesting limit in effect.
	Limit int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "parens nested deeper than "+strconv.Itoa(err.Limit))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the byte at which the error was
	// detected.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*DepthError)(nil)
)
