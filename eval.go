package arith

import (
	"io"
	"unicode/utf8"
)

// Expr   = Term { ('+' | '-') Term }
// Term   = Factor { ('*' | '/') Factor }
// Factor = ['-'] ( num | '(' Expr ')' )

// DefaultMaxDepth is the parenthesis nesting limit applied when no MaxDepth
// option is given.
const DefaultMaxDepth = 512

// Option is an option for evaluation.
type Option interface {
	option(evalcfg) evalcfg
}

type (
	depthopt int
	trailopt struct{}
)

// evalcfg holds the settings for a single evaluation.
type evalcfg struct {
	// maxdepth is the parenthesis nesting limit.
	maxdepth int
	// trailing indicates that leftover input after the expression is
	// ignored rather than an error.
	trailing bool
}

// MaxDepth limits parenthesis nesting. Evaluating an expression nested
// deeper than n fails with a DepthError instead of risking exhausting the
// goroutine stack on adversarial input. The default is DefaultMaxDepth.
func MaxDepth(n int) Option {
	return depthopt(n)
}

func (o depthopt) option(c evalcfg) evalcfg {
	c.maxdepth = int(o)
	return c
}

// AllowTrailing tells the evaluator to ignore unconsumed input following a
// complete expression instead of failing. This is useful when the
// expression is a prefix of a larger input that the caller scans itself.
func AllowTrailing() Option {
	return trailopt{}
}

func (o trailopt) option(c evalcfg) evalcfg {
	c.trailing = true
	return c
}

// parser is the state of a single evaluation. Every call to Evaluate owns a
// fresh parser, so concurrent evaluations never share state. The cursor
// only moves forward; no character is examined twice.
type parser struct {
	src string
	// pos is the byte offset of the next unconsumed character.
	pos int
	// parens counts open parentheses not yet matched by a close. It must
	// be zero again once the top-level expression has been consumed.
	parens int
	// maxdepth is the limit on parens.
	maxdepth int
}

// Evaluate parses and computes an arithmetic expression in a single pass.
// The expression may contain decimal literals, unary negation, + - * /,
// parentheses, and spaces. Any failure aborts the evaluation; there are no
// partial results. By default input left over after the expression is an
// error; AllowTrailing changes that.
func Evaluate(src string, opts ...Option) (float64, error) {
	cfg := evalcfg{maxdepth: DefaultMaxDepth}
	for _, opt := range opts {
		cfg = opt.option(cfg)
	}
	p := parser{src: src, maxdepth: cfg.maxdepth}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.parens != 0 {
		return 0, &BracketError{Col: p.pos + 1, Left: "("}
	}
	if !cfg.trailing {
		p.space()
		switch c := p.peek(); {
		case p.pos >= len(p.src): // do nothing
		case c == ')':
			return 0, &BracketError{Col: p.pos + 1, Right: ")"}
		default:
			r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
			return 0, &CharError{Col: p.pos + 1, Rune: r}
		}
	}
	return v, nil
}

// EvalReader reads r to end of input and evaluates its contents as a single
// expression.
func EvalReader(r io.Reader, opts ...Option) (float64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	return Evaluate(string(b), opts...)
}

// expr evaluates a sequence of terms joined by + or -, folding left to
// right. Any other character ends the sequence and is left unconsumed for
// the caller, including a close paren and end of input.
func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		p.space()
		c := p.peek()
		if c != '+' && c != '-' {
			return v, nil
		}
		p.pos++
		r, err := p.term()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			v += r
		} else {
			v -= r
		}
	}
}

// term evaluates a sequence of factors joined by * or /, folding left to
// right. Division checks the right operand against exactly zero.
func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		p.space()
		c := p.peek()
		if c != '*' && c != '/' {
			return v, nil
		}
		col := p.pos + 1
		p.pos++
		r, err := p.factor()
		if err != nil {
			return 0, err
		}
		if c == '*' {
			v *= r
		} else {
			if r == 0 {
				return 0, &DivisionError{Col: col}
			}
			v /= r
		}
	}
}

// factor evaluates a number, a negation, or a parenthesized subexpression.
// A leading - is tracked as a sign flag and applied once at the end, not
// distributed into the operand.
func (p *parser) factor() (float64, error) {
	p.space()
	neg := false
	if p.peek() == '-' {
		neg = true
		p.pos++
	}
	if p.peek() == '(' {
		if p.parens >= p.maxdepth {
			return 0, &DepthError{Col: p.pos + 1, Limit: p.maxdepth}
		}
		p.pos++
		p.parens++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, &BracketError{Col: p.pos + 1, Left: "("}
		}
		p.pos++
		p.parens--
		if neg {
			return -v, nil
		}
		return v, nil
	}
	// Classify before scanning so that a character outside the alphabet
	// reports itself rather than a missing number.
	switch c := p.peek(); {
	case isDigit(c), c == '.', c == '-':
		// The scanner handles a (second) leading sign itself.
	case p.pos >= len(p.src), isOperator(c), c == ')', c == ' ':
		return 0, &NumberError{Col: p.pos + 1}
	default:
		r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
		return 0, &CharError{Col: p.pos + 1, Rune: r}
	}
	v, err := p.number()
	if err != nil {
		return 0, err
	}
	if neg {
		return -v, nil
	}
	return v, nil
}
