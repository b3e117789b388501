package arith

// isDigit reports whether c is a decimal digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isOperator reports whether c is one of the four arithmetic operators.
func isOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

// space advances the cursor past a run of space characters.
func (p *parser) space() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

// peek returns the next unconsumed byte without advancing the cursor, or 0
// at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// number scans a decimal literal at the cursor and returns its value,
// advancing the cursor past the last consumed character. An optional leading
// - negates the result. At most one decimal point takes effect: a second
// point ends the literal, and the cursor is left on it. Scanning zero digits
// is a NumberError.
func (p *parser) number() (float64, error) {
	col := p.pos + 1
	neg := false
	if p.peek() == '-' {
		neg = true
		p.pos++
	}
	var whole, frac float64
	div := 1.0
	var dig, dot bool
scan:
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case isDigit(c):
			dig = true
			if dot {
				frac = frac*10 + float64(c-'0')
				div *= 10
			} else {
				whole = whole*10 + float64(c-'0')
			}
		case c == '.':
			if dot {
				break scan
			}
			dot = true
		default:
			break scan
		}
		p.pos++
	}
	if !dig {
		return 0, &NumberError{Col: col}
	}
	v := whole + frac/div
	if neg {
		v = -v
	}
	return v, nil
}
