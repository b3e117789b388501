package arith

import "testing"

func TestClassify(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		if !isDigit(c) {
			t.Errorf("%c should be a digit", c)
		}
	}
	for _, c := range []byte{'a', 'z', 'A', ' ', '.', '(', ')', 0, '0' - 1, '9' + 1} {
		if isDigit(c) {
			t.Errorf("%c should not be a digit", c)
		}
	}
	for _, c := range []byte{'+', '-', '*', '/'} {
		if !isOperator(c) {
			t.Errorf("%c should be an operator", c)
		}
	}
	for _, c := range []byte{'0', '9', '.', '(', ')', ' ', '^', '%', 0} {
		if isOperator(c) {
			t.Errorf("%c should not be an operator", c)
		}
	}
}

func TestNumber(t *testing.T) {
	cases := []struct {
		src  string
		v    float64
		rest int
		err  bool
	}{
		// integers
		{"0", 0, 1, false},
		{"9876543210", 9876543210, 10, false},
		{"007", 7, 3, false},
		{"-12", -12, 3, false},
		// fractions
		{"1.5", 1.5, 3, false},
		{"-1.5", -1.5, 4, false},
		{".5", 0.5, 2, false},
		{"3.08", 3.08, 4, false},
		{"1.", 1, 2, false},
		{"0.0003101", 0.0003101, 9, false},
		// scanning stops at the first character that can't extend the literal
		{"12a", 12, 2, false},
		{"1+2", 1, 1, false},
		{"2 ", 2, 1, false},
		{"-3)", -3, 2, false},
		// a second point ends the literal without consuming it
		{"12.3.5", 12.3, 4, false},
		{"1.2.", 1.2, 3, false},
		// no digits at all
		{"", 0, 0, true},
		{"-", 0, 1, true},
		{".", 0, 1, true},
		{"..", 0, 1, true},
		{"-.", 0, 2, true},
		{"(1)", 0, 0, true},
		{"+1", 0, 0, true},
	}
	for _, c := range cases {
		p := parser{src: c.src}
		v, err := p.number()
		if c.err {
			if err == nil {
				t.Errorf("scanning %q: expected an error but got %v", c.src, v)
			}
			continue
		}
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if v != c.v {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.v, v)
		}
		if p.pos != c.rest {
			t.Errorf("scanning %q: cursor should rest at %d, not %d", c.src, c.rest, p.pos)
		}
	}
}

func TestSpace(t *testing.T) {
	cases := []struct {
		src  string
		rest int
	}{
		{"", 0},
		{"1", 0},
		{" ", 1},
		{"   1 + 2", 3},
		{" (", 1},
	}
	for _, c := range cases {
		p := parser{src: c.src}
		p.space()
		if p.pos != c.rest {
			t.Errorf("skipping spaces in %q: cursor should rest at %d, not %d", c.src, c.rest, p.pos)
		}
	}
}
