package arith_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("1+2*3")
	f.Add("-( -(-( -(2+3*4)+2 )-1)+ 0)")
	f.Add("1.2.5")
	f.Add("((((")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := arith.Evaluate(s)
		if err != nil {
			return
		}
		// Evaluation is a pure function; a second pass must agree.
		q, err := arith.Evaluate(s)
		if err != nil {
			t.Fatalf("%q evaluated to %g but failed on a second pass: %v", s, r, err)
		}
		if q != r && !(math.IsNaN(q) && math.IsNaN(r)) {
			t.Errorf("%q evaluated to both %g and %g", s, r, q)
		}
	})
}
