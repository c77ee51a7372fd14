package selector

import (
	"fmt"
	"strconv"
	"strings"
)

// Formula is the argument of :nth-child and :nth-last-child. A 1-based
// position p satisfies a formula if p == Step*k + Offset for some k >= 0.
// With Step 0, only p == Offset satisfies it.
type Formula struct {
	Step   int
	Offset int
}

// Frequently used formulas.
var (
	Odd   = Formula{Step: 2, Offset: 1}
	Even  = Formula{Step: 2, Offset: 0}
	First = Formula{Step: 0, Offset: 1}
)

// Matches checks a 1-based position against f.
func (f Formula) Matches(p int) bool {
	if f.Step == 0 {
		return p == f.Offset
	}
	d := p - f.Offset
	return d%f.Step == 0 && d/f.Step >= 0
}

func (f Formula) String() string {
	switch {
	case f == Odd:
		return "odd"
	case f == Even:
		return "even"
	case f.Step == 0:
		return strconv.Itoa(f.Offset)
	case f.Offset == 0:
		return strconv.Itoa(f.Step) + "n"
	}
	return fmt.Sprintf("%dn%+d", f.Step, f.Offset)
}

// ParseFormula parses `odd`, `even`, an integer, or the An+B notation,
// e.g. `2n+1`, `-n+3`, `n`.
func ParseFormula(s string) (Formula, error) {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))
	switch s {
	case "odd":
		return Odd, nil
	case "even":
		return Even, nil
	case "":
		return Formula{}, fmt.Errorf("empty formula")
	}
	n := strings.IndexByte(s, 'n')
	if n < 0 {
		offset, err := strconv.Atoi(s)
		if err != nil {
			return Formula{}, fmt.Errorf("expected 'odd', 'even', <number> or An+B, have '%s'", s)
		}
		return Formula{Offset: offset}, nil
	}
	var f Formula
	switch a := s[:n]; a {
	case "", "+":
		f.Step = 1
	case "-":
		f.Step = -1
	default:
		step, err := strconv.Atoi(a)
		if err != nil {
			return Formula{}, fmt.Errorf("malformed step in formula '%s'", s)
		}
		f.Step = step
	}
	if b := s[n+1:]; b != "" {
		if b[0] != '+' && b[0] != '-' {
			return Formula{}, fmt.Errorf("malformed offset in formula '%s'", s)
		}
		offset, err := strconv.Atoi(b)
		if err != nil {
			return Formula{}, fmt.Errorf("malformed offset in formula '%s'", s)
		}
		f.Offset = offset
	}
	return f, nil
}
