package selector

import "fmt"

// Specificity is the tie-break weight among rules matching the same widget.
// Specificities are ordered lexicographically by (Pseudo, Class, Type).
type Specificity struct {
	Pseudo int
	Class  int
	Type   int
}

// Compare returns -1, 0 or +1 if s is less than, equal to or greater than o.
func (s Specificity) Compare(o Specificity) int {
	switch {
	case s.Pseudo != o.Pseudo:
		return sign(s.Pseudo - o.Pseudo)
	case s.Class != o.Class:
		return sign(s.Class - o.Class)
	}
	return sign(s.Type - o.Type)
}

// Less reports whether s is weaker than o.
func (s Specificity) Less(o Specificity) bool {
	return s.Compare(o) < 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.Pseudo, s.Class, s.Type)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
