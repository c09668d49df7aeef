package negamax

import "fmt"

// Kind tag of an extended score, ordered so the tags compare like the
// values they represent
const (
	negInfKind int8 = -1
	finiteKind int8 = 0
	posInfKind int8 = 1
)

// ExtScore is a Score extended with explicit infinity sentinels, so
// alpha-beta bounds can be initialized and negated without overflow-prone
// magic constants. Total ordering: NegInf < any finite value < PosInf.
// The zero value is Finite(0).
type ExtScore struct {
	value Score
	kind  int8
}

func NegInf() ExtScore { return ExtScore{kind: negInfKind} }
func PosInf() ExtScore { return ExtScore{kind: posInfKind} }

// Finite wraps a plain score
func Finite(s Score) ExtScore { return ExtScore{value: s} }

// Neg flips the sign, swapping the infinities
func (e ExtScore) Neg() ExtScore {
	return ExtScore{value: -e.value, kind: -e.kind}
}

func (e ExtScore) IsFinite() bool { return e.kind == finiteKind }

// Value returns the finite score, ok=false on an infinity
func (e ExtScore) Value() (Score, bool) {
	return e.value, e.kind == finiteKind
}

// Cmp returns -1, 0 or 1, comparing by the total ordering
func (e ExtScore) Cmp(other ExtScore) int {
	if e.kind != other.kind {
		if e.kind < other.kind {
			return -1
		}
		return 1
	}
	if e.kind != finiteKind || e.value == other.value {
		return 0
	}
	if e.value < other.value {
		return -1
	}
	return 1
}

func (e ExtScore) Less(other ExtScore) bool {
	return e.Cmp(other) < 0
}

// Max returns the greater of the two scores
func Max(a, b ExtScore) ExtScore {
	if a.Less(b) {
		return b
	}
	return a
}

func (e ExtScore) String() string {
	switch e.kind {
	case negInfKind:
		return "-inf"
	case posInfKind:
		return "+inf"
	default:
		return fmt.Sprintf("%d", int(e.value))
	}
}
