package dimvar

import "math"

// Equal reports whether both the exponents and the values are exactly equal.
// Callers needing a tolerance should compare ValueIn results themselves.
func (v Variable) Equal(other Variable) bool {
	return v.unit == other.unit && v.value == other.value
}

// Compare orders v against other. ok is false when the two are not
// comparable: the exponents differ or either value is NaN.
func (v Variable) Compare(other Variable) (cmp int, ok bool) {
	if v.unit != other.unit || math.IsNaN(v.value) || math.IsNaN(other.value) {
		return 0, false
	}
	switch {
	case v.value < other.value:
		return -1, true
	case v.value > other.value:
		return 1, true
	}
	return 0, true
}

// Less and the other relational helpers return false whenever Compare
// reports the operands as not comparable.
func (v Variable) Less(other Variable) bool {
	c, ok := v.Compare(other)
	return ok && c < 0
}

func (v Variable) LessOrEqual(other Variable) bool {
	c, ok := v.Compare(other)
	return ok && c <= 0
}

func (v Variable) Greater(other Variable) bool {
	c, ok := v.Compare(other)
	return ok && c > 0
}

func (v Variable) GreaterOrEqual(other Variable) bool {
	c, ok := v.Compare(other)
	return ok && c >= 0
}
