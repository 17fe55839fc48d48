package units

// Size is the number of base dimensions tracked by a Vector.
const Size = 7

// BaseSymbols names the base dimension held in each Vector slot.
var BaseSymbols = [Size]string{"m", "kg", "s", "K", "A", "mol", "cd"}

// Vector holds one exponent per SI base dimension: length, mass, time,
// temperature, current, amount of substance, luminous intensity.
//
// Exponents are float64 because square roots may leave half-integer values.
type Vector [Size]float64

func (v Vector) Add(other Vector) Vector {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

func (v Vector) Sub(other Vector) Vector {
	for i := range v {
		v[i] -= other[i]
	}
	return v
}

func (v Vector) Scale(factor float64) Vector {
	for i := range v {
		v[i] *= factor
	}
	return v
}

// Equal reports exact element-wise equality. No tolerance is applied.
func (v Vector) Equal(other Vector) bool {
	return v == other
}

// IsZero reports whether every exponent is exactly zero.
func (v Vector) IsZero() bool {
	for _, e := range v {
		if e != 0 {
			return false
		}
	}
	return true
}
