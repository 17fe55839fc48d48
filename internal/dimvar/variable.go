package dimvar

import (
	"fmt"
	"math"

	"github.com/san-kum/dimvar/internal/units"
)

// Variable is a value in SI base units together with its base exponents.
type Variable struct {
	value float64
	unit  units.Vector
}

// New parses unit and returns value expressed in SI base units.
//
// Unit strings use a single '/' between numerator and denominator, '-'
// between terms, and integer exponents written "m^2", "m2", "m^-2" or "m-2".
func New(value float64, unit string) (Variable, error) {
	vec, factor, err := units.Parse(unit)
	if err != nil {
		return Variable{}, fmt.Errorf("dimvar: failed to parse unit %q: %w", unit, err)
	}
	return Variable{value: value * factor, unit: vec}, nil
}

// MustNew is like New but panics if unit cannot be parsed.
func MustNew(value float64, unit string) Variable {
	v, err := New(value, unit)
	if err != nil {
		panic(err)
	}
	return v
}

// FromBase builds a Variable from a value already in SI base units.
func FromBase(value float64, unit units.Vector) Variable {
	return Variable{value: value, unit: unit}
}

// Scalar wraps a plain number as a unitless Variable.
func Scalar(value float64) Variable {
	return Variable{value: value}
}

// Value returns the value in SI base units.
func (v Variable) Value() float64 {
	return v.value
}

// ValueIn converts the value to unit. It fails with ErrDimensionMismatch when
// unit does not share the variable's base exponents.
func (v Variable) ValueIn(unit string) (float64, error) {
	vec, factor, err := units.Parse(unit)
	if err != nil {
		return 0, fmt.Errorf("dimvar: failed to parse unit %q: %w", unit, err)
	}
	if vec != v.unit {
		return 0, mismatch("convert", fmt.Sprintf("incompatible unit conversion to %q", unit))
	}
	return v.value / factor, nil
}

// Unit returns the base exponent vector.
func (v Variable) Unit() units.Vector {
	return v.unit
}

func (v Variable) IsUnitless() bool {
	return v.unit.IsZero()
}

// TryAdd returns v + other, or ErrDimensionMismatch.
func (v Variable) TryAdd(other Variable) (Variable, error) {
	if v.unit != other.unit {
		return Variable{}, mismatch("add", "incompatible units for addition")
	}
	return Variable{value: v.value + other.value, unit: v.unit}, nil
}

// TrySub returns v - other, or ErrDimensionMismatch.
func (v Variable) TrySub(other Variable) (Variable, error) {
	if v.unit != other.unit {
		return Variable{}, mismatch("sub", "incompatible units for subtraction")
	}
	return Variable{value: v.value - other.value, unit: v.unit}, nil
}

// Add returns v + other. It panics if the units differ; use TryAdd unless
// compatibility is already guaranteed.
func (v Variable) Add(other Variable) Variable {
	mustMatch("addition", v.unit, other.unit)
	return Variable{value: v.value + other.value, unit: v.unit}
}

// Sub returns v - other. It panics if the units differ; use TrySub unless
// compatibility is already guaranteed.
func (v Variable) Sub(other Variable) Variable {
	mustMatch("subtraction", v.unit, other.unit)
	return Variable{value: v.value - other.value, unit: v.unit}
}

// Mul multiplies values and adds exponents.
func (v Variable) Mul(other Variable) Variable {
	return Variable{value: v.value * other.value, unit: v.unit.Add(other.unit)}
}

// Div divides values and subtracts exponents. Division by zero follows IEEE
// 754 and yields ±Inf or NaN.
func (v Variable) Div(other Variable) Variable {
	return Variable{value: v.value / other.value, unit: v.unit.Sub(other.unit)}
}

// Scale multiplies the value by a dimensionless factor.
func (v Variable) Scale(factor float64) Variable {
	return Variable{value: v.value * factor, unit: v.unit}
}

// DivScalar divides the value by a dimensionless divisor.
func (v Variable) DivScalar(divisor float64) Variable {
	return Variable{value: v.value / divisor, unit: v.unit}
}

// ScalarDiv returns scalar / v, negating v's exponents.
func ScalarDiv(scalar float64, v Variable) Variable {
	return Variable{value: scalar / v.value, unit: units.Vector{}.Sub(v.unit)}
}

func (v Variable) Neg() Variable {
	return Variable{value: -v.value, unit: v.unit}
}

func (v Variable) Abs() Variable {
	return Variable{value: math.Abs(v.value), unit: v.unit}
}

// AddAssign adds other into v. It panics if the units differ.
func (v *Variable) AddAssign(other Variable) {
	mustMatch("addition assignment", v.unit, other.unit)
	v.value += other.value
}

// SubAssign subtracts other from v. It panics if the units differ.
func (v *Variable) SubAssign(other Variable) {
	mustMatch("subtraction assignment", v.unit, other.unit)
	v.value -= other.value
}

func (v *Variable) MulAssign(other Variable) {
	v.value *= other.value
	v.unit = v.unit.Add(other.unit)
}

func (v *Variable) DivAssign(other Variable) {
	v.value /= other.value
	v.unit = v.unit.Sub(other.unit)
}

func (v *Variable) ScaleAssign(factor float64) {
	v.value *= factor
}

func (v *Variable) DivScalarAssign(divisor float64) {
	v.value /= divisor
}

func mustMatch(op string, a, b units.Vector) {
	if a != b {
		panic(fmt.Sprintf("dimvar: incompatible units for %s: %v vs %v", op, a, b))
	}
}
