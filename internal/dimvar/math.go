package dimvar

import "math"

// Powi raises v to an integer power, multiplying every exponent by n.
// Powi(0) is always unitless 1.
func (v Variable) Powi(n int) Variable {
	if n == 0 {
		return Variable{value: 1}
	}
	return Variable{value: math.Pow(v.value, float64(n)), unit: v.unit.Scale(float64(n))}
}

// Powf raises a unitless v to a real power.
func (v Variable) Powf(exp float64) (Variable, error) {
	if !v.IsUnitless() {
		return Variable{}, domain("powf", "powf requires a unitless quantity")
	}
	return Variable{value: math.Pow(v.value, exp)}, nil
}

// Sqrt halves every exponent. Odd exponents are allowed and become
// half-integers, e.g. sqrt(m^3) has unit m^1.5.
func (v Variable) Sqrt() (Variable, error) {
	if v.value < 0 {
		return Variable{}, domain("sqrt", "sqrt of negative value")
	}
	return Variable{value: math.Sqrt(v.value), unit: v.unit.Scale(0.5)}, nil
}

func (v Variable) Ln() (float64, error) {
	return v.log("ln", math.Log)
}

func (v Variable) Log2() (float64, error) {
	return v.log("log2", math.Log2)
}

func (v Variable) Log10() (float64, error) {
	return v.log("log10", math.Log10)
}

// Sin expects radians. No angle conversion is applied.
func (v Variable) Sin() (float64, error) {
	return v.trig("sin", math.Sin)
}

// Cos expects radians. No angle conversion is applied.
func (v Variable) Cos() (float64, error) {
	return v.trig("cos", math.Cos)
}

// Tan expects radians. No angle conversion is applied.
func (v Variable) Tan() (float64, error) {
	return v.trig("tan", math.Tan)
}

func (v Variable) log(op string, fn func(float64) float64) (float64, error) {
	if !v.IsUnitless() {
		return 0, domain(op, op+" requires a unitless quantity")
	}
	if v.value <= 0 {
		return 0, domain(op, op+" domain error (value <= 0)")
	}
	return fn(v.value), nil
}

func (v Variable) trig(op string, fn func(float64) float64) (float64, error) {
	if !v.IsUnitless() {
		return 0, domain(op, op+" requires a unitless quantity (radians)")
	}
	return fn(v.value), nil
}
