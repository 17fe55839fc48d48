// Package dimvar provides dimensional variables: a float64 value in SI base
// units paired with a [units.Vector] of base exponents.
//
// Operations check dimensional consistency:
//
//   - [Variable.TryAdd], [Variable.TrySub]: require equal vectors, return an error
//   - [Variable.Add], [Variable.Sub]: same, but panic on mismatch
//   - [Variable.Mul], [Variable.Div]: always defined, combine vectors
//   - [Variable.Powf], [Variable.Ln], [Variable.Sin], ...: require a unitless value
//   - [Variable.Compare]: three-valued, reports "not comparable" across dimensions
//
// # Example
//
//	k, _ := dimvar.New(4.0, "BTU-in/hr-ft^2-F")
//	a, _ := dimvar.New(10.0, "cm^2")
//	dt, _ := dimvar.New(200.0, "K")
//	l, _ := dimvar.New(5.0, "mm")
//	q := k.Mul(a).Mul(dt).Div(l)
//	w, _ := q.ValueIn("W") // 23.0764...
//
// # Thread Safety
//
// Variable is a small value type; every operation returns a new Variable.
// The *Assign methods mutate their receiver and need external
// synchronization when shared between goroutines.
package dimvar
