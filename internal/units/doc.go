// Package units turns unit strings into SI base-unit exponent vectors.
//
// The package has two parts:
//
//   - a fixed, read-only registry mapping unit symbols ("m", "BTU", "hr")
//     to a conversion factor and a [Vector] of base exponents
//   - a parser ([Parse]) for unit expressions such as "BTU-in/hr-ft^2-F"
//
// # Unit strings
//
// A single "/" separates numerator from denominator. Terms on each side are
// joined with "-". A term may carry an integer exponent either after "^"
// ("m^3", "s^-2") or as bare trailing digits ("m3", "m-3"). Parentheses and
// brackets are ignored. The empty string is unitless.
//
//	vec, factor, err := units.Parse("mi/hr")
//	// vec == Vector{1, 0, -1, 0, 0, 0, 0}, factor == 0.44704
//
// # Thread Safety
//
// The registry is built during package initialization and never mutated, so
// [Lookup] and [Parse] are safe for concurrent use.
package units
