package units

import "sort"

// Unit is a registry entry: a symbol's SI conversion factor and base exponents.
type Unit struct {
	Symbol string
	Name   string
	// Factor converts a value in this unit to SI base units.
	Factor float64
	Base   Vector
}

var registry = buildRegistry()

func buildRegistry() map[string]Unit {
	r := make(map[string]Unit, len(table))
	for _, u := range table {
		r[u.Symbol] = u
	}
	return r
}

// Lookup returns the unit registered under symbol. Matching is exact and
// case-sensitive.
func Lookup(symbol string) (Unit, bool) {
	u, ok := registry[symbol]
	return u, ok
}

// Symbols returns every registered symbol in sorted order.
func Symbols() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registry entry, sorted by symbol.
func All() []Unit {
	out := make([]Unit, 0, len(registry))
	for _, name := range Symbols() {
		out = append(out, registry[name])
	}
	return out
}
