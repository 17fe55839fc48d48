package units

import (
	"math"
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		symbol string
		factor float64
		base   Vector
	}{
		{"m", 1.0, Vector{1, 0, 0, 0, 0, 0, 0}},
		{"ft", 0.3048, Vector{1, 0, 0, 0, 0, 0, 0}},
		{"BTU", 1055.05585, Vector{2, 1, -2, 0, 0, 0, 0}},
		{"hr", 3600.0, Vector{0, 0, 1, 0, 0, 0, 0}},
		{"h", 3600.0, Vector{0, 0, 1, 0, 0, 0, 0}},
		{"F", 5.0 / 9.0, Vector{0, 0, 0, 1, 0, 0, 0}},
		{"lux", 1.0, Vector{-2, 0, 0, 0, 0, 0, 1}},
		{"Ohm", 1.0, Vector{2, 1, -3, 0, -2, 0, 0}},
		{"deg", math.Pi / 180, Vector{}},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			u, ok := Lookup(tt.symbol)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.symbol)
			}
			if u.Symbol != tt.symbol {
				t.Errorf("Symbol = %q, want %q", u.Symbol, tt.symbol)
			}
			if math.Abs(u.Factor-tt.factor) > 1e-15*math.Abs(tt.factor) {
				t.Errorf("Factor = %v, want %v", u.Factor, tt.factor)
			}
			if u.Base != tt.base {
				t.Errorf("Base = %v, want %v", u.Base, tt.base)
			}
		})
	}
}

func TestLookup_CaseSensitive(t *testing.T) {
	if _, ok := Lookup("M"); ok {
		t.Error("expected no entry for M")
	}
	if _, ok := Lookup("btu"); ok {
		t.Error("expected no entry for btu")
	}
	if _, ok := Lookup(""); ok {
		t.Error("expected no entry for empty symbol")
	}
}

func TestRegistryEntries(t *testing.T) {
	for _, u := range All() {
		if u.Factor <= 0 {
			t.Errorf("%s: non-positive factor %v", u.Symbol, u.Factor)
		}
		if u.Name == "" {
			t.Errorf("%s: missing name", u.Symbol)
		}
	}
}

func TestSymbols(t *testing.T) {
	names := Symbols()
	if len(names) != len(table) {
		t.Errorf("expected %d symbols, got %d (duplicate symbol in table?)", len(table), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("symbols not sorted")
	}
}

func TestVector(t *testing.T) {
	a := Vector{1, 0, -1, 0, 0, 0, 0}
	b := Vector{0, 1, 1, 0, 0, 0, 0}

	if got := a.Add(b); got != (Vector{1, 1, 0, 0, 0, 0, 0}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vector{1, -1, -2, 0, 0, 0, 0}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(0.5); got != (Vector{0.5, 0, -0.5, 0, 0, 0, 0}) {
		t.Errorf("Scale = %v", got)
	}
	if a != (Vector{1, 0, -1, 0, 0, 0, 0}) {
		t.Error("receiver was mutated")
	}
	if !a.Equal(a) || a.Equal(b) {
		t.Error("Equal mismatch")
	}
	if a.IsZero() || !(Vector{}).IsZero() {
		t.Error("IsZero mismatch")
	}
	if !a.Scale(0).IsZero() {
		t.Error("zero scale should be zero vector")
	}
}
