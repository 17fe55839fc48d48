package units

import (
	"math"
	"strconv"
	"strings"
)

// unitlessTerm may stand alone on either side, as in "1/s".
const unitlessTerm = "1"

// Parse converts a unit string into its base exponent vector and the factor
// that converts a value in that unit to SI base units.
//
// The empty string parses to the zero vector and factor 1. Errors are always
// of type *ParseError; the first invalid term is reported, scanning the
// numerator left to right and then the denominator.
func Parse(s string) (Vector, float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '[', ']':
			return -1
		}
		return r
	}, s)

	sides := strings.Split(cleaned, "/")
	if len(sides) > 2 {
		return Vector{}, 0, &ParseError{Input: s, Err: ErrMultipleSlashes}
	}

	var vec Vector
	factor := 1.0

	for i, side := range sides {
		sign := 1.0
		if i == 1 {
			sign = -1.0
		}

		terms, err := splitTerms(side)
		if err != nil {
			return Vector{}, 0, &ParseError{Input: s, Token: side, Err: err}
		}

		for _, term := range terms {
			if term == unitlessTerm {
				continue
			}

			symbol, power, err := readTerm(term)
			if err != nil {
				return Vector{}, 0, &ParseError{Input: s, Token: term, Err: err}
			}

			u, ok := Lookup(symbol)
			if !ok {
				return Vector{}, 0, &ParseError{Input: s, Token: symbol, Err: ErrUnknownUnit}
			}

			exp := float64(power) * sign
			vec = vec.Add(u.Base.Scale(exp))
			factor *= math.Pow(u.Factor, exp)
		}
	}

	return vec, factor, nil
}

// splitTerms splits one side of a unit expression on '-'. A '-' is kept as an
// exponent sign when it follows '^' or when only digits follow it up to the
// next separator, so "m^-2" and "m-2" are single terms.
func splitTerms(side string) ([]string, error) {
	if strings.TrimSpace(side) == "" {
		return nil, nil
	}

	var terms []string
	start := 0
	for i := 0; i < len(side); i++ {
		if side[i] != '-' {
			continue
		}
		if i > 0 && side[i-1] == '^' {
			continue
		}
		if i > start && isExponentTail(side[i+1:]) {
			continue
		}

		term := strings.TrimSpace(side[start:i])
		if term == "" {
			return nil, ErrEmptyToken
		}
		terms = append(terms, term)
		start = i + 1
	}

	term := strings.TrimSpace(side[start:])
	if term == "" {
		return nil, ErrEmptyToken
	}
	return append(terms, term), nil
}

// isExponentTail reports whether s begins with one or more digits that run
// up to the next '-' or the end of s.
func isExponentTail(s string) bool {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == 0 {
		return false
	}
	rest := strings.TrimSpace(s[n:])
	return rest == "" || rest[0] == '-'
}

// readTerm splits a term like "m", "m3", "m-2", "m^3" or "m^-2" into its
// symbol and integer power. A term without an exponent has power 1.
func readTerm(term string) (string, int, error) {
	u := strings.TrimSpace(term)
	if u == "" {
		return "", 0, ErrEmptyToken
	}

	end := len(u)
	for end > 0 && isDigit(u[end-1]) {
		end--
	}

	if end == len(u) {
		if caret := strings.LastIndexByte(u, '^'); caret >= 0 {
			if strings.TrimPrefix(u[caret+1:], "-") == "" {
				return "", 0, ErrMissingExponent
			}
			return "", 0, ErrInvalidExponent
		}
		return u, 1, nil
	}

	start := end
	if start > 0 && u[start-1] == '-' {
		start--
	}

	power, err := strconv.Atoi(u[start:])
	if err != nil {
		return "", 0, ErrInvalidExponent
	}

	baseEnd := start
	if baseEnd > 0 && u[baseEnd-1] == '^' {
		baseEnd--
	}
	base := strings.TrimSpace(u[:baseEnd])
	if base == "" {
		return "", 0, ErrMissingSymbol
	}
	if strings.ContainsRune(base, '^') {
		return "", 0, ErrInvalidExponent
	}

	return base, power, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
