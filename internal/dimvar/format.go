package dimvar

import (
	"strconv"
	"strings"

	"github.com/san-kum/dimvar/internal/units"
)

// String renders the value followed by its base units, e.g. "9.81 m/s^2".
func (v Variable) String() string {
	return v.FormatPrec(-1)
}

// FormatPrec is like String with a fixed number of decimals. A negative
// precision uses the shortest representation.
func (v Variable) FormatPrec(prec int) string {
	return strconv.FormatFloat(v.value, 'f', prec, 64) + " " + UnitString(v.unit)
}

// UnitString reconstructs a unit expression from base exponents. Positive
// exponents form the numerator joined by '*', negative ones the denominator.
func UnitString(vec units.Vector) string {
	var num, den []string
	for i, e := range vec {
		switch {
		case e > 0:
			num = append(num, unitTerm(units.BaseSymbols[i], e))
		case e < 0:
			den = append(den, unitTerm(units.BaseSymbols[i], -e))
		}
	}

	switch {
	case len(num) == 0 && len(den) == 0:
		return "(unitless)"
	case len(den) == 0:
		return strings.Join(num, "*")
	case len(num) == 0:
		return "1/" + strings.Join(den, "*")
	}
	return strings.Join(num, "*") + "/" + strings.Join(den, "*")
}

func unitTerm(symbol string, exp float64) string {
	if exp == 1 {
		return symbol
	}
	return symbol + "^" + strconv.FormatFloat(exp, 'f', -1, 64)
}
