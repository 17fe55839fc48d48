package units

import "math"

var (
	dimless     = Vector{}
	length      = Vector{1, 0, 0, 0, 0, 0, 0}
	area        = Vector{2, 0, 0, 0, 0, 0, 0}
	volume      = Vector{3, 0, 0, 0, 0, 0, 0}
	velocity    = Vector{1, 0, -1, 0, 0, 0, 0}
	force       = Vector{1, 1, -2, 0, 0, 0, 0}
	mass        = Vector{0, 1, 0, 0, 0, 0, 0}
	duration    = Vector{0, 0, 1, 0, 0, 0, 0}
	frequency   = Vector{0, 0, -1, 0, 0, 0, 0}
	temperature = Vector{0, 0, 0, 1, 0, 0, 0}
	current     = Vector{0, 0, 0, 0, 1, 0, 0}
	energy      = Vector{2, 1, -2, 0, 0, 0, 0}
	power       = Vector{2, 1, -3, 0, 0, 0, 0}
	pressure    = Vector{-1, 1, -2, 0, 0, 0, 0}
	voltage     = Vector{2, 1, -3, 0, -1, 0, 0}
	resistance  = Vector{2, 1, -3, 0, -2, 0, 0}
	substance   = Vector{0, 0, 0, 0, 0, 1, 0}
	luminous    = Vector{0, 0, 0, 0, 0, 0, 1}
	illuminance = Vector{-2, 0, 0, 0, 0, 0, 1}
)

// Temperature symbols convert intervals only; no offset is applied.
var table = []Unit{
	// length
	{"m", "meter", 1.0, length},
	{"cm", "centimeter", 1e-2, length},
	{"mm", "millimeter", 1e-3, length},
	{"um", "micrometer", 1e-6, length},
	{"nm", "nanometer", 1e-9, length},
	{"km", "kilometer", 1e3, length},
	{"mi", "mile", 1609.344, length},
	{"yd", "yard", 0.9144, length},
	{"ft", "foot", 0.3048, length},
	{"in", "inch", 2.54e-2, length},
	{"ly", "light year", 9.4607e15, length},
	{"pc", "parsec", 3.0857e16, length},

	// area
	{"ha", "hectare", 1e4, area},
	{"ac", "acre", 4046.8564224, area},

	// volume
	{"l", "liter", 1e-3, volume},
	{"ml", "milliliter", 1e-6, volume},
	{"gal", "gallon", 3.785411784, volume},
	{"qt", "quart", 9.4635284e-1, volume},
	{"pt", "pint", 4.7317642e-1, volume},
	{"cup", "cup", 2.3658821e-1, volume},

	// velocity
	{"kn", "knot", 1852.0 / 3600.0, velocity},

	// force
	{"N", "newton", 1.0, force},
	{"kN", "kilonewton", 1e3, force},
	{"lbf", "pound-force", 4.4482216152605, force},

	// mass
	{"kg", "kilogram", 1.0, mass},
	{"g", "gram", 1e-3, mass},
	{"mg", "milligram", 1e-6, mass},
	{"t", "metric ton", 1e3, mass},
	{"lb", "pound", 0.45359237, mass},
	{"oz", "ounce", 0.028349523125, mass},

	// time
	{"ns", "nanosecond", 1e-9, duration},
	{"us", "microsecond", 1e-6, duration},
	{"ms", "millisecond", 1e-3, duration},
	{"s", "second", 1.0, duration},
	{"min", "minute", 60.0, duration},
	{"h", "hour", 3600.0, duration},
	{"hr", "hour", 3600.0, duration},
	{"d", "day", 86400.0, duration},
	{"wk", "week", 604800.0, duration},
	{"mo", "month", 2629800.0, duration},
	{"yr", "year", 31536000.0, duration},

	// frequency
	{"Hz", "hertz", 1.0, frequency},
	{"kHz", "kilohertz", 1e3, frequency},
	{"MHz", "megahertz", 1e6, frequency},

	// temperature
	{"C", "celsius", 1.0, temperature},
	{"F", "fahrenheit", 5.0 / 9.0, temperature},
	{"K", "kelvin", 1.0, temperature},

	// current
	{"A", "ampere", 1.0, current},
	{"mA", "milliampere", 1e-3, current},
	{"kA", "kiloampere", 1e3, current},
	{"MA", "megaampere", 1e6, current},

	// electrical
	{"V", "volt", 1.0, voltage},
	{"Ohm", "ohm", 1.0, resistance},

	// energy
	{"ev", "electronvolt", 1.602176634e-19, energy},
	{"mJ", "millijoule", 1e-3, energy},
	{"J", "joule", 1.0, energy},
	{"kJ", "kilojoule", 1e3, energy},
	{"MJ", "megajoule", 1e6, energy},
	{"GJ", "gigajoule", 1e9, energy},
	{"Tj", "terajoule", 1e12, energy},
	{"cal", "calorie", 4.184, energy},
	{"kcal", "kilocalorie", 4.184e3, energy},
	{"Wh", "watt-hour", 3600.0, energy},
	{"kWh", "kilowatt-hour", 3.6e6, energy},
	{"BTU", "British thermal unit", 1055.05585, energy},
	{"erg", "erg", 1e-7, energy},

	// power
	{"W", "watt", 1.0, power},
	{"kW", "kilowatt", 1e3, power},
	{"MW", "megawatt", 1e6, power},
	{"GW", "gigawatt", 1e9, power},
	{"TW", "terawatt", 1e12, power},
	{"hp", "horsepower", 745.6998715822702, power},

	// pressure
	{"Pa", "pascal", 1.0, pressure},
	{"kPa", "kilopascal", 1e3, pressure},
	{"MPa", "megapascal", 1e6, pressure},
	{"bar", "bar", 1e5, pressure},
	{"atm", "atmosphere", 101325.0, pressure},
	{"psi", "pound per square inch", 6894.757293168361, pressure},

	// amount of substance
	{"mol", "mole", 1.0, substance},
	{"kmol", "kilomole", 1e3, substance},
	{"mmol", "millimole", 1e-3, substance},
	{"umol", "micromole", 1e-6, substance},
	{"nmol", "nanomole", 1e-9, substance},
	{"pmol", "picomole", 1e-12, substance},
	{"fmol", "femtomole", 1e-15, substance},

	// luminous intensity
	{"cd", "candela", 1.0, luminous},
	{"lux", "lux", 1.0, illuminance},

	// plane angle is dimensionless
	{"rad", "radian", 1.0, dimless},
	{"mrad", "milliradian", 1e-3, dimless},
	{"deg", "degree", math.Pi / 180.0, dimless},
	{"arcmin", "arcminute", math.Pi / 10800.0, dimless},
	{"arcsec", "arcsecond", math.Pi / 648000.0, dimless},
}
