package config

import "sort"

// Conversion is a named value-and-unit pair with a target unit.
type Conversion struct {
	Value float64 `yaml:"value"`
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
}

var Presets = map[string]map[string]*Conversion{
	"speed": {
		"highway": {Value: 65, From: "mi/hr", To: "km/hr"},
		"walking": {Value: 1.4, From: "m/s", To: "mi/hr"},
		"sailing": {Value: 12, From: "kn", To: "m/s"},
	},
	"thermal": {
		"conductivity": {Value: 4, From: "BTU-in/hr-ft^2-F", To: "W/m-K"},
		"heat_rate":    {Value: 10000, From: "BTU/hr", To: "kW"},
	},
	"energy": {
		"food":    {Value: 2000, From: "kcal", To: "kWh"},
		"battery": {Value: 75, From: "kWh", To: "MJ"},
		"photon":  {Value: 2.5, From: "ev", To: "J"},
	},
	"pressure": {
		"tire":       {Value: 32, From: "psi", To: "kPa"},
		"atmosphere": {Value: 1, From: "atm", To: "bar"},
	},
	"angle": {
		"right":  {Value: 90, From: "deg", To: "rad"},
		"minute": {Value: 1, From: "arcmin", To: "arcsec"},
	},
}

func GetPreset(category, preset string) *Conversion {
	categoryPresets, ok := Presets[category]
	if !ok {
		return nil
	}
	conv, ok := categoryPresets[preset]
	if !ok {
		return nil
	}
	return conv
}

func ListPresets(category string) []string {
	categoryPresets, ok := Presets[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(categoryPresets))
	for name := range categoryPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Categories() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
