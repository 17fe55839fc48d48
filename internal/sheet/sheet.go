// Package sheet evaluates worksheets: named quantities combined by a list of
// dimensional operations, with outputs converted to requested units.
//
// Worksheets are YAML:
//
//	quantities:
//	  - {name: k, value: 4, unit: BTU-in/hr-ft^2-F}
//	  - {name: a, value: 10, unit: cm^2}
//	steps:
//	  - {name: q, op: mul, args: [k, a]}
//	outputs:
//	  - {name: q, unit: W}
package sheet

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownOp     = errors.New("sheet: unknown operation")
	ErrUnknownName   = errors.New("sheet: undefined name")
	ErrArity         = errors.New("sheet: wrong number of arguments")
	ErrMissingParam  = errors.New("sheet: missing parameter")
	ErrDuplicateName = errors.New("sheet: duplicate quantity name")
	ErrEmptyName     = errors.New("sheet: empty name")
)

type Sheet struct {
	Quantities []Quantity `yaml:"quantities"`
	Steps      []Step     `yaml:"steps"`
	Outputs    []Output   `yaml:"outputs"`
}

type Quantity struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

// Step applies Op to the named Args and binds the result to Name. A step
// may rebind an existing name.
type Step struct {
	Name string   `yaml:"name"`
	Op   string   `yaml:"op"`
	Args []string `yaml:"args"`
	// Scalar is the factor for scale, the divisor for divscalar and the
	// numerator for inv (default 1).
	Scalar *float64 `yaml:"scalar,omitempty"`
	// Exp is the integer exponent for powi.
	Exp *int `yaml:"exp,omitempty"`
	// Power is the real exponent for powf.
	Power *float64 `yaml:"power,omitempty"`
}

// Output selects a name to report. An empty Unit reports SI base units.
type Output struct {
	Name string `yaml:"name"`
	Unit string `yaml:"unit"`
}

// StepError wraps an evaluation failure with the step that caused it.
type StepError struct {
	Index int
	Name  string
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s = %s): %v", e.Index, e.Name, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sheet: %w", err)
	}
	return &s, nil
}
