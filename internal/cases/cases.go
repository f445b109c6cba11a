// Package cases loads sets of fault cases from YAML, JSON or spreadsheet
// files and evaluates them in bulk.
package cases

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gofault/internal/fault"
)

// Case is one fault calculation read from a file. Numeric fields are kept
// raw so that comma decimals and blanks are validated the same way as
// interactive input.
type Case struct {
	Name      string         `yaml:"name" json:"name"`
	Type      string         `yaml:"type" json:"type"`
	VoltageKV fault.RawValue `yaml:"voltage_kv" json:"voltage_kv"`
	Z1        fault.RawValue `yaml:"z1" json:"z1"`
	Z2        fault.RawValue `yaml:"z2" json:"z2"`
	Z0        fault.RawValue `yaml:"z0" json:"z0"`
}

// Set is a named collection of cases
type Set struct {
	Project     string `yaml:"project" json:"project"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Cases       []Case `yaml:"cases" json:"cases"`
}

// Outcome is the evaluation of one case. Exactly one of Result and Err is set.
type Outcome struct {
	Case   Case
	Result *fault.Result
	Err    error
}

// Load reads a case file, choosing the decoder by extension
func Load(path string) (*Set, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".json":
		return loadJSON(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported case file type %q (use .yaml, .json or .xlsx)", ext)
	}
}

func loadYAML(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

func loadJSON(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Validate checks the structure of the set and names unnamed cases by
// position. Numeric fields are validated per case during evaluation.
func (s *Set) Validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("case file has no cases")
	}
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		if _, err := fault.ParseType(c.Type); err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
	}
	return nil
}

// Evaluate computes every case. An invalid case records its error and does
// not stop the others.
func Evaluate(s *Set) []Outcome {
	out := make([]Outcome, 0, len(s.Cases))
	for _, c := range s.Cases {
		o := Outcome{Case: c}
		t, err := fault.ParseType(c.Type)
		if err != nil {
			o.Err = err
		} else {
			o.Result, o.Err = fault.ComputeRaw(t, c.VoltageKV, c.Z1, c.Z2, c.Z0)
		}
		out = append(out, o)
	}
	return out
}

// Failed counts the outcomes with an error
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
