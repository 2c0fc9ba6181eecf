package verify

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is a collection of theorem test vectors. Suites are plain
// structured data so new vectors are added without touching code.
type Suite struct {
	// Name identifies the suite in reports.
	Name string `yaml:"name"`

	// Description explains what the suite verifies.
	Description string `yaml:"description"`

	// Discriminant lists closed-form discriminant cases.
	Discriminant []DiscriminantCase `yaml:"discriminant,omitempty"`

	// Valuation lists valuation-identity cases.
	Valuation []ValuationCase `yaml:"valuation,omitempty"`

	// Uniformity lists conduit-uniformity sweeps.
	Uniformity []UniformityCase `yaml:"uniformity,omitempty"`
}

// DiscriminantCase checks the closed form for one (N, p).
type DiscriminantCase struct {
	N int64 `yaml:"n"`
	P int64 `yaml:"p"`
}

// ValuationCase checks ord_r(disc) = 4*ord_r(N) for one (N, p, r).
type ValuationCase struct {
	N int64 `yaml:"n"`
	P int64 `yaml:"p"`
	R int64 `yaml:"r"`
}

// UniformityCase sweeps every admissible odd prime p for fixed (N, r).
type UniformityCase struct {
	N int64 `yaml:"n"`
	R int64 `yaml:"r"`
}

//go:embed suites/default.yaml
var defaultSuiteYAML []byte

// DefaultSuite returns the built-in curated vectors. The embedded
// document is covered by tests, so a parse failure here is a build
// defect and panics.
func DefaultSuite() *Suite {
	s, err := parseSuite(defaultSuiteYAML)
	if err != nil {
		panic(fmt.Sprintf("verify: embedded default suite is invalid: %v", err))
	}
	return s
}

// LoadSuite reads and parses a suite YAML file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	return parseSuite(data)
}

func parseSuite(data []byte) (*Suite, error) {
	var s Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateSuite(&s); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return &s, nil
}

// validateSuite checks that required fields are present and every
// vector satisfies the structural preconditions of its theorem.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Discriminant)+len(s.Valuation)+len(s.Uniformity) == 0 {
		return fmt.Errorf("at least one case is required")
	}
	for i, c := range s.Discriminant {
		if c.N < 1 {
			return fmt.Errorf("discriminant[%d]: n must be >= 1", i)
		}
		if c.P <= 0 || c.P >= 2*c.N {
			return fmt.Errorf("discriminant[%d]: p must lie strictly between 0 and 2n", i)
		}
	}
	for i, c := range s.Valuation {
		if c.N < 1 {
			return fmt.Errorf("valuation[%d]: n must be >= 1", i)
		}
		if c.P <= 0 || c.P >= 2*c.N {
			return fmt.Errorf("valuation[%d]: p must lie strictly between 0 and 2n", i)
		}
		if c.R < 2 {
			return fmt.Errorf("valuation[%d]: r must be a prime >= 2", i)
		}
	}
	for i, c := range s.Uniformity {
		if c.N < 1 {
			return fmt.Errorf("uniformity[%d]: n must be >= 1", i)
		}
		if c.R < 2 {
			return fmt.Errorf("uniformity[%d]: r must be a prime >= 2", i)
		}
	}
	return nil
}
