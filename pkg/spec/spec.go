package spec

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed shelter.yaml
var defaultSheet []byte

// Parse decodes a shelter spec from YAML.
func Parse(data []byte) (*ShelterSpec, error) {
	var spec ShelterSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}
	return &spec, nil
}

// Default returns the price sheet compiled into the binary.
// Each call decodes a fresh copy, so callers may not share state through it.
func Default() (*ShelterSpec, error) {
	s, err := Parse(defaultSheet)
	if err != nil {
		return nil, fmt.Errorf("loading built-in price sheet: %w", err)
	}
	return s, nil
}
