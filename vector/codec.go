// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = (*Vector)(nil)
	_ yaml.Unmarshaler = (*Vector)(nil)
)

// MarshalYAML encodes the vector as a flat sequence.
func (v *Vector) MarshalYAML() (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	return v.Values(), nil
}

// UnmarshalYAML decodes a flat sequence of numbers.
func (v *Vector) UnmarshalYAML(value *yaml.Node) error {
	var data []float64
	if err := value.Decode(&data); err != nil {
		return fmt.Errorf("vector: yaml decode (line %d): %w", value.Line, err)
	}
	if data == nil {
		data = []float64{}
	}
	v.data = data

	return nil
}
