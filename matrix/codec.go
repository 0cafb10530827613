// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Compile-time assertions: *Dense round-trips through YAML.
var (
	_ yaml.Marshaler   = (*Dense)(nil)
	_ yaml.Unmarshaler = (*Dense)(nil)
)

// MarshalYAML encodes the matrix as a sequence of rows:
//
//	- [1, 2]
//	- [3, 4]
func (m *Dense) MarshalYAML() (interface{}, error) {
	if m == nil {
		return nil, nil
	}

	return m.RawGrid(), nil
}

// UnmarshalYAML decodes a sequence of rows and applies the NewDenseFrom
// contract (non-empty, rectangular). On failure the receiver is unchanged.
func (m *Dense) UnmarshalYAML(value *yaml.Node) error {
	var grid [][]float64
	if err := value.Decode(&grid); err != nil {
		return fmt.Errorf("matrix: yaml decode (line %d): %w", value.Line, err)
	}

	return m.SetData(grid)
}
