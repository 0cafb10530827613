package linalg

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"gopkg.in/yaml.v3"
)

// Workload is the decoded input file.
//
//	matrices:
//	  A: [[1, 2], [3, 4]]
//	vectors:
//	  v: [1, 2, 3]
//	operations:
//	  - {op: inverse, args: [A], as: Ainv}
//	  - {op: mul, args: [A, Ainv]}
type Workload struct {
	Matrices   map[string]*matrix.Dense  `yaml:"matrices"`
	Vectors    map[string]*vector.Vector `yaml:"vectors"`
	Operations []Operation               `yaml:"operations"`
}

// Operation is one evaluation step. Scalar, Row and Col are read only by the
// operations that need them (scale/vscale, submatrix). As names the result for
// later steps; it is accepted only for matrix and vector results, and setting
// it on a scalar operation (det, trace, dot, magnitude) fails that step.
type Operation struct {
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args"`
	Scalar float64  `yaml:"scalar"`
	Row    int      `yaml:"row"`
	Col    int      `yaml:"col"`
	As     string   `yaml:"as"`
}

// LoadWorkload reads and decodes a workload file.
func LoadWorkload(path string) (*Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()
	return DecodeWorkload(f)
}

// DecodeWorkload decodes a workload document, rejecting unknown fields.
func DecodeWorkload(r io.Reader) (*Workload, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var w Workload
	if err := dec.Decode(&w); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode workload: empty document")
		}
		return nil, fmt.Errorf("decode workload: %w", err)
	}
	if len(w.Operations) == 0 {
		return nil, errors.New("decode workload: no operations")
	}
	if w.Matrices == nil {
		w.Matrices = map[string]*matrix.Dense{}
	}
	if w.Vectors == nil {
		w.Vectors = map[string]*vector.Vector{}
	}
	return &w, nil
}
