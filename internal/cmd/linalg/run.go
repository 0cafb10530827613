package linalg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// ErrUnknownOp is returned for an operation name the runner does not know.
var ErrUnknownOp = errors.New("unknown operation")

// ErrUnknownOperand is returned when an argument names no matrix or vector.
var ErrUnknownOperand = errors.New("unknown operand")

// ErrScalarBinding is returned when "as" names a scalar result; only matrices
// and vectors can be referenced by later operations.
var ErrScalarBinding = errors.New("scalar results cannot be bound with as")

// Run executes the linalg command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Workload == "" {
		return errors.New("workload path is required")
	}

	w, err := LoadWorkload(cfg.Workload)
	if err != nil {
		return err
	}
	logger := log.New(errOut, "", 0)
	return Evaluate(ctx, w, cfg, out, logger)
}

// Evaluate runs every operation of w in order and prints each result to out.
// A failing operation is reported and skipped unless cfg.FailFast is set.
// Cancellation is checked between operations.
func Evaluate(ctx context.Context, w *Workload, cfg Config, out io.Writer, logger *log.Logger) error {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	e := &evaluator{w: w, opts: cfg.matrixOptions()}

	failed := 0
	for i, op := range w.Operations {
		if err := ctx.Err(); err != nil {
			return err
		}
		label := fmt.Sprintf("%s(%s)", op.Op, strings.Join(op.Args, ", "))
		if cfg.Verbose {
			logger.Printf("step %d: %s", i+1, label)
		}

		res, err := e.apply(op)
		if err == nil && op.As != "" {
			err = e.store(op.As, res)
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: error: %v\n", label, err)
			if cfg.FailFast {
				return fmt.Errorf("step %d %s: %w", i+1, label, err)
			}
			continue
		}
		writeResult(out, label, res)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d operations failed", failed, len(w.Operations))
	}
	return nil
}

// writeResult prints scalars inline and matrices on the following lines.
func writeResult(out io.Writer, label string, res any) {
	switch v := res.(type) {
	case float64:
		fmt.Fprintf(out, "%s = %.4f\n", label, v)
	case *matrix.Dense:
		fmt.Fprintf(out, "%s =\n%s", label, v)
	default:
		fmt.Fprintf(out, "%s = %v\n", label, v)
	}
}

type evaluator struct {
	w    *Workload
	opts []matrix.Option
}

func (e *evaluator) store(name string, res any) error {
	switch v := res.(type) {
	case *matrix.Dense:
		e.w.Matrices[name] = v
	case *vector.Vector:
		e.w.Vectors[name] = v
	default:
		return fmt.Errorf("as %q: %w", name, ErrScalarBinding)
	}
	return nil
}

func (e *evaluator) matrixArg(op Operation, i int) (*matrix.Dense, error) {
	if i >= len(op.Args) {
		return nil, fmt.Errorf("%s: missing argument %d", op.Op, i+1)
	}
	m, ok := e.w.Matrices[op.Args[i]]
	if !ok || m == nil {
		return nil, fmt.Errorf("matrix %q: %w", op.Args[i], ErrUnknownOperand)
	}
	return m, nil
}

func (e *evaluator) vectorArg(op Operation, i int) (*vector.Vector, error) {
	if i >= len(op.Args) {
		return nil, fmt.Errorf("%s: missing argument %d", op.Op, i+1)
	}
	v, ok := e.w.Vectors[op.Args[i]]
	if !ok || v == nil {
		return nil, fmt.Errorf("vector %q: %w", op.Args[i], ErrUnknownOperand)
	}
	return v, nil
}

// matrixBinary resolves two matrix operands and applies fn.
func (e *evaluator) matrixBinary(op Operation, fn func(a, b matrix.Matrix) (*matrix.Dense, error)) (any, error) {
	a, err := e.matrixArg(op, 0)
	if err != nil {
		return nil, err
	}
	b, err := e.matrixArg(op, 1)
	if err != nil {
		return nil, err
	}
	return fn(a, b)
}

// vectorBinary resolves two vector operands and applies fn.
func (e *evaluator) vectorBinary(op Operation, fn func(a, b *vector.Vector) (any, error)) (any, error) {
	a, err := e.vectorArg(op, 0)
	if err != nil {
		return nil, err
	}
	b, err := e.vectorArg(op, 1)
	if err != nil {
		return nil, err
	}
	return fn(a, b)
}

func (e *evaluator) apply(op Operation) (any, error) {
	switch op.Op {
	case "add":
		return e.matrixBinary(op, matrix.Add)
	case "sub":
		return e.matrixBinary(op, matrix.Sub)
	case "mul":
		return e.matrixBinary(op, matrix.Mul)
	case "dot":
		return e.vectorBinary(op, func(a, b *vector.Vector) (any, error) { return a.Dot(b) })
	case "vadd":
		return e.vectorBinary(op, func(a, b *vector.Vector) (any, error) { return a.Add(b) })
	case "vsub":
		return e.vectorBinary(op, func(a, b *vector.Vector) (any, error) { return a.Sub(b) })
	}

	if strings.HasPrefix(op.Op, "v") || op.Op == "magnitude" || op.Op == "normalize" {
		return e.applyVector(op)
	}

	m, err := e.matrixArg(op, 0)
	if err != nil {
		if _, known := unaryMatrixOps[op.Op]; !known {
			return nil, fmt.Errorf("%q: %w", op.Op, ErrUnknownOp)
		}
		return nil, err
	}
	switch op.Op {
	case "scale":
		return matrix.Scale(m, op.Scalar)
	case "transpose":
		return matrix.Transpose(m)
	case "det":
		return matrix.Determinant(m)
	case "trace":
		return matrix.Trace(m)
	case "cofactor":
		return matrix.Cofactor(m)
	case "adjugate":
		return matrix.Adjugate(m)
	case "inverse":
		return matrix.Inverse(m, e.opts...)
	case "submatrix":
		return matrix.SubMatrix(m, op.Row, op.Col)
	}
	return nil, fmt.Errorf("%q: %w", op.Op, ErrUnknownOp)
}

var unaryMatrixOps = map[string]struct{}{
	"scale": {}, "transpose": {}, "det": {}, "trace": {},
	"cofactor": {}, "adjugate": {}, "inverse": {}, "submatrix": {},
}

func (e *evaluator) applyVector(op Operation) (any, error) {
	switch op.Op {
	case "vscale", "magnitude", "normalize":
	default:
		return nil, fmt.Errorf("%q: %w", op.Op, ErrUnknownOp)
	}
	v, err := e.vectorArg(op, 0)
	if err != nil {
		return nil, err
	}
	switch op.Op {
	case "vscale":
		return v.Scale(op.Scalar), nil
	case "magnitude":
		return v.Magnitude(), nil
	default:
		return v.Normalize()
	}
}
