package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/chunkmul/matrix"
	"github.com/katalvlaran/chunkmul/matrixio"
)

// runWorker is the worker pipeline: read the left chunk, read the right
// matrix, multiply, print.
func (a *app) runWorker(_ *cobra.Command, args []string) error {
	id, err := parseCount("id", args[0])
	if err != nil {
		return err
	}
	n, err := parseCount("N", args[1])
	if err != nil {
		return err
	}
	leftPath, rightPath := args[2], args[3]
	if leftPath == matrixio.StdinPath && rightPath == matrixio.StdinPath {
		return fmt.Errorf("only one matrix can be read from standard input: %w", matrix.ErrInvalidArgument)
	}

	log := a.logger.With(zap.Int("worker", id), zap.Int("workers", n))
	readOpts := []matrixio.Option{
		matrixio.WithLogger(log),
		matrixio.WithValidateNaNInf(a.cfg.Input.ValidateNaNInf),
		matrixio.WithMaxElements(a.cfg.Input.MaxElements),
	}

	left, err := matrixio.ReadChunkFile(leftPath, id, n, readOpts...)
	if err != nil {
		return fmt.Errorf("%s: %w", leftPath, err)
	}
	right, err := matrixio.ReadFullFile(rightPath, readOpts...)
	if err != nil {
		return fmt.Errorf("%s: %w", rightPath, err)
	}

	start := time.Now()
	out, err := matrix.Multiply(left, right, matrix.WithMaxElements(a.cfg.Input.MaxElements))
	if err != nil {
		return err
	}
	log.Debug("multiplied chunk",
		zap.Stringer("range", out.Range()),
		zap.Int("cols", out.Cols()),
		zap.Duration("elapsed", time.Since(start)))

	return matrixio.WriteRange(a.stdout, out,
		matrixio.WithLogger(log),
		matrixio.WithFormat(a.cfg.Output.Format[0]),
		matrixio.WithPrecision(a.cfg.Output.Precision))
}

// parseCount parses an unsigned decimal command-line integer.
func parseCount(name, s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("<%s> %q is not an unsigned integer: %w", name, s, matrix.ErrInvalidArgument)
	}

	return int(v), nil
}
