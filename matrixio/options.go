// SPDX-License-Identifier: MIT

package matrixio

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/chunkmul/matrix"
)

// Defaults (single source of truth).
const (
	// DefaultFormat is the strconv float format verb used by the writer.
	DefaultFormat byte = 'g'

	// DefaultPrecision of -1 selects the shortest representation that
	// round-trips a float32.
	DefaultPrecision = -1
)

const (
	panicFormatInvalid    = "matrixio: WithFormat: format must be one of 'e', 'f', 'g'"
	panicPrecisionInvalid = "matrixio: WithPrecision: precision must be >= -1"
)

// Option mutates reader/writer options.
type Option func(*Options)

// Options is the resolved configuration of a Reader or Writer.
type Options struct {
	logger *zap.Logger

	// reader
	validateNaNInf bool
	maxElements    int

	// writer
	format    byte
	precision int
}

// WithLogger routes debug logs to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithValidateNaNInf toggles rejection of NaN/±Inf input tokens
// (default matrix.DefaultValidateNaNInf).
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// WithMaxElements caps the number of cells a read may allocate.
// Panics when limit <= 0.
func WithMaxElements(limit int) Option {
	matrix.WithMaxElements(limit) // shared validation; panics on nonsense

	return func(o *Options) { o.maxElements = limit }
}

// WithFormat selects the float format verb ('e', 'f' or 'g').
func WithFormat(fmtByte byte) Option {
	switch fmtByte {
	case 'e', 'f', 'g':
	default:
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.format = fmtByte }
}

// WithPrecision sets the number of digits (-1 for shortest round-trip).
func WithPrecision(prec int) Option {
	if prec < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = prec }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		logger:         zap.NewNop(),
		validateNaNInf: matrix.DefaultValidateNaNInf,
		maxElements:    matrix.DefaultMaxElements,
		format:         DefaultFormat,
		precision:      DefaultPrecision,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// matrixOptions translates the reader policy into matrix storage options.
func (o Options) matrixOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithMaxElements(o.maxElements)}
	if o.validateNaNInf {
		return append(opts, matrix.WithValidateNaNInf())
	}

	return append(opts, matrix.WithNoValidateNaNInf())
}
