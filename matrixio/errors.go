// SPDX-License-Identifier: MIT

package matrixio

import "errors"

// ErrSinkUnavailable indicates that the output sink rejected a write or flush.
// Input-side failures use the matrix sentinels (ErrSourceUnavailable,
// ErrMalformedInput, ErrOutOfMemory, ErrInvalidArgument).
var ErrSinkUnavailable = errors.New("matrixio: sink unavailable")
