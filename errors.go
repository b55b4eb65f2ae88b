// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import (
	"errors"
	"fmt"

	"github.com/db47h/rational/math"
)

// Error kinds. Errors returned by this package wrap exactly one of them and
// can be tested with errors.Is.
var (
	// ErrNilOperand reports a missing (nil) operand.
	ErrNilOperand = errors.New("nil operand")
	// ErrInvalidArgument reports a zero denominator or a zero divisor.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState reports an operation that requires an invertible
	// receiver, like Inv, called on zero.
	ErrInvalidState = errors.New("invalid state")
	// ErrOverflow reports an integer overflow in a checked domain.
	ErrOverflow = math.ErrOverflow
)

// An Error describes a failed operation on a Rat.
type Error struct {
	Op  string // name of the failed operation
	Err error  // error kind
	Msg string // details, may be empty
}

func (e *Error) Error() string {
	s := "rational: " + e.Op + ": " + e.Err.Error()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, kind error, format string, args ...interface{}) *Error {
	return &Error{Op: op, Err: kind, Msg: fmt.Sprintf(format, args...)}
}

func errNil(op, operand string) *Error {
	return &Error{Op: op, Err: ErrNilOperand, Msg: operand + " must not be nil"}
}
