// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrAlreadyRunning       = ExistsError("another instance is already running")
	ErrCountMismatch        = InvalidError("node count mismatch")
	ErrDuplicateKey         = InvalidError("duplicate key in tree")
	ErrHeightBound          = InvalidError("tree height exceeds logarithmic bound")
	ErrHeightMismatch       = InvalidError("cached height mismatch")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidDirectory     = InvalidError("invalid directory")
	ErrInvalidInterval      = InvalidError("invalid interval")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidPercentage    = InvalidError("percentage must be in the range 0..100")
	ErrInvalidRate          = InvalidError("invalid operation rate")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingKeys          = LengthError("missing keys")
	ErrMissingParameters    = LengthError("missing parameters")
	ErrNotAPlainFileName    = InvalidError("not a plain file name")
	ErrNotATable            = InvalidError("configuration did not return a table")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrOrdering             = InvalidError("keys out of order")
	ErrTreeFull             = LengthError("tree node limit reached")
	ErrUnbalanced           = InvalidError("sub-tree out of balance")
	ErrUnexpectedArguments  = LengthError("unexpected arguments")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
