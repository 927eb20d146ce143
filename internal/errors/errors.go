// hexfmt.  A configurable hexadecimal codec for Go.
// Copyright (C) 2024-2026  The hexfmt Authors
//
// This file is part of hexfmt.
//
// hexfmt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package errors re-exports the standard errors package and adds
// AutoMsg/AutoWrap helpers that prepend the caller's package path to an
// error message, so that errors raised deep in the codec report where
// they came from without every call site formatting that by hand.
package errors

import (
	stderrors "errors"

	"github.com/arlojacobsen/hexfmt/internal/runtime"
)

// New directly calls the standard library's errors.New.
func New(msg string) error {
	return stderrors.New(msg)
}

// Unwrap directly calls the standard library's errors.Unwrap.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Is directly calls the standard library's errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As directly calls the standard library's errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AutoMsg generates an error message by prepending the full package path
// of its caller to msg.
//
// If msg is empty, it uses "<no error message>" instead.
func AutoMsg(msg string) string {
	return autoMsg(msg, 1)
}

func autoMsg(msg string, skip int) string {
	if msg == "" {
		msg = "<no error message>"
	}
	pkg, _, ok := runtime.CallerPkgFunc(skip + 1)
	if !ok || pkg == "" {
		return msg
	}
	return pkg + ": " + msg
}

// autoWrappedError is the error generated by AutoWrap and AutoWrapSkip.
//
// It consists of the wrapped error and a message with the caller's
// package path prepended.
type autoWrappedError struct {
	err error // the wrapped error, always non-nil
	msg string
}

func (awe *autoWrappedError) Error() string {
	return awe.msg
}

func (awe *autoWrappedError) Unwrap() error {
	return awe.err
}

// AutoWrap wraps err by prepending the full package path of its caller
// to the error message of err.
//
// If err is already generated by AutoWrap or AutoWrapSkip, AutoWrap
// finds the first error along the Unwrap chain that is not generated by
// AutoWrap or AutoWrapSkip and uses its message instead, so repeated
// wrapping doesn't stutter the same prefix.
//
// It returns nil if err is nil.
func AutoWrap(err error) error {
	return autoWrap(err, 1)
}

// AutoWrapSkip is like AutoWrap, but skip is the number of stack frames
// to ascend, with 0 identifying the caller of AutoWrapSkip.
func AutoWrapSkip(err error, skip int) error {
	return autoWrap(err, skip+1)
}

func autoWrap(err error, skip int) error {
	if err == nil {
		return nil
	}
	unwrapped := unwrapAutoWrapped(err)
	return &autoWrappedError{
		err: err,
		msg: autoMsg(unwrapped.Error(), skip+1),
	}
}

// unwrapAutoWrapped repeatedly unwraps err until the result is not an
// error generated by AutoWrap or AutoWrapSkip.
func unwrapAutoWrapped(err error) error {
	for {
		awe, ok := err.(*autoWrappedError)
		if !ok {
			return err
		}
		err = awe.err
	}
}
