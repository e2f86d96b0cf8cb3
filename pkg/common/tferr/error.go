// Copyright 2024 Taskfabric
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tferr

import (
	"errors"
	"fmt"
)

// Error codes. Codes are stable across releases, messages are not.
const (
	Ok uint16 = 0

	// Group 1: internal errors
	ErrInternal     uint16 = 20101
	ErrInvalidState uint16 = 20102

	// Group 2: invalid input
	ErrBadConfig    uint16 = 20201
	ErrInvalidInput uint16 = 20202

	// Group 3: cluster state
	ErrNoSuchNode uint16 = 20301
	ErrNodeDown   uint16 = 20302
)

var errorMsg = map[uint16]string{
	Ok:              "ok",
	ErrInternal:     "internal error: %s",
	ErrInvalidState: "invalid state: %s",
	ErrBadConfig:    "invalid configuration: %s",
	ErrInvalidInput: "invalid input: %s",
	ErrNoSuchNode:   "node %s not found",
	ErrNodeDown:     "node %s is down",
}

// Error is a coded taskfabric error.
type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

// ErrorCode returns the stable code of the error.
func (e *Error) ErrorCode() uint16 {
	return e.code
}

func newError(code uint16, args ...any) *Error {
	format, ok := errorMsg[code]
	if !ok {
		panic(fmt.Sprintf("unknown error code %d", code))
	}
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}

// NewInternal returns an ErrInternal error.
func NewInternal(msg string) *Error {
	return newError(ErrInternal, msg)
}

// NewInternalf returns an ErrInternal error with a formatted message.
func NewInternalf(format string, args ...any) *Error {
	return NewInternal(fmt.Sprintf(format, args...))
}

// NewInvalidState returns an ErrInvalidState error.
func NewInvalidState(format string, args ...any) *Error {
	return newError(ErrInvalidState, fmt.Sprintf(format, args...))
}

// NewBadConfig returns an ErrBadConfig error.
func NewBadConfig(format string, args ...any) *Error {
	return newError(ErrBadConfig, fmt.Sprintf(format, args...))
}

// NewInvalidInput returns an ErrInvalidInput error.
func NewInvalidInput(format string, args ...any) *Error {
	return newError(ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NewNoSuchNode returns an ErrNoSuchNode error.
func NewNoSuchNode(node fmt.Stringer) *Error {
	return newError(ErrNoSuchNode, node.String())
}

// NewNodeDown returns an ErrNodeDown error.
func NewNodeDown(node fmt.Stringer) *Error {
	return newError(ErrNodeDown, node.String())
}

// IsErrCode returns true if err is a taskfabric error with the given code.
func IsErrCode(err error, code uint16) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.code == code
}
