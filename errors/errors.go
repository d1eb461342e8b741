//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package errors provides coded errors for the parts of turtle that can fail:
// scripts, configuration and command line input. The interpreter core has
// no error conditions and does not use this package.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a category of failure.
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	ErrScriptRead   ErrorCode = "SCRIPT_READ"
	ErrScriptEval   ErrorCode = "SCRIPT_EVAL"
	ErrScriptArgs   ErrorCode = "SCRIPT_ARGS"
	ErrScriptResult ErrorCode = "SCRIPT_RESULT"

	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// TurtleError carries a code, a message, optional details and the cause.
type TurtleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *TurtleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *TurtleError) Unwrap() error {
	return e.Wrapped
}

// Is matches any TurtleError with the same code.
func (e *TurtleError) Is(target error) bool {
	var targetErr *TurtleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithDetail adds a detail and returns the error for chaining.
func (e *TurtleError) WithDetail(key string, value interface{}) *TurtleError {
	e.Details[key] = value
	return e
}

func New(code ErrorCode, message string) *TurtleError {
	return &TurtleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

func Newf(code ErrorCode, format string, args ...interface{}) *TurtleError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *TurtleError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TurtleError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// GetCode returns the code of the first TurtleError in err's chain.
func GetCode(err error) ErrorCode {
	var e *TurtleError
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

func IsErrorCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
