// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Daniel Schmidt

package jsonpath

import (
	"errors"
	"fmt"
)

// Error kinds for the query engine. The core never prints, logs, or
// retries; every error is returned to the caller via the normal error
// channel.

var (
	// ErrPathParse is returned when a path expression cannot be tokenized or
	// parsed. Prefer ParseError for the position-carrying variant.
	ErrPathParse = errors.New("jsonpath: parse error")

	// ErrEvalDisabled is returned when a filter or script segment requires
	// expression evaluation but Options.Eval is EvalDisabledMode or
	// Options.PreventEval is set.
	ErrEvalDisabled = errors.New("jsonpath: expression evaluation disabled")

	// ErrUnsafeIdentifier is returned by the safe-eval identifier scanner
	// when a JSONPath-mode filter/script references an identifier outside
	// the allow-list.
	ErrUnsafeIdentifier = errors.New("jsonpath: unsafe identifier in expression")

	// ErrFilterRuntime is returned when evaluating a filter/script
	// expression against a specific candidate fails. If
	// Options.IgnoreEvalErrors is set, the evaluator treats this as "false"
	// for filters (the candidate is excluded) and "no selector" for
	// scripts, and does not propagate the error.
	ErrFilterRuntime = errors.New("jsonpath: filter runtime error")
)

// ParseError reports a tokenizer/parser failure with the byte offset into
// the source string at which parsing failed. The tokenizer never rewinds
// past a reported index.
type ParseError struct {
	Message string
	Index   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsonpath: %s (at %d)", e.Message, e.Index)
}

// Unwrap allows errors.Is(err, ErrPathParse) to succeed for any ParseError.
func (e *ParseError) Unwrap() error { return ErrPathParse }

func newParseError(index int, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Index: index}
}

// FilterRuntimeError wraps ErrFilterRuntime with the underlying cause and
// the source text of the failing expression.
type FilterRuntimeError struct {
	Expr string
	Err  error
}

func (e *FilterRuntimeError) Error() string {
	return fmt.Sprintf("jsonpath: filter %q failed: %v", e.Expr, e.Err)
}

func (e *FilterRuntimeError) Unwrap() error { return ErrFilterRuntime }
