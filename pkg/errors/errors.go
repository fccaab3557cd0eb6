// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

// Package errors defines the typed error values shared across the connector.
// Each type carries a message and an optional wrapped cause so callers can
// branch on the failure class with errors.As while keeping the underlying
// transport detail for diagnostics.
package errors

// base carries the message and optional cause shared by every error type.
type base struct {
	message string
	err     error
}

func (b base) Error() string {
	if b.err != nil {
		if b.message == "" {
			return b.err.Error()
		}
		return b.message + ": " + b.err.Error()
	}
	return b.message
}

// Unwrap exposes the wrapped cause to the errors package helpers.
func (b base) Unwrap() error {
	return b.err
}

func newBase(message string, errs []error) base {
	b := base{message: message}
	if len(errs) > 0 {
		b.err = errs[0]
	}
	return b
}

// Validation indicates malformed or missing input data.
type Validation struct{ base }

// NewValidation creates a new Validation error
func NewValidation(message string, errs ...error) error {
	return Validation{newBase(message, errs)}
}

// NotFound indicates that the requested record does not exist.
type NotFound struct{ base }

// NewNotFound creates a new NotFound error
func NewNotFound(message string, errs ...error) error {
	return NotFound{newBase(message, errs)}
}

// Unauthorized indicates an authentication failure against the remote system.
type Unauthorized struct{ base }

// NewUnauthorized creates a new Unauthorized error
func NewUnauthorized(message string, errs ...error) error {
	return Unauthorized{newBase(message, errs)}
}

// Forbidden indicates the credentials lack access to the requested resource.
type Forbidden struct{ base }

// NewForbidden creates a new Forbidden error
func NewForbidden(message string, errs ...error) error {
	return Forbidden{newBase(message, errs)}
}

// Mapping indicates a payload could not be translated into the canonical
// model, such as a role name missing from the reference table.
type Mapping struct{ base }

// NewMapping creates a new Mapping error
func NewMapping(message string, errs ...error) error {
	return Mapping{newBase(message, errs)}
}

// ServiceUnavailable indicates a dependency is not ready to serve requests.
type ServiceUnavailable struct{ base }

// NewServiceUnavailable creates a new ServiceUnavailable error
func NewServiceUnavailable(message string, errs ...error) error {
	return ServiceUnavailable{newBase(message, errs)}
}

// Unexpected indicates a remote call or internal failure with no more
// specific classification.
type Unexpected struct{ base }

// NewUnexpected creates a new Unexpected error
func NewUnexpected(message string, errs ...error) error {
	return Unexpected{newBase(message, errs)}
}
