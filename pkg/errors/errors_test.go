// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "message only",
			err:      NewValidation("email is required"),
			expected: "email is required",
		},
		{
			name:     "message with cause",
			err:      NewUnexpected("API request failed", fmt.Errorf("status code: 500")),
			expected: "API request failed: status code: 500",
		},
		{
			name:     "empty message with cause",
			err:      NewUnauthorized("", fmt.Errorf("connection refused")),
			expected: "connection refused",
		},
		{
			name:     "empty message without cause",
			err:      NewNotFound(""),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestErrorTypes(t *testing.T) {
	var (
		validation  Validation
		notFound    NotFound
		unauthz     Unauthorized
		mapping     Mapping
		unavailable ServiceUnavailable
		unexpected  Unexpected
	)

	if !errors.As(NewValidation("bad input"), &validation) {
		t.Error("expected Validation type")
	}
	if !errors.As(NewNotFound("missing"), &notFound) {
		t.Error("expected NotFound type")
	}
	if !errors.As(NewUnauthorized("bad credentials"), &unauthz) {
		t.Error("expected Unauthorized type")
	}
	if !errors.As(NewMapping("unknown role"), &mapping) {
		t.Error("expected Mapping type")
	}
	if !errors.As(NewServiceUnavailable("not ready"), &unavailable) {
		t.Error("expected ServiceUnavailable type")
	}
	if !errors.As(NewUnexpected("boom"), &unexpected) {
		t.Error("expected Unexpected type")
	}

	// Types must not cross-match.
	if errors.As(NewValidation("bad input"), &notFound) {
		t.Error("Validation must not match NotFound")
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewUnexpected("failed to retrieve memberships", cause)

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be discoverable with errors.Is")
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("expected Unwrap to return the cause, got %v", unwrapped)
	}
}
