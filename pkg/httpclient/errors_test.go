// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package httpclient

import (
	"net/http"
	"testing"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
)

func TestErrorFromStatusCode(t *testing.T) {
	tests := []struct {
		name          string
		statusCode    int
		message       string
		expectedType  string
		expectedError string
	}{
		{
			name:          "BadRequest returns Validation error",
			statusCode:    http.StatusBadRequest,
			message:       "invalid request",
			expectedType:  "Validation",
			expectedError: "invalid request",
		},
		{
			name:          "UnprocessableEntity returns Validation error",
			statusCode:    http.StatusUnprocessableEntity,
			message:       "user already exists",
			expectedType:  "Validation",
			expectedError: "user already exists",
		},
		{
			name:          "Unauthorized returns Unauthorized error",
			statusCode:    http.StatusUnauthorized,
			message:       "authentication required",
			expectedType:  "Unauthorized",
			expectedError: "authentication required",
		},
		{
			name:          "Forbidden returns Forbidden error",
			statusCode:    http.StatusForbidden,
			message:       "access denied",
			expectedType:  "Forbidden",
			expectedError: "access denied",
		},
		{
			name:          "NotFound returns NotFound error",
			statusCode:    http.StatusNotFound,
			message:       "resource not found",
			expectedType:  "NotFound",
			expectedError: "resource not found",
		},
		{
			name:          "InternalServerError returns Unexpected error",
			statusCode:    http.StatusInternalServerError,
			message:       "server error",
			expectedType:  "Unexpected",
			expectedError: "server error",
		},
		{
			name:          "Unknown status code returns Unexpected error",
			statusCode:    http.StatusTeapot,
			message:       "unknown error",
			expectedType:  "Unexpected",
			expectedError: "unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ErrorFromStatusCode(tt.statusCode, tt.message)

			if err == nil {
				t.Fatal("expected error to be non-nil")
			}

			if err.Error() != tt.expectedError {
				t.Errorf("expected error message %q, got %q", tt.expectedError, err.Error())
			}

			switch tt.expectedType {
			case "Validation":
				if _, ok := err.(errors.Validation); !ok {
					t.Errorf("expected error type %s, got %T", tt.expectedType, err)
				}
			case "Unauthorized":
				if _, ok := err.(errors.Unauthorized); !ok {
					t.Errorf("expected error type %s, got %T", tt.expectedType, err)
				}
			case "Forbidden":
				if _, ok := err.(errors.Forbidden); !ok {
					t.Errorf("expected error type %s, got %T", tt.expectedType, err)
				}
			case "NotFound":
				if _, ok := err.(errors.NotFound); !ok {
					t.Errorf("expected error type %s, got %T", tt.expectedType, err)
				}
			case "Unexpected":
				if _, ok := err.(errors.Unexpected); !ok {
					t.Errorf("expected error type %s, got %T", tt.expectedType, err)
				}
			default:
				t.Errorf("unknown expected type: %s", tt.expectedType)
			}
		})
	}
}

func TestErrorFromStatusCode_AllHTTPStatusCodes(t *testing.T) {
	statusCodes := []int{
		100, 200, 201, 204, 300, 301, 302, 400, 401, 403, 404, 405, 409, 422, 429, 500, 501, 502, 503, 504,
	}

	for _, code := range statusCodes {
		t.Run(http.StatusText(code), func(t *testing.T) {
			err := ErrorFromStatusCode(code, "test message")
			if err == nil {
				t.Errorf("expected error for status code %d, got nil", code)
			}
			if err.Error() != "test message" {
				t.Errorf("expected error message 'test message', got %q", err.Error())
			}
		})
	}
}
