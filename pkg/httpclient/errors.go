// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package httpclient

import (
	"net/http"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
)

// ErrorFromStatusCode returns an error based on the http status code
func ErrorFromStatusCode(statusCode int, message string) error {
	switch statusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.NewValidation(message)
	case http.StatusUnauthorized:
		return errors.NewUnauthorized(message)
	case http.StatusForbidden:
		return errors.NewForbidden(message)
	case http.StatusNotFound:
		return errors.NewNotFound(message)
	case http.StatusInternalServerError:
		return errors.NewUnexpected(message)
	}
	return errors.NewUnexpected(message)
}
