// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

// Package jwt extracts claims from bearer tokens without verifying the
// signature. The connector never validates portal tokens itself; it only
// needs the expiry claim when the token endpoint omits expires_in.
package jwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
)

// Claims represents the parsed JWT claims with the fields the connector uses
type Claims struct {
	Subject   string        `json:"sub"`
	ExpiresAt *time.Time    `json:"exp,omitempty"`
	IssuedAt  *time.Time    `json:"iat,omitempty"`
	Issuer    string        `json:"iss,omitempty"`
	Scope     string        `json:"scope,omitempty"`
	Raw       jwt.MapClaims `json:"-"`
}

// ParseUnverified parses a JWT token without signature verification and
// returns its claims. Signature validation is the portal's concern; the
// connector only reads claim values.
func ParseUnverified(tokenString string) (*Claims, error) {
	cleanToken := strings.TrimSpace(tokenString)
	if cleanToken == "" {
		return nil, errors.NewValidation("token is required")
	}

	// Remove an optional Bearer prefix (case-insensitive)
	parts := strings.Fields(cleanToken)
	if len(parts) > 1 && strings.EqualFold(parts[0], "Bearer") {
		cleanToken = strings.Join(parts[1:], " ")
	}

	token, _, err := new(jwt.Parser).ParseUnverified(cleanToken, jwt.MapClaims{})
	if err != nil {
		return nil, errors.NewValidation("failed to parse JWT token", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.NewValidation("invalid token claims")
	}

	return mapClaimsToClaims(mapClaims)
}

// mapClaimsToClaims converts jwt.MapClaims to our Claims struct
func mapClaimsToClaims(mapClaims jwt.MapClaims) (*Claims, error) {
	claims := &Claims{
		Raw: mapClaims,
	}

	if sub, ok := mapClaims["sub"].(string); ok {
		claims.Subject = sub
	}

	if exp, ok := mapClaims["exp"]; ok {
		expTime, err := parseTimeFromClaim(exp)
		if err != nil {
			return nil, errors.NewValidation("invalid 'exp' claim format", err)
		}
		claims.ExpiresAt = &expTime
	}

	if iat, ok := mapClaims["iat"]; ok {
		iatTime, err := parseTimeFromClaim(iat)
		if err != nil {
			return nil, errors.NewValidation("invalid 'iat' claim format", err)
		}
		claims.IssuedAt = &iatTime
	}

	if iss, ok := mapClaims["iss"].(string); ok {
		claims.Issuer = iss
	}

	if scope, ok := mapClaims["scope"].(string); ok {
		claims.Scope = scope
	}

	return claims, nil
}

// parseTimeFromClaim handles the numeric types a time claim may arrive as
func parseTimeFromClaim(claim any) (time.Time, error) {
	switch v := claim.(type) {
	case float64:
		return time.Unix(int64(v), 0), nil
	case int64:
		return time.Unix(v, 0), nil
	case int:
		return time.Unix(int64(v), 0), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported time claim type: %T", claim)
	}
}
