// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/constants"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
)

// Account is the canonical account record exchanged with the governance
// platform. Every attribute is always populated: absent source fields map to
// explicit zero values, never to null.
type Account struct {
	Identity         string   `json:"identity"`
	UUID             string   `json:"uuid"`
	MembershipID     string   `json:"membershipId"`
	UserAccountID    string   `json:"userAccountId"`
	SupportAccountID string   `json:"supportAccountId"`
	ActivationDate   string   `json:"activationDate"`
	ExpirationDate   string   `json:"expirationDate"`
	Disabled         bool     `json:"IIQDisabled"`
	Email            string   `json:"email"`
	FirstName        string   `json:"firstName,omitempty"`
	LastName         string   `json:"lastName,omitempty"`
	Description      string   `json:"description"`
	Roles            []string `json:"roles"`
}

// Entitlement represents one portal role as a governance entitlement.
type Entitlement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// EntitlementTypeRole is the only entitlement type the portal has.
const EntitlementTypeRole = "role"

// Sanitize cleans up the string fields of the account.
func (a *Account) Sanitize() {
	a.Identity = strings.TrimSpace(a.Identity)
	a.MembershipID = strings.TrimSpace(a.MembershipID)
	a.Email = strings.TrimSpace(a.Email)
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Description = strings.TrimSpace(a.Description)
}

// Validate checks the fields required before a create call.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Email) == "" {
		return errors.NewValidation("email is required")
	}
	return nil
}

// ValidateForPatch checks the fields required before patching a membership.
func (a *Account) ValidateForPatch() error {
	if strings.TrimSpace(a.MembershipID) == "" {
		return errors.NewValidation("membership id is required")
	}
	if strings.TrimSpace(a.Email) == "" {
		return errors.NewValidation(fmt.Sprintf("email is required for membership %s", a.MembershipID))
	}
	return nil
}

// AccountFromAttributes builds an account from the attribute bag carried by a
// create request. Missing attributes become explicit zero values. The roles
// attribute accepts a scalar or a list; each value must be the string form of
// a numeric role id.
func AccountFromAttributes(attrs map[string]any) (*Account, error) {
	account := &Account{Roles: []string{}}
	if attrs == nil {
		return account, account.Validate()
	}

	if raw, ok := attrs[constants.AttributeRoles]; ok && raw != nil {
		roles, err := StringValues(raw)
		if err != nil {
			return nil, err
		}
		for _, role := range roles {
			if _, err := strconv.ParseInt(role, 10, 64); err != nil {
				return nil, errors.NewValidation(fmt.Sprintf("invalid entitlement: %s", role))
			}
		}
		account.Roles = roles
	}

	account.Email = stringAttribute(attrs, constants.AttributeEmail)
	account.FirstName = stringAttribute(attrs, constants.AttributeFirstName)
	account.LastName = stringAttribute(attrs, constants.AttributeLastName)
	account.MembershipID = stringAttribute(attrs, constants.AttributeMembershipID)
	account.Description = stringAttribute(attrs, constants.AttributeDescription)
	account.Sanitize()

	return account, account.Validate()
}

func stringAttribute(attrs map[string]any, name string) string {
	raw, ok := attrs[name]
	if !ok || raw == nil {
		return ""
	}
	value, err := stringValue(raw)
	if err != nil {
		return ""
	}
	return value
}

// StringValues coerces a scalar or list attribute value into a string slice.
func StringValues(raw any) ([]string, error) {
	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return append([]string{}, v...), nil
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			value, err := stringValue(item)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		return values, nil
	default:
		value, err := stringValue(raw)
		if err != nil {
			return nil, err
		}
		return []string{value}, nil
	}
}

// stringValue coerces a scalar attribute value into a string. JSON numbers
// arrive as float64; integral ids must not pick up a decimal point.
func stringValue(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", errors.NewValidation(fmt.Sprintf("invalid entitlement type: %v", raw))
	}
}
