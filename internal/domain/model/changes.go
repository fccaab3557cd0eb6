// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/constants"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
)

// Operation tags for AttributeChange.
const (
	ChangeOpAdd    = "Add"
	ChangeOpSet    = "Set"
	ChangeOpRemove = "Remove"
)

// AttributeChange is one attribute delta from an update request.
type AttributeChange struct {
	Op        string `json:"op"`
	Attribute string `json:"attribute"`
	Value     any    `json:"value,omitempty"`
}

// ApplyChanges applies attribute deltas in input order. The first invalid
// change aborts the whole update.
func (a *Account) ApplyChanges(changes []AttributeChange) error {
	for _, change := range changes {
		var err error
		switch change.Op {
		case ChangeOpSet:
			err = a.applySet(change)
		case ChangeOpAdd:
			err = a.applyAdd(change)
		case ChangeOpRemove:
			err = a.applyRemove(change)
		default:
			err = errors.NewValidation(fmt.Sprintf("unknown change operation: %s", change.Op))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// applySet overwrites the named attribute with the given value.
func (a *Account) applySet(change AttributeChange) error {
	if change.Attribute == constants.AttributeRoles {
		roles, err := StringValues(change.Value)
		if err != nil {
			return err
		}
		a.Roles = roles
		return nil
	}

	value, err := stringValue(change.Value)
	if err != nil {
		return errors.NewValidation(fmt.Sprintf("invalid value for attribute %s: %v", change.Attribute, change.Value))
	}
	return a.setScalar(change.Attribute, value)
}

// applyAdd appends values to the roles list. Every other attribute is
// single-valued, so adding to it is invalid.
func (a *Account) applyAdd(change AttributeChange) error {
	if change.Attribute != constants.AttributeRoles {
		return errors.NewValidation(fmt.Sprintf("cannot add value to attribute: %s", change.Attribute))
	}

	values, err := StringValues(change.Value)
	if err != nil {
		return err
	}
	a.Roles = append(a.Roles, values...)
	return nil
}

// applyRemove deletes matching values from the roles list by value equality.
// On a scalar attribute it clears the current value instead.
func (a *Account) applyRemove(change AttributeChange) error {
	if change.Attribute == constants.AttributeRoles {
		values, err := StringValues(change.Value)
		if err != nil {
			return err
		}
		for _, value := range values {
			a.Roles = removeFirst(a.Roles, value)
		}
		return nil
	}
	return a.setScalar(change.Attribute, "")
}

// removeFirst removes the first occurrence of value; absent values are a
// no-op.
func removeFirst(values []string, value string) []string {
	for i, v := range values {
		if v == value {
			return append(values[:i], values[i+1:]...)
		}
	}
	return values
}

func (a *Account) setScalar(attribute, value string) error {
	switch attribute {
	case constants.AttributeEmail:
		a.Email = value
	case constants.AttributeDescription:
		a.Description = value
	case constants.AttributeMembershipID:
		a.MembershipID = value
	case constants.AttributeUserAccountID:
		a.UserAccountID = value
	case constants.AttributeSupportAccountID:
		a.SupportAccountID = value
	case constants.AttributeActivationDate:
		a.ActivationDate = value
	case constants.AttributeExpirationDate:
		a.ExpirationDate = value
	case constants.AttributeFirstName:
		a.FirstName = value
	case constants.AttributeLastName:
		a.LastName = value
	default:
		return errors.NewValidation(fmt.Sprintf("unknown attribute: %s", attribute))
	}
	return nil
}
