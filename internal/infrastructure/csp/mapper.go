// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package csp

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/model"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
)

// toAccount maps a portal membership to the canonical account. Role bindings
// that carry an id keep it; bindings that carry only a name are resolved
// through the role reference table, and an unresolvable name fails the whole
// mapping rather than dropping the role silently.
func toAccount(m membership, now time.Time) (*model.Account, error) {
	roles := make([]string, 0, len(m.MembershipRoles))
	for _, binding := range m.MembershipRoles {
		if binding.RoleID != 0 {
			roles = append(roles, strconv.FormatInt(binding.RoleID, 10))
			continue
		}
		id, ok := roleRef.IDByName(binding.RoleName)
		if !ok {
			return nil, errors.NewMapping(fmt.Sprintf("unknown role name %q on membership %d", binding.RoleName, m.MembershipID))
		}
		roles = append(roles, id)
	}

	account := &model.Account{
		MembershipID:     formatID(m.MembershipID),
		UserAccountID:    formatID(m.UserAccountID),
		SupportAccountID: formatID(m.SupportAccountID),
		ActivationDate:   m.ActivationDate,
		ExpirationDate:   m.ExpirationDate,
		Disabled:         isDisabled(m.ExpirationDate, now),
		Email:            m.Email,
		Description:      m.Description,
		Roles:            roles,
	}

	account.Identity = account.MembershipID
	if account.Identity == "" {
		account.Identity = account.Email
	}
	account.UUID = account.Identity

	return account, nil
}

// roleIDsOf converts the account's numeric-string role ids to the int64 form
// the membership endpoints take.
func roleIDsOf(roles []string) ([]int64, error) {
	ids := make([]int64, 0, len(roles))
	for _, role := range roles {
		id, err := strconv.ParseInt(role, 10, 64)
		if err != nil {
			return nil, errors.NewValidation(fmt.Sprintf("invalid entitlement: %s", role))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// formatID renders a numeric id, with zero mapping to the empty string.
func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
