// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package csp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
)

func TestToAccount(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	m := membership{
		MembershipID:     12345,
		UserAccountID:    777,
		SupportAccountID: 42,
		Email:            "jordan@example.com",
		Description:      "managed account",
		ActivationDate:   "2023-01-01 00:00:00",
		ExpirationDate:   "2199-12-31 00:00:00",
		MembershipRoles: []membershipRole{
			{RoleID: 2, RoleName: "Super User"},
			{RoleID: 9},
		},
	}

	account, err := toAccount(m, now)
	require.NoError(t, err)

	assert.Equal(t, "12345", account.Identity)
	assert.Equal(t, "12345", account.UUID)
	assert.Equal(t, "12345", account.MembershipID)
	assert.Equal(t, "777", account.UserAccountID)
	assert.Equal(t, "42", account.SupportAccountID)
	assert.Equal(t, "jordan@example.com", account.Email)
	assert.Equal(t, "managed account", account.Description)
	assert.False(t, account.Disabled)
	assert.Equal(t, []string{"2", "9"}, account.Roles)
}

func TestToAccountResolvesRoleNames(t *testing.T) {
	now := time.Now()

	m := membership{
		MembershipID: 100,
		Email:        "sam@example.com",
		MembershipRoles: []membershipRole{
			{RoleName: "Standard User"},
			{RoleName: "Read Only User"},
		},
	}

	account, err := toAccount(m, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "5"}, account.Roles)
}

func TestToAccountUnknownRoleNameFails(t *testing.T) {
	m := membership{
		MembershipID:    100,
		Email:           "sam@example.com",
		MembershipRoles: []membershipRole{{RoleName: "Galactic Overlord"}},
	}

	_, err := toAccount(m, time.Now())
	require.Error(t, err)
	assert.ErrorAs(t, err, &errors.Mapping{})
}

func TestToAccountDisabledFromPastExpiration(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	m := membership{
		MembershipID:   100,
		Email:          "sam@example.com",
		ExpirationDate: "2024-01-01 00:00:00",
	}

	account, err := toAccount(m, now)
	require.NoError(t, err)
	assert.True(t, account.Disabled)
}

func TestToAccountFallsBackToEmailIdentity(t *testing.T) {
	m := membership{Email: "sam@example.com"}

	account, err := toAccount(m, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", account.Identity)
	assert.Equal(t, "sam@example.com", account.UUID)
	assert.Empty(t, account.MembershipID)
}

func TestAccountMembershipRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	original := membership{
		MembershipID:    12345,
		Email:           "jordan@example.com",
		Description:     "managed account",
		ExpirationDate:  "2199-12-31 00:00:00",
		MembershipRoles: []membershipRole{{RoleID: 2}, {RoleID: 9}},
	}

	account, err := toAccount(original, now)
	require.NoError(t, err)

	// Project the account back into the membership shape the patch endpoint
	// takes, then map it forward again.
	roleIDs, err := roleIDsOf(account.Roles)
	require.NoError(t, err)

	projected := membership{
		MembershipID:   12345,
		Email:          account.Email,
		Description:    account.Description,
		ExpirationDate: account.ExpirationDate,
	}
	for _, id := range roleIDs {
		projected.MembershipRoles = append(projected.MembershipRoles, membershipRole{RoleID: id})
	}

	final, err := toAccount(projected, now)
	require.NoError(t, err)

	assert.Equal(t, account.Identity, final.Identity)
	assert.Equal(t, account.Roles, final.Roles)
	assert.Equal(t, account.Description, final.Description)
}

func TestRoleIDsOf(t *testing.T) {
	ids, err := roleIDsOf([]string{"2", "13"})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 13}, ids)

	ids, err = roleIDsOf(nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = roleIDsOf([]string{"Super User"})
	require.Error(t, err)
	assert.ErrorAs(t, err, &errors.Validation{})
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "", formatID(0))
	assert.Equal(t, "12345", formatID(12345))
}
