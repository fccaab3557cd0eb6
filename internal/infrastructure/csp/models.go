// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package csp

// membershipEnvelope is the response wrapper shared by the membership
// endpoints.
type membershipEnvelope struct {
	Data []membership `json:"data"`
}

// membership binds a portal user to the support account with a set of roles
// and an expiration date.
type membership struct {
	MembershipID     int64            `json:"membershipId"`
	UserAccountID    int64            `json:"userAccountId"`
	SupportAccountID int64            `json:"supportAccountId"`
	Email            string           `json:"email"`
	Description      string           `json:"description"`
	ActivationDate   string           `json:"activationDate"`
	ExpirationDate   string           `json:"expirationDate"`
	MembershipRoles  []membershipRole `json:"membershipRoles"`
}

// membershipRole carries the role binding of a membership. The list endpoint
// reports both the id and the name; the email lookup endpoint reports only
// the name.
type membershipRole struct {
	RoleID   int64  `json:"roleId,omitempty"`
	RoleName string `json:"roleName,omitempty"`
}

type createUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type createMembershipRequest struct {
	Email           string  `json:"email"`
	MembershipRoles []int64 `json:"membershipRoles"`
}

type patchMembershipRequest struct {
	MembershipID    int64   `json:"membershipId"`
	MembershipRoles []int64 `json:"membershipRoles"`
	ExpirationDate  string  `json:"expirationDate"`
	Description     string  `json:"description"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
}
