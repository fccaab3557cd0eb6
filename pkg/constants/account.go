// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package constants

const (
	// AttributeRoles is the multi-valued role identifier attribute
	AttributeRoles = "roles"
	// AttributeEmail is the account email attribute
	AttributeEmail = "email"
	// AttributeDescription is the free-text description attribute
	AttributeDescription = "description"
	// AttributeMembershipID is the portal membership id attribute
	AttributeMembershipID = "membershipId"
	// AttributeUserAccountID is the portal user account id attribute
	AttributeUserAccountID = "userAccountId"
	// AttributeSupportAccountID is the portal support account id attribute
	AttributeSupportAccountID = "supportAccountId"
	// AttributeActivationDate is the membership activation date attribute
	AttributeActivationDate = "activationDate"
	// AttributeExpirationDate is the membership expiration date attribute
	AttributeExpirationDate = "expirationDate"
	// AttributeFirstName is the given name attribute used on create
	AttributeFirstName = "firstName"
	// AttributeLastName is the family name attribute used on create
	AttributeLastName = "lastName"
)
