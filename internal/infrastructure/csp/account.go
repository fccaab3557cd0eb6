// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package csp

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strconv"
	"time"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/model"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/port"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/httpclient"
)

const (
	enabledDescription  = "User enabled by SailPoint"
	disabledDescription = "User disabled by SailPoint"
)

// accountReaderWriter implements the account, entitlement and connection ports
// against the portal gateway.
type accountReaderWriter struct {
	gateway *gateway
	config  Config

	// now and sleep are swapped out in tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewAccountReaderWriter wires the portal implementation of the account port.
func NewAccountReaderWriter(ctx context.Context, httpConfig httpclient.Config, config Config) (port.AccountReaderWriter, error) {
	config.normalize()
	if err := config.validate(); err != nil {
		return nil, err
	}

	httpClient := httpclient.NewClient(httpConfig)
	tokens := NewTokenManager(httpClient, config)

	slog.DebugContext(ctx, "portal account port initialized",
		"base_url", config.BaseURL,
		"settle_delay", config.SettleDelay,
	)

	return &accountReaderWriter{
		gateway: newGateway(httpClient, tokens, config),
		config:  config,
		now:     time.Now,
		sleep:   settle,
	}, nil
}

// settle blocks for d or until the context is done. The portal applies writes
// asynchronously, so mutations pause before the account is re-read.
func settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ListAccounts returns every membership of the support account as a canonical
// account record.
func (a *accountReaderWriter) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	memberships, err := a.gateway.listMemberships(ctx, listPageSize)
	if err != nil {
		return nil, err
	}

	now := a.now()
	accounts := make([]*model.Account, 0, len(memberships))
	for _, m := range memberships {
		account, err := toAccount(m, now)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	slog.DebugContext(ctx, "listed portal accounts", "count", len(accounts))

	return accounts, nil
}

// GetAccount resolves one account. An identity that parses as an email address
// goes through the email lookup endpoint; anything else is treated as a
// membership id and matched against the list page.
func (a *accountReaderWriter) GetAccount(ctx context.Context, identity string) (*model.Account, error) {
	if identity == "" {
		return nil, errors.NewValidation("identity is required")
	}

	if isEmailAddress(identity) {
		return a.getAccountByEmail(ctx, identity)
	}
	return a.getAccountByMembershipID(ctx, identity)
}

func isEmailAddress(identity string) bool {
	address, err := mail.ParseAddress(identity)
	return err == nil && address.Address == identity
}

func (a *accountReaderWriter) getAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	memberships, err := a.gateway.membershipsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return nil, errors.NewNotFound(fmt.Sprintf("account not found for %s", email))
	}
	return toAccount(memberships[0], a.now())
}

func (a *accountReaderWriter) getAccountByMembershipID(ctx context.Context, membershipID string) (*model.Account, error) {
	memberships, err := a.gateway.listMemberships(ctx, listPageSize)
	if err != nil {
		return nil, err
	}

	now := a.now()
	for _, m := range memberships {
		if formatID(m.MembershipID) == membershipID {
			return toAccount(m, now)
		}
	}

	return nil, errors.NewNotFound(fmt.Sprintf("account not found for membership %s", membershipID))
}

// CreateAccount creates the portal user and attaches the requested roles. The
// portal answers 422 when the user already exists; in that case only the
// membership is created. The settled account is re-read by email.
func (a *accountReaderWriter) CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	account.Sanitize()
	if err := account.Validate(); err != nil {
		return nil, err
	}

	roleIDs, err := roleIDsOf(account.Roles)
	if err != nil {
		return nil, err
	}

	alreadyExists, err := a.gateway.createUser(ctx, createUserRequest{
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	})
	if err != nil {
		return nil, err
	}
	if alreadyExists {
		slog.InfoContext(ctx, "portal user already exists, attaching membership",
			"email", account.Email)
	}

	if err := a.gateway.createMembership(ctx, createMembershipRequest{
		Email:           account.Email,
		MembershipRoles: roleIDs,
	}); err != nil {
		return nil, err
	}

	if err := a.sleep(ctx, a.config.SettleDelay); err != nil {
		return nil, err
	}

	return a.getAccountByEmail(ctx, account.Email)
}

// UpdateAccount patches the membership's roles, expiration date and
// description, then re-reads the settled account.
func (a *accountReaderWriter) UpdateAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	return a.patchAndReread(ctx, account, account.ExpirationDate, account.Description)
}

// EnableAccount pushes the expiration date to the far-future sentinel.
func (a *accountReaderWriter) EnableAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	return a.patchAndReread(ctx, account, enabledExpirationDate, enabledDescription)
}

// DisableAccount backdates the expiration so the membership reads as expired.
func (a *accountReaderWriter) DisableAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	return a.patchAndReread(ctx, account, disableExpirationDate(a.now()), disabledDescription)
}

func (a *accountReaderWriter) patchAndReread(ctx context.Context, account *model.Account, expirationDate, description string) (*model.Account, error) {
	account.Sanitize()
	if err := account.ValidateForPatch(); err != nil {
		return nil, err
	}

	membershipID, err := strconv.ParseInt(account.MembershipID, 10, 64)
	if err != nil {
		return nil, errors.NewValidation(fmt.Sprintf("invalid membership id %s", account.MembershipID))
	}

	roleIDs, err := roleIDsOf(account.Roles)
	if err != nil {
		return nil, err
	}

	if err := a.gateway.patchMembership(ctx, patchMembershipRequest{
		MembershipID:    membershipID,
		MembershipRoles: roleIDs,
		ExpirationDate:  expirationDate,
		Description:     description,
	}); err != nil {
		return nil, err
	}

	if err := a.sleep(ctx, a.config.SettleDelay); err != nil {
		return nil, err
	}

	return a.getAccountByMembershipID(ctx, account.MembershipID)
}

// DeleteAccount removes the membership. The portal user itself is left alone;
// it may belong to other support accounts.
func (a *accountReaderWriter) DeleteAccount(ctx context.Context, membershipID string) error {
	if membershipID == "" {
		return errors.NewValidation("membership id is required")
	}
	return a.gateway.deleteMembership(ctx, membershipID)
}

// ListEntitlements returns the role reference table.
func (a *accountReaderWriter) ListEntitlements(_ context.Context) ([]*model.Entitlement, error) {
	return roleRef.All(), nil
}

// GetEntitlement resolves a role by its numeric-string id.
func (a *accountReaderWriter) GetEntitlement(_ context.Context, identity string) (*model.Entitlement, error) {
	role, ok := roleRef.ByID(identity)
	if !ok {
		return nil, errors.NewNotFound(fmt.Sprintf("entitlement not found: %s", identity))
	}
	return role, nil
}

// TestConnection exercises authentication and a minimal list call.
func (a *accountReaderWriter) TestConnection(ctx context.Context) error {
	if _, err := a.gateway.listMemberships(ctx, testConnectionSize); err != nil {
		return errors.NewUnexpected("unable to complete test connection", err)
	}
	return nil
}
