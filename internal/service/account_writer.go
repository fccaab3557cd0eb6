// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/model"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/port"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
)

// AccountServiceWriter defines the behavior of the account service writer
type AccountServiceWriter interface {
	CreateAccount(ctx context.Context, attributes map[string]any) (*model.Account, error)
	UpdateAccount(ctx context.Context, identity string, changes []model.AttributeChange) (*model.Account, error)
	EnableAccount(ctx context.Context, identity string) (*model.Account, error)
	DisableAccount(ctx context.Context, identity string) (*model.Account, error)
	DeleteAccount(ctx context.Context, identity string) error
}

// accountWriterOrchestrator orchestrates the account write process. Every
// mutation reads the current account first so deltas apply against live
// portal state, not against whatever the caller last saw.
type accountWriterOrchestrator struct {
	accountReader port.AccountReader
	accountWriter port.AccountWriter
}

// accountWriterOrchestratorOption defines the option for the account writer orchestrator
type accountWriterOrchestratorOption func(*accountWriterOrchestrator)

// WithAccountReaderForWriter sets the account reader for the account writer orchestrator
func WithAccountReaderForWriter(accountReader port.AccountReader) accountWriterOrchestratorOption {
	return func(o *accountWriterOrchestrator) {
		o.accountReader = accountReader
	}
}

// WithAccountWriter sets the account writer for the account writer orchestrator
func WithAccountWriter(accountWriter port.AccountWriter) accountWriterOrchestratorOption {
	return func(o *accountWriterOrchestrator) {
		o.accountWriter = accountWriter
	}
}

// CreateAccount builds an account from the request attributes and provisions
// it in the portal
func (a *accountWriterOrchestrator) CreateAccount(ctx context.Context, attributes map[string]any) (*model.Account, error) {
	account, err := model.AccountFromAttributes(attributes)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "creating account", "email", account.Email)

	return a.accountWriter.CreateAccount(ctx, account)
}

// UpdateAccount applies attribute deltas on top of the current portal state
// and writes the result back
func (a *accountWriterOrchestrator) UpdateAccount(ctx context.Context, identity string, changes []model.AttributeChange) (*model.Account, error) {
	if len(changes) == 0 {
		return nil, errors.NewValidation("at least one change is required")
	}

	account, err := a.accountReader.GetAccount(ctx, identity)
	if err != nil {
		return nil, err
	}

	if err := account.ApplyChanges(changes); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "updating account",
		"identity", identity,
		"changes", len(changes),
	)

	return a.accountWriter.UpdateAccount(ctx, account)
}

// EnableAccount re-activates the account identified by identity
func (a *accountWriterOrchestrator) EnableAccount(ctx context.Context, identity string) (*model.Account, error) {
	account, err := a.accountReader.GetAccount(ctx, identity)
	if err != nil {
		return nil, err
	}
	return a.accountWriter.EnableAccount(ctx, account)
}

// DisableAccount deactivates the account identified by identity
func (a *accountWriterOrchestrator) DisableAccount(ctx context.Context, identity string) (*model.Account, error) {
	account, err := a.accountReader.GetAccount(ctx, identity)
	if err != nil {
		return nil, err
	}
	return a.accountWriter.DisableAccount(ctx, account)
}

// DeleteAccount removes the membership behind the identity
func (a *accountWriterOrchestrator) DeleteAccount(ctx context.Context, identity string) error {
	account, err := a.accountReader.GetAccount(ctx, identity)
	if err != nil {
		return err
	}
	return a.accountWriter.DeleteAccount(ctx, account.MembershipID)
}

// NewAccountWriterOrchestrator creates a new account writer orchestrator
func NewAccountWriterOrchestrator(opts ...accountWriterOrchestratorOption) AccountServiceWriter {
	o := &accountWriterOrchestrator{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
