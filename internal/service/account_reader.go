// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

// Package service holds the orchestrators sitting between the transport and
// the portal ports.
package service

import (
	"context"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/model"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/port"
)

// AccountServiceReader defines the behavior of the account service reader
type AccountServiceReader interface {
	ListAccounts(ctx context.Context) ([]*model.Account, error)
	GetAccount(ctx context.Context, identity string) (*model.Account, error)
}

// accountReaderOrchestrator orchestrates the account read process
type accountReaderOrchestrator struct {
	accountReader port.AccountReader
}

// accountReaderOrchestratorOption defines the option for the account reader orchestrator
type accountReaderOrchestratorOption func(*accountReaderOrchestrator)

// WithAccountReader sets the account reader for the account reader orchestrator
func WithAccountReader(accountReader port.AccountReader) accountReaderOrchestratorOption {
	return func(o *accountReaderOrchestrator) {
		o.accountReader = accountReader
	}
}

// ListAccounts retrieves every account from the portal
func (a *accountReaderOrchestrator) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	return a.accountReader.ListAccounts(ctx)
}

// GetAccount retrieves one account from the portal
func (a *accountReaderOrchestrator) GetAccount(ctx context.Context, identity string) (*model.Account, error) {
	return a.accountReader.GetAccount(ctx, identity)
}

// NewAccountReaderOrchestrator creates a new account reader orchestrator
func NewAccountReaderOrchestrator(opts ...accountReaderOrchestratorOption) AccountServiceReader {
	o := &accountReaderOrchestrator{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
