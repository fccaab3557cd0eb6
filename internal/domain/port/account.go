// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/model"
)

// AccountReaderWriter defines the behavior of the account reader writer
type AccountReaderWriter interface {
	AccountReader
	AccountWriter
	EntitlementReader
	ConnectionChecker
}

// AccountReader defines the behavior of the account reader
type AccountReader interface {
	ListAccounts(ctx context.Context) ([]*model.Account, error)
	GetAccount(ctx context.Context, identity string) (*model.Account, error)
}

// AccountWriter defines the behavior of the account writer. Every mutating
// call returns the re-read account after the portal has settled.
type AccountWriter interface {
	CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error)
	UpdateAccount(ctx context.Context, account *model.Account) (*model.Account, error)
	EnableAccount(ctx context.Context, account *model.Account) (*model.Account, error)
	DisableAccount(ctx context.Context, account *model.Account) (*model.Account, error)
	DeleteAccount(ctx context.Context, membershipID string) error
}

// EntitlementReader defines the behavior of the entitlement reader
type EntitlementReader interface {
	ListEntitlements(ctx context.Context) ([]*model.Entitlement, error)
	GetEntitlement(ctx context.Context, identity string) (*model.Entitlement, error)
}

// ConnectionChecker verifies connectivity and credentials against the portal
type ConnectionChecker interface {
	TestConnection(ctx context.Context) error
}
