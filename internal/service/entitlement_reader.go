// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package service

import (
	"context"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/model"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/port"
)

// EntitlementServiceReader defines the behavior of the entitlement service reader
type EntitlementServiceReader interface {
	ListEntitlements(ctx context.Context) ([]*model.Entitlement, error)
	GetEntitlement(ctx context.Context, identity string) (*model.Entitlement, error)
}

// entitlementReaderOrchestrator orchestrates the entitlement read process
type entitlementReaderOrchestrator struct {
	entitlementReader port.EntitlementReader
}

// entitlementReaderOrchestratorOption defines the option for the entitlement reader orchestrator
type entitlementReaderOrchestratorOption func(*entitlementReaderOrchestrator)

// WithEntitlementReader sets the entitlement reader for the entitlement reader orchestrator
func WithEntitlementReader(entitlementReader port.EntitlementReader) entitlementReaderOrchestratorOption {
	return func(o *entitlementReaderOrchestrator) {
		o.entitlementReader = entitlementReader
	}
}

// ListEntitlements retrieves the full role catalog
func (e *entitlementReaderOrchestrator) ListEntitlements(ctx context.Context) ([]*model.Entitlement, error) {
	return e.entitlementReader.ListEntitlements(ctx)
}

// GetEntitlement retrieves one role by id
func (e *entitlementReaderOrchestrator) GetEntitlement(ctx context.Context, identity string) (*model.Entitlement, error) {
	return e.entitlementReader.GetEntitlement(ctx, identity)
}

// NewEntitlementReaderOrchestrator creates a new entitlement reader orchestrator
func NewEntitlementReaderOrchestrator(opts ...entitlementReaderOrchestratorOption) EntitlementServiceReader {
	o := &entitlementReaderOrchestrator{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
