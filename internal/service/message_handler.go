// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/model"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/port"
)

// OperationInput is the request payload carried by every operation message.
// List-style operations send an empty payload; identity-scoped operations set
// identity; create sends attributes; update sends changes.
type OperationInput struct {
	Identity   string                  `json:"identity,omitempty"`
	Attributes map[string]any          `json:"attributes,omitempty"`
	Changes    []model.AttributeChange `json:"changes,omitempty"`
}

// OperationResponse represents the response structure for connector operations
type OperationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// messageHandlerOrchestrator orchestrates the message handling process
type messageHandlerOrchestrator struct {
	accountReader     AccountServiceReader
	accountWriter     AccountServiceWriter
	entitlementReader EntitlementServiceReader
	connectionChecker port.ConnectionChecker
}

// messageHandlerOrchestratorOption defines a function type for setting options
type messageHandlerOrchestratorOption func(*messageHandlerOrchestrator)

// WithAccountReaderForMessageHandler sets the account reader for the message handler orchestrator
func WithAccountReaderForMessageHandler(accountReader AccountServiceReader) messageHandlerOrchestratorOption {
	return func(m *messageHandlerOrchestrator) {
		m.accountReader = accountReader
	}
}

// WithAccountWriterForMessageHandler sets the account writer for the message handler orchestrator
func WithAccountWriterForMessageHandler(accountWriter AccountServiceWriter) messageHandlerOrchestratorOption {
	return func(m *messageHandlerOrchestrator) {
		m.accountWriter = accountWriter
	}
}

// WithEntitlementReaderForMessageHandler sets the entitlement reader for the message handler orchestrator
func WithEntitlementReaderForMessageHandler(entitlementReader EntitlementServiceReader) messageHandlerOrchestratorOption {
	return func(m *messageHandlerOrchestrator) {
		m.entitlementReader = entitlementReader
	}
}

// WithConnectionCheckerForMessageHandler sets the connection checker for the message handler orchestrator
func WithConnectionCheckerForMessageHandler(connectionChecker port.ConnectionChecker) messageHandlerOrchestratorOption {
	return func(m *messageHandlerOrchestrator) {
		m.connectionChecker = connectionChecker
	}
}

func (m *messageHandlerOrchestrator) errorResponse(error string) []byte {
	response := OperationResponse{
		Success: false,
		Error:   error,
	}
	responseJSON, _ := json.Marshal(response)
	return responseJSON
}

func (m *messageHandlerOrchestrator) successResponse(data any, message string) []byte {
	response := OperationResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return m.errorResponse("failed to marshal response")
	}
	return responseJSON
}

// parseInput decodes the operation payload. An empty payload is a valid,
// zero-valued input; a bare string payload is treated as the identity.
func (m *messageHandlerOrchestrator) parseInput(msg port.TransportMessenger) (*OperationInput, error) {
	input := &OperationInput{}

	data := msg.Data()
	if len(data) == 0 {
		return input, nil
	}

	if err := json.Unmarshal(data, input); err != nil {
		input.Identity = strings.TrimSpace(string(data))
		if input.Identity == "" {
			return nil, err
		}
	}

	return input, nil
}

// ListAccounts aggregates every portal account
func (m *messageHandlerOrchestrator) ListAccounts(ctx context.Context, _ port.TransportMessenger) ([]byte, error) {
	if m.accountReader == nil {
		return m.errorResponse("account service unavailable"), nil
	}

	accounts, err := m.accountReader.ListAccounts(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "error listing accounts", "error", err)
		return m.errorResponse(err.Error()), nil
	}

	return m.successResponse(accounts, ""), nil
}

// ReadAccount resolves a single account by identity
func (m *messageHandlerOrchestrator) ReadAccount(ctx context.Context, msg port.TransportMessenger) ([]byte, error) {
	if m.accountReader == nil {
		return m.errorResponse("account service unavailable"), nil
	}

	input, err := m.parseInput(msg)
	if err != nil {
		return m.errorResponse("failed to unmarshal operation input"), nil
	}
	if input.Identity == "" {
		return m.errorResponse("identity is required"), nil
	}

	account, err := m.accountReader.GetAccount(ctx, input.Identity)
	if err != nil {
		slog.ErrorContext(ctx, "error reading account",
			"error", err,
			"identity", input.Identity,
		)
		return m.errorResponse(err.Error()), nil
	}

	return m.successResponse(account, ""), nil
}

// CreateAccount provisions a new account from the request attributes
func (m *messageHandlerOrchestrator) CreateAccount(ctx context.Context, msg port.TransportMessenger) ([]byte, error) {
	if m.accountWriter == nil {
		return m.errorResponse("account service unavailable"), nil
	}

	input, err := m.parseInput(msg)
	if err != nil {
		return m.errorResponse("failed to unmarshal operation input"), nil
	}

	account, err := m.accountWriter.CreateAccount(ctx, input.Attributes)
	if err != nil {
		slog.ErrorContext(ctx, "error creating account", "error", err)
		return m.errorResponse(err.Error()), nil
	}

	return m.successResponse(account, "account created"), nil
}

// UpdateAccount applies attribute deltas to an existing account
func (m *messageHandlerOrchestrator) UpdateAccount(ctx context.Context, msg port.TransportMessenger) ([]byte, error) {
	if m.accountWriter == nil {
		return m.errorResponse("account service unavailable"), nil
	}

	input, err := m.parseInput(msg)
	if err != nil {
		return m.errorResponse("failed to unmarshal operation input"), nil
	}
	if input.Identity == "" {
		return m.errorResponse("identity is required"), nil
	}

	account, err := m.accountWriter.UpdateAccount(ctx, input.Identity, input.Changes)
	if err != nil {
		slog.ErrorContext(ctx, "error updating account",
			"error", err,
			"identity", input.Identity,
		)
		return m.errorResponse(err.Error()), nil
	}

	return m.successResponse(account, "account updated"), nil
}

// EnableAccount re-activates a disabled account
func (m *messageHandlerOrchestrator) EnableAccount(ctx context.Context, msg port.TransportMessenger) ([]byte, error) {
	return m.lifecycle(ctx, msg, "account enabled", func(ctx context.Context, identity string) (*model.Account, error) {
		return m.accountWriter.EnableAccount(ctx, identity)
	})
}

// DisableAccount deactivates an account
func (m *messageHandlerOrchestrator) DisableAccount(ctx context.Context, msg port.TransportMessenger) ([]byte, error) {
	return m.lifecycle(ctx, msg, "account disabled", func(ctx context.Context, identity string) (*model.Account, error) {
		return m.accountWriter.DisableAccount(ctx, identity)
	})
}

func (m *messageHandlerOrchestrator) lifecycle(ctx context.Context, msg port.TransportMessenger, message string, op func(context.Context, string) (*model.Account, error)) ([]byte, error) {
	if m.accountWriter == nil {
		return m.errorResponse("account service unavailable"), nil
	}

	input, err := m.parseInput(msg)
	if err != nil {
		return m.errorResponse("failed to unmarshal operation input"), nil
	}
	if input.Identity == "" {
		return m.errorResponse("identity is required"), nil
	}

	account, err := op(ctx, input.Identity)
	if err != nil {
		slog.ErrorContext(ctx, "error changing account state",
			"error", err,
			"identity", input.Identity,
		)
		return m.errorResponse(err.Error()), nil
	}

	return m.successResponse(account, message), nil
}

// DeleteAccount removes the account's membership from the portal
func (m *messageHandlerOrchestrator) DeleteAccount(ctx context.Context, msg port.TransportMessenger) ([]byte, error) {
	if m.accountWriter == nil {
		return m.errorResponse("account service unavailable"), nil
	}

	input, err := m.parseInput(msg)
	if err != nil {
		return m.errorResponse("failed to unmarshal operation input"), nil
	}
	if input.Identity == "" {
		return m.errorResponse("identity is required"), nil
	}

	if err := m.accountWriter.DeleteAccount(ctx, input.Identity); err != nil {
		slog.ErrorContext(ctx, "error deleting account",
			"error", err,
			"identity", input.Identity,
		)
		return m.errorResponse(err.Error()), nil
	}

	return m.successResponse(nil, "account deleted"), nil
}

// ListEntitlements returns the role catalog
func (m *messageHandlerOrchestrator) ListEntitlements(ctx context.Context, _ port.TransportMessenger) ([]byte, error) {
	if m.entitlementReader == nil {
		return m.errorResponse("entitlement service unavailable"), nil
	}

	entitlements, err := m.entitlementReader.ListEntitlements(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "error listing entitlements", "error", err)
		return m.errorResponse(err.Error()), nil
	}

	return m.successResponse(entitlements, ""), nil
}

// ReadEntitlement resolves one role by id
func (m *messageHandlerOrchestrator) ReadEntitlement(ctx context.Context, msg port.TransportMessenger) ([]byte, error) {
	if m.entitlementReader == nil {
		return m.errorResponse("entitlement service unavailable"), nil
	}

	input, err := m.parseInput(msg)
	if err != nil {
		return m.errorResponse("failed to unmarshal operation input"), nil
	}
	if input.Identity == "" {
		return m.errorResponse("identity is required"), nil
	}

	entitlement, err := m.entitlementReader.GetEntitlement(ctx, input.Identity)
	if err != nil {
		slog.ErrorContext(ctx, "error reading entitlement",
			"error", err,
			"identity", input.Identity,
		)
		return m.errorResponse(err.Error()), nil
	}

	return m.successResponse(entitlement, ""), nil
}

// TestConnection verifies connectivity and credentials against the portal
func (m *messageHandlerOrchestrator) TestConnection(ctx context.Context, _ port.TransportMessenger) ([]byte, error) {
	if m.connectionChecker == nil {
		return m.errorResponse("connection service unavailable"), nil
	}

	if err := m.connectionChecker.TestConnection(ctx); err != nil {
		slog.ErrorContext(ctx, "test connection failed", "error", err)
		return m.errorResponse(err.Error()), nil
	}

	return m.successResponse(nil, "connection verified"), nil
}

// NewMessageHandlerOrchestrator creates a new message handler orchestrator using the option pattern
func NewMessageHandlerOrchestrator(opts ...messageHandlerOrchestratorOption) port.MessageHandler {
	m := &messageHandlerOrchestrator{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
