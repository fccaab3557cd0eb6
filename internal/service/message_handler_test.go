// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/model"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/port"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/constants"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
)

// fakeMessenger implements port.TransportMessenger for tests.
type fakeMessenger struct {
	subject   string
	data      []byte
	responses [][]byte
}

func (f *fakeMessenger) Subject() string { return f.subject }
func (f *fakeMessenger) Data() []byte    { return f.data }
func (f *fakeMessenger) Respond(data []byte) error {
	f.responses = append(f.responses, data)
	return nil
}

func messageWith(t *testing.T, input OperationInput) *fakeMessenger {
	t.Helper()
	data, err := json.Marshal(input)
	require.NoError(t, err)
	return &fakeMessenger{data: data}
}

type fakeEntitlementReader struct {
	entitlements []*model.Entitlement
}

func (f *fakeEntitlementReader) ListEntitlements(_ context.Context) ([]*model.Entitlement, error) {
	return f.entitlements, nil
}

func (f *fakeEntitlementReader) GetEntitlement(_ context.Context, identity string) (*model.Entitlement, error) {
	for _, entitlement := range f.entitlements {
		if entitlement.ID == identity {
			return entitlement, nil
		}
	}
	return nil, errors.NewNotFound("entitlement not found: " + identity)
}

type fakeConnectionChecker struct {
	err error
}

func (f *fakeConnectionChecker) TestConnection(_ context.Context) error {
	return f.err
}

func newTestHandler(accounts ...*model.Account) (port.MessageHandler, *fakeAccountPort) {
	accountPort := newFakeAccountPort(accounts...)

	handler := NewMessageHandlerOrchestrator(
		WithAccountReaderForMessageHandler(NewAccountReaderOrchestrator(
			WithAccountReader(accountPort),
		)),
		WithAccountWriterForMessageHandler(NewAccountWriterOrchestrator(
			WithAccountReaderForWriter(accountPort),
			WithAccountWriter(accountPort),
		)),
		WithEntitlementReaderForMessageHandler(NewEntitlementReaderOrchestrator(
			WithEntitlementReader(&fakeEntitlementReader{
				entitlements: []*model.Entitlement{
					{ID: "2", Name: "Super User", Type: model.EntitlementTypeRole},
				},
			}),
		)),
		WithConnectionCheckerForMessageHandler(&fakeConnectionChecker{}),
	)

	return handler, accountPort
}

func decodeResponse(t *testing.T, data []byte) OperationResponse {
	t.Helper()
	var response OperationResponse
	require.NoError(t, json.Unmarshal(data, &response))
	return response
}

func TestHandlerListAccounts(t *testing.T) {
	handler, _ := newTestHandler(testAccount())

	data, err := handler.ListAccounts(context.Background(), &fakeMessenger{})
	require.NoError(t, err)

	response := decodeResponse(t, data)
	assert.True(t, response.Success)
	assert.NotNil(t, response.Data)
}

func TestHandlerReadAccount(t *testing.T) {
	handler, _ := newTestHandler(testAccount())

	data, err := handler.ReadAccount(context.Background(), messageWith(t, OperationInput{Identity: "101"}))
	require.NoError(t, err)

	response := decodeResponse(t, data)
	require.True(t, response.Success)

	payload, err := json.Marshal(response.Data)
	require.NoError(t, err)
	var account model.Account
	require.NoError(t, json.Unmarshal(payload, &account))
	assert.Equal(t, "one@example.com", account.Email)
}

func TestHandlerReadAccountBareIdentityPayload(t *testing.T) {
	handler, _ := newTestHandler(testAccount())

	data, err := handler.ReadAccount(context.Background(), &fakeMessenger{data: []byte("101")})
	require.NoError(t, err)

	response := decodeResponse(t, data)
	assert.True(t, response.Success)
}

func TestHandlerReadAccountMissingIdentity(t *testing.T) {
	handler, _ := newTestHandler()

	data, err := handler.ReadAccount(context.Background(), &fakeMessenger{})
	require.NoError(t, err)

	response := decodeResponse(t, data)
	assert.False(t, response.Success)
	assert.Equal(t, "identity is required", response.Error)
}

func TestHandlerReadAccountNotFound(t *testing.T) {
	handler, _ := newTestHandler()

	data, err := handler.ReadAccount(context.Background(), messageWith(t, OperationInput{Identity: "999"}))
	require.NoError(t, err)

	response := decodeResponse(t, data)
	assert.False(t, response.Success)
	assert.Contains(t, response.Error, "not found")
}

func TestHandlerCreateAccount(t *testing.T) {
	handler, accountPort := newTestHandler()

	data, err := handler.CreateAccount(context.Background(), messageWith(t, OperationInput{
		Attributes: map[string]any{
			constants.AttributeEmail: "new@example.com",
			constants.AttributeRoles: []any{"3"},
		},
	}))
	require.NoError(t, err)

	response := decodeResponse(t, data)
	assert.True(t, response.Success)
	assert.Equal(t, "account created", response.Message)
	require.Len(t, accountPort.created, 1)
}

func TestHandlerCreateAccountValidationError(t *testing.T) {
	handler, _ := newTestHandler()

	data, err := handler.CreateAccount(context.Background(), messageWith(t, OperationInput{
		Attributes: map[string]any{
			constants.AttributeRoles: []any{"not-a-role-id"},
		},
	}))
	require.NoError(t, err)

	response := decodeResponse(t, data)
	assert.False(t, response.Success)
	assert.Contains(t, response.Error, "invalid entitlement")
}

func TestHandlerUpdateAccount(t *testing.T) {
	handler, accountPort := newTestHandler(testAccount())

	data, err := handler.UpdateAccount(context.Background(), messageWith(t, OperationInput{
		Identity: "101",
		Changes: []model.AttributeChange{
			{Op: model.ChangeOpAdd, Attribute: constants.AttributeRoles, Value: "9"},
		},
	}))
	require.NoError(t, err)

	response := decodeResponse(t, data)
	assert.True(t, response.Success)
	require.Len(t, accountPort.updated, 1)
	assert.Equal(t, []string{"2", "9"}, accountPort.updated[0].Roles)
}

func TestHandlerEnableDisableAccount(t *testing.T) {
	handler, accountPort := newTestHandler(testAccount())
	ctx := context.Background()

	data, err := handler.DisableAccount(ctx, messageWith(t, OperationInput{Identity: "101"}))
	require.NoError(t, err)
	assert.True(t, decodeResponse(t, data).Success)
	assert.Equal(t, []string{"101"}, accountPort.disabled)

	data, err = handler.EnableAccount(ctx, messageWith(t, OperationInput{Identity: "101"}))
	require.NoError(t, err)
	assert.True(t, decodeResponse(t, data).Success)
	assert.Equal(t, []string{"101"}, accountPort.enabled)
}

func TestHandlerDeleteAccount(t *testing.T) {
	handler, accountPort := newTestHandler(testAccount())

	data, err := handler.DeleteAccount(context.Background(), messageWith(t, OperationInput{Identity: "101"}))
	require.NoError(t, err)

	response := decodeResponse(t, data)
	assert.True(t, response.Success)
	assert.Equal(t, "account deleted", response.Message)
	assert.Equal(t, []string{"101"}, accountPort.deleted)
}

func TestHandlerListEntitlements(t *testing.T) {
	handler, _ := newTestHandler()

	data, err := handler.ListEntitlements(context.Background(), &fakeMessenger{})
	require.NoError(t, err)

	response := decodeResponse(t, data)
	assert.True(t, response.Success)
}

func TestHandlerReadEntitlement(t *testing.T) {
	handler, _ := newTestHandler()
	ctx := context.Background()

	data, err := handler.ReadEntitlement(ctx, messageWith(t, OperationInput{Identity: "2"}))
	require.NoError(t, err)
	assert.True(t, decodeResponse(t, data).Success)

	data, err = handler.ReadEntitlement(ctx, messageWith(t, OperationInput{Identity: "999"}))
	require.NoError(t, err)
	assert.False(t, decodeResponse(t, data).Success)
}

func TestHandlerTestConnection(t *testing.T) {
	handler, _ := newTestHandler()

	data, err := handler.TestConnection(context.Background(), &fakeMessenger{})
	require.NoError(t, err)

	response := decodeResponse(t, data)
	assert.True(t, response.Success)
	assert.Equal(t, "connection verified", response.Message)
}

func TestHandlerTestConnectionFailure(t *testing.T) {
	handler := NewMessageHandlerOrchestrator(
		WithConnectionCheckerForMessageHandler(&fakeConnectionChecker{
			err: errors.NewUnexpected("unable to complete test connection"),
		}),
	)

	data, err := handler.TestConnection(context.Background(), &fakeMessenger{})
	require.NoError(t, err)

	response := decodeResponse(t, data)
	assert.False(t, response.Success)
	assert.Contains(t, response.Error, "test connection")
}

func TestHandlerUnconfiguredServices(t *testing.T) {
	handler := NewMessageHandlerOrchestrator()
	ctx := context.Background()
	msg := &fakeMessenger{}

	for name, op := range map[string]func(context.Context, port.TransportMessenger) ([]byte, error){
		"list accounts":     handler.ListAccounts,
		"read account":      handler.ReadAccount,
		"create account":    handler.CreateAccount,
		"update account":    handler.UpdateAccount,
		"enable account":    handler.EnableAccount,
		"disable account":   handler.DisableAccount,
		"delete account":    handler.DeleteAccount,
		"list entitlements": handler.ListEntitlements,
		"read entitlement":  handler.ReadEntitlement,
		"test connection":   handler.TestConnection,
	} {
		t.Run(name, func(t *testing.T) {
			data, err := op(ctx, msg)
			require.NoError(t, err)
			assert.False(t, decodeResponse(t, data).Success)
		})
	}
}
