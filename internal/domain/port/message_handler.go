// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package port

import "context"

// TransportMessenger defines the behavior of an inbound transport message
type TransportMessenger interface {
	Subject() string
	Data() []byte
	Respond(data []byte) error
}

// MessageHandler defines the operations the governance platform can dispatch
type MessageHandler interface {
	ListAccounts(ctx context.Context, msg TransportMessenger) ([]byte, error)
	ReadAccount(ctx context.Context, msg TransportMessenger) ([]byte, error)
	CreateAccount(ctx context.Context, msg TransportMessenger) ([]byte, error)
	UpdateAccount(ctx context.Context, msg TransportMessenger) ([]byte, error)
	EnableAccount(ctx context.Context, msg TransportMessenger) ([]byte, error)
	DisableAccount(ctx context.Context, msg TransportMessenger) ([]byte, error)
	DeleteAccount(ctx context.Context, msg TransportMessenger) ([]byte, error)
	ListEntitlements(ctx context.Context, msg TransportMessenger) ([]byte, error)
	ReadEntitlement(ctx context.Context, msg TransportMessenger) ([]byte, error)
	TestConnection(ctx context.Context, msg TransportMessenger) ([]byte, error)
}
