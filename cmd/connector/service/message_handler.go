// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/port"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/constants"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/log"
)

// MessageHandlerService handles NATS messages using the service layer
type MessageHandlerService struct {
	messageHandler port.MessageHandler
}

// HandleMessage routes NATS messages to appropriate handlers
func (mhs *MessageHandlerService) HandleMessage(ctx context.Context, msg port.TransportMessenger) {
	subject := msg.Subject()
	ctx = log.AppendCtx(ctx,
		slog.String("subject", subject),
		slog.String("request_id", uuid.NewString()),
	)

	slog.DebugContext(ctx, "handling NATS message")

	handlers := map[string]func(ctx context.Context, msg port.TransportMessenger) ([]byte, error){
		// account aggregation
		constants.AccountListSubject: mhs.messageHandler.ListAccounts,
		constants.AccountReadSubject: mhs.messageHandler.ReadAccount,
		// account provisioning
		constants.AccountCreateSubject:  mhs.messageHandler.CreateAccount,
		constants.AccountUpdateSubject:  mhs.messageHandler.UpdateAccount,
		constants.AccountEnableSubject:  mhs.messageHandler.EnableAccount,
		constants.AccountDisableSubject: mhs.messageHandler.DisableAccount,
		constants.AccountDeleteSubject:  mhs.messageHandler.DeleteAccount,
		// entitlement aggregation
		constants.EntitlementListSubject: mhs.messageHandler.ListEntitlements,
		constants.EntitlementReadSubject: mhs.messageHandler.ReadEntitlement,
		// connectivity
		constants.TestConnectionSubject: mhs.messageHandler.TestConnection,
	}

	handler, ok := handlers[subject]
	if !ok {
		slog.WarnContext(ctx, "unknown subject")
		mhs.respondWithError(ctx, msg, "unknown subject")
		return
	}

	response, errHandler := handler(ctx, msg)
	if errHandler != nil {
		slog.ErrorContext(ctx, "error handling message",
			"error", errHandler,
			"subject", subject,
		)
		mhs.respondWithError(ctx, msg, errHandler.Error())
		return
	}

	errRespond := msg.Respond(response)
	if errRespond != nil {
		slog.ErrorContext(ctx, "error responding to NATS message", "error", errRespond)
		return
	}

	slog.DebugContext(ctx, "responded to NATS message", "response", string(response))
}

func (mhs *MessageHandlerService) respondWithError(ctx context.Context, msg port.TransportMessenger, errorMsg string) {
	payload, _ := json.Marshal(map[string]string{"error": errorMsg})
	if err := msg.Respond(payload); err != nil {
		slog.ErrorContext(ctx, "failed to send error response", "error", err)
	}
}

// NewMessageHandlerService creates a new message handler service
func NewMessageHandlerService(messageHandler port.MessageHandler) *MessageHandlerService {
	return &MessageHandlerService{
		messageHandler: messageHandler,
	}
}
