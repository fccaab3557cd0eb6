// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

// Package service wires the connector's infrastructure into the NATS
// subscriptions and health checks.
package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/port"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/infrastructure/csp"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/infrastructure/nats"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/service"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/constants"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/httpclient"
)

var (
	// expose the NATS client for direct access in subscriptions
	natsClient *nats.NATSClient

	natsDoOnce sync.Once
)

func natsInit(ctx context.Context) {

	natsDoOnce.Do(func() {
		natsURL := os.Getenv("NATS_URL")
		if natsURL == "" {
			natsURL = "nats://localhost:4222"
		}

		natsTimeout := os.Getenv("NATS_TIMEOUT")
		if natsTimeout == "" {
			natsTimeout = "10s"
		}
		natsTimeoutDuration, err := time.ParseDuration(natsTimeout)
		if err != nil {
			log.Fatalf("invalid NATS timeout duration: %v", err)
		}

		natsMaxReconnect := os.Getenv("NATS_MAX_RECONNECT")
		if natsMaxReconnect == "" {
			natsMaxReconnect = "3"
		}
		natsMaxReconnectInt, err := strconv.Atoi(natsMaxReconnect)
		if err != nil {
			log.Fatalf("invalid NATS max reconnect value %s: %v", natsMaxReconnect, err)
		}

		natsReconnectWait := os.Getenv("NATS_RECONNECT_WAIT")
		if natsReconnectWait == "" {
			natsReconnectWait = "2s"
		}
		natsReconnectWaitDuration, err := time.ParseDuration(natsReconnectWait)
		if err != nil {
			log.Fatalf("invalid NATS reconnect wait duration %s : %v", natsReconnectWait, err)
		}

		config := nats.Config{
			URL:           natsURL,
			Timeout:       natsTimeoutDuration,
			MaxReconnect:  natsMaxReconnectInt,
			ReconnectWait: natsReconnectWaitDuration,
		}

		client, errNewClient := nats.NewClient(ctx, config)
		if errNewClient != nil {
			log.Fatalf("failed to create NATS client: %v", errNewClient)
		}
		natsClient = client
	})
}

// Ready reports whether the connector can serve requests.
func Ready(ctx context.Context) error {
	if natsClient == nil {
		return errors.NewServiceUnavailable("NATS client not initialized")
	}
	return natsClient.IsReady(ctx)
}

// newAccountReaderWriter creates the portal-backed implementation of the
// account, entitlement and connection ports.
func newAccountReaderWriter(ctx context.Context) port.AccountReaderWriter {
	config, err := csp.LoadConfigFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to load portal configuration: %v", err)
	}

	accountReaderWriter, err := csp.NewAccountReaderWriter(ctx, httpclient.DefaultConfig(), config)
	if err != nil {
		log.Fatalf("failed to create portal account reader writer: %v", err)
	}

	return accountReaderWriter
}

// QueueSubscriptions starts all NATS subscriptions with the provided dependencies
func QueueSubscriptions(ctx context.Context) error {
	slog.DebugContext(ctx, "starting NATS subscriptions")

	// Initialize NATS client first
	natsInit(ctx)

	accountReaderWriter := newAccountReaderWriter(ctx)

	messageHandlerService := NewMessageHandlerService(
		service.NewMessageHandlerOrchestrator(
			service.WithAccountReaderForMessageHandler(
				service.NewAccountReaderOrchestrator(
					service.WithAccountReader(accountReaderWriter),
				),
			),
			service.WithAccountWriterForMessageHandler(
				service.NewAccountWriterOrchestrator(
					service.WithAccountReaderForWriter(accountReaderWriter),
					service.WithAccountWriter(accountReaderWriter),
				),
			),
			service.WithEntitlementReaderForMessageHandler(
				service.NewEntitlementReaderOrchestrator(
					service.WithEntitlementReader(accountReaderWriter),
				),
			),
			service.WithConnectionCheckerForMessageHandler(accountReaderWriter),
		),
	)

	// Start subscriptions for each subject
	subjects := map[string]func(context.Context, port.TransportMessenger){
		constants.AccountListSubject:     messageHandlerService.HandleMessage,
		constants.AccountReadSubject:     messageHandlerService.HandleMessage,
		constants.AccountCreateSubject:   messageHandlerService.HandleMessage,
		constants.AccountUpdateSubject:   messageHandlerService.HandleMessage,
		constants.AccountEnableSubject:   messageHandlerService.HandleMessage,
		constants.AccountDisableSubject:  messageHandlerService.HandleMessage,
		constants.AccountDeleteSubject:   messageHandlerService.HandleMessage,
		constants.EntitlementListSubject: messageHandlerService.HandleMessage,
		constants.EntitlementReadSubject: messageHandlerService.HandleMessage,
		constants.TestConnectionSubject:  messageHandlerService.HandleMessage,
	}

	for subject, handler := range subjects {
		slog.DebugContext(ctx, "subscribing to NATS subject", "subject", subject)
		if _, err := natsClient.SubscribeWithTransportMessenger(ctx, subject, constants.ConnectorQueue, handler); err != nil {
			slog.ErrorContext(ctx, "failed to subscribe to NATS subject",
				"error", err,
				"subject", subject,
			)
			return fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
		}
	}

	slog.DebugContext(ctx, "NATS subscriptions started successfully")
	return nil
}

// Shutdown closes the NATS connection if one was established.
func Shutdown() {
	if natsClient != nil {
		_ = natsClient.Close()
	}
}
