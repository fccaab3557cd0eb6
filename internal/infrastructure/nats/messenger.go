// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package nats

import (
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/internal/domain/port"

	"github.com/nats-io/nats.go"
)

// transportMessenger adapts a NATS message to the transport port.
type transportMessenger struct {
	msg *nats.Msg
}

// Subject returns the subject of the message
func (t *transportMessenger) Subject() string {
	return t.msg.Subject
}

// Data returns the payload of the message
func (t *transportMessenger) Data() []byte {
	return t.msg.Data
}

// Respond sends the reply back to the requester
func (t *transportMessenger) Respond(data []byte) error {
	return t.msg.Respond(data)
}

// NewTransportMessenger wraps a NATS message as a port.TransportMessenger
func NewTransportMessenger(msg *nats.Msg) port.TransportMessenger {
	return &transportMessenger{msg: msg}
}
