// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package service

import "context"

// HealthService backs the liveness and readiness probe endpoints
type HealthService struct{}

// Livez implements the liveness check endpoint
func (s *HealthService) Livez(_ context.Context) ([]byte, error) {
	// Liveness check - should always return OK unless the service is completely dead
	return []byte("OK"), nil
}

// Readyz implements the readiness check endpoint
func (s *HealthService) Readyz(ctx context.Context) ([]byte, error) {
	// The connector can only serve operations while the NATS connection is
	// established.
	if err := Ready(ctx); err != nil {
		return nil, err
	}
	return []byte("OK"), nil
}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{}
}
