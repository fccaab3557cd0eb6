// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

// Package csp implements the account and entitlement ports against the
// Palo Alto Networks Customer Support Portal REST API.
package csp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/constants"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
)

// defaultSettleDelay is the pause after a mutating call before the account is
// re-read. The portal is eventually consistent; writes are not visible
// immediately.
const defaultSettleDelay = 500 * time.Millisecond

// Config holds the connection settings for the Customer Support Portal.
type Config struct {
	BaseURL      string
	AuthURL      string
	ClientID     string
	ClientSecret string
	// SettleDelay overrides the pause applied after every mutating call.
	// Zero means the default; a negative value disables the pause.
	SettleDelay time.Duration
}

// normalize strips a single trailing slash from both URLs and applies the
// settle delay default.
func (c *Config) normalize() {
	c.BaseURL = strings.TrimSuffix(strings.TrimSpace(c.BaseURL), "/")
	c.AuthURL = strings.TrimSuffix(strings.TrimSpace(c.AuthURL), "/")
	if c.SettleDelay == 0 {
		c.SettleDelay = defaultSettleDelay
	}
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return errors.NewValidation("base URL is required")
	}
	if c.AuthURL == "" {
		return errors.NewValidation("auth URL is required")
	}
	if c.ClientID == "" {
		return errors.NewValidation("client id is required")
	}
	if c.ClientSecret == "" {
		return errors.NewValidation("client secret is required")
	}
	return nil
}

// LoadConfigFromEnv loads the portal configuration from environment variables.
func LoadConfigFromEnv(ctx context.Context) (Config, error) {
	baseURL := os.Getenv(constants.CSPBaseURLEnvKey)
	if baseURL == "" {
		return Config{}, errors.NewUnexpected(fmt.Sprintf("%s is required", constants.CSPBaseURLEnvKey))
	}

	authURL := os.Getenv(constants.CSPAuthURLEnvKey)
	if authURL == "" {
		return Config{}, errors.NewUnexpected(fmt.Sprintf("%s is required", constants.CSPAuthURLEnvKey))
	}

	clientID := os.Getenv(constants.CSPClientIDEnvKey)
	if clientID == "" {
		return Config{}, errors.NewUnexpected(fmt.Sprintf("%s is required", constants.CSPClientIDEnvKey))
	}

	clientSecret := os.Getenv(constants.CSPClientSecretEnvKey)
	if clientSecret == "" {
		return Config{}, errors.NewUnexpected(fmt.Sprintf("%s is required", constants.CSPClientSecretEnvKey))
	}

	config := Config{
		BaseURL:      baseURL,
		AuthURL:      authURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}

	if pause := os.Getenv(constants.CSPUserUpdatePauseEnvKey); pause != "" {
		pauseMs, err := strconv.Atoi(pause)
		if err != nil {
			return Config{}, errors.NewUnexpected(fmt.Sprintf("invalid %s value %s", constants.CSPUserUpdatePauseEnvKey, pause), err)
		}
		config.SettleDelay = time.Duration(pauseMs) * time.Millisecond
	}

	slog.DebugContext(ctx, "portal configuration loaded",
		"base_url", config.BaseURL,
		"auth_url", config.AuthURL,
	)

	return config, nil
}
