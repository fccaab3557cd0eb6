// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package constants

const (

	// ServiceName is the name of the connector service
	ServiceName = "pan-csp-connector"

	// CSPBaseURLEnvKey is the environment variable key for the portal API base URL
	CSPBaseURLEnvKey = "CSP_BASE_URL"

	// CSPAuthURLEnvKey is the environment variable key for the token endpoint URL
	CSPAuthURLEnvKey = "CSP_AUTH_URL"

	// CSPClientIDEnvKey is the environment variable key for the OAuth client id
	CSPClientIDEnvKey = "CSP_CLIENT_ID"

	// CSPClientSecretEnvKey is the environment variable key for the OAuth client secret
	CSPClientSecretEnvKey = "CSP_CLIENT_SECRET"

	// CSPUserUpdatePauseEnvKey is the environment variable key for the settle
	// delay, in milliseconds, applied after every mutating portal call
	CSPUserUpdatePauseEnvKey = "CSP_USER_UPDATE_PAUSE"
)
