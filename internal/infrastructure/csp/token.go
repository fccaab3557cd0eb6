// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package csp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/httpclient"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/jwt"
)

const (
	// expirationBuffer is subtracted from the token expiry when deciding
	// whether to re-authenticate, so a token about to lapse mid-call is
	// refreshed up front.
	expirationBuffer = 250 * time.Millisecond

	// authScope is the fixed scope of the client-credentials grant.
	authScope = "user-management"
)

// TokenManager owns the shared bearer token for the portal API. A single
// mutex guards refresh: concurrent callers of EnsureValidToken wait on the
// one in-flight authentication exchange instead of racing each other.
type TokenManager struct {
	mu         sync.Mutex
	httpClient *httpclient.Client
	config     Config
	token      *oauth2.Token

	// now is swapped out in tests.
	now func() time.Time
}

var _ oauth2.TokenSource = (*TokenManager)(nil)

// NewTokenManager creates a token manager for the configured tenant.
func NewTokenManager(httpClient *httpclient.Client, config Config) *TokenManager {
	return &TokenManager{
		httpClient: httpClient,
		config:     config,
		now:        time.Now,
	}
}

// Token implements oauth2.TokenSource over the cached portal token.
func (tm *TokenManager) Token() (*oauth2.Token, error) {
	return tm.ensure(context.Background())
}

// EnsureValidToken returns a bearer token, re-authenticating when the cached
// one is missing or inside the expiration buffer. Every remote-call path
// goes through here first.
func (tm *TokenManager) EnsureValidToken(ctx context.Context) (string, error) {
	token, err := tm.ensure(ctx)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

func (tm *TokenManager) ensure(ctx context.Context) (*oauth2.Token, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	now := tm.now()
	if tm.token != nil && tm.token.Expiry.Add(-expirationBuffer).After(now) {
		return tm.token, nil
	}

	slog.DebugContext(ctx, "bearer token missing or expiring, authenticating",
		"auth_url", tm.config.AuthURL)

	token, err := tm.authenticate(ctx, now)
	if err != nil {
		return nil, err
	}
	tm.token = token

	return token, nil
}

// authenticate performs the client-credentials exchange. Any failure is
// fatal to the calling operation; there is no retry.
func (tm *TokenManager) authenticate(ctx context.Context, now time.Time) (*oauth2.Token, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", authScope)

	basic := base64.StdEncoding.EncodeToString([]byte(tm.config.ClientID + ":" + tm.config.ClientSecret))
	headers := map[string]string{
		"Content-Type":  "application/x-www-form-urlencoded",
		"Authorization": "Basic " + basic,
		"Accept":        "application/json",
	}

	response, err := tm.httpClient.Request(ctx, http.MethodPost, tm.config.AuthURL, strings.NewReader(form.Encode()), headers)
	if err != nil {
		return nil, errors.NewUnauthorized("authentication request failed", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, errors.NewUnauthorized(fmt.Sprintf("authentication failed with status %d", response.StatusCode))
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(response.Body, &tokenResp); err != nil {
		return nil, errors.NewUnauthorized("failed to parse authentication response", err)
	}
	if tokenResp.AccessToken == "" {
		return nil, errors.NewUnauthorized("authentication response carried no access token")
	}

	expiry := now.Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	if tokenResp.ExpiresIn == 0 {
		// Some portal instances omit expires_in; recover the expiry from
		// the token's own exp claim.
		if claims, errParse := jwt.ParseUnverified(tokenResp.AccessToken); errParse == nil && claims.ExpiresAt != nil {
			expiry = *claims.ExpiresAt
		}
	}

	slog.DebugContext(ctx, "authenticated against the portal",
		"token_type", tokenResp.TokenType,
		"expires_at", expiry)

	return &oauth2.Token{
		AccessToken: tokenResp.AccessToken,
		TokenType:   tokenResp.TokenType,
		Expiry:      expiry,
	}, nil
}
