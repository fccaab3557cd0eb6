// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package csp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/errors"
	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/pkg/httpclient"
)

const (
	// listPageSize is the documented ceiling of the membership list
	// endpoint. There is no further pagination; tenants above this size
	// are truncated.
	listPageSize = 1000

	// testConnectionSize is the minimum page size the endpoint accepts,
	// used for the connectivity check.
	testConnectionSize = 10
)

// gateway performs the authenticated REST calls against the portal. Every
// method obtains a valid bearer token first and translates non-success
// responses into typed errors carrying the endpoint.
type gateway struct {
	httpClient *httpclient.Client
	tokens     *TokenManager
	config     Config
}

func newGateway(httpClient *httpclient.Client, tokens *TokenManager, config Config) *gateway {
	return &gateway{
		httpClient: httpClient,
		tokens:     tokens,
		config:     config,
	}
}

// listMemberships fetches one page of support-account memberships.
func (g *gateway) listMemberships(ctx context.Context, size int) ([]membership, error) {
	token, err := g.tokens.EnsureValidToken(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v2/memberships/support-account?size=%d", g.config.BaseURL, size)

	var envelope membershipEnvelope
	_, err = httpclient.NewAPIRequest(g.httpClient,
		httpclient.WithMethod(http.MethodGet),
		httpclient.WithURL(endpoint),
		httpclient.WithToken(token),
		httpclient.WithDescription("list support account memberships"),
	).Call(ctx, &envelope)
	if err != nil {
		return nil, errors.NewUnexpected(fmt.Sprintf("failed to retrieve memberships from %s", endpoint), err)
	}

	return envelope.Data, nil
}

// membershipsByEmail looks memberships up through the legacy email endpoint.
// Its payload reports role names without ids.
func (g *gateway) membershipsByEmail(ctx context.Context, email string) ([]membership, error) {
	token, err := g.tokens.EnsureValidToken(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v2/memberships?email=%s", g.config.BaseURL, url.QueryEscape(email))

	var envelope membershipEnvelope
	_, err = httpclient.NewAPIRequest(g.httpClient,
		httpclient.WithMethod(http.MethodGet),
		httpclient.WithURL(endpoint),
		httpclient.WithToken(token),
		httpclient.WithDescription("lookup membership by email"),
	).Call(ctx, &envelope)
	if err != nil {
		return nil, errors.NewUnexpected(fmt.Sprintf("failed to retrieve portal profile for user %s", email), err)
	}

	return envelope.Data, nil
}

// createUser creates a brand-new portal user. A 422 response means the user
// already exists and is reported as such, not as a failure.
func (g *gateway) createUser(ctx context.Context, request createUserRequest) (alreadyExists bool, err error) {
	token, err := g.tokens.EnsureValidToken(ctx)
	if err != nil {
		return false, err
	}

	endpoint := g.config.BaseURL + "/v2/users"

	status, err := httpclient.NewAPIRequest(g.httpClient,
		httpclient.WithMethod(http.MethodPost),
		httpclient.WithURL(endpoint),
		httpclient.WithBody(request),
		httpclient.WithToken(token),
		httpclient.WithDescription("create portal user"),
	).Call(ctx, nil)
	if status == http.StatusUnprocessableEntity {
		return true, nil
	}
	if err != nil {
		return false, errors.NewUnexpected(fmt.Sprintf("failed to create user %s", request.Email), err)
	}

	return false, nil
}

// createMembership attaches roles to an existing portal user.
func (g *gateway) createMembership(ctx context.Context, request createMembershipRequest) error {
	token, err := g.tokens.EnsureValidToken(ctx)
	if err != nil {
		return err
	}

	endpoint := g.config.BaseURL + "/v2/memberships"

	_, err = httpclient.NewAPIRequest(g.httpClient,
		httpclient.WithMethod(http.MethodPost),
		httpclient.WithURL(endpoint),
		httpclient.WithBody(request),
		httpclient.WithToken(token),
		httpclient.WithDescription("create membership"),
	).Call(ctx, nil)
	if err != nil {
		return errors.NewUnexpected(fmt.Sprintf("failed to create membership for %s", request.Email), err)
	}

	return nil
}

// patchMembership updates roles, expiration date and description of a
// membership.
func (g *gateway) patchMembership(ctx context.Context, request patchMembershipRequest) error {
	token, err := g.tokens.EnsureValidToken(ctx)
	if err != nil {
		return err
	}

	endpoint := g.config.BaseURL + "/v2/membership"

	_, err = httpclient.NewAPIRequest(g.httpClient,
		httpclient.WithMethod(http.MethodPatch),
		httpclient.WithURL(endpoint),
		httpclient.WithBody(request),
		httpclient.WithToken(token),
		httpclient.WithDescription("patch membership"),
	).Call(ctx, nil)
	if err != nil {
		return errors.NewUnexpected(fmt.Sprintf("failed to update membership %d", request.MembershipID), err)
	}

	return nil
}

// deleteMembership removes a membership by id.
func (g *gateway) deleteMembership(ctx context.Context, membershipID string) error {
	token, err := g.tokens.EnsureValidToken(ctx)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/v2/memberships/%s", g.config.BaseURL, url.PathEscape(membershipID))

	_, err = httpclient.NewAPIRequest(g.httpClient,
		httpclient.WithMethod(http.MethodDelete),
		httpclient.WithURL(endpoint),
		httpclient.WithToken(token),
		httpclient.WithDescription("delete membership"),
	).Call(ctx, nil)
	if err != nil {
		return errors.NewUnexpected(fmt.Sprintf("failed to delete membership %s", membershipID), err)
	}

	return nil
}
