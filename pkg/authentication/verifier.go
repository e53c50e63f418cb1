// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/tracing"
	"github.com/canonical/lms-admin/internal/types"
)

type claimsExtractor interface {
	Claims(v interface{}) error
}

type tokenClaims struct {
	Subject   string   `json:"sub"`
	Scope     string   `json:"scope"`
	Scopes    []string `json:"scp"`
	CompanyID string   `json:"company_id"`

	UserMetadata struct {
		CompanyID string `json:"company_id"`
	} `json:"user_metadata"`
}

// identity maps the session claims onto the acting identity. The company
// comes from the user metadata first, then from the top level claim.
func (c *tokenClaims) identity() *types.Identity {
	id := &types.Identity{UserID: c.Subject}

	company := c.UserMetadata.CompanyID
	if company == "" {
		company = c.CompanyID
	}
	if company != "" {
		id.CompanyID = &company
	}

	return id
}

func (c *tokenClaims) hasScope(scope string) bool {
	if c.Scope != "" && slices.Contains(strings.Fields(c.Scope), scope) {
		return true
	}
	return slices.Contains(c.Scopes, scope)
}

type JWTVerifier struct {
	verifier        *oidc.IDTokenVerifier
	allowedSubjects []string
	requiredScope   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*types.Identity, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	return v.authorize(token)
}

func (v *JWTVerifier) authorize(token claimsExtractor) (*types.Identity, error) {
	var claims tokenClaims
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("unauthorized: token has no subject")
	}

	if len(v.allowedSubjects) > 0 && slices.Contains(v.allowedSubjects, claims.Subject) {
		return claims.identity(), nil
	}

	if v.requiredScope != "" && claims.hasScope(v.requiredScope) {
		return claims.identity(), nil
	}

	if len(v.allowedSubjects) == 0 && v.requiredScope == "" {
		v.logger.Debugf("No authorization criteria configured")
		v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access")
		return nil, fmt.Errorf("unauthorized: no access policy configured")
	}

	v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access")
	return nil, fmt.Errorf("unauthorized: missing required scope or subject not allowed")
}

func NewJWTVerifier(
	provider ProviderInterface,
	issuer string,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := &JWTVerifier{
		allowedSubjects: allowedSubjects,
		requiredScope:   requiredScope,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}

	config := &oidc.Config{
		SkipClientIDCheck: true,
		SkipIssuerCheck:   false,
	}

	v.verifier = provider.Verifier(config)

	return v
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:        verifier,
		allowedSubjects: allowedSubjects,
		requiredScope:   requiredScope,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}
