// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/tracing"
)

var (
	otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
)

// Config selects how bearer tokens are verified and who may use the API.
// Keys come from JWKSURL when set, otherwise from the issuer discovery
// document.
type Config struct {
	Issuer          string
	JWKSURL         string
	AllowedSubjects []string
	RequiredScope   string
}

// NewProvider creates an OIDC provider using the issuer's well-known configuration
func NewProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	return provider, nil
}

// NewKeySetVerifier verifies tokens of issuer against the key set served at
// jwksURL, skipping discovery.
func NewKeySetVerifier(ctx context.Context, issuer, jwksURL string) *oidc.IDTokenVerifier {
	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	return oidc.NewVerifier(issuer, oidc.NewRemoteKeySet(ctx, jwksURL), &oidc.Config{
		SkipClientIDCheck: true,
	})
}

// NewJWTAuthenticator builds the token verifier described by cfg.
func NewJWTAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if cfg.Issuer == "" {
		return nil, errors.New("issuer is required for JWT authentication")
	}

	if cfg.JWKSURL != "" {
		logger.Infof("JWT authentication is enabled with key set %s", cfg.JWKSURL)
		return NewJWTVerifierDirect(NewKeySetVerifier(ctx, cfg.Issuer, cfg.JWKSURL), cfg.AllowedSubjects, cfg.RequiredScope, tracer, monitor, logger), nil
	}

	provider, err := NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, err
	}

	logger.Infof("JWT authentication is enabled with OIDC discovery for %s", cfg.Issuer)
	return NewJWTVerifier(provider, cfg.Issuer, cfg.AllowedSubjects, cfg.RequiredScope, tracer, monitor, logger), nil
}
