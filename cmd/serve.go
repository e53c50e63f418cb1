// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/lms-admin/internal/cache"
	"github.com/canonical/lms-admin/internal/config"
	"github.com/canonical/lms-admin/internal/db"
	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/monitoring/prometheus"
	"github.com/canonical/lms-admin/internal/storage"
	"github.com/canonical/lms-admin/internal/tracing"
	"github.com/canonical/lms-admin/pkg/admin"
	"github.com/canonical/lms-admin/pkg/authentication"
	"github.com/canonical/lms-admin/pkg/web"
)

const serviceName = "lms-admin"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the admin API, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func newStatsCache(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (admin.StatsCacheInterface, func()) {
	if specs.RedisAddr == "" || specs.DashboardCacheTTL <= 0 {
		logger.Info("Dashboard cache is disabled")
		return cache.NewNoopCache(), func() {}
	}

	client, err := cache.NewRedisClient(context.Background(), specs.RedisAddr, specs.RedisPassword, specs.RedisDB)
	if err != nil {
		// the dashboard still works uncached
		logger.Errorf("failed to connect to redis, dashboard cache is disabled: %v", err)
		_ = monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, 0)
		return cache.NewNoopCache(), func() {}
	}

	logger.Infof("Dashboard cache is enabled with a %s TTL", specs.DashboardCacheTTL)
	return cache.NewRedisCache(client, specs.DashboardCacheTTL, tracer, monitor, logger), func() { _ = client.Close() }
}

func newAuthenticator(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (func(http.Handler) http.Handler, error) {
	if !specs.AuthenticationEnabled {
		logger.Info("Authentication is disabled, identity is taken from the proxy headers")
		return nil, nil
	}

	verifier, err := authentication.NewJWTAuthenticator(
		context.Background(),
		authentication.Config{
			Issuer:          specs.OIDCIssuer,
			JWKSURL:         specs.OIDCJWKSURL,
			AllowedSubjects: specs.AllowedSubjects,
			RequiredScope:   specs.RequiredScope,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, err
	}

	return authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(), nil
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	auditMode, err := admin.ParseAuditMode(specs.AuditMode)
	if err != nil {
		return err
	}

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(
		tracing.NewConfig(
			serviceName,
			tracing.Enabled(specs.TracingEnabled),
			tracing.WithCollector(specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint),
			tracing.WithLogger(logger),
		),
	)

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	statsCache, closeCache := newStatsCache(specs, tracer, monitor, logger)
	defer closeCache()

	authn, err := newAuthenticator(specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to set up authentication: %v", err)
	}

	logger.Infof("Activity is recorded in %s mode", auditMode)
	adminService := admin.NewService(s, dbClient, statsCache, auditMode, tracer, monitor, logger)

	router := web.NewRouter(
		adminService,
		dbClient,
		authn,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
