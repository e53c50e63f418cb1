// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("type", "security"), zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("type", "security"), zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthenticationFailure(reason string) {
	s.l.Warn(
		"authentication failure",
		zap.String("type", "security"),
		zap.String("event", "authn_fail"),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String("type", "security"),
		zap.String("event", "authz_fail"),
		zap.String("subject", subject),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(actor, action, resource string) {
	s.l.Info(
		"admin action",
		zap.String("type", "security"),
		zap.String("event", "admin_action"),
		zap.String("actor", actor),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}
