// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Sync() error
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits security relevant events in a fixed,
// machine readable shape.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthenticationFailure(reason string)
	AuthzFailure(subject, resource string)
	AdminAction(actor, action, resource string)
}
