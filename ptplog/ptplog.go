// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptplog

import "sync/atomic"

// Provider is the logging backend a Logger dispatches to. RFC5424
// severities, trimmed to the ones go-ptp actually emits: transaction and
// container tracing (Debug), protocol anomalies that don't abort a
// transaction (Warn), failures (Error), and unrecoverable session state
// (Critical).
type Provider interface {
	Critical(format string, v ...interface{})
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Logger wraps a Provider behind an atomic enable flag, so call sites can
// log unconditionally and pay only an atomic load when logging is off.
type Logger struct {
	provider Provider
	has      uint32
}

// New returns a Logger backed by the default op/go-logging provider under
// the given module name, initially disabled.
func New(module string) Logger {
	return Logger{provider: newOpLoggingProvider(module)}
}

// SetMode enables or disables log output.
func (sf *Logger) SetMode(enable bool) {
	if enable {
		atomic.StoreUint32(&sf.has, 1)
	} else {
		atomic.StoreUint32(&sf.has, 0)
	}
}

// SetProvider swaps the backend a Logger dispatches to.
func (sf *Logger) SetProvider(p Provider) {
	if p != nil {
		sf.provider = p
	}
}

// Critical logs a CRITICAL-level message.
func (sf Logger) Critical(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Critical(format, v...)
	}
}

// Error logs an ERROR-level message.
func (sf Logger) Error(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Error(format, v...)
	}
}

// Warn logs a WARN-level message.
func (sf Logger) Warn(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Warn(format, v...)
	}
}

// Debug logs a DEBUG-level message.
func (sf Logger) Debug(format string, v ...interface{}) {
	if atomic.LoadUint32(&sf.has) == 1 {
		sf.provider.Debug(format, v...)
	}
}
