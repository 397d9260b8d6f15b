// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptplog

import (
	"os"

	"github.com/op/go-logging"
)

var backendOnce logging.LeveledBackend

// newOpLoggingProvider returns a Provider backed by op/go-logging,
// writing to stderr with a module-tagged, leveled format.
func newOpLoggingProvider(module string) Provider {
	log := logging.MustGetLogger(module)
	log.SetBackend(sharedBackend())
	return &opLoggingProvider{log: log}
}

func sharedBackend() logging.LeveledBackend {
	if backendOnce != nil {
		return backendOnce
	}
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`,
	)
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format)
	backendOnce = logging.AddModuleLevel(backend)
	backendOnce.SetLevel(logging.DEBUG, "")
	return backendOnce
}

type opLoggingProvider struct {
	log *logging.Logger
}

func (sf *opLoggingProvider) Critical(format string, v ...interface{}) {
	sf.log.Criticalf(format, v...)
}

func (sf *opLoggingProvider) Error(format string, v ...interface{}) {
	sf.log.Errorf(format, v...)
}

func (sf *opLoggingProvider) Warn(format string, v ...interface{}) {
	sf.log.Warningf(format, v...)
}

func (sf *opLoggingProvider) Debug(format string, v ...interface{}) {
	sf.log.Debugf(format, v...)
}
