// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Command ptpctl is a command-line client for talking to a PTP-over-USB
// responder: opening a session, listing storages and objects, and
// pulling or pushing files.
package main

import (
	"fmt"
	"os"

	"github.com/cuair/go-ptp/cmd/ptpctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
