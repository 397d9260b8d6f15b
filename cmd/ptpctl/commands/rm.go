// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <handle>",
	Short: "Delete an object",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	handle, err := parseObjectHandle(args[0])
	if err != nil {
		return err
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Disconnect()

	if err := session.DeleteObject(handle, 0); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	fmt.Printf("deleted 0x%08x\n", uint32(handle))
	return nil
}
