// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format <storage-id>",
	Short: "Erase all objects on a storage",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	storageID, err := parseStorageID(args[0])
	if err != nil {
		return err
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Disconnect()

	if err := session.FormatStore(storageID); err != nil {
		return fmt.Errorf("format store: %w", err)
	}
	fmt.Printf("formatted %s\n", storageID)
	return nil
}
