// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var storagesCmd = &cobra.Command{
	Use:   "storages",
	Short: "List storage IDs and their capacity",
	RunE:  runStorages,
}

func runStorages(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Disconnect()

	ids, err := session.GetStorageIDs()
	if err != nil {
		return fmt.Errorf("get storage ids: %w", err)
	}

	for _, id := range ids {
		si, err := session.GetStorageInfo(id)
		if err != nil {
			return fmt.Errorf("get storage info %s: %w", id, err)
		}
		fmt.Printf("%s  %-24s free=%d/%d bytes  %s\n",
			id, si.StorageDescription, si.FreeSpaceInBytes, si.MaxCapacity, si.VolumeLabel)
	}
	return nil
}
