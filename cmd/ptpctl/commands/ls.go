// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cuair/go-ptp/ptp"
)

var (
	lsStorageID string
	lsParent    string
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List object handles under a parent",
	RunE:  runLs,
}

func init() {
	lsCmd.Flags().StringVar(&lsStorageID, "storage", "0xffffffff", "storage id (default: all storages)")
	lsCmd.Flags().StringVar(&lsParent, "parent", "0xffffffff", "parent object handle (default: storage root)")
}

func runLs(cmd *cobra.Command, args []string) error {
	storageID, err := parseStorageID(lsStorageID)
	if err != nil {
		return err
	}
	parent, err := parseObjectHandle(lsParent)
	if err != nil {
		return err
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Disconnect()

	handles, err := session.GetObjectHandles(storageID, 0, parent)
	if err != nil {
		return fmt.Errorf("get object handles: %w", err)
	}

	for _, h := range handles {
		oi, err := session.GetObjectInfo(h)
		if err != nil {
			return fmt.Errorf("get object info 0x%08x: %w", uint32(h), err)
		}
		fmt.Printf("0x%08x  %10d  %s\n", uint32(h), oi.ObjectCompressedSize, oi.Filename)
	}
	return nil
}

func parseStorageID(s string) (ptp.StorageId, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid storage id %q: %w", s, err)
	}
	return ptp.StorageId(v), nil
}

func parseObjectHandle(s string) (ptp.ObjectHandle, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid object handle %q: %w", s, err)
	}
	return ptp.ObjectHandle(v), nil
}
