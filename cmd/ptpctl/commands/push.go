// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cuair/go-ptp/ptp"
	"github.com/cuair/go-ptp/ptpcode"
)

var (
	pushStorageID string
	pushParent    string
)

var pushCmd = &cobra.Command{
	Use:   "push <local-file>",
	Short: "Upload a local file as a new object",
	Args:  cobra.ExactArgs(1),
	RunE:  runPush,
}

func init() {
	pushCmd.Flags().StringVar(&pushStorageID, "storage", "", "destination storage id (required)")
	pushCmd.Flags().StringVar(&pushParent, "parent", "0xffffffff", "destination parent object handle (default: storage root)")
	_ = pushCmd.MarkFlagRequired("storage")
}

func runPush(cmd *cobra.Command, args []string) error {
	path := args[0]

	storageID, err := parseStorageID(pushStorageID)
	if err != nil {
		return err
	}
	parent, err := parseObjectHandle(pushParent)
	if err != nil {
		return err
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	info := ptp.ObjectInfo{
		StorageID:            storageID,
		ObjectFormat:         ptpcode.ObjectFormatStandard(ptpcode.FormatExifJPEG),
		ObjectCompressedSize: uint32(len(contents)),
		ParentObject:         parent,
		Filename:             filepath.Base(path),
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Disconnect()

	handle, err := session.SendObjectInfo(storageID, parent, info)
	if err != nil {
		return fmt.Errorf("send object info: %w", err)
	}
	if err := session.SendObject(contents); err != nil {
		return fmt.Errorf("[%s] send object: %w", requestID, err)
	}

	fmt.Printf("uploaded %s as handle 0x%08x\n", path, uint32(handle))
	return nil
}
