// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuair/go-ptp/ptp"
)

var captureStorageID string

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Trigger a capture on the responder",
	RunE:  runCapture,
}

func init() {
	captureCmd.Flags().StringVar(&captureStorageID, "storage", "0xffffffff", "destination storage id (default: responder's choice)")
}

func runCapture(cmd *cobra.Command, args []string) error {
	storageID, err := parseStorageID(captureStorageID)
	if err != nil {
		return err
	}
	if captureStorageID == "0xffffffff" {
		storageID = ptp.StorageIdAll()
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Disconnect()

	if err := session.InitiateCapture(storageID, 0); err != nil {
		return fmt.Errorf("initiate capture: %w", err)
	}
	fmt.Println("capture initiated, poll `ptpctl events` for completion")
	return nil
}
