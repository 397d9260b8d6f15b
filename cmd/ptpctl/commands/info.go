// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the responder's device descriptor",
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Disconnect()

	di, err := session.GetDeviceInfo()
	if err != nil {
		return fmt.Errorf("get device info: %w", err)
	}

	fmt.Printf("Manufacturer:    %s\n", di.Manufacturer)
	fmt.Printf("Model:           %s\n", di.Model)
	fmt.Printf("Device version:  %s\n", di.DeviceVersion)
	fmt.Printf("Serial number:   %s\n", di.SerialNumber)
	fmt.Printf("Standard version: %d\n", di.Version)
	fmt.Printf("Operations supported: %d\n", len(di.OperationsSupported))
	fmt.Printf("Events supported:     %d\n", len(di.EventsSupported))
	fmt.Printf("Capture formats:      %d\n", len(di.CaptureFormats))
	return nil
}
