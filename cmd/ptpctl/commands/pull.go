// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pullOutput string

var pullCmd = &cobra.Command{
	Use:   "pull <handle>",
	Short: "Download an object to a local file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPull,
}

func init() {
	pullCmd.Flags().StringVarP(&pullOutput, "output", "o", "", "output file path (default: the object's filename)")
}

func runPull(cmd *cobra.Command, args []string) error {
	handle, err := parseObjectHandle(args[0])
	if err != nil {
		return err
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Disconnect()

	oi, err := session.GetObjectInfo(handle)
	if err != nil {
		return fmt.Errorf("get object info: %w", err)
	}

	out := pullOutput
	if out == "" {
		out = oi.Filename
	}

	data, err := session.GetObject(handle)
	if err != nil {
		return fmt.Errorf("[%s] get object: %w", requestID, err)
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("wrote %d bytes to %s\n", len(data), out)
	return nil
}
