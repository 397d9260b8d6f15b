// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package commands implements the ptpctl command tree.
package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cuair/go-ptp/ptpusb"
	"github.com/cuair/go-ptp/ptpusb/gousbtransport"
)

var (
	cfgFile   string
	verbose   bool
	requestID string

	cfg ptpusb.Config
)

var rootCmd = &cobra.Command{
	Use:   "ptpctl",
	Short: "Talk to a PTP-over-USB responder",
	Long: `ptpctl opens a PTP session against the first connected still-image-class
USB responder and exercises it: device/storage enumeration, object
listing, and object transfer.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: none, flags and PTP_ env vars only)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable protocol-level logging")
	rootCmd.PersistentFlags().DurationVar(&ptpCommandTimeout, "command-timeout", 0, "per-command timeout (0 = use the config's command_timeout, itself 0 = unlimited by default)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(storagesCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(eventsCmd)
}

var ptpCommandTimeout time.Duration

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := ptpusb.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded
	requestID = uuid.NewString()
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openSession discovers the responder over gousb, opens an engine-level
// session with the loaded Config, and starts a PTP session using
// cfg.SessionID. An open-session failure is prefixed with the
// per-invocation request id generated in loadConfig, so overlapping
// invocations against the same device are distinguishable.
func openSession() (*ptpusb.Session, error) {
	transport, err := gousbtransport.Open()
	if err != nil {
		return nil, fmt.Errorf("open USB responder: %w", err)
	}

	timeout := ptpCommandTimeout
	if timeout <= 0 {
		timeout = cfg.CommandTimeout
	}
	session := ptpusb.NewSession(transport, cfg, timeout)
	session.SetLogMode(verbose)

	if err := session.OpenSession(cfg.SessionID); err != nil {
		transport.ReleaseInterface()
		return nil, fmt.Errorf("[%s] open session: %w", requestID, err)
	}
	return session, nil
}
