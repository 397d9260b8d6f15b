// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var eventsPollTimeout time.Duration

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Poll the interrupt endpoint and print events until interrupted",
	RunE:  runEvents,
}

func init() {
	eventsCmd.Flags().DurationVar(&eventsPollTimeout, "poll-timeout", 2*time.Second, "USB timeout per interrupt-endpoint poll")
}

func runEvents(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	defer session.Disconnect()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("polling for events, press Ctrl+C to stop")
	for {
		select {
		case <-sigCh:
			fmt.Println("stopped")
			return nil
		default:
		}

		ev, ok, err := session.Event(eventsPollTimeout)
		if err != nil {
			return fmt.Errorf("[%s] poll event: %w", requestID, err)
		}
		if !ok {
			continue // USB timeout, no event this poll
		}
		fmt.Printf("event code=%s params=%v\n", ev.Code, ev.Params)
	}
}
