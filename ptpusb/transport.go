// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptpusb

import (
	"errors"
	"time"
)

// ErrTransportTimeout is the sentinel a Transport implementation must
// return (wrapped or bare, satisfying errors.Is) when a transfer exceeds
// its deadline. Engine distinguishes this from every other transport
// failure: in Event it becomes "no event", in Command it becomes
// ErrTimeout.
var ErrTransportTimeout = errors.New("ptpusb: transport timeout")

// StillImageClass is the USB interface class code (0x06) a PTP responder
// advertises on its control interface.
const StillImageClass = 0x06

// Transport is the boundary the transaction engine is built against: the
// single injection point for both real USB hardware and test doubles. A
// zero timeout means "wait indefinitely", matching the PTP command()
// contract of timeout-per-phase.
type Transport interface {
	// ReadBulk reads from the bulk-in endpoint into buf, returning the
	// number of bytes read.
	ReadBulk(buf []byte, timeout time.Duration) (int, error)

	// WriteBulk writes buf to the bulk-out endpoint.
	WriteBulk(buf []byte, timeout time.Duration) (int, error)

	// ReadInterrupt reads from the interrupt-in endpoint into buf.
	ReadInterrupt(buf []byte, timeout time.Duration) (int, error)

	// Reset issues a USB device reset, for recovery after a command
	// phase times out and leaves the session in an indeterminate state.
	Reset() error

	// ReleaseInterface releases the claimed PTP interface. Called once,
	// on Session.Disconnect.
	ReleaseInterface() error

	// MaxPacketSize returns the bulk-out endpoint's wMaxPacketSize;
	// NewEngine rounds its chunk size up to a multiple of it.
	MaxPacketSize() int
}
