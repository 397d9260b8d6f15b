// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package mocktransport is an in-memory ptpusb.Transport for engine and
// session tests: callers queue the bulk-in and interrupt-in reads a
// simulated responder would produce, and inspect the bulk-out writes the
// engine issued.
package mocktransport

import (
	"errors"
	"sync"
	"time"

	"github.com/cuair/go-ptp/ptpusb"
)

// Transport is a queue-driven ptpusb.Transport double. Reads is a queue
// of (bytes, error) pairs consumed in order by ReadBulk; InterruptReads
// is the equivalent queue for ReadInterrupt. Writes accumulates every
// buffer passed to WriteBulk, in call order.
type Transport struct {
	mu sync.Mutex

	Reads          []QueuedRead
	InterruptReads []QueuedRead
	Writes         [][]byte

	readIdx      int
	interruptIdx int

	ResetCalled            bool
	ReleaseInterfaceCalled bool
	MaxPacketSizeValue     int
}

// QueuedRead is one scripted response to a ReadBulk or ReadInterrupt call.
type QueuedRead struct {
	Data []byte
	Err  error
}

// New returns an empty Transport with the given bulk wMaxPacketSize.
func New(maxPacketSize int) *Transport {
	return &Transport{MaxPacketSizeValue: maxPacketSize}
}

// QueueRead enqueues a ReadBulk response.
func (sf *Transport) QueueRead(data []byte, err error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	sf.Reads = append(sf.Reads, QueuedRead{Data: data, Err: err})
}

// QueueInterruptRead enqueues a ReadInterrupt response.
func (sf *Transport) QueueInterruptRead(data []byte, err error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	sf.InterruptReads = append(sf.InterruptReads, QueuedRead{Data: data, Err: err})
}

var errQueueExhausted = errors.New("mocktransport: read queue exhausted")

// ReadBulk copies the next queued read into buf.
func (sf *Transport) ReadBulk(buf []byte, timeout time.Duration) (int, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	if sf.readIdx >= len(sf.Reads) {
		return 0, errQueueExhausted
	}
	qr := sf.Reads[sf.readIdx]
	sf.readIdx++
	if qr.Err != nil {
		return 0, qr.Err
	}
	return copy(buf, qr.Data), nil
}

// WriteBulk records buf (copied, since callers may reuse it) and
// succeeds unconditionally.
func (sf *Transport) WriteBulk(buf []byte, timeout time.Duration) (int, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	cp := make([]byte, len(buf))
	copy(cp, buf)
	sf.Writes = append(sf.Writes, cp)
	return len(buf), nil
}

// ReadInterrupt copies the next queued interrupt read into buf.
func (sf *Transport) ReadInterrupt(buf []byte, timeout time.Duration) (int, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	if sf.interruptIdx >= len(sf.InterruptReads) {
		return 0, errQueueExhausted
	}
	qr := sf.InterruptReads[sf.interruptIdx]
	sf.interruptIdx++
	if qr.Err != nil {
		return 0, qr.Err
	}
	return copy(buf, qr.Data), nil
}

// Reset records that a reset was requested.
func (sf *Transport) Reset() error {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	sf.ResetCalled = true
	return nil
}

// ReleaseInterface records that the interface was released.
func (sf *Transport) ReleaseInterface() error {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	sf.ReleaseInterfaceCalled = true
	return nil
}

// MaxPacketSize returns the configured wMaxPacketSize.
func (sf *Transport) MaxPacketSize() int {
	return sf.MaxPacketSizeValue
}

var _ ptpusb.Transport = (*Transport)(nil)
