// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptpusb

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/cuair/go-ptp/ptp"
	"github.com/cuair/go-ptp/ptpcode"
)

// eventBufferSize is the fixed buffer size for one interrupt-endpoint
// poll: a container header plus up to three u32 event parameters.
const eventBufferSize = 24

// Event is one asynchronous notification delivered on the interrupt
// endpoint, independent of any command transaction: its tid is not
// cross-checked against anything in flight.
type Event struct {
	Code   ptpcode.Event
	Params []uint32
}

// Event polls the interrupt endpoint once for a notification. A USB
// timeout is absence, not an error: it returns a zero Event and ok=false
// with a nil error. A container whose kind isn't Event is dropped and
// polling continues within this same call; a container with an empty
// payload fails with ErrNoEventPayload, since the protocol requires at
// least a status-code payload for events; a code that classifies as
// neither standard, vendor, nor reserved fails with ErrBadEventCode.
//
// Event parameter bytes are decoded as big-endian u32s, unlike every
// other multi-byte PTP integer, which is little-endian; this mirrors a
// quirk of the source this engine was built from and is preserved
// rather than silently corrected.
func (sf *Engine) Event(timeout time.Duration) (Event, bool, error) {
	buf := make([]byte, eventBufferSize)
	for {
		n, err := sf.transport.ReadInterrupt(buf, timeout)
		if errors.Is(err, ErrTransportTimeout) {
			return Event{}, false, nil
		}
		if err != nil {
			return Event{}, false, err
		}

		header, decodeErr := ptp.ParseHeader(buf[:n])
		if decodeErr != nil {
			return Event{}, false, decodeErr
		}
		if header.Kind != ptp.KindEvent {
			continue
		}
		if header.PayloadLen == 0 {
			return Event{}, false, ErrNoEventPayload
		}

		payload := buf[ptp.HeaderSize:n]
		params := make([]uint32, 0, len(payload)/4)
		for len(payload) >= 4 {
			params = append(params, binary.BigEndian.Uint32(payload[:4]))
			payload = payload[4:]
		}

		code, ok := ptpcode.EventFromU16(header.Code)
		if !ok {
			return Event{}, false, ErrBadEventCode
		}
		sf.log.Debug("event %s tid=%d params=%v", code, header.TID, params)
		return Event{Code: code, Params: params}, true, nil
	}
}
