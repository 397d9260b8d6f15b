// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptpusb

import (
	"encoding/binary"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cuair/go-ptp/ptp"
	"github.com/cuair/go-ptp/ptpcode"
	"github.com/cuair/go-ptp/ptplog"
)

// Engine drives one PTP-over-USB transaction at a time against a
// Transport: container framing, chunked bulk writes, and the
// Command/Data/Response read loop. Concurrent Command calls on one
// Engine are not supported by the protocol itself (USB bulk endpoints
// are half-duplex per direction). Command holds the internal mutex below
// for the whole transaction, so concurrent Command calls on one Engine
// run one after another instead of interleaving; Event does not take it.
type Engine struct {
	transport Transport
	cfg       Config
	log       ptplog.Logger

	mu        sync.Mutex
	currentID uint32
}

// NewEngine constructs an Engine bound to transport with cfg (already
// validated via Config.Valid). cfg.ChunkSize is rounded up to a multiple
// of transport.MaxPacketSize when it is not one already.
func NewEngine(transport Transport, cfg Config) *Engine {
	if mps := transport.MaxPacketSize(); mps > 0 && cfg.ChunkSize%mps != 0 {
		cfg.ChunkSize += mps - cfg.ChunkSize%mps
	}
	return &Engine{
		transport: transport,
		cfg:       cfg,
		log:       ptplog.New("ptpusb"),
	}
}

// SetLogMode enables or disables the Engine's log output.
func (sf *Engine) SetLogMode(enable bool) { sf.log.SetMode(enable) }

// nextTID atomically allocates the next transaction id, acquire-release
// ordered so a caller observing the returned value also observes every
// write that happened before it was issued.
func (sf *Engine) nextTID() uint32 {
	return atomic.AddUint32(&sf.currentID, 1) - 1
}

// Command executes one PTP transaction: Command phase, optional Data-out
// phase, then a read loop collecting the Data-in payload (if any) and
// the terminating Response. timeout applies to each individual USB
// transfer; a multi-phase transaction may therefore take strictly
// longer than timeout.
func (sf *Engine) Command(code ptpcode.Operation, params []uint32, data []byte, timeout time.Duration) ([]byte, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	tid := sf.nextTID()
	sf.log.Debug("command %s tid=%d params=%v", code, tid, params)

	requestPayload := make([]byte, 0, len(params)*4)
	for _, p := range params {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, p)
		requestPayload = append(requestPayload, b...)
	}

	if err := sf.writeTxnPhase(ptp.KindCommand, code.ToU16(), tid, requestPayload, timeout); err != nil {
		return nil, err
	}

	if data != nil {
		if err := sf.writeTxnPhase(ptp.KindData, code.ToU16(), tid, data, timeout); err != nil {
			return nil, err
		}
	}

	var dataPayload []byte
	for {
		header, payload, err := sf.readTxnPhase(timeout)
		if err != nil {
			return nil, err
		}
		if !header.BelongsTo(tid) {
			return nil, ptp.Malformed("mismatched txnid %d, expecting %d", header.TID, tid)
		}
		switch header.Kind {
		case ptp.KindData:
			dataPayload = payload
		case ptp.KindResponse:
			resp := ptpcode.ResponseFromU16(header.Code)
			if !resp.IsOk() {
				return nil, &ErrResponse{Code: resp}
			}
			return dataPayload, nil
		}
	}
}

// writeTxnPhase emits one container, chunking the payload into
// ChunkSize-byte bulk writes. The first chunk carries the 12-byte
// header and as much payload as fits after it; the remainder is written
// straight from the source slice. ChunkSize must be a multiple of the
// endpoint's wMaxPacketSize so an early short packet is never mistaken
// for end-of-transfer.
func (sf *Engine) writeTxnPhase(kind ptp.ContainerKind, code uint16, tid uint32, payload []byte, timeout time.Duration) error {
	chunkSize := sf.cfg.ChunkSize

	firstChunkBytes := min(len(payload), chunkSize-ptp.HeaderSize)
	buf := ptp.EmitHeader(ptp.Header{PayloadLen: len(payload), Kind: kind, Code: code, TID: tid})
	buf = append(buf, payload[:firstChunkBytes]...)

	if _, err := sf.writeBulk(buf, timeout); err != nil {
		return err
	}

	for rest := payload[firstChunkBytes:]; len(rest) > 0; {
		n := min(len(rest), chunkSize)
		if _, err := sf.writeBulk(rest[:n], timeout); err != nil {
			return err
		}
		rest = rest[n:]
	}
	return nil
}

// readTxnPhase reads one container from the bulk-in endpoint. It reads
// an initial InitialReadBufferSize-byte chunk; if the container's
// advertised payload doesn't fit, or if the initial read exactly filled
// the buffer (meaning a trailing zero-length packet may still be
// pending), it performs one more bulk read into an oversized
// payload_len+1 buffer to drain it.
func (sf *Engine) readTxnPhase(timeout time.Duration) (ptp.Header, []byte, error) {
	initial := make([]byte, sf.cfg.InitialReadBufferSize)
	n, err := sf.readBulk(initial, timeout)
	if err != nil {
		return ptp.Header{}, nil, err
	}
	buf := initial[:n]

	header, err := ptp.ParseHeader(buf)
	if err != nil {
		return ptp.Header{}, nil, err
	}
	sf.log.Debug("read container %s code=0x%04x tid=%d len=%d", header.Kind, header.Code, header.TID, header.PayloadLen)

	if header.PayloadLen == 0 {
		return header, nil, nil
	}

	payload := make([]byte, 0, header.PayloadLen+1)
	payload = append(payload, buf[ptp.HeaderSize:]...)

	if len(payload) < header.PayloadLen || n == len(initial) {
		extra := make([]byte, cap(payload)-len(payload))
		m, err := sf.readBulk(extra, timeout)
		if err != nil {
			return ptp.Header{}, nil, err
		}
		payload = append(payload, extra[:m]...)
	}

	return header, payload, nil
}

func (sf *Engine) writeBulk(buf []byte, timeout time.Duration) (int, error) {
	n, err := sf.transport.WriteBulk(buf, timeout)
	if errors.Is(err, ErrTransportTimeout) {
		return 0, &ErrTimeout{Phase: "write"}
	}
	return n, err
}

func (sf *Engine) readBulk(buf []byte, timeout time.Duration) (int, error) {
	n, err := sf.transport.ReadBulk(buf, timeout)
	if errors.Is(err, ErrTransportTimeout) {
		return 0, &ErrTimeout{Phase: "read"}
	}
	return n, err
}

// Reset issues a device reset. Callers should do this after a command()
// timeout, since the phase sequence is left in an indeterminate state.
func (sf *Engine) Reset() error {
	return sf.transport.Reset()
}
