// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptp

import "encoding/binary"

// HeaderSize is the fixed length, in bytes, of a PTP-over-USB container
// header.
const HeaderSize = 12

// ContainerKind identifies the phase a container belongs to.
type ContainerKind uint16

// The four container kinds defined by ISO 15740.
const (
	KindCommand  ContainerKind = 1
	KindData     ContainerKind = 2
	KindResponse ContainerKind = 3
	KindEvent    ContainerKind = 4
)

func (k ContainerKind) String() string {
	switch k {
	case KindCommand:
		return "Command"
	case KindData:
		return "Data"
	case KindResponse:
		return "Response"
	case KindEvent:
		return "Event"
	default:
		return "Unknown"
	}
}

func containerKindFromU16(n uint16) (ContainerKind, bool) {
	switch ContainerKind(n) {
	case KindCommand, KindData, KindResponse, KindEvent:
		return ContainerKind(n), true
	default:
		return 0, false
	}
}

// Header is the 12-byte container header preceding every PTP-over-USB
// container's payload.
type Header struct {
	// PayloadLen is the number of payload bytes following the header,
	// i.e. Length - HeaderSize.
	PayloadLen int
	Kind       ContainerKind
	Code       uint16
	TID        uint32
}

// ParseHeader decodes the 12-byte header from the front of buf. It fails
// with ErrMalformed if buf is shorter than HeaderSize, if the advertised
// length is shorter than HeaderSize, or if the kind field is not one of
// the four recognized container kinds.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, Malformed("container shorter than header: %d bytes", len(buf))
	}
	length := binary.LittleEndian.Uint32(buf[0:4])
	if length < HeaderSize {
		return Header{}, Malformed("container length %d below header size %d", length, HeaderSize)
	}
	kindU16 := binary.LittleEndian.Uint16(buf[4:6])
	kind, ok := containerKindFromU16(kindU16)
	if !ok {
		return Header{}, Malformed("invalid container kind 0x%04x", kindU16)
	}
	code := binary.LittleEndian.Uint16(buf[6:8])
	tid := binary.LittleEndian.Uint32(buf[8:12])
	return Header{
		PayloadLen: int(length) - HeaderSize,
		Kind:       kind,
		Code:       code,
		TID:        tid,
	}, nil
}

// BelongsTo reports whether this header's transaction id matches tid.
func (h Header) BelongsTo(tid uint32) bool { return h.TID == tid }

// EmitHeader serializes a header whose Length field is PayloadLen+HeaderSize.
func EmitHeader(h Header) []byte {
	w := NewWriter()
	w.U32(uint32(h.PayloadLen + HeaderSize))
	w.U16(uint16(h.Kind))
	w.U16(h.Code)
	w.U32(h.TID)
	return w.Bytes()
}

// EmitContainer builds a complete container (header + payload) for kind,
// code, tid and the given payload bytes.
func EmitContainer(kind ContainerKind, code uint16, tid uint32, payload []byte) []byte {
	h := Header{PayloadLen: len(payload), Kind: kind, Code: code, TID: tid}
	return append(EmitHeader(h), payload...)
}
