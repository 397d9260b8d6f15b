// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptp

import (
	"encoding/binary"
	"unicode/utf16"
)

// Writer accumulates PTP primitive values into a byte buffer in wire
// order. Each append method returns the Writer so calls can be chained.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated buffer.
func (this *Writer) Bytes() []byte { return this.buf }

// U8 appends an unsigned 8-bit integer.
func (this *Writer) U8(v uint8) *Writer {
	this.buf = append(this.buf, v)
	return this
}

// I8 appends a signed 8-bit integer.
func (this *Writer) I8(v int8) *Writer {
	return this.U8(uint8(v))
}

// U16 appends a little-endian unsigned 16-bit integer.
func (this *Writer) U16(v uint16) *Writer {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	this.buf = append(this.buf, b[:]...)
	return this
}

// I16 appends a little-endian signed 16-bit integer.
func (this *Writer) I16(v int16) *Writer {
	return this.U16(uint16(v))
}

// U32 appends a little-endian unsigned 32-bit integer.
func (this *Writer) U32(v uint32) *Writer {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	this.buf = append(this.buf, b[:]...)
	return this
}

// I32 appends a little-endian signed 32-bit integer.
func (this *Writer) I32(v int32) *Writer {
	return this.U32(uint32(v))
}

// U64 appends a little-endian unsigned 64-bit integer.
func (this *Writer) U64(v uint64) *Writer {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	this.buf = append(this.buf, b[:]...)
	return this
}

// I64 appends a little-endian signed 64-bit integer.
func (this *Writer) I64(v int64) *Writer {
	return this.U64(uint64(v))
}

// U128 appends a 128-bit value as lo then hi, each a little-endian u64.
func (this *Writer) U128(v Uint128) *Writer {
	return this.U64(v.Lo).U64(v.Hi)
}

// String appends a length-prefixed UTF-16LE string: a length byte of
// 2*units+1 (the source's historical byte-count convention, see C1 string
// encoding contract), the UTF-16 units, then a 0x0000 terminator. The
// empty string is a single 0x00 byte with no terminator.
func (this *Writer) String(s string) *Writer {
	units := utf16.Encode([]rune(s))
	if len(units) == 0 {
		return this.U8(0)
	}
	this.U8(byte(len(units)*2 + 1))
	for _, u := range units {
		this.U16(u)
	}
	return this.U16(0)
}

// U8Vector appends a u32-length prefix followed by each element.
func (this *Writer) U8Vector(vs []uint8) *Writer {
	this.U32(uint32(len(vs)))
	for _, v := range vs {
		this.U8(v)
	}
	return this
}

// I8Vector appends a u32-length prefix followed by each element.
func (this *Writer) I8Vector(vs []int8) *Writer {
	this.U32(uint32(len(vs)))
	for _, v := range vs {
		this.I8(v)
	}
	return this
}

// U16Vector appends a u32-length prefix followed by each element.
func (this *Writer) U16Vector(vs []uint16) *Writer {
	this.U32(uint32(len(vs)))
	for _, v := range vs {
		this.U16(v)
	}
	return this
}

// I16Vector appends a u32-length prefix followed by each element.
func (this *Writer) I16Vector(vs []int16) *Writer {
	this.U32(uint32(len(vs)))
	for _, v := range vs {
		this.I16(v)
	}
	return this
}

// U32Vector appends a u32-length prefix followed by each element.
func (this *Writer) U32Vector(vs []uint32) *Writer {
	this.U32(uint32(len(vs)))
	for _, v := range vs {
		this.U32(v)
	}
	return this
}

// I32Vector appends a u32-length prefix followed by each element.
func (this *Writer) I32Vector(vs []int32) *Writer {
	this.U32(uint32(len(vs)))
	for _, v := range vs {
		this.I32(v)
	}
	return this
}

// U64Vector appends a u32-length prefix followed by each element.
func (this *Writer) U64Vector(vs []uint64) *Writer {
	this.U32(uint32(len(vs)))
	for _, v := range vs {
		this.U64(v)
	}
	return this
}

// I64Vector appends a u32-length prefix followed by each element.
func (this *Writer) I64Vector(vs []int64) *Writer {
	this.U32(uint32(len(vs)))
	for _, v := range vs {
		this.I64(v)
	}
	return this
}

// U128Vector appends a u32-length prefix followed by each element.
func (this *Writer) U128Vector(vs []Uint128) *Writer {
	this.U32(uint32(len(vs)))
	for _, v := range vs {
		this.U128(v)
	}
	return this
}
