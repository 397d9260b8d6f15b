// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptp

import (
	"encoding/binary"
	"unicode/utf16"
)

// Reader decodes PTP primitive values from an in-memory byte slice,
// consuming bytes from the front as each value is read. It never copies
// the underlying buffer; Bytes/String read a suffix of it directly.
type Reader struct {
	buf []byte
}

// NewReader wraps buf for sequential decoding.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the number of unread bytes remaining.
func (this *Reader) Len() int { return len(this.buf) }

// ExpectEnd fails with ErrMalformed if any bytes remain unconsumed.
func (this *Reader) ExpectEnd() error {
	if len(this.buf) != 0 {
		return Malformed("trailing bytes: %d unconsumed", len(this.buf))
	}
	return nil
}

func (this *Reader) need(n int) ([]byte, error) {
	if len(this.buf) < n {
		return nil, Malformed("need %d bytes, have %d", n, len(this.buf))
	}
	b := this.buf[:n]
	this.buf = this.buf[n:]
	return b, nil
}

// U8 reads an unsigned 8-bit integer.
func (this *Reader) U8() (uint8, error) {
	b, err := this.need(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// I8 reads a signed 8-bit integer.
func (this *Reader) I8() (int8, error) {
	v, err := this.U8()
	return int8(v), err
}

// U16 reads a little-endian unsigned 16-bit integer.
func (this *Reader) U16() (uint16, error) {
	b, err := this.need(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// I16 reads a little-endian signed 16-bit integer.
func (this *Reader) I16() (int16, error) {
	v, err := this.U16()
	return int16(v), err
}

// U32 reads a little-endian unsigned 32-bit integer.
func (this *Reader) U32() (uint32, error) {
	b, err := this.need(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// I32 reads a little-endian signed 32-bit integer.
func (this *Reader) I32() (int32, error) {
	v, err := this.U32()
	return int32(v), err
}

// U64 reads a little-endian unsigned 64-bit integer.
func (this *Reader) U64() (uint64, error) {
	b, err := this.need(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// I64 reads a little-endian signed 64-bit integer.
func (this *Reader) I64() (int64, error) {
	v, err := this.U64()
	return int64(v), err
}

// U128 reads a 128-bit unsigned value as a (lo, hi) pair of little-endian
// u64 words, lo first on the wire.
func (this *Reader) U128() (Uint128, error) {
	lo, err := this.U64()
	if err != nil {
		return Uint128{}, err
	}
	hi, err := this.U64()
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{Lo: lo, Hi: hi}, nil
}

// I128 reads a 128-bit signed value using the same wire layout as U128.
func (this *Reader) I128() (Uint128, error) {
	return this.U128()
}

// String decodes a length-prefixed UTF-16LE string: a length byte n (the
// character count including the null terminator, 0 for empty), n-1 UTF-16
// code units, then one terminating 0x0000 discarded without validation.
func (this *Reader) String() (string, error) {
	n, err := this.U8()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	units := make([]uint16, n-1)
	for i := range units {
		u, err := this.U16()
		if err != nil {
			return "", err
		}
		units[i] = u
	}
	if _, err := this.U16(); err != nil { // terminator
		return "", err
	}
	return string(utf16.Decode(units)), nil
}

// ReadU8Vector reads a u32-length-prefixed vector of u8 values.
func (this *Reader) ReadU8Vector() ([]uint8, error) {
	return readVector(this, (*Reader).U8)
}

// ReadI8Vector reads a u32-length-prefixed vector of i8 values.
func (this *Reader) ReadI8Vector() ([]int8, error) {
	return readVector(this, (*Reader).I8)
}

// ReadU16Vector reads a u32-length-prefixed vector of u16 values.
func (this *Reader) ReadU16Vector() ([]uint16, error) {
	return readVector(this, (*Reader).U16)
}

// ReadI16Vector reads a u32-length-prefixed vector of i16 values.
func (this *Reader) ReadI16Vector() ([]int16, error) {
	return readVector(this, (*Reader).I16)
}

// ReadU32Vector reads a u32-length-prefixed vector of u32 values.
func (this *Reader) ReadU32Vector() ([]uint32, error) {
	return readVector(this, (*Reader).U32)
}

// ReadI32Vector reads a u32-length-prefixed vector of i32 values.
func (this *Reader) ReadI32Vector() ([]int32, error) {
	return readVector(this, (*Reader).I32)
}

// ReadU64Vector reads a u32-length-prefixed vector of u64 values.
func (this *Reader) ReadU64Vector() ([]uint64, error) {
	return readVector(this, (*Reader).U64)
}

// ReadI64Vector reads a u32-length-prefixed vector of i64 values.
func (this *Reader) ReadI64Vector() ([]int64, error) {
	return readVector(this, (*Reader).I64)
}

// ReadU128Vector reads a u32-length-prefixed vector of 128-bit values.
func (this *Reader) ReadU128Vector() ([]Uint128, error) {
	return readVector(this, (*Reader).U128)
}

// readVector is the generic length-prefixed vector decoder shared by every
// element type: a u32 count followed by that many elements in the
// element's own encoding. Decoding stops early, propagating the error, if
// any element read fails.
func readVector[T any](r *Reader, elem func(*Reader) (T, error)) ([]T, error) {
	n, err := r.U32()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := elem(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
