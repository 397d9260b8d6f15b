package ptp

import (
	"reflect"
	"testing"
)

func TestReaderIntegers(t *testing.T) {
	buf := []byte{0x01, 0xFE, 0xEF, 0xBE, 0xAD, 0xDE}
	r := NewReader(buf)

	v8, err := r.U8()
	if err != nil || v8 != 0x01 {
		t.Fatalf("U8() = %v, %v", v8, err)
	}
	i8, err := r.I8()
	if err != nil || i8 != -2 {
		t.Fatalf("I8() = %v, %v", i8, err)
	}
	v32, err := r.U32()
	if err != nil || v32 != 0xDEADBEEF {
		t.Fatalf("U32() = 0x%x, %v", v32, err)
	}
	if err := r.ExpectEnd(); err != nil {
		t.Fatalf("ExpectEnd() = %v", err)
	}
}

func TestReaderExpectEndFailsOnTrailingBytes(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.U8(); err != nil {
		t.Fatal(err)
	}
	if err := r.ExpectEnd(); err == nil {
		t.Fatal("expected error for trailing byte")
	} else if !IsMalformed(err) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestReaderShortBufferFails(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.U32(); !IsMalformed(err) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

// Mirrors the literal string-codec scenario: "ABC" encodes to
// 0x07, 0x41,0x00, 0x42,0x00, 0x43,0x00, 0x00,0x00 (9 bytes), and decodes
// back to "ABC".
func TestStringRoundTripABC(t *testing.T) {
	want := []byte{0x07, 0x41, 0x00, 0x42, 0x00, 0x43, 0x00, 0x00, 0x00}
	got := NewWriter().String("ABC").Bytes()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("encode(\"ABC\") = % x, want % x", got, want)
	}

	s, err := NewReader(got).String()
	if err != nil {
		t.Fatal(err)
	}
	if s != "ABC" {
		t.Fatalf("decode = %q, want ABC", s)
	}
}

func TestStringEmpty(t *testing.T) {
	got := NewWriter().String("").Bytes()
	if !reflect.DeepEqual(got, []byte{0x00}) {
		t.Fatalf("encode(\"\") = % x, want [00]", got)
	}
	s, err := NewReader(got).String()
	if err != nil || s != "" {
		t.Fatalf("decode(\"\") = %q, %v", s, err)
	}
}

func TestU128RoundTrip(t *testing.T) {
	v := Uint128{Lo: 0x1122334455667788, Hi: 0x99AABBCCDDEEFF00}
	buf := NewWriter().U128(v).Bytes()
	got, err := NewReader(buf).U128()
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Fatalf("U128 round-trip = %+v, want %+v", got, v)
	}
}

func TestU16VectorRoundTrip(t *testing.T) {
	// AUINT16([0x1234, 0x5678]) encodes to 02 00 00 00 34 12 78 56.
	want := []byte{0x02, 0x00, 0x00, 0x00, 0x34, 0x12, 0x78, 0x56}
	got := NewWriter().U16Vector([]uint16{0x1234, 0x5678}).Bytes()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("encode = % x, want % x", got, want)
	}
	vec, err := NewReader(got).ReadU16Vector()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vec, []uint16{0x1234, 0x5678}) {
		t.Fatalf("decode = %v", vec)
	}
}

func TestEmptyVectorRoundTrips(t *testing.T) {
	got := NewWriter().U32Vector(nil).Bytes()
	if !reflect.DeepEqual(got, []byte{0, 0, 0, 0}) {
		t.Fatalf("encode(nil) = % x", got)
	}
	vec, err := NewReader(got).ReadU32Vector()
	if err != nil {
		t.Fatal(err)
	}
	if len(vec) != 0 {
		t.Fatalf("decode = %v, want empty", vec)
	}
}
