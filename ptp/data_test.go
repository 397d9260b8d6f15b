package ptp

import (
	"reflect"
	"testing"
)

// Mirrors the literal data round-trip scenario: UINT32(0xDEADBEEF) encodes
// to EF BE AD DE; decoding with tag 0x0006 yields the same value.
func TestDataUint32RoundTrip(t *testing.T) {
	v := DataUint32(0xDEADBEEF)
	want := []byte{0xEF, 0xBE, 0xAD, 0xDE}
	if got := v.Encode(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode() = % x, want % x", got, want)
	}

	got, err := ReadData(WireUint32, NewReader(want))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Fatalf("ReadData() = %+v, want %+v", got, v)
	}
}

func TestDataArrayRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tag  uint16
		v    Data
	}{
		{"AUINT16", WireAUint16, DataAUint16([]uint16{0x1234, 0x5678})},
		{"AINT8-empty", WireAInt8, DataAInt8([]int8{})},
		{"AUINT32", WireAUint32, DataAUint32([]uint32{1, 2, 3})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.v.Encode()
			got, err := ReadData(tt.tag, NewReader(buf))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.v) {
				t.Fatalf("round trip = %+v, want %+v", got, tt.v)
			}
		})
	}
}

func TestDataStringRoundTrip(t *testing.T) {
	v := DataStr("hello")
	buf := v.Encode()
	got, err := ReadData(WireStr, NewReader(buf))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Fatalf("round trip = %+v, want %+v", got, v)
	}
}

func TestDataUndefConsumesNoBytes(t *testing.T) {
	r := NewReader([]byte{0xAA, 0xBB})
	v, err := ReadData(0x1234, r)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsUndef() {
		t.Fatalf("expected UNDEF for unrecognized tag, got %+v", v)
	}
	if r.Len() != 2 {
		t.Fatalf("UNDEF should not consume bytes, remaining = %d", r.Len())
	}
}

func TestDataProjections(t *testing.T) {
	if v, ok := DataInt32(-5).ToI64(); !ok || v != -5 {
		t.Fatalf("ToI64() = %v, %v", v, ok)
	}
	if v, ok := DataUint32(42).ToI64(); !ok || v != 42 {
		t.Fatalf("UINT32.ToI64() = %v, %v, want 42, true", v, ok)
	}
	if _, ok := DataUint64(1).ToI64(); ok {
		t.Fatal("UINT64 should not project to i64")
	}
	if v, ok := DataUint16(42).ToU64(); !ok || v != 42 {
		t.Fatalf("ToU64() = %v, %v", v, ok)
	}
	if _, ok := DataInt8(1).ToU64(); ok {
		t.Fatal("INT8 should not project to u64")
	}
}
