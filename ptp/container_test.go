package ptp

import "testing"

func TestParseHeaderRejectsShortLength(t *testing.T) {
	buf := make([]byte, 12)
	buf[0] = 8 // length < HeaderSize
	if _, err := ParseHeader(buf); !IsMalformed(err) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParseHeaderRejectsShortBuffer(t *testing.T) {
	if _, err := ParseHeader(make([]byte, 4)); !IsMalformed(err) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParseHeaderRejectsUnknownKind(t *testing.T) {
	h := Header{PayloadLen: 0, Kind: ContainerKind(9), Code: 0, TID: 0}
	buf := EmitHeader(h)
	if _, err := ParseHeader(buf); !IsMalformed(err) {
		t.Fatalf("expected ErrMalformed for unknown kind, got %v", err)
	}
}

func TestParseHeaderRoundTrip(t *testing.T) {
	h := Header{PayloadLen: 16, Kind: KindCommand, Code: 0x1001, TID: 7}
	buf := EmitHeader(h)
	got, err := ParseHeader(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got != h {
		t.Fatalf("round trip = %+v, want %+v", got, h)
	}
}

// Mirrors the literal command-transaction scenario: GetDeviceInfo with
// params (0,0,0) emits a Command container of length 24 bytes.
func TestEmitContainerGetDeviceInfo(t *testing.T) {
	payload := NewWriter().U32(0).U32(0).U32(0).Bytes()
	buf := EmitContainer(KindCommand, 0x1001, 0x00000000, payload)
	want := []byte{
		0x18, 0x00, 0x00, 0x00, // length = 24
		0x01, 0x00, // kind = Command
		0x01, 0x10, // code = GetDeviceInfo
		0x00, 0x00, 0x00, 0x00, // tid
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	if len(buf) != len(want) {
		t.Fatalf("len = %d, want %d", len(buf), len(want))
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = 0x%02x, want 0x%02x", i, buf[i], want[i])
		}
	}
}

func TestBelongsTo(t *testing.T) {
	h := Header{TID: 5}
	if !h.BelongsTo(5) {
		t.Fatal("expected BelongsTo(5) true")
	}
	if h.BelongsTo(6) {
		t.Fatal("expected BelongsTo(6) false")
	}
}
