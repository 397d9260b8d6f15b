package ptpcode

import "testing"

// These cases mirror the literal code-classification scenarios: 0x4000 is
// the lone recognized standard event, 0xC000 is vendor, and 0x4001 falls to
// reserved (even though it names EvtCancelTransaction), because it is not
// in the recognized-standard set and its most-significant nibble is 0x4.
func TestEventFromU16(t *testing.T) {
	tests := []struct {
		name string
		n    uint16
		want Event
	}{
		{"standard-undefined", 0x4000, EventStandard(EvtUndefined)},
		{"vendor", 0xC000, EventVendor(0xC000)},
		{"reserved-cancel-transaction-value", 0x4001, EventReserved(0x4001)},
		{"reserved-other", 0x4009, EventReserved(0x4009)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EventFromU16(tt.n)
			if !ok {
				t.Fatalf("EventFromU16(0x%04x) ok = false, want true", tt.n)
			}
			if got != tt.want {
				t.Fatalf("EventFromU16(0x%04x) = %#v, want %#v", tt.n, got, tt.want)
			}
		})
	}
}

// A code outside the standard set and outside both nibble sub-ranges
// (0xC for vendor, 0x4 for reserved) is not a valid event code.
func TestEventFromU16RejectsUnclassifiable(t *testing.T) {
	for _, n := range []uint16{0x0001, 0x2001, 0x8000} {
		if _, ok := EventFromU16(n); ok {
			t.Fatalf("EventFromU16(0x%04x) ok = true, want false", n)
		}
	}
}

func TestEventRoundTrip(t *testing.T) {
	for _, n := range []uint16{0x4000, 0xC123, 0x4321} {
		ev, ok := EventFromU16(n)
		if !ok {
			t.Fatalf("EventFromU16(0x%04x) ok = false, want true", n)
		}
		if got := ev.ToU16(); got != n {
			t.Fatalf("ToU16(FromU16(0x%04x)) = 0x%04x", n, got)
		}
	}
}

func TestStandardEventNaming(t *testing.T) {
	if got := EvtCancelTransaction.String(); got != "CancelTransaction" {
		t.Fatalf("StandardEvent.String() = %q, want the ISO-assigned name regardless of classification", got)
	}
}
