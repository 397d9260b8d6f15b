package ptpcode

import "testing"

func TestResponseFromU16(t *testing.T) {
	tests := []struct {
		name string
		n    uint16
		want Response
	}{
		{"ok", 0x2001, ResponseStandard(RespOk)},
		{"undefined", 0x2000, ResponseStandard(RespUndefined)},
		{"other", 0x2021, ResponseOther(0x2021)},
		{"other-low", 0x0000, ResponseOther(0x0000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResponseFromU16(tt.n)
			if got != tt.want {
				t.Fatalf("ResponseFromU16(0x%04x) = %#v, want %#v", tt.n, got, tt.want)
			}
		})
	}
}

func TestResponseIsOk(t *testing.T) {
	if !ResponseFromU16(0x2001).IsOk() {
		t.Fatal("0x2001 should be Ok")
	}
	if ResponseFromU16(0x2002).IsOk() {
		t.Fatal("0x2002 should not be Ok")
	}
}

func TestResponseRoundTrip(t *testing.T) {
	for resp := range standardResponseNames {
		got := ResponseFromU16(uint16(resp))
		if got.ToU16() != uint16(resp) {
			t.Fatalf("ToU16 round-trip failed for 0x%04x", uint16(resp))
		}
	}
}
