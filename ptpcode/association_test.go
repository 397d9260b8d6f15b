package ptpcode

import "testing"

func TestAssociationFromU16(t *testing.T) {
	tests := []struct {
		name string
		n    uint16
		want AssociationCode
	}{
		{"standard", 0x0002, AssociationStandard(AssocAlbum)},
		{"vendor", 0xC001, AssociationVendor(0xC001)},
		{"reserved", 0x1234, AssociationReserved(0x1234)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssociationFromU16(tt.n)
			if got != tt.want {
				t.Fatalf("AssociationFromU16(0x%04x) = %#v, want %#v", tt.n, got, tt.want)
			}
		})
	}
}

func TestAssociationRoundTrip(t *testing.T) {
	for assoc := range standardAssociationNames {
		got := AssociationFromU16(uint16(assoc))
		if got.ToU16() != uint16(assoc) {
			t.Fatalf("ToU16 round-trip failed for 0x%04x", uint16(assoc))
		}
	}
}
