package ptpcode

import "testing"

func TestObjectFormatFromU16(t *testing.T) {
	tests := []struct {
		name string
		n    uint16
		want ObjectFormatCode
	}{
		{"standard-association", 0x3001, ObjectFormatStandard(FormatAssociation)},
		{"standard-exif", 0x3801, ObjectFormatStandard(FormatExifJPEG)},
		{"image-only", 0xFFFF, ObjectFormatImageOnly()},
		{"vendor", 0xC100, ObjectFormatVendor(0xC100)},
		{"reserved", 0x3100, ObjectFormatReserved(0x3100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ObjectFormatFromU16(tt.n)
			if got != tt.want {
				t.Fatalf("ObjectFormatFromU16(0x%04x) = %#v, want %#v", tt.n, got, tt.want)
			}
		})
	}
}

func TestObjectFormatCategory(t *testing.T) {
	if cat := ObjectFormatStandard(FormatExifJPEG).Category(); cat != CategoryImage {
		t.Fatalf("ExifJpeg category = %v, want Image", cat)
	}
	if cat := ObjectFormatStandard(FormatAssociation).Category(); cat != CategoryAncillary {
		t.Fatalf("Association category = %v, want Ancillary", cat)
	}
	if cat := ObjectFormatImageOnly().Category(); cat != CategoryImage {
		t.Fatalf("ImageOnly category = %v, want Image", cat)
	}
	if cat := ObjectFormatVendor(0xC100).Category(); cat != CategoryUnknown {
		t.Fatalf("vendor category = %v, want Unknown", cat)
	}
}

func TestObjectFormatImageOnlyRoundTrip(t *testing.T) {
	if got := ObjectFormatImageOnly().ToU16(); got != ImageOnlyFormat {
		t.Fatalf("ImageOnly.ToU16() = 0x%04x, want 0x%04x", got, ImageOnlyFormat)
	}
}
