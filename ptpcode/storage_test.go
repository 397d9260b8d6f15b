package ptpcode

import "testing"

func TestStorageTypeFromU16(t *testing.T) {
	tests := []struct {
		name string
		n    uint16
		want StorageType
	}{
		{"standard", 0x0003, StorageTypeStandard(StorageFixedRAM)},
		{"vendor", 0x8001, StorageTypeVendor(0x8001)},
		{"reserved", 0x0123, StorageTypeReserved(0x0123)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StorageTypeFromU16(tt.n)
			if got != tt.want {
				t.Fatalf("StorageTypeFromU16(0x%04x) = %#v, want %#v", tt.n, got, tt.want)
			}
		})
	}
}

func TestFilesystemTypeFromU16(t *testing.T) {
	tests := []struct {
		name string
		n    uint16
		want FilesystemType
	}{
		{"standard", 0x0003, FilesystemTypeStandard(FilesystemDCF)},
		{"vendor", 0x8002, FilesystemTypeVendor(0x8002)},
		{"reserved", 0x0010, FilesystemTypeReserved(0x0010)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilesystemTypeFromU16(tt.n)
			if got != tt.want {
				t.Fatalf("FilesystemTypeFromU16(0x%04x) = %#v, want %#v", tt.n, got, tt.want)
			}
		})
	}
}

func TestAccessCapabilityFromU16(t *testing.T) {
	tests := []struct {
		name string
		n    uint16
		want AccessCapability
	}{
		{"standard", 0x0002, AccessCapabilityStandard(AccessReadOnly)},
		{"vendor", 0x8003, AccessCapabilityVendor(0x8003)},
		{"reserved", 0x0010, AccessCapabilityReserved(0x0010)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AccessCapabilityFromU16(tt.n)
			if got != tt.want {
				t.Fatalf("AccessCapabilityFromU16(0x%04x) = %#v, want %#v", tt.n, got, tt.want)
			}
		})
	}
}
