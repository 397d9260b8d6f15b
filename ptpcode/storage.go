// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptpcode

import "fmt"

// StandardStorageType is the standard PTP storage type code set.
// See ISO 15740, subclass 10.5.
type StandardStorageType uint16

// The standard PTP storage types.
const (
	StorageUndefined    StandardStorageType = 0x0000
	StorageFixedROM     StandardStorageType = 0x0001
	StorageRemovableROM StandardStorageType = 0x0002
	StorageFixedRAM     StandardStorageType = 0x0003
	StorageRemovableRAM StandardStorageType = 0x0004
)

var standardStorageTypeNames = map[StandardStorageType]string{
	StorageUndefined:    "Undefined",
	StorageFixedROM:     "FixedRom",
	StorageRemovableROM: "RemovableRom",
	StorageFixedRAM:     "FixedRam",
	StorageRemovableRAM: "RemovableRam",
}

func (sf StandardStorageType) String() string {
	if name, ok := standardStorageTypeNames[sf]; ok {
		return name
	}
	return fmt.Sprintf("StorageType(0x%04x)", uint16(sf))
}

// StorageType is a storage type code classified into the standard, vendor,
// or reserved sub-range. Bit 15 set marks the vendor sub-range.
type StorageType struct {
	kind  codeKind
	std   StandardStorageType
	other uint16
}

// StorageTypeStandard wraps a standard storage type code.
func StorageTypeStandard(std StandardStorageType) StorageType {
	return StorageType{kind: kindStandard, std: std}
}

// StorageTypeVendor wraps a vendor-defined storage type code.
func StorageTypeVendor(n uint16) StorageType {
	return StorageType{kind: kindVendor, other: n}
}

// StorageTypeReserved wraps a reserved storage type code.
func StorageTypeReserved(n uint16) StorageType {
	return StorageType{kind: kindReserved, other: n}
}

// StorageTypeFromU16 classifies a wire storage type code.
func StorageTypeFromU16(n uint16) StorageType {
	if _, ok := standardStorageTypeNames[StandardStorageType(n)]; ok {
		return StorageTypeStandard(StandardStorageType(n))
	}
	if n&0x8000 != 0 {
		return StorageTypeVendor(n)
	}
	return StorageTypeReserved(n)
}

// ToU16 recovers the original wire value.
func (sf StorageType) ToU16() uint16 {
	switch sf.kind {
	case kindStandard:
		return uint16(sf.std)
	default:
		return sf.other
	}
}

// IsStandard reports whether the code falls in the standard sub-range.
func (sf StorageType) IsStandard() bool { return sf.kind == kindStandard }

// IsVendor reports whether the code falls in the vendor sub-range.
func (sf StorageType) IsVendor() bool { return sf.kind == kindVendor }

// IsReserved reports whether the code falls in the reserved sub-range.
func (sf StorageType) IsReserved() bool { return sf.kind == kindReserved }

// Standard returns the standard storage type and true if this code is
// standard.
func (sf StorageType) Standard() (StandardStorageType, bool) {
	return sf.std, sf.kind == kindStandard
}

// LowerHex formats the wire value the way fmt's %x verb would.
func (sf StorageType) LowerHex() string {
	return fmt.Sprintf("%x", sf.ToU16())
}

func (sf StorageType) String() string {
	switch sf.kind {
	case kindStandard:
		return sf.std.String()
	case kindVendor:
		return fmt.Sprintf("Vendor(0x%04x)", sf.other)
	default:
		return fmt.Sprintf("Reserved(0x%04x)", sf.other)
	}
}

// StandardFilesystemType is the standard PTP filesystem type code set.
// See ISO 15740, subclass 10.5.
type StandardFilesystemType uint16

// The standard PTP filesystem types.
const (
	FilesystemUndefined          StandardFilesystemType = 0x0000
	FilesystemGenericFlat        StandardFilesystemType = 0x0001
	FilesystemGenericHierarchical StandardFilesystemType = 0x0002
	FilesystemDCF                StandardFilesystemType = 0x0003
)

var standardFilesystemTypeNames = map[StandardFilesystemType]string{
	FilesystemUndefined:           "Undefined",
	FilesystemGenericFlat:         "GenericFlat",
	FilesystemGenericHierarchical: "GenericHierarchical",
	FilesystemDCF:                 "DCF",
}

func (sf StandardFilesystemType) String() string {
	if name, ok := standardFilesystemTypeNames[sf]; ok {
		return name
	}
	return fmt.Sprintf("FilesystemType(0x%04x)", uint16(sf))
}

// FilesystemType is a filesystem type code classified into the standard,
// vendor, or reserved sub-range. Bit 15 set marks the vendor sub-range.
type FilesystemType struct {
	kind  codeKind
	std   StandardFilesystemType
	other uint16
}

// FilesystemTypeStandard wraps a standard filesystem type code.
func FilesystemTypeStandard(std StandardFilesystemType) FilesystemType {
	return FilesystemType{kind: kindStandard, std: std}
}

// FilesystemTypeVendor wraps a vendor-defined filesystem type code.
func FilesystemTypeVendor(n uint16) FilesystemType {
	return FilesystemType{kind: kindVendor, other: n}
}

// FilesystemTypeReserved wraps a reserved filesystem type code.
func FilesystemTypeReserved(n uint16) FilesystemType {
	return FilesystemType{kind: kindReserved, other: n}
}

// FilesystemTypeFromU16 classifies a wire filesystem type code.
func FilesystemTypeFromU16(n uint16) FilesystemType {
	if _, ok := standardFilesystemTypeNames[StandardFilesystemType(n)]; ok {
		return FilesystemTypeStandard(StandardFilesystemType(n))
	}
	if n&0x8000 != 0 {
		return FilesystemTypeVendor(n)
	}
	return FilesystemTypeReserved(n)
}

// ToU16 recovers the original wire value.
func (sf FilesystemType) ToU16() uint16 {
	switch sf.kind {
	case kindStandard:
		return uint16(sf.std)
	default:
		return sf.other
	}
}

// IsStandard reports whether the code falls in the standard sub-range.
func (sf FilesystemType) IsStandard() bool { return sf.kind == kindStandard }

// IsVendor reports whether the code falls in the vendor sub-range.
func (sf FilesystemType) IsVendor() bool { return sf.kind == kindVendor }

// IsReserved reports whether the code falls in the reserved sub-range.
func (sf FilesystemType) IsReserved() bool { return sf.kind == kindReserved }

// Standard returns the standard filesystem type and true if this code is
// standard.
func (sf FilesystemType) Standard() (StandardFilesystemType, bool) {
	return sf.std, sf.kind == kindStandard
}

// LowerHex formats the wire value the way fmt's %x verb would.
func (sf FilesystemType) LowerHex() string {
	return fmt.Sprintf("%x", sf.ToU16())
}

func (sf FilesystemType) String() string {
	switch sf.kind {
	case kindStandard:
		return sf.std.String()
	case kindVendor:
		return fmt.Sprintf("Vendor(0x%04x)", sf.other)
	default:
		return fmt.Sprintf("Reserved(0x%04x)", sf.other)
	}
}

// StandardAccessType is the standard PTP storage access capability code
// set. See ISO 15740, subclass 10.5.
type StandardAccessType uint16

// The standard PTP access capability codes.
const (
	AccessReadWrite       StandardAccessType = 0x0000
	AccessReadOnlyNoDelete StandardAccessType = 0x0001
	AccessReadOnly        StandardAccessType = 0x0002
)

var standardAccessTypeNames = map[StandardAccessType]string{
	AccessReadWrite:        "ReadWrite",
	AccessReadOnlyNoDelete: "ReadOnlyNoDelete",
	AccessReadOnly:         "ReadOnly",
}

func (sf StandardAccessType) String() string {
	if name, ok := standardAccessTypeNames[sf]; ok {
		return name
	}
	return fmt.Sprintf("AccessType(0x%04x)", uint16(sf))
}

// AccessCapability is an access capability code classified into the
// standard, vendor, or reserved sub-range. Bit 15 set marks the vendor
// sub-range.
type AccessCapability struct {
	kind  codeKind
	std   StandardAccessType
	other uint16
}

// AccessCapabilityStandard wraps a standard access capability code.
func AccessCapabilityStandard(std StandardAccessType) AccessCapability {
	return AccessCapability{kind: kindStandard, std: std}
}

// AccessCapabilityVendor wraps a vendor-defined access capability code.
func AccessCapabilityVendor(n uint16) AccessCapability {
	return AccessCapability{kind: kindVendor, other: n}
}

// AccessCapabilityReserved wraps a reserved access capability code.
func AccessCapabilityReserved(n uint16) AccessCapability {
	return AccessCapability{kind: kindReserved, other: n}
}

// AccessCapabilityFromU16 classifies a wire access capability code.
func AccessCapabilityFromU16(n uint16) AccessCapability {
	if _, ok := standardAccessTypeNames[StandardAccessType(n)]; ok {
		return AccessCapabilityStandard(StandardAccessType(n))
	}
	if n&0x8000 != 0 {
		return AccessCapabilityVendor(n)
	}
	return AccessCapabilityReserved(n)
}

// ToU16 recovers the original wire value.
func (sf AccessCapability) ToU16() uint16 {
	switch sf.kind {
	case kindStandard:
		return uint16(sf.std)
	default:
		return sf.other
	}
}

// IsStandard reports whether the code falls in the standard sub-range.
func (sf AccessCapability) IsStandard() bool { return sf.kind == kindStandard }

// IsVendor reports whether the code falls in the vendor sub-range.
func (sf AccessCapability) IsVendor() bool { return sf.kind == kindVendor }

// IsReserved reports whether the code falls in the reserved sub-range.
func (sf AccessCapability) IsReserved() bool { return sf.kind == kindReserved }

// Standard returns the standard access capability and true if this code is
// standard.
func (sf AccessCapability) Standard() (StandardAccessType, bool) {
	return sf.std, sf.kind == kindStandard
}

// LowerHex formats the wire value the way fmt's %x verb would.
func (sf AccessCapability) LowerHex() string {
	return fmt.Sprintf("%x", sf.ToU16())
}

func (sf AccessCapability) String() string {
	switch sf.kind {
	case kindStandard:
		return sf.std.String()
	case kindVendor:
		return fmt.Sprintf("Vendor(0x%04x)", sf.other)
	default:
		return fmt.Sprintf("Reserved(0x%04x)", sf.other)
	}
}
