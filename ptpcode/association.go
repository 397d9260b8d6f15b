// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptpcode

import "fmt"

// StandardAssociationCode is the standard PTP association type code set,
// describing how an Association-format object groups its children.
// See ISO 15740, subclass 10.4.
type StandardAssociationCode uint16

// The standard PTP association codes.
const (
	AssocUndefined           StandardAssociationCode = 0x0000
	AssocGenericFolder       StandardAssociationCode = 0x0001
	AssocAlbum               StandardAssociationCode = 0x0002
	AssocTimeSequence        StandardAssociationCode = 0x0003
	AssocPanoramicHorizontal StandardAssociationCode = 0x0004
	AssocPanoramicVertical   StandardAssociationCode = 0x0005
	AssocPanoramic2D         StandardAssociationCode = 0x0006
	AssocAncillaryData       StandardAssociationCode = 0x0007
)

var standardAssociationNames = map[StandardAssociationCode]string{
	AssocUndefined:           "Undefined",
	AssocGenericFolder:       "GenericFolder",
	AssocAlbum:               "Album",
	AssocTimeSequence:        "TimeSequence",
	AssocPanoramicHorizontal: "PanoramicHorizontal",
	AssocPanoramicVertical:   "PanoramicVertical",
	AssocPanoramic2D:         "Panoramic2D",
	AssocAncillaryData:       "AncillaryData",
}

func (sf StandardAssociationCode) String() string {
	if name, ok := standardAssociationNames[sf]; ok {
		return name
	}
	return fmt.Sprintf("Association(0x%04x)", uint16(sf))
}

// AssociationCode is an association code classified into the standard,
// vendor, or reserved sub-range.
type AssociationCode struct {
	kind  codeKind
	std   StandardAssociationCode
	other uint16
}

// AssociationStandard wraps a standard association code.
func AssociationStandard(std StandardAssociationCode) AssociationCode {
	return AssociationCode{kind: kindStandard, std: std}
}

// AssociationVendor wraps a vendor-defined association code.
func AssociationVendor(n uint16) AssociationCode {
	return AssociationCode{kind: kindVendor, other: n}
}

// AssociationReserved wraps a reserved association code.
func AssociationReserved(n uint16) AssociationCode {
	return AssociationCode{kind: kindReserved, other: n}
}

// AssociationFromU16 classifies a wire association code. Vendor codes have
// their most-significant nibble 0xC; every other non-standard code,
// including the most-significant-nibble 0x3 range, classifies as reserved.
func AssociationFromU16(n uint16) AssociationCode {
	if _, ok := standardAssociationNames[StandardAssociationCode(n)]; ok {
		return AssociationStandard(StandardAssociationCode(n))
	}
	switch msn(n) {
	case 0xC:
		return AssociationVendor(n)
	default:
		return AssociationReserved(n)
	}
}

// ToU16 recovers the original wire value.
func (sf AssociationCode) ToU16() uint16 {
	switch sf.kind {
	case kindStandard:
		return uint16(sf.std)
	default:
		return sf.other
	}
}

// IsStandard reports whether the code falls in the standard sub-range.
func (sf AssociationCode) IsStandard() bool { return sf.kind == kindStandard }

// IsVendor reports whether the code falls in the vendor sub-range.
func (sf AssociationCode) IsVendor() bool { return sf.kind == kindVendor }

// IsReserved reports whether the code falls in the reserved sub-range.
func (sf AssociationCode) IsReserved() bool { return sf.kind == kindReserved }

// Standard returns the standard association code and true if this code is
// standard.
func (sf AssociationCode) Standard() (StandardAssociationCode, bool) {
	return sf.std, sf.kind == kindStandard
}

// LowerHex formats the wire value the way fmt's %x verb would.
func (sf AssociationCode) LowerHex() string {
	return fmt.Sprintf("%x", sf.ToU16())
}

func (sf AssociationCode) String() string {
	switch sf.kind {
	case kindStandard:
		return sf.std.String()
	case kindVendor:
		return fmt.Sprintf("Vendor(0x%04x)", sf.other)
	default:
		return fmt.Sprintf("Reserved(0x%04x)", sf.other)
	}
}
