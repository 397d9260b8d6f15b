// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptpcode

import "fmt"

// StandardResponse is the standard PTP response code set.
// See ISO 15740, subclass 10.2.
type StandardResponse uint16

// The standard PTP response codes.
const (
	RespUndefined                             StandardResponse = 0x2000
	RespOk                                    StandardResponse = 0x2001
	RespGeneralError                          StandardResponse = 0x2002
	RespSessionNotOpen                        StandardResponse = 0x2003
	RespInvalidTransactionID                  StandardResponse = 0x2004
	RespOperationNotSupported                 StandardResponse = 0x2005
	RespParameterNotSupported                 StandardResponse = 0x2006
	RespIncompleteTransfer                    StandardResponse = 0x2007
	RespInvalidStorageID                      StandardResponse = 0x2008
	RespInvalidObjectHandle                   StandardResponse = 0x2009
	RespDevicePropNotSupported                StandardResponse = 0x200A
	RespInvalidObjectFormatCode               StandardResponse = 0x200B
	RespStoreFull                             StandardResponse = 0x200C
	RespObjectWriteProtected                  StandardResponse = 0x200D
	RespStoreReadOnly                         StandardResponse = 0x200E
	RespAccessDenied                          StandardResponse = 0x200F
	RespNoThumbnailPresent                    StandardResponse = 0x2010
	RespSelfTestFailed                        StandardResponse = 0x2011
	RespPartialDeletion                       StandardResponse = 0x2012
	RespStoreNotAvailable                     StandardResponse = 0x2013
	RespSpecificationByFormatUnsupported      StandardResponse = 0x2014
	RespNoValidObjectInfo                     StandardResponse = 0x2015
	RespInvalidCodeFormat                     StandardResponse = 0x2016
	RespUnknownVendorCode                     StandardResponse = 0x2017
	RespCaptureAlreadyTerminated              StandardResponse = 0x2018
	RespDeviceBusy                            StandardResponse = 0x2019
	RespInvalidParentObject                   StandardResponse = 0x201A
	RespInvalidDevicePropFormat               StandardResponse = 0x201B
	RespInvalidDevicePropValue                StandardResponse = 0x201C
	RespInvalidParameter                      StandardResponse = 0x201D
	RespSessionAlreadyOpen                    StandardResponse = 0x201E
	RespTransactionCancelled                  StandardResponse = 0x201F
	RespSpecificationOfDestinationUnsupported StandardResponse = 0x2020
)

var standardResponseNames = map[StandardResponse]string{
	RespUndefined:                             "Undefined",
	RespOk:                                    "Ok",
	RespGeneralError:                          "GeneralError",
	RespSessionNotOpen:                        "SessionNotOpen",
	RespInvalidTransactionID:                  "InvalidTransactionID",
	RespOperationNotSupported:                 "OperationNotSupported",
	RespParameterNotSupported:                 "ParameterNotSupported",
	RespIncompleteTransfer:                    "IncompleteTransfer",
	RespInvalidStorageID:                      "InvalidStorageID",
	RespInvalidObjectHandle:                   "InvalidObjectHandle",
	RespDevicePropNotSupported:                "DevicePropNotSupported",
	RespInvalidObjectFormatCode:               "InvalidObjectFormatCode",
	RespStoreFull:                             "StoreFull",
	RespObjectWriteProtected:                  "ObjectWriteProtected",
	RespStoreReadOnly:                         "StoreReadOnly",
	RespAccessDenied:                          "AccessDenied",
	RespNoThumbnailPresent:                    "NoThumbnailPresent",
	RespSelfTestFailed:                        "SelfTestFailed",
	RespPartialDeletion:                       "PartialDeletion",
	RespStoreNotAvailable:                     "StoreNotAvailable",
	RespSpecificationByFormatUnsupported:      "SpecificationByFormatUnsupported",
	RespNoValidObjectInfo:                     "NoValidObjectInfo",
	RespInvalidCodeFormat:                     "InvalidCodeFormat",
	RespUnknownVendorCode:                     "UnknownVendorCode",
	RespCaptureAlreadyTerminated:              "CaptureAlreadyTerminated",
	RespDeviceBusy:                            "DeviceBusy",
	RespInvalidParentObject:                   "InvalidParentObject",
	RespInvalidDevicePropFormat:               "InvalidDevicePropFormat",
	RespInvalidDevicePropValue:                "InvalidDevicePropValue",
	RespInvalidParameter:                      "InvalidParameter",
	RespSessionAlreadyOpen:                    "SessionAlreadyOpen",
	RespTransactionCancelled:                  "TransactionCancelled",
	RespSpecificationOfDestinationUnsupported: "SpecificationOfDestinationUnsupported",
}

func (sf StandardResponse) String() string {
	if name, ok := standardResponseNames[sf]; ok {
		return name
	}
	return fmt.Sprintf("Response(0x%04x)", uint16(sf))
}

// Response is a response code classified into the standard or "other"
// (non-standard) sub-range. Unlike the operation and event codes, no
// vendor or reserved nibble test is applied: a most-significant-nibble 0xC
// code classifies as other, the same as any non-standard code.
type Response struct {
	kind  codeKind
	std   StandardResponse
	other uint16
}

// ResponseStandard wraps a standard response code.
func ResponseStandard(std StandardResponse) Response {
	return Response{kind: kindStandard, std: std}
}

// ResponseOther wraps a non-standard response code.
func ResponseOther(n uint16) Response {
	return Response{kind: kindReserved, other: n}
}

// ResponseFromU16 classifies a wire response code.
func ResponseFromU16(n uint16) Response {
	if _, ok := standardResponseNames[StandardResponse(n)]; ok {
		return ResponseStandard(StandardResponse(n))
	}
	return ResponseOther(n)
}

// ToU16 recovers the original wire value.
func (sf Response) ToU16() uint16 {
	if sf.kind == kindStandard {
		return uint16(sf.std)
	}
	return sf.other
}

// IsOk reports whether the response is the standard Ok code (0x2001).
func (sf Response) IsOk() bool {
	return sf.kind == kindStandard && sf.std == RespOk
}

// Standard returns the standard response and true if this code is standard.
func (sf Response) Standard() (StandardResponse, bool) {
	return sf.std, sf.kind == kindStandard
}

// LowerHex formats the wire value the way fmt's %x verb would.
func (sf Response) LowerHex() string {
	return fmt.Sprintf("%x", sf.ToU16())
}

func (sf Response) String() string {
	if sf.kind == kindStandard {
		return sf.std.String()
	}
	return fmt.Sprintf("Other(0x%04x)", sf.other)
}
