// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptp

import "github.com/cuair/go-ptp/ptpcode"

// ObjectInfo describes a stored object: its storage, format, size,
// thumbnail and image geometry, parentage, and identifying strings.
// Returned by GetObjectInfo and supplied to SendObjectInfo.
type ObjectInfo struct {
	StorageID            StorageId
	ObjectFormat         ptpcode.ObjectFormatCode
	ProtectionStatus     uint16
	ObjectCompressedSize uint32
	ThumbFormat          uint16
	ThumbCompressedSize  uint32
	ThumbPixWidth        uint32
	ThumbPixHeight       uint32
	ImagePixWidth        uint32
	ImagePixHeight       uint32
	ImageBitDepth        uint32
	ParentObject         ObjectHandle
	AssociationType      ptpcode.AssociationCode
	AssociationDesc      uint32
	SequenceNumber       uint32
	Filename             string
	CaptureDate          string
	ModificationDate     string
	Keywords             string
}

// DecodeObjectInfo decodes an ObjectInfo from a GetObjectInfo data
// payload. An ObjectFormat or AssociationType field that fails
// classification is a wire error, not silently accepted.
func DecodeObjectInfo(buf []byte) (ObjectInfo, error) {
	return decodeObjectInfoFromReader(NewReader(buf))
}

func decodeObjectInfoFromReader(r *Reader) (ObjectInfo, error) {
	var oi ObjectInfo
	var err error
	var storageID, parent uint32
	var objectFormat, assocType uint16

	if storageID, err = r.U32(); err != nil {
		return ObjectInfo{}, err
	}
	if objectFormat, err = r.U16(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.ProtectionStatus, err = r.U16(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.ObjectCompressedSize, err = r.U32(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.ThumbFormat, err = r.U16(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.ThumbCompressedSize, err = r.U32(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.ThumbPixWidth, err = r.U32(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.ThumbPixHeight, err = r.U32(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.ImagePixWidth, err = r.U32(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.ImagePixHeight, err = r.U32(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.ImageBitDepth, err = r.U32(); err != nil {
		return ObjectInfo{}, err
	}
	if parent, err = r.U32(); err != nil {
		return ObjectInfo{}, err
	}
	if assocType, err = r.U16(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.AssociationDesc, err = r.U32(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.SequenceNumber, err = r.U32(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.Filename, err = r.String(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.CaptureDate, err = r.String(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.ModificationDate, err = r.String(); err != nil {
		return ObjectInfo{}, err
	}
	if oi.Keywords, err = r.String(); err != nil {
		return ObjectInfo{}, err
	}

	format, ok := ptpcode.ObjectFormatRecognized(objectFormat)
	if !ok {
		return ObjectInfo{}, ErrBadObjectFormat
	}
	oi.ObjectFormat = format
	assoc := ptpcode.AssociationFromU16(assocType)
	if assoc.IsReserved() && assocType>>12 != 0x3 {
		return ObjectInfo{}, ErrBadAssociationCode
	}
	oi.AssociationType = assoc
	oi.StorageID = StorageId(storageID)
	oi.ParentObject = ObjectHandle(parent)
	return oi, nil
}

// Encode serializes the ObjectInfo in PTP wire order, as required to
// build the data phase of SendObjectInfo.
func (sf ObjectInfo) Encode() []byte {
	w := NewWriter()
	w.U32(uint32(sf.StorageID))
	w.U16(sf.ObjectFormat.ToU16())
	w.U16(sf.ProtectionStatus)
	w.U32(sf.ObjectCompressedSize)
	w.U16(sf.ThumbFormat)
	w.U32(sf.ThumbCompressedSize)
	w.U32(sf.ThumbPixWidth)
	w.U32(sf.ThumbPixHeight)
	w.U32(sf.ImagePixWidth)
	w.U32(sf.ImagePixHeight)
	w.U32(sf.ImageBitDepth)
	w.U32(uint32(sf.ParentObject))
	w.U16(sf.AssociationType.ToU16())
	w.U32(sf.AssociationDesc)
	w.U32(sf.SequenceNumber)
	w.String(sf.Filename)
	w.String(sf.CaptureDate)
	w.String(sf.ModificationDate)
	w.String(sf.Keywords)
	return w.Bytes()
}
