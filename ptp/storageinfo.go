// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptp

import "github.com/cuair/go-ptp/ptpcode"

// StorageInfo describes one logical storage on the responder, returned by
// GetStorageInfo.
type StorageInfo struct {
	StorageType        ptpcode.StorageType
	FilesystemType     ptpcode.FilesystemType
	AccessCapability   ptpcode.AccessCapability
	MaxCapacity        uint64
	FreeSpaceInBytes   uint64
	FreeSpaceInImages  uint32
	StorageDescription string
	VolumeLabel        string
}

// DecodeStorageInfo decodes a StorageInfo from the reader positioned at
// its first field.
func DecodeStorageInfo(r *Reader) (StorageInfo, error) {
	var si StorageInfo
	var err error
	var storageType, fsType, access uint16

	if storageType, err = r.U16(); err != nil {
		return StorageInfo{}, err
	}
	if fsType, err = r.U16(); err != nil {
		return StorageInfo{}, err
	}
	if access, err = r.U16(); err != nil {
		return StorageInfo{}, err
	}
	if si.MaxCapacity, err = r.U64(); err != nil {
		return StorageInfo{}, err
	}
	if si.FreeSpaceInBytes, err = r.U64(); err != nil {
		return StorageInfo{}, err
	}
	if si.FreeSpaceInImages, err = r.U32(); err != nil {
		return StorageInfo{}, err
	}
	if si.StorageDescription, err = r.String(); err != nil {
		return StorageInfo{}, err
	}
	if si.VolumeLabel, err = r.String(); err != nil {
		return StorageInfo{}, err
	}

	si.StorageType = ptpcode.StorageTypeFromU16(storageType)
	si.FilesystemType = ptpcode.FilesystemTypeFromU16(fsType)
	si.AccessCapability = ptpcode.AccessCapabilityFromU16(access)
	return si, nil
}
