// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptp

import "fmt"

// ObjectHandle is a transparent 32-bit identifier of a stored object on
// the responder.
type ObjectHandle uint32

// ObjectHandleRoot returns the handle that represents the root of a
// storage's object tree.
func ObjectHandleRoot() ObjectHandle { return ObjectHandle(0xFFFFFFFF) }

func (h ObjectHandle) String() string { return fmt.Sprintf("0x%08x", uint32(h)) }

// StorageId is a transparent 32-bit identifier of a logical storage.
type StorageId uint32

// StorageIdAll returns the sentinel meaning "all storages".
func StorageIdAll() StorageId { return StorageId(0xFFFFFFFF) }

func (s StorageId) String() string { return fmt.Sprintf("0x%08x", uint32(s)) }
