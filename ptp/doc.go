// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package ptp implements the Picture Transfer Protocol wire codec: the
// Reader/Writer primitives, the tagged Data value, the container header,
// and the DeviceInfo/ObjectInfo/StorageInfo/PropInfo descriptor records.
// It has no dependency on any particular USB transport; see ptpusb for
// the transaction engine that drives these types across real endpoints.
package ptp
