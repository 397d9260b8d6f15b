// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package ptpcode defines the dense code-space enumerations used by the
// Picture Transfer Protocol: operation, response, event, object-format,
// association, storage-type, filesystem-type and access-capability codes.
//
// Every code domain except responses partitions the 16-bit wire space into
// a Standard sub-range backed by named constants, a Vendor sub-range, and a
// Reserved sub-range. Response codes are split only into Standard and
// Other; vendor response codes are not told apart from other non-standard
// ones. FromU16 classifies a wire value into one of these; ToU16
// recovers the original wire value, so FromU16/ToU16 round-trip for every
// value in [0, 0xFFFF] that FromU16 accepts.
package ptpcode
