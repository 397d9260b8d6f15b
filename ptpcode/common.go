// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptpcode

// codeKind discriminates the standard/vendor/reserved partition shared by
// every code domain in this package. The raw wire value is never stored
// for the standard case; it is always derived from the named constant, so
// that adding a standard constant can never silently disagree with the
// wire value carried by a Vendor/Reserved instance of the same type.
type codeKind uint8

const (
	kindStandard codeKind = iota
	kindVendor
	kindReserved
)

// msn returns the most-significant nibble of a 16-bit code.
func msn(n uint16) uint16 {
	return (n & 0xF000) >> 12
}
