// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package ptplog provides the pluggable logging facade used throughout
// go-ptp: a small Provider interface callers may swap in, gated behind an
// atomic enable flag so that logging has near-zero cost when disabled.
package ptplog
