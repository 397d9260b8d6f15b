// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package ptpusb drives the PTP-over-USB transaction engine: container
// framing over a Transport's bulk endpoints, chunked I/O with
// zero-length-packet handling, interrupt-endpoint event polling, and a
// typed Session façade layered on top.
package ptpusb
