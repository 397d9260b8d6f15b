// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptpusb

import (
	"errors"
	"fmt"

	"github.com/cuair/go-ptp/ptpcode"
)

// ErrResponse reports that the responder returned a non-Ok response code
// to a command transaction. The session may continue; this is caller-level.
type ErrResponse struct {
	Code ptpcode.Response
}

func (e *ErrResponse) Error() string {
	return fmt.Sprintf("ptpusb: responder returned %s", e.Code)
}

// ErrBadEventCode reports an event code outside the standard, vendor, and
// reserved partitions. The event is dropped; the channel remains usable.
var ErrBadEventCode = errors.New("ptpusb: event code outside recognized code space")

// ErrNoEventPayload reports an event container with a zero-length
// payload; the protocol requires at least a status-code payload.
var ErrNoEventPayload = errors.New("ptpusb: event container carried no payload")

// ErrTimeout wraps a transport timeout observed during a command phase.
// Unlike a timeout in Event, a timeout here leaves the session in an
// indeterminate state; the caller should reset the device before reuse.
type ErrTimeout struct {
	Phase string
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("ptpusb: timeout during %s phase", e.Phase)
}

// IsTimeout reports whether err is (or wraps) an ErrTimeout.
func IsTimeout(err error) bool {
	var t *ErrTimeout
	return errors.As(err, &t)
}

// IsResponse reports whether err is (or wraps) an ErrResponse, and
// returns its code.
func IsResponse(err error) (ptpcode.Response, bool) {
	var r *ErrResponse
	if errors.As(err, &r) {
		return r.Code, true
	}
	return ptpcode.Response{}, false
}
