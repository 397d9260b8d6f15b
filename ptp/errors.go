// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptp

import (
	"errors"
	"fmt"
)

// ErrMalformed reports wire bytes inconsistent with the codec: a bad
// container length, an unrecognized container kind, a mismatched
// transaction id, invalid UTF-16, or trailing bytes after a decode.
type ErrMalformed struct {
	Msg string
}

func (e *ErrMalformed) Error() string { return "ptp: malformed: " + e.Msg }

// Malformed builds an ErrMalformed with a formatted message.
func Malformed(format string, args ...interface{}) error {
	return &ErrMalformed{Msg: fmt.Sprintf(format, args...)}
}

// ErrBadObjectFormat reports an ObjectFormatCode field that failed
// classification while decoding a descriptor.
var ErrBadObjectFormat = errors.New("ptp: bad object format code")

// ErrBadAssociationCode reports an AssociationCode field that failed
// classification while decoding a descriptor.
var ErrBadAssociationCode = errors.New("ptp: bad association code")

// IsMalformed reports whether err is (or wraps) an ErrMalformed.
func IsMalformed(err error) bool {
	var m *ErrMalformed
	return errors.As(err, &m)
}
