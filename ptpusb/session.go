// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptpusb

import (
	"time"

	"github.com/cuair/go-ptp/ptp"
	"github.com/cuair/go-ptp/ptpcode"
)

// Session is a thin, typed façade over Engine.Command: one open PTP
// session against a responder. The USB interface is claimed by the
// Transport on construction and released on Disconnect.
type Session struct {
	engine  *Engine
	timeout time.Duration
}

// NewSession wraps transport in an Engine and returns a Session that
// applies timeout to every phase of every operation.
func NewSession(transport Transport, cfg Config, timeout time.Duration) *Session {
	return &Session{engine: NewEngine(transport, cfg), timeout: timeout}
}

// SetLogMode enables or disables the underlying Engine's log output.
func (sf *Session) SetLogMode(enable bool) { sf.engine.SetLogMode(enable) }

func (sf *Session) command(code ptpcode.StandardOperation, params []uint32, data []byte) ([]byte, error) {
	return sf.engine.Command(ptpcode.OperationStandard(code), params, data, sf.timeout)
}

// GetDeviceInfo returns the responder's capability descriptor.
func (sf *Session) GetDeviceInfo() (ptp.DeviceInfo, error) {
	data, err := sf.command(ptpcode.GetDeviceInfo, []uint32{0, 0, 0}, nil)
	if err != nil {
		return ptp.DeviceInfo{}, err
	}
	return ptp.DecodeDeviceInfo(data)
}

// OpenSession opens a PTP session carrying sessionID.
func (sf *Session) OpenSession(sessionID uint32) error {
	_, err := sf.command(ptpcode.OpenSession, []uint32{sessionID, 0, 0}, nil)
	return err
}

// CloseSession closes the currently open PTP session.
func (sf *Session) CloseSession() error {
	_, err := sf.command(ptpcode.CloseSession, nil, nil)
	return err
}

// GetStorageIDs returns the identifiers of every storage on the responder.
func (sf *Session) GetStorageIDs() ([]ptp.StorageId, error) {
	data, err := sf.command(ptpcode.GetStorageIDs, nil, nil)
	if err != nil {
		return nil, err
	}
	r := ptp.NewReader(data)
	raw, err := r.ReadU32Vector()
	if err != nil {
		return nil, err
	}
	if err := r.ExpectEnd(); err != nil {
		return nil, err
	}
	out := make([]ptp.StorageId, len(raw))
	for i, v := range raw {
		out[i] = ptp.StorageId(v)
	}
	return out, nil
}

// GetStorageInfo returns the descriptor for one storage.
func (sf *Session) GetStorageInfo(storageID ptp.StorageId) (ptp.StorageInfo, error) {
	data, err := sf.command(ptpcode.GetStorageInfo, []uint32{uint32(storageID)}, nil)
	if err != nil {
		return ptp.StorageInfo{}, err
	}
	r := ptp.NewReader(data)
	si, err := ptp.DecodeStorageInfo(r)
	if err != nil {
		return ptp.StorageInfo{}, err
	}
	if err := r.ExpectEnd(); err != nil {
		return ptp.StorageInfo{}, err
	}
	return si, nil
}

// GetNumObjects returns the object count under parent (ObjectHandleRoot
// for the storage's root) in storageID, optionally filtered by format.
func (sf *Session) GetNumObjects(storageID ptp.StorageId, format uint32, parent ptp.ObjectHandle) (uint32, error) {
	data, err := sf.command(ptpcode.GetNumObjects, []uint32{uint32(storageID), format, uint32(parent)}, nil)
	if err != nil {
		return 0, err
	}
	r := ptp.NewReader(data)
	n, err := r.U32()
	if err != nil {
		return 0, err
	}
	if err := r.ExpectEnd(); err != nil {
		return 0, err
	}
	return n, nil
}

// GetObjectHandles returns the object handles under parent in storageID,
// optionally filtered by format.
func (sf *Session) GetObjectHandles(storageID ptp.StorageId, format uint32, parent ptp.ObjectHandle) ([]ptp.ObjectHandle, error) {
	data, err := sf.command(ptpcode.GetObjectHandles, []uint32{uint32(storageID), format, uint32(parent)}, nil)
	if err != nil {
		return nil, err
	}
	r := ptp.NewReader(data)
	raw, err := r.ReadU32Vector()
	if err != nil {
		return nil, err
	}
	if err := r.ExpectEnd(); err != nil {
		return nil, err
	}
	out := make([]ptp.ObjectHandle, len(raw))
	for i, v := range raw {
		out[i] = ptp.ObjectHandle(v)
	}
	return out, nil
}

// GetObjectInfo returns the descriptor of the object named by handle.
func (sf *Session) GetObjectInfo(handle ptp.ObjectHandle) (ptp.ObjectInfo, error) {
	data, err := sf.command(ptpcode.GetObjectInfo, []uint32{uint32(handle)}, nil)
	if err != nil {
		return ptp.ObjectInfo{}, err
	}
	return ptp.DecodeObjectInfo(data)
}

// GetObject returns the full contents of the object named by handle.
func (sf *Session) GetObject(handle ptp.ObjectHandle) ([]byte, error) {
	return sf.command(ptpcode.GetObject, []uint32{uint32(handle)}, nil)
}

// GetPartialObject returns up to length bytes of the object named by
// handle, starting at offset.
func (sf *Session) GetPartialObject(handle ptp.ObjectHandle, offset, length uint32) ([]byte, error) {
	return sf.command(ptpcode.GetPartialObject, []uint32{uint32(handle), offset, length}, nil)
}

// SendObjectInfo uploads an ObjectInfo descriptor for a forthcoming
// SendObject under parent in storageID, returning the handle the
// responder assigned.
func (sf *Session) SendObjectInfo(storageID ptp.StorageId, parent ptp.ObjectHandle, info ptp.ObjectInfo) (ptp.ObjectHandle, error) {
	respData, err := sf.command(ptpcode.SendObjectInfo, []uint32{uint32(storageID), uint32(parent)}, info.Encode())
	if err != nil {
		return 0, err
	}
	r := ptp.NewReader(respData)
	_, err = r.U32() // responder-chosen storage id, unused
	if err != nil {
		return 0, err
	}
	_, err = r.U32() // responder-chosen parent handle, unused
	if err != nil {
		return 0, err
	}
	handle, err := r.U32()
	if err != nil {
		return 0, err
	}
	return ptp.ObjectHandle(handle), nil
}

// SendObject uploads object bytes immediately following a successful
// SendObjectInfo.
func (sf *Session) SendObject(object []byte) error {
	_, err := sf.command(ptpcode.SendObject, nil, object)
	return err
}

// DeleteObject deletes the object named by handle, optionally
// restricted to objects of the given format (0 means unrestricted).
func (sf *Session) DeleteObject(handle ptp.ObjectHandle, format uint32) error {
	_, err := sf.command(ptpcode.DeleteObject, []uint32{uint32(handle), format}, nil)
	return err
}

// FormatStore reformats the storage named by storageID, erasing all
// objects on it.
func (sf *Session) FormatStore(storageID ptp.StorageId) error {
	_, err := sf.command(ptpcode.FormatStore, []uint32{uint32(storageID)}, nil)
	return err
}

// InitiateCapture triggers a capture on storageID (StorageIdAll for
// responder's choice) in the given format (0 for responder's default).
func (sf *Session) InitiateCapture(storageID ptp.StorageId, format uint32) error {
	_, err := sf.command(ptpcode.InitiateCapture, []uint32{uint32(storageID), format}, nil)
	return err
}

// GetDevicePropDesc returns the descriptor of the device property named
// by propCode.
func (sf *Session) GetDevicePropDesc(propCode uint16) (ptp.PropInfo, error) {
	data, err := sf.command(ptpcode.GetDevicePropDesc, []uint32{uint32(propCode)}, nil)
	if err != nil {
		return ptp.PropInfo{}, err
	}
	r := ptp.NewReader(data)
	pi, err := ptp.DecodePropInfo(r)
	if err != nil {
		return ptp.PropInfo{}, err
	}
	if err := r.ExpectEnd(); err != nil {
		return ptp.PropInfo{}, err
	}
	return pi, nil
}

// SetDevicePropValue sets the device property named by propCode to value.
func (sf *Session) SetDevicePropValue(propCode uint16, value ptp.Data) error {
	_, err := sf.command(ptpcode.SetDevicePropValue, []uint32{uint32(propCode)}, value.Encode())
	return err
}

// Event polls for one asynchronous notification, independent of any
// in-flight command.
func (sf *Session) Event(timeout time.Duration) (Event, bool, error) {
	return sf.engine.Event(timeout)
}

// Disconnect closes the PTP session and releases the USB interface. The
// interface is released even when CloseSession fails; that failure is
// then the error returned.
func (sf *Session) Disconnect() error {
	closeErr := sf.CloseSession()
	releaseErr := sf.engine.transport.ReleaseInterface()
	if closeErr != nil {
		return closeErr
	}
	return releaseErr
}
