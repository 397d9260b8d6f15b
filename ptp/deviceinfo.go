// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptp

// DeviceInfo is the responder's capability descriptor, returned by
// GetDeviceInfo.
type DeviceInfo struct {
	Version               uint16
	VendorExID            uint32
	VendorExVersion       uint16
	VendorExtensionDesc   string
	FunctionalMode        uint16
	OperationsSupported   []uint16
	EventsSupported       []uint16
	DevicePropsSupported  []uint16
	CaptureFormats        []uint16
	ImageFormats          []uint16
	Manufacturer          string
	Model                 string
	DeviceVersion         string
	SerialNumber          string
}

// DecodeDeviceInfo decodes a DeviceInfo from a GetDeviceInfo data payload.
func DecodeDeviceInfo(buf []byte) (DeviceInfo, error) {
	r := NewReader(buf)
	var di DeviceInfo
	var err error

	if di.Version, err = r.U16(); err != nil {
		return DeviceInfo{}, err
	}
	if di.VendorExID, err = r.U32(); err != nil {
		return DeviceInfo{}, err
	}
	if di.VendorExVersion, err = r.U16(); err != nil {
		return DeviceInfo{}, err
	}
	if di.VendorExtensionDesc, err = r.String(); err != nil {
		return DeviceInfo{}, err
	}
	if di.FunctionalMode, err = r.U16(); err != nil {
		return DeviceInfo{}, err
	}
	if di.OperationsSupported, err = r.ReadU16Vector(); err != nil {
		return DeviceInfo{}, err
	}
	if di.EventsSupported, err = r.ReadU16Vector(); err != nil {
		return DeviceInfo{}, err
	}
	if di.DevicePropsSupported, err = r.ReadU16Vector(); err != nil {
		return DeviceInfo{}, err
	}
	if di.CaptureFormats, err = r.ReadU16Vector(); err != nil {
		return DeviceInfo{}, err
	}
	if di.ImageFormats, err = r.ReadU16Vector(); err != nil {
		return DeviceInfo{}, err
	}
	if di.Manufacturer, err = r.String(); err != nil {
		return DeviceInfo{}, err
	}
	if di.Model, err = r.String(); err != nil {
		return DeviceInfo{}, err
	}
	if di.DeviceVersion, err = r.String(); err != nil {
		return DeviceInfo{}, err
	}
	if di.SerialNumber, err = r.String(); err != nil {
		return DeviceInfo{}, err
	}
	return di, nil
}
