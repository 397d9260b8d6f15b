// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptp

// FormKind discriminates the trailer of a PropInfo record.
type FormKind uint8

const (
	FormNone FormKind = iota
	FormRange
	FormEnumeration
)

// FormData is the trailer of a PropInfo record: either absent, a
// Range{min,max,step}, or an Enumeration of candidate values.
type FormData struct {
	Kind     FormKind
	Min      Data
	Max      Data
	Step     Data
	Elements []Data
}

// PropInfo describes one device property: its data type, read/write and
// enable flags, default and current values, and an optional constraint
// form. Returned by GetDevicePropDesc.
type PropInfo struct {
	PropertyCode uint16
	DataType     uint16
	GetSet       uint8
	IsEnable     uint8
	Factory      Data
	Current      Data
	Form         FormData
}

// DecodePropInfo decodes a PropInfo from the reader positioned at its
// first field. The data-type tag is read once and reused to decode the
// factory-default value, the current value, and (if present) the Range or
// Enumeration form values, since PTP never repeats it per value.
func DecodePropInfo(r *Reader) (PropInfo, error) {
	var pi PropInfo
	var err error

	if pi.PropertyCode, err = r.U16(); err != nil {
		return PropInfo{}, err
	}
	if pi.DataType, err = r.U16(); err != nil {
		return PropInfo{}, err
	}
	if pi.GetSet, err = r.U8(); err != nil {
		return PropInfo{}, err
	}
	if pi.IsEnable, err = r.U8(); err != nil {
		return PropInfo{}, err
	}
	if pi.Factory, err = ReadData(pi.DataType, r); err != nil {
		return PropInfo{}, err
	}
	if pi.Current, err = ReadData(pi.DataType, r); err != nil {
		return PropInfo{}, err
	}

	formIndicator, err := r.U8()
	if err != nil {
		return PropInfo{}, err
	}
	switch formIndicator {
	case 0x01:
		pi.Form.Kind = FormRange
		if pi.Form.Min, err = ReadData(pi.DataType, r); err != nil {
			return PropInfo{}, err
		}
		if pi.Form.Max, err = ReadData(pi.DataType, r); err != nil {
			return PropInfo{}, err
		}
		if pi.Form.Step, err = ReadData(pi.DataType, r); err != nil {
			return PropInfo{}, err
		}
	case 0x02:
		pi.Form.Kind = FormEnumeration
		count, err := r.U16()
		if err != nil {
			return PropInfo{}, err
		}
		pi.Form.Elements = make([]Data, 0, count)
		for i := uint16(0); i < count; i++ {
			v, err := ReadData(pi.DataType, r)
			if err != nil {
				return PropInfo{}, err
			}
			pi.Form.Elements = append(pi.Form.Elements, v)
		}
	default:
		pi.Form.Kind = FormNone
	}

	return pi, nil
}
