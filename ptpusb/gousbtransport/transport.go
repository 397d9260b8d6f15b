// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package gousbtransport implements ptpusb.Transport against a real USB
// responder using google/gousb (libusb bindings): it discovers the
// first still-image-class (0x06) interface on a device, claims its
// first alternate setting, and resolves the bulk-in, bulk-out, and
// interrupt-in endpoints the engine needs.
package gousbtransport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"

	"github.com/cuair/go-ptp/ptpusb"
)

// Transport is a ptpusb.Transport backed by one claimed gousb interface.
type Transport struct {
	ctx    *gousb.Context
	device *gousb.Device
	config *gousb.Config
	intf   *gousb.Interface

	epIn  *gousb.InEndpoint
	epOut *gousb.OutEndpoint
	epInt *gousb.InEndpoint
}

// Open finds the first connected device exposing a still-image-class
// (0x06) interface, claims its first alternate setting, and resolves
// its bulk-in, bulk-out, and interrupt-in endpoints.
func Open() (*Transport, error) {
	ctx := gousb.NewContext()

	devices, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return hasStillImageInterface(desc)
	})
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("ptpusb/gousbtransport: enumerate devices: %w", err)
	}
	if len(devices) == 0 {
		ctx.Close()
		return nil, errors.New("ptpusb/gousbtransport: no still-image-class USB device found")
	}
	// Close every candidate but the first; OpenDevices already opened them all.
	for _, d := range devices[1:] {
		d.Close()
	}
	device := devices[0]

	if err := device.SetAutoDetach(true); err != nil {
		device.Close()
		ctx.Close()
		return nil, fmt.Errorf("ptpusb/gousbtransport: set auto-detach: %w", err)
	}

	cfgNum, ifaceNum, altNum, err := findStillImageInterface(device.Desc)
	if err != nil {
		device.Close()
		ctx.Close()
		return nil, err
	}

	config, err := device.Config(cfgNum)
	if err != nil {
		device.Close()
		ctx.Close()
		return nil, fmt.Errorf("ptpusb/gousbtransport: set config %d: %w", cfgNum, err)
	}

	intf, err := config.Interface(ifaceNum, altNum)
	if err != nil {
		config.Close()
		device.Close()
		ctx.Close()
		return nil, fmt.Errorf("ptpusb/gousbtransport: claim interface %d: %w", ifaceNum, err)
	}

	epIn, epOut, epInt, err := resolveEndpoints(intf)
	if err != nil {
		intf.Close()
		config.Close()
		device.Close()
		ctx.Close()
		return nil, err
	}

	return &Transport{
		ctx:    ctx,
		device: device,
		config: config,
		intf:   intf,
		epIn:   epIn,
		epOut:  epOut,
		epInt:  epInt,
	}, nil
}

func hasStillImageInterface(desc *gousb.DeviceDesc) bool {
	for _, cfg := range desc.Configs {
		for _, iface := range cfg.Interfaces {
			for _, alt := range iface.AltSettings {
				if alt.Class == gousb.ClassImage || uint8(alt.Class) == ptpusb.StillImageClass {
					return true
				}
			}
		}
	}
	return false
}

func findStillImageInterface(desc *gousb.DeviceDesc) (cfgNum, ifaceNum, altNum int, err error) {
	for _, cfg := range desc.Configs {
		for _, iface := range cfg.Interfaces {
			for _, alt := range iface.AltSettings {
				if uint8(alt.Class) == ptpusb.StillImageClass {
					return cfg.Number, iface.Number, alt.Alternate, nil
				}
			}
		}
	}
	return 0, 0, 0, errors.New("ptpusb/gousbtransport: no still-image-class (0x06) interface descriptor")
}

func resolveEndpoints(intf *gousb.Interface) (*gousb.InEndpoint, *gousb.OutEndpoint, *gousb.InEndpoint, error) {
	var inAddr, outAddr, intAddr gousb.EndpointAddress
	var haveIn, haveOut, haveInt bool

	for _, ep := range intf.Setting.Endpoints {
		switch {
		case ep.TransferType == gousb.TransferTypeBulk && ep.Direction == gousb.EndpointDirectionIn:
			inAddr, haveIn = ep.Address, true
		case ep.TransferType == gousb.TransferTypeBulk && ep.Direction == gousb.EndpointDirectionOut:
			outAddr, haveOut = ep.Address, true
		case ep.TransferType == gousb.TransferTypeInterrupt && ep.Direction == gousb.EndpointDirectionIn:
			intAddr, haveInt = ep.Address, true
		}
	}
	if !haveIn || !haveOut || !haveInt {
		return nil, nil, nil, errors.New("ptpusb/gousbtransport: interface is missing a required bulk-in/bulk-out/interrupt-in endpoint")
	}

	epIn, err := intf.InEndpoint(int(inAddr))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("ptpusb/gousbtransport: open bulk-in endpoint: %w", err)
	}
	epOut, err := intf.OutEndpoint(int(outAddr))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("ptpusb/gousbtransport: open bulk-out endpoint: %w", err)
	}
	epInt, err := intf.InEndpoint(int(intAddr))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("ptpusb/gousbtransport: open interrupt-in endpoint: %w", err)
	}
	return epIn, epOut, epInt, nil
}

func withDeadline(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ptpusb.ErrTransportTimeout
	}
	return err
}

// ReadBulk reads from the bulk-in endpoint.
func (sf *Transport) ReadBulk(buf []byte, timeout time.Duration) (int, error) {
	ctx, cancel := withDeadline(timeout)
	defer cancel()
	n, err := sf.epIn.ReadContext(ctx, buf)
	return n, translateErr(err)
}

// WriteBulk writes to the bulk-out endpoint.
func (sf *Transport) WriteBulk(buf []byte, timeout time.Duration) (int, error) {
	ctx, cancel := withDeadline(timeout)
	defer cancel()
	n, err := sf.epOut.WriteContext(ctx, buf)
	return n, translateErr(err)
}

// ReadInterrupt reads from the interrupt-in endpoint.
func (sf *Transport) ReadInterrupt(buf []byte, timeout time.Duration) (int, error) {
	ctx, cancel := withDeadline(timeout)
	defer cancel()
	n, err := sf.epInt.ReadContext(ctx, buf)
	return n, translateErr(err)
}

// Reset issues a USB port reset on the underlying device.
func (sf *Transport) Reset() error {
	return sf.device.Reset()
}

// ReleaseInterface releases the claimed interface and closes the
// underlying device and context.
func (sf *Transport) ReleaseInterface() error {
	sf.intf.Close()
	sf.config.Close()
	if err := sf.device.Close(); err != nil {
		sf.ctx.Close()
		return err
	}
	return sf.ctx.Close()
}

// MaxPacketSize returns the bulk-out endpoint's wMaxPacketSize.
func (sf *Transport) MaxPacketSize() int {
	return sf.epOut.Desc.MaxPacketSize
}

var _ ptpusb.Transport = (*Transport)(nil)
