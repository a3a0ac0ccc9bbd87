package fastboot

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/gousb"
	log "github.com/sirupsen/logrus"
)

var (
	eNoDevice        = errors.New("no fastboot device found")
	eNoFastbootIface = errors.New("couldn't find fastboot interface with bulk IN and OUT endpoints")
	ErrPipeClosed    = errors.New("USB pipe closed")
)

const (
	VID_GOOGLE          gousb.ID = 0x18d1
	PID_GOOGLE_FASTBOOT gousb.ID = 0x4ee0

	// interface triple identifying the fastboot function of a device
	FASTBOOT_IFACE_CLASS    gousb.Class    = gousb.ClassVendorSpec
	FASTBOOT_IFACE_SUBCLASS gousb.Class    = 0x42
	FASTBOOT_IFACE_PROTOCOL gousb.Protocol = 0x03
)

// USBPipe is a Pipe over the bulk endpoints of a fastboot USB interface.
type USBPipe struct {
	UsbCtx *gousb.Context
	Dev    *gousb.Device
	Config *gousb.Config
	Iface  *gousb.Interface
	EpIn   *gousb.InEndpoint
	EpOut  *gousb.OutEndpoint
}

func (u *USBPipe) Read(buf []byte) (int, error) {
	if u.EpIn == nil {
		return 0, ErrPipeClosed
	}
	return u.EpIn.Read(buf)
}

func (u *USBPipe) Write(p []byte) (int, error) {
	if u.EpOut == nil {
		return 0, ErrPipeClosed
	}
	n, err := u.EpOut.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// Close releases interface, config, device and context, in that order.
// It is safe on a partially opened pipe.
func (u *USBPipe) Close() error {
	log.Debug("closing fastboot USB pipe")
	u.EpIn = nil
	u.EpOut = nil

	if u.Iface != nil {
		u.Iface.Close()
		u.Iface = nil
	}

	if u.Config != nil {
		u.Config.Close()
		u.Config = nil
	}

	var err error
	if u.Dev != nil {
		u.Dev.SetAutoDetach(false)
		err = u.Dev.Close()
		u.Dev = nil
	}

	if u.UsbCtx != nil {
		u.UsbCtx.Close()
		u.UsbCtx = nil
	}
	return err
}

func isFastbootSetting(s gousb.InterfaceSetting) bool {
	return s.Class == FASTBOOT_IFACE_CLASS && s.SubClass == FASTBOOT_IFACE_SUBCLASS && s.Protocol == FASTBOOT_IFACE_PROTOCOL
}

// bulkEndpoints returns the bulk IN and OUT endpoint numbers of a setting.
func bulkEndpoints(s gousb.InterfaceSetting) (in, out int, ok bool) {
	in, out = -1, -1
	for _, epDesc := range s.Endpoints {
		if epDesc.TransferType != gousb.TransferTypeBulk {
			continue
		}
		switch epDesc.Direction {
		case gousb.EndpointDirectionIn:
			if in < 0 {
				in = epDesc.Number
			}
		case gousb.EndpointDirectionOut:
			if out < 0 {
				out = epDesc.Number
			}
		}
	}
	return in, out, in >= 0 && out >= 0
}

// OpenUSBPipe opens the device with the given VID/PID and claims its
// fastboot interface.
func OpenUSBPipe(vid, pid gousb.ID) (*USBPipe, error) {
	res := &USBPipe{UsbCtx: gousb.NewContext()}
	if err := res.open(vid, pid); err != nil {
		res.Close()
		return nil, err
	}
	return res, nil
}

func (u *USBPipe) open(vid, pid gousb.ID) (err error) {
	u.Dev, err = u.UsbCtx.OpenDeviceWithVIDPID(vid, pid)
	if err != nil {
		return fmt.Errorf("can not open device %s:%s: %v", vid, pid, err)
	}
	if u.Dev == nil {
		return fmt.Errorf("%w with VID %s PID %s", eNoDevice, vid, pid)
	}
	log.WithFields(log.Fields{"vid": vid, "pid": pid}).Info("found device in fastboot mode")

	// detach a kernel driver bound to the interface, if any
	u.Dev.SetAutoDetach(true)

	u.Config, err = u.Dev.Config(1)
	if err != nil {
		return fmt.Errorf("couldn't retrieve config 1 of device: %v", err)
	}

	for _, ifaceDesc := range u.Config.Desc.Interfaces {
		for _, ifaceSettings := range ifaceDesc.AltSettings {
			if !isFastbootSetting(ifaceSettings) {
				continue
			}
			epIn, epOut, ok := bulkEndpoints(ifaceSettings)
			if !ok {
				continue
			}

			u.Iface, err = u.Config.Interface(ifaceSettings.Number, ifaceSettings.Alternate)
			if err != nil {
				return fmt.Errorf("couldn't access fastboot USB interface: %v", err)
			}
			log.Debugf("fastboot interface: %s", u.Iface)

			if u.EpIn, err = u.Iface.InEndpoint(epIn); err != nil {
				return fmt.Errorf("couldn't access fastboot IN endpoint: %v", err)
			}
			if u.EpOut, err = u.Iface.OutEndpoint(epOut); err != nil {
				return fmt.Errorf("couldn't access fastboot OUT endpoint: %v", err)
			}
			return nil
		}
	}

	return eNoFastbootIface
}

// OpenUSBDevice opens a fastboot session on the USB device with the given VID/PID.
func OpenUSBDevice(vid, pid gousb.ID) (*Device, error) {
	pipe, err := OpenUSBPipe(vid, pid)
	if err != nil {
		return nil, err
	}
	return NewDevice(pipe), nil
}
