package license

import (
	"fmt"
	"net"
	"runtime"
)

// Fingerprinter identifies the machine a license is bound to.
type Fingerprinter interface {
	Fingerprint() (string, error)
}

// NetFingerprinter uses the hardware address of a network interface.
type NetFingerprinter struct {
	interfaces func() ([]net.Interface, error)
	preferred  string
}

func NewNetFingerprinter() *NetFingerprinter {
	return &NetFingerprinter{
		interfaces: net.Interfaces,
		preferred:  preferredInterface(runtime.GOOS),
	}
}

func preferredInterface(goos string) string {
	switch goos {
	case "darwin":
		return "en0"
	case "linux":
		return "eth0"
	default:
		return ""
	}
}

func (f *NetFingerprinter) Fingerprint() (string, error) {
	ifaces, err := f.interfaces()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFingerprint, err)
	}
	return pickHardwareAddr(ifaces, f.preferred)
}

// pickHardwareAddr returns the preferred interface's address if it has one,
// else the first non-loopback interface that does.
func pickHardwareAddr(ifaces []net.Interface, preferred string) (string, error) {
	var fallback string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) == 0 {
			continue
		}
		if iface.Name == preferred {
			return iface.HardwareAddr.String(), nil
		}
		if fallback == "" {
			fallback = iface.HardwareAddr.String()
		}
	}
	if fallback == "" {
		return "", ErrFingerprint
	}
	return fallback, nil
}
