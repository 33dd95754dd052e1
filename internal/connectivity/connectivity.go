package connectivity

import (
	"context"
	"net"
)

// Iface is the part of a network interface the availability check looks at.
type Iface struct {
	Name  string
	Flags net.Flags
	Addrs []net.Addr
}

// Interfaces reports the network as available when the machine has a
// non-loopback interface that is up and carries a unicast address. It says
// nothing about whether the feed host answers; that failure belongs to the fetch.
type Interfaces struct {
	// List defaults to the host's interfaces.
	List func() ([]Iface, error)
}

func NewInterfaces() *Interfaces {
	return &Interfaces{List: hostInterfaces}
}

func (i *Interfaces) IsNetworkAvailable(context.Context) bool {
	list := i.List
	if list == nil {
		list = hostInterfaces
	}
	ifaces, err := list()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if usable(iface) {
			return true
		}
	}
	return false
}

func usable(iface Iface) bool {
	if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
		return false
	}
	for _, addr := range iface.Addrs {
		var ip net.IP
		switch a := addr.(type) {
		case *net.IPNet:
			ip = a.IP
		case *net.IPAddr:
			ip = a.IP
		}
		if ip != nil && !ip.IsLoopback() && (ip.IsGlobalUnicast() || ip.IsLinkLocalUnicast()) {
			return true
		}
	}
	return false
}

func hostInterfaces() ([]Iface, error) {
	netIfaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	ifaces := make([]Iface, 0, len(netIfaces))
	for _, ni := range netIfaces {
		addrs, err := ni.Addrs()
		if err != nil {
			continue
		}
		ifaces = append(ifaces, Iface{Name: ni.Name, Flags: ni.Flags, Addrs: addrs})
	}
	return ifaces, nil
}

// Static always answers the same; used for forced offline mode and mock runs.
type Static bool

func (s Static) IsNetworkAvailable(context.Context) bool { return bool(s) }
