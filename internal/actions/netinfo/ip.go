// Package netinfo holds the spaceworld ip leaf action.
package netinfo

import (
	"net"

	"github.com/spaceworld/console/internal/dispatchers"
	"github.com/spaceworld/console/internal/domain"
	"github.com/spaceworld/console/internal/usage"
)

type Deps struct {
	InterfaceAddrs func() ([]net.Addr, error)
}

func DefaultDeps() Deps {
	return Deps{
		InterfaceAddrs: net.InterfaceAddrs,
	}
}

// ListIPs prints every IPv4 and IPv6 address of every interface, one per line.
func ListIPs(call dispatchers.Call) error {
	return listIPs(call, DefaultDeps())
}

func listIPs(call dispatchers.Call, deps Deps) error {
	if err := call.ExpectNoArgs(); err != nil {
		return err
	}
	addrs, err := deps.InterfaceAddrs()
	if err != nil {
		return usage.ActionFailed(err)
	}

	found := 0
	for _, addr := range addrs {
		ip := addressIP(addr)
		if ip == nil {
			continue
		}
		call.Out.Append(ip.String(), domain.ToneSuccess)
		found++
	}

	if found == 0 {
		call.Out.Append("No network addresses found.", domain.ToneMuted)
	}
	return nil
}

func addressIP(addr net.Addr) net.IP {
	switch a := addr.(type) {
	case *net.IPNet:
		return a.IP
	case *net.IPAddr:
		return a.IP
	default:
		return nil
	}
}
