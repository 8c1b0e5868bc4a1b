// File: transport/resolve.go
//
// host:port resolution for the listener. The candidate list is scanned in
// order and the first IPv4 address wins; other families are skipped.

package transport

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"

	"github.com/scratchnet/httpd/api"
)

// ResolveIPv4 resolves a host:port string to the first IPv4 candidate.
func ResolveIPv4(addr string) (netip.AddrPort, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("resolve %q: %w", addr, err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("resolve %q: %w", addr, err)
	}
	ips, err := net.LookupIP(host)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("resolve %q: %w", addr, err)
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return netip.AddrPortFrom(netip.AddrFrom4([4]byte(v4)), uint16(port)), nil
		}
	}
	return netip.AddrPort{}, api.ErrNoIPv4Addr
}
