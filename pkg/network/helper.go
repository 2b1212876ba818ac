// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"bytes"
	"errors"
	"fmt"
	"net"

	"github.com/jackpal/gateway"
)

// IncrementIP advances ip by one in place, carrying across octets
func IncrementIP(ip net.IP) {
	for j := len(ip) - 1; j >= 0; j-- {
		ip[j]++
		if ip[j] > 0 {
			break
		}
	}
}

// HostRange returns the first usable host address and the broadcast
// address of an IPv4 network. Networks too small to hold a usable
// host range (/31 and /32) are rejected.
func HostRange(ipnet *net.IPNet) (net.IP, net.IP, error) {
	base := ipnet.IP.Mask(ipnet.Mask).To4()

	if base == nil {
		return nil, nil, errors.New("not an IPv4 network")
	}

	mask := net.IP(ipnet.Mask).To4()

	if mask == nil {
		return nil, nil, errors.New("not an IPv4 mask")
	}

	broadcast := make(net.IP, len(base))

	for i := range base {
		broadcast[i] = base[i] | ^mask[i]
	}

	first := make(net.IP, len(base))
	copy(first, base)
	IncrementIP(first)

	if bytes.Compare(first, broadcast) >= 0 {
		return nil, nil, fmt.Errorf("network %s has no usable host range", ipnet)
	}

	return first, broadcast, nil
}

// private helpers
func getIPNetByIP(ip net.IP) (*net.Interface, *net.IPNet, error) {
	interfaces, err := net.Interfaces()

	if err != nil {
		return nil, nil, err
	}

	for _, iface := range interfaces {
		addrs, err := iface.Addrs()

		if err != nil {
			continue
		}

		for _, addr := range addrs {
			_, ipnet, err := net.ParseCIDR(addr.String())

			if err != nil {
				continue
			}

			if ipnet.Contains(ip) {
				return &iface, ipnet, nil
			}
		}
	}

	return nil, nil, errors.New("failed to find IPNet")
}

func getDefaultNetworkInfo() (*networkInfo, error) {
	gw, err := gateway.DiscoverGateway()

	if err != nil {
		return nil, err
	}

	// udp doesn't make a full connection and will find the default ip
	// that traffic will use if say 2 are configured (wired and wireless)
	conn, err := net.Dial("udp", gw.String()+":80")

	if err != nil {
		return nil, err
	}

	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	foundIP := net.ParseIP(localAddr.IP.String())

	iface, ipnet, err := getIPNetByIP(foundIP)

	if err != nil {
		return nil, err
	}

	return buildInfo(iface, foundIP, ipnet, gw)
}

func getNetworkInfoFromInterfaceName(interfaceName string) (*networkInfo, error) {
	gw, err := gateway.DiscoverGateway()

	if err != nil {
		return nil, err
	}

	iface, err := net.InterfaceByName(interfaceName)

	if err != nil {
		return nil, err
	}

	addrs, err := iface.Addrs()

	if err != nil {
		return nil, err
	}

	if len(addrs) == 0 {
		return nil, errors.New("invalid interface - no address associated with interface")
	}

	cidr := ""

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			cidr = ipnet.String()
		}
	}

	if cidr == "" {
		return nil, errors.New("invalid interface - no IPv4 address associated with interface")
	}

	userIP, ipnet, err := net.ParseCIDR(cidr)

	if err != nil {
		return nil, err
	}

	return buildInfo(iface, userIP, ipnet, gw)
}

func buildInfo(iface *net.Interface, userIP net.IP, ipnet *net.IPNet, gw net.IP) (*networkInfo, error) {
	first, last, err := HostRange(ipnet)

	if err != nil {
		return nil, err
	}

	size, _ := ipnet.Mask.Size()

	return &networkInfo{
		gateway:   gw,
		userIP:    userIP,
		ipnet:     ipnet,
		iface:     iface,
		cidr:      fmt.Sprintf("%s/%d", ipnet.IP.Mask(ipnet.Mask), size),
		firstHost: first,
		lastHost:  last,
	}, nil
}
