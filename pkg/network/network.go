// SPDX-License-Identifier: GPL-3.0-or-later

// Package network resolves the local interface details a scan needs:
// interface index, our own IPv4 and hardware address, and the first
// and last host of the attached segment.
package network

import (
	"net"
)

// UserNetwork data structure for implementing the Network interface
type UserNetwork struct {
	gateway   net.IP
	userIP    net.IP
	ipnet     *net.IPNet
	iface     *net.Interface
	cidr      string
	firstHost net.IP
	lastHost  net.IP
}

// NewDefaultNetwork returns a UserNetwork for the interface carrying
// the default route
func NewDefaultNetwork() (*UserNetwork, error) {
	info, err := getDefaultNetworkInfo()

	if err != nil {
		return nil, err
	}

	return fromInfo(info), nil
}

// NewNetworkFromInterfaceName returns a UserNetwork instance from the
// provided interface name
func NewNetworkFromInterfaceName(interfaceName string) (*UserNetwork, error) {
	info, err := getNetworkInfoFromInterfaceName(interfaceName)

	if err != nil {
		return nil, err
	}

	return fromInfo(info), nil
}

func fromInfo(info *networkInfo) *UserNetwork {
	return &UserNetwork{
		gateway:   info.gateway,
		userIP:    info.userIP,
		ipnet:     info.ipnet,
		iface:     info.iface,
		cidr:      info.cidr,
		firstHost: info.firstHost,
		lastHost:  info.lastHost,
	}
}

// Gateway returns the default network gateway for this host
func (n *UserNetwork) Gateway() net.IP {
	return n.gateway
}

// UserIP returns the IPv4 address assigned to this network's interface
func (n *UserNetwork) UserIP() net.IP {
	return n.userIP
}

// IPNet returns the *net.IPNet associated with this network's interface
func (n *UserNetwork) IPNet() *net.IPNet {
	return n.ipnet
}

// Interface returns this network's interface
func (n *UserNetwork) Interface() *net.Interface {
	return n.iface
}

// Cidr returns the cidr block associated with this network's interface
func (n *UserNetwork) Cidr() string {
	return n.cidr
}

// FirstHost returns the first usable host address of the segment
func (n *UserNetwork) FirstHost() net.IP {
	return n.firstHost
}

// LastHost returns the segment's broadcast address
func (n *UserNetwork) LastHost() net.IP {
	return n.lastHost
}
