// SPDX-License-Identifier: GPL-3.0-or-later

package network

import "net"

//go:generate mockgen -destination=../../mock/network/network.go -package=mock_network . Network

// Network provides the local segment details needed to probe and
// monitor: the bound interface (index, hardware address), our own IP,
// and the host range to sweep.
type Network interface {
	Interface() *net.Interface
	UserIP() net.IP
	IPNet() *net.IPNet
	Gateway() net.IP
	Cidr() string
	// FirstHost is the first usable address of the segment
	FirstHost() net.IP
	// LastHost is the broadcast address; the sweep stops before it
	LastHost() net.IP
}

type networkInfo struct {
	gateway   net.IP
	userIP    net.IP
	ipnet     *net.IPNet
	iface     *net.Interface
	cidr      string
	firstHost net.IP
	lastHost  net.IP
}
