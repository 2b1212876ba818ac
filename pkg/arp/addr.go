// SPDX-License-Identifier: GPL-3.0-or-later

// Package arp provides the address value types and the fixed wire
// layout of address-resolution frames on an ethernet segment.
package arp

import (
	"bytes"
	"fmt"
	"net"
)

// MAC is a 6-byte hardware address. Being a fixed-size array it is
// comparable and usable as a map key.
type MAC [6]byte

var (
	// BroadcastMAC is the all-ones link-layer destination
	BroadcastMAC = MAC{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

	// ZeroMAC is the all-zero placeholder used as the target hardware
	// address in request frames
	ZeroMAC = MAC{}
)

// MACFromHardwareAddr converts a net.HardwareAddr to a MAC. The second
// return value is false if the address is not 6 bytes long.
func MACFromHardwareAddr(hw net.HardwareAddr) (MAC, bool) {
	var m MAC

	if len(hw) != len(m) {
		return m, false
	}

	copy(m[:], hw)

	return m, true
}

// ParseMAC parses the canonical xx:xx:xx:xx:xx:xx form back into the
// original 6 bytes
func ParseMAC(s string) (MAC, error) {
	hw, err := net.ParseMAC(s)

	if err != nil {
		return MAC{}, err
	}

	m, ok := MACFromHardwareAddr(hw)

	if !ok {
		return MAC{}, fmt.Errorf("not a 6-byte hardware address: %s", s)
	}

	return m, nil
}

// HardwareAddr bridges back to the stdlib type
func (m MAC) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(m[:])
}

// Compare orders two addresses byte-wise
func (m MAC) Compare(o MAC) int {
	return bytes.Compare(m[:], o[:])
}

// String renders six two-digit lowercase hex groups separated by
// colons, 17 characters for every value, zero bytes included
func (m MAC) String() string {
	return fmt.Sprintf(
		"%02x:%02x:%02x:%02x:%02x:%02x",
		m[0], m[1], m[2], m[3], m[4], m[5],
	)
}

// IPv4 is a 4-byte address in network byte order
type IPv4 [4]byte

// IPv4FromNetIP converts a net.IP to an IPv4. The second return value
// is false for anything that is not an IPv4 address.
func IPv4FromNetIP(ip net.IP) (IPv4, bool) {
	var v IPv4

	ip4 := ip.To4()

	if ip4 == nil {
		return v, false
	}

	copy(v[:], ip4)

	return v, true
}

// NetIP bridges back to the stdlib type
func (ip IPv4) NetIP() net.IP {
	return net.IP(ip[:])
}

// Compare orders two addresses byte-wise
func (ip IPv4) Compare(o IPv4) int {
	return bytes.Compare(ip[:], o[:])
}

// Next returns the following address in address-numeric space,
// carrying across octet boundaries
func (ip IPv4) Next() IPv4 {
	next := ip

	for i := len(next) - 1; i >= 0; i-- {
		next[i]++
		if next[i] > 0 {
			break
		}
	}

	return next
}

// String renders dotted-quad form
func (ip IPv4) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
}
