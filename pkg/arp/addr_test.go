// SPDX-License-Identifier: GPL-3.0-or-later

package arp_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanwatch/arpsentry/pkg/arp"
)

func TestMAC(t *testing.T) {
	t.Run("renders two lowercase hex digits per byte", func(st *testing.T) {
		cases := []struct {
			mac      arp.MAC
			expected string
		}{
			{arp.MAC{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}, "00:01:02:03:04:05"},
			{arp.MAC{0xde, 0xad, 0xbe, 0xef, 0x00, 0x0a}, "de:ad:be:ef:00:0a"},
			{arp.MAC{}, "00:00:00:00:00:00"},
			{arp.MAC{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "ff:ff:ff:ff:ff:ff"},
			{arp.MAC{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}, "0a:0b:0c:0d:0e:0f"},
		}

		for _, c := range cases {
			s := c.mac.String()

			assert.Equal(st, c.expected, s)
			assert.Len(st, s, 17)
		}
	})

	t.Run("string form parses back to the original bytes", func(st *testing.T) {
		original := arp.MAC{0x02, 0x00, 0x5e, 0x10, 0x00, 0x01}

		parsed, err := arp.ParseMAC(original.String())

		assert.NoError(st, err)
		assert.Equal(st, original, parsed)
	})

	t.Run("rejects non-ethernet address lengths", func(st *testing.T) {
		// 8-byte EUI-64
		_, err := arp.ParseMAC("02:00:5e:10:00:00:00:01")

		assert.Error(st, err)
	})

	t.Run("orders byte-wise", func(st *testing.T) {
		lo := arp.MAC{0x00, 0x00, 0x00, 0x00, 0x00, 0x01}
		hi := arp.MAC{0x00, 0x00, 0x00, 0x00, 0x01, 0x00}

		assert.Negative(st, lo.Compare(hi))
		assert.Positive(st, hi.Compare(lo))
		assert.Zero(st, lo.Compare(lo))
	})

	t.Run("bridges to net.HardwareAddr and back", func(st *testing.T) {
		mac := arp.MAC{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}

		roundTripped, ok := arp.MACFromHardwareAddr(mac.HardwareAddr())

		assert.True(st, ok)
		assert.Equal(st, mac, roundTripped)

		_, ok = arp.MACFromHardwareAddr(net.HardwareAddr{0x01, 0x02})

		assert.False(st, ok)
	})
}

func TestIPv4(t *testing.T) {
	t.Run("increments in address-numeric space", func(st *testing.T) {
		assert.Equal(
			st,
			arp.IPv4{192, 168, 1, 2},
			arp.IPv4{192, 168, 1, 1}.Next(),
		)
	})

	t.Run("carries across octet boundaries", func(st *testing.T) {
		assert.Equal(
			st,
			arp.IPv4{10, 0, 1, 0},
			arp.IPv4{10, 0, 0, 255}.Next(),
		)

		assert.Equal(
			st,
			arp.IPv4{11, 0, 0, 0},
			arp.IPv4{10, 255, 255, 255}.Next(),
		)
	})

	t.Run("renders dotted-quad form", func(st *testing.T) {
		assert.Equal(st, "172.17.1.9", arp.IPv4{172, 17, 1, 9}.String())
	})

	t.Run("converts from net.IP", func(st *testing.T) {
		ip, ok := arp.IPv4FromNetIP(net.ParseIP("192.168.1.1"))

		assert.True(st, ok)
		assert.Equal(st, arp.IPv4{192, 168, 1, 1}, ip)

		_, ok = arp.IPv4FromNetIP(net.ParseIP("fe80::1"))

		assert.False(st, ok)
	})
}
