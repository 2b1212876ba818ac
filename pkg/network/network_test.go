// SPDX-License-Identifier: GPL-3.0-or-later

package network_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanwatch/arpsentry/pkg/network"
)

func TestIncrementIP(t *testing.T) {
	t.Run("increments last octet", func(st *testing.T) {
		ip := net.IP{192, 168, 1, 1}

		network.IncrementIP(ip)

		assert.Equal(st, net.IP{192, 168, 1, 2}, ip)
	})

	t.Run("carries across octets", func(st *testing.T) {
		ip := net.IP{192, 168, 1, 255}

		network.IncrementIP(ip)

		assert.Equal(st, net.IP{192, 168, 2, 0}, ip)
	})
}

func TestHostRange(t *testing.T) {
	t.Run("computes first host and broadcast for a /24", func(st *testing.T) {
		_, ipnet, err := net.ParseCIDR("192.168.1.37/24")

		assert.NoError(st, err)

		first, last, err := network.HostRange(ipnet)

		assert.NoError(st, err)
		assert.Equal(st, "192.168.1.1", first.String())
		assert.Equal(st, "192.168.1.255", last.String())
	})

	t.Run("computes first host and broadcast for a /29", func(st *testing.T) {
		_, ipnet, err := net.ParseCIDR("10.10.0.16/29")

		assert.NoError(st, err)

		first, last, err := network.HostRange(ipnet)

		assert.NoError(st, err)
		assert.Equal(st, "10.10.0.17", first.String())
		assert.Equal(st, "10.10.0.23", last.String())
	})

	t.Run("rejects a /32 address", func(st *testing.T) {
		_, ipnet, err := net.ParseCIDR("10.1.2.3/32")

		assert.NoError(st, err)

		_, _, err = network.HostRange(ipnet)

		assert.Error(st, err)
	})

	t.Run("rejects a /31 network", func(st *testing.T) {
		_, ipnet, err := net.ParseCIDR("10.1.2.0/31")

		assert.NoError(st, err)

		_, _, err = network.HostRange(ipnet)

		assert.Error(st, err)
	})

	t.Run("rejects IPv6 networks", func(st *testing.T) {
		_, ipnet, err := net.ParseCIDR("fe80::/64")

		assert.NoError(st, err)

		_, _, err = network.HostRange(ipnet)

		assert.Error(st, err)
	})
}
