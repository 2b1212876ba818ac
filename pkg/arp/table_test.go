// SPDX-License-Identifier: GPL-3.0-or-later

package arp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanwatch/arpsentry/pkg/arp"
)

func TestTable(t *testing.T) {
	h1 := arp.MAC{0, 0, 0, 0, 0, 1}
	h2 := arp.MAC{0, 0, 0, 0, 0, 2}

	ip1 := arp.IPv4{10, 0, 0, 1}
	ip2 := arp.IPv4{10, 0, 0, 2}

	table := arp.Table{h1: ip1, h2: ip2}

	t.Run("finds the owner recorded for an address", func(st *testing.T) {
		owner, found := table.Owner(ip2)

		assert.True(st, found)
		assert.Equal(st, h2, owner)
	})

	t.Run("reports unrecorded addresses", func(st *testing.T) {
		_, found := table.Owner(arp.IPv4{10, 0, 0, 9})

		assert.False(st, found)
	})

	t.Run("lists hardware addresses in byte-wise order", func(st *testing.T) {
		assert.Equal(st, []arp.MAC{h1, h2}, table.MACs())
	})
}
