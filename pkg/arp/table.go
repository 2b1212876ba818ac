// SPDX-License-Identifier: GPL-3.0-or-later

package arp

import "slices"

// Table maps each hardware address seen during a scan to the IP it
// answered for. A hardware address holds at most one IP; later replies
// overwrite earlier ones. The table is built once by the scanner and
// is read-only afterwards.
type Table map[MAC]IPv4

// Owner returns the hardware address recorded for ip at scan time
func (t Table) Owner(ip IPv4) (MAC, bool) {
	for mac, recorded := range t {
		if recorded == ip {
			return mac, true
		}
	}

	return MAC{}, false
}

// MACs returns the table's hardware addresses in byte-wise order for
// stable rendering
func (t Table) MACs() []MAC {
	macs := make([]MAC, 0, len(t))

	for mac := range t {
		macs = append(macs, mac)
	}

	slices.SortFunc(macs, MAC.Compare)

	return macs
}
