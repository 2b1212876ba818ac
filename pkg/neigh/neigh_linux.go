// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package neigh

import (
	"fmt"

	"github.com/vishvananda/netlink"

	"github.com/lanwatch/arpsentry/pkg/arp"
)

// NetlinkInstaller installs permanent neighbor entries through
// rtnetlink, the modern equivalent of the SIOCSARP ioctl
type NetlinkInstaller struct{}

// NewInstaller returns a new instance of NetlinkInstaller
func NewInstaller() *NetlinkInstaller {
	return &NetlinkInstaller{}
}

// Install pins ip to hw on the named interface with NUD_PERMANENT
func (i *NetlinkInstaller) Install(ifaceName string, ip arp.IPv4, hw arp.MAC) error {
	link, err := netlink.LinkByName(ifaceName)

	if err != nil {
		return fmt.Errorf("neigh: lookup %s: %w", ifaceName, err)
	}

	entry := &netlink.Neigh{
		LinkIndex:    link.Attrs().Index,
		Family:       netlink.FAMILY_V4,
		State:        netlink.NUD_PERMANENT,
		IP:           ip.NetIP(),
		HardwareAddr: hw.HardwareAddr(),
	}

	if err := netlink.NeighSet(entry); err != nil {
		return fmt.Errorf("neigh: set %s -> %s: %w", ip, hw, err)
	}

	return nil
}
