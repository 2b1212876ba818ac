// SPDX-License-Identifier: GPL-3.0-or-later

// Package neigh installs static mappings into the operating system's
// neighbor cache.
package neigh

import "github.com/lanwatch/arpsentry/pkg/arp"

//go:generate mockgen -destination=../../mock/neigh/neigh.go -package=mock_neigh . Installer

// Installer writes a permanent, non-expiring neighbor entry so a
// poisoned dynamic entry cannot replace it
type Installer interface {
	Install(ifaceName string, ip arp.IPv4, hw arp.MAC) error
}
