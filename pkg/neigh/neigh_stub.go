// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package neigh

import (
	"fmt"
	"runtime"

	"github.com/lanwatch/arpsentry/pkg/arp"
)

// NetlinkInstaller is only functional on linux; elsewhere every
// install reports an unsupported-platform error, which the guard
// recovers from locally
type NetlinkInstaller struct{}

// NewInstaller returns a new instance of NetlinkInstaller
func NewInstaller() *NetlinkInstaller {
	return &NetlinkInstaller{}
}

// Install always fails on this platform
func (i *NetlinkInstaller) Install(ifaceName string, ip arp.IPv4, hw arp.MAC) error {
	return fmt.Errorf("neigh: permanent entries are not supported on %s", runtime.GOOS)
}
