// SPDX-License-Identifier: GPL-3.0-or-later

// Package guard monitors live address-resolution replies against the
// baseline table, alerting on conflicts and optionally installing a
// permanent neighbor entry to override a poisoned cache.
package guard

import (
	"context"

	"github.com/lanwatch/arpsentry/internal/logger"
	"github.com/lanwatch/arpsentry/pkg/arp"
	"github.com/lanwatch/arpsentry/pkg/neigh"
	"github.com/lanwatch/arpsentry/pkg/transport"
)

//go:generate mockgen -destination=../../mock/guard/guard.go -package=mock_guard . Monitor,Prompter

// Monitor watches live replies until cancelled
type Monitor interface {
	Run(ctx context.Context) error
}

// Prompter requests an operator decision for a contested address
type Prompter interface {
	// Confirm reports whether the operator accepted remediation
	Confirm(hw arp.MAC, ip arp.IPv4) bool
}

// Guard implements Monitor over a baseline table. The table is never
// rewritten; remediation only touches the OS neighbor cache. The
// ignore set grows for the lifetime of the session and is keyed on
// the contested IP alone, so any hardware address later contesting an
// already-alerted IP is suppressed too.
type Guard struct {
	ifaceName string
	table     arp.Table
	transport transport.Transport
	installer neigh.Installer
	prompter  Prompter
	ignored   map[arp.IPv4]struct{}
	log       logger.Logger
	debug     logger.DebugLogger
}

// NewGuard returns a new instance of Guard
func NewGuard(
	ifaceName string,
	table arp.Table,
	tr transport.Transport,
	installer neigh.Installer,
	prompter Prompter,
) *Guard {
	return &Guard{
		ifaceName: ifaceName,
		table:     table,
		transport: tr,
		installer: installer,
		prompter:  prompter,
		ignored:   map[arp.IPv4]struct{}{},
		log:       logger.New(),
		debug:     logger.NewDebugLogger(),
	}
}

// Run processes replies in arrival order until ctx is cancelled.
// Each receive attempt is bounded by the transport timeout, which is
// also the only cancellation-check point, so shutdown latency is at
// most one timeout interval.
func (g *Guard) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		f, ok, err := g.transport.Receive()

		if err != nil {
			g.debug.Error().Err(err).Msg("guard: error reading packet")
			continue
		}

		if !ok {
			continue
		}

		if f.Opcode != arp.OpReply {
			continue
		}

		g.inspect(f.SenderHW, f.SenderIP)
	}
}

// inspect classifies one reply against the baseline
func (g *Guard) inspect(hw arp.MAC, ip arp.IPv4) {
	recorded, known := g.table[hw]

	if !known {
		g.log.Warn().
			Str("mac", hw.String()).
			Str("ip", ip.String()).
			Msg("unknown device detected - run a new scan to refresh the baseline")
		return
	}

	if recorded == ip {
		return
	}

	if _, suppressed := g.ignored[ip]; suppressed {
		return
	}

	g.remediate(hw, ip)

	g.ignored[ip] = struct{}{}
}

// remediate alerts the operator and, on acceptance, pins the address
// recorded at scan time into the OS neighbor cache
func (g *Guard) remediate(hw arp.MAC, ip arp.IPv4) {
	g.log.Warn().
		Str("mac", hw.String()).
		Str("ip", ip.String()).
		Msg("spoofing detected")

	if !g.prompter.Confirm(hw, ip) {
		return
	}

	owner, found := g.table.Owner(ip)

	if !found {
		g.log.Warn().
			Str("ip", ip.String()).
			Msg("no baseline entry for contested address - run a new scan")
		return
	}

	if err := g.installer.Install(g.ifaceName, ip, owner); err != nil {
		// permission problems and the like; the session continues
		g.log.Error().
			Err(err).
			Str("ip", ip.String()).
			Msg("failed to install permanent entry")
		return
	}

	g.log.Info().
		Str("ip", ip.String()).
		Str("mac", owner.String()).
		Msg("permanent entry installed")
}
