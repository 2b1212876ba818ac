// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"github.com/lanwatch/arpsentry/pkg/arp"
	"github.com/lanwatch/arpsentry/pkg/guard"
	"github.com/lanwatch/arpsentry/pkg/network"
	"github.com/lanwatch/arpsentry/pkg/scanner"
	"github.com/lanwatch/arpsentry/pkg/transport"
)

//go:generate mockgen -destination=../mock/core/core.go -package=mock_core . Runner

// MonitorFactory builds the guard phase once the baseline exists
type MonitorFactory = func(table arp.Table) guard.Monitor

// Runner sequences the scan phase and the guard phase
type Runner interface {
	Initialize(
		netInfo network.Network,
		tr transport.Transport,
		coreScanner scanner.Scanner,
		newMonitor MonitorFactory,
		noProgress bool,
		printJson bool,
	)
	Run() error
}
