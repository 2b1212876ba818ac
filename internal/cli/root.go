// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lanwatch/arpsentry/internal/core"
	"github.com/lanwatch/arpsentry/internal/logger"
	"github.com/lanwatch/arpsentry/pkg/arp"
	"github.com/lanwatch/arpsentry/pkg/guard"
	"github.com/lanwatch/arpsentry/pkg/neigh"
	"github.com/lanwatch/arpsentry/pkg/network"
	"github.com/lanwatch/arpsentry/pkg/scanner"
	"github.com/lanwatch/arpsentry/pkg/transport"
)

// NetworkFactory resolves local segment info for an interface name
type NetworkFactory = func(name string) (network.Network, error)

// TransportFactory opens the link-layer channel on a device
type TransportFactory = func(device string, timeout time.Duration) (transport.Transport, error)

// Root returns the root command. The factories are injected so tests
// can run the command without a live interface.
func Root(
	runner core.Runner,
	loadNetwork NetworkFactory,
	openTransport TransportFactory,
) *cobra.Command {
	var timeoutMs int
	var attempts int
	var printJson bool
	var noProgress bool
	var debug bool

	cmd := &cobra.Command{
		Use:   "arpsentry <interface>",
		Short: "Detect ARP spoofing on your LAN",
		Long: `Builds a trusted hardware-to-IP baseline by actively probing the local
segment, then monitors unsolicited ARP replies against it, alerting on
conflicts and optionally pinning the legitimate mapping into the OS
neighbor cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				logger.SetGlobalLevel(zerolog.DebugLevel)
			}

			netInfo, err := loadNetwork(args[0])

			if err != nil {
				return fmt.Errorf("interface setup: %w", err)
			}

			tr, err := openTransport(
				netInfo.Interface().Name,
				time.Duration(timeoutMs)*time.Millisecond,
			)

			if err != nil {
				return fmt.Errorf("channel setup: %w", err)
			}

			arpScanner := scanner.NewArpScanner(
				netInfo,
				tr,
				scanner.WithAttempts(attempts),
			)

			newMonitor := func(table arp.Table) guard.Monitor {
				return guard.NewGuard(
					netInfo.Interface().Name,
					table,
					tr,
					neigh.NewInstaller(),
					guard.NewConsolePrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				)
			}

			runner.Initialize(netInfo, tr, arpScanner, newMonitor, noProgress, printJson)

			return runner.Run()
		},
	}

	cmd.Flags().IntVar(&timeoutMs, "timeout", 100, "receive timeout in milliseconds")
	cmd.Flags().IntVar(&attempts, "attempts", scanner.DefaultAttempts, "receive attempts per probed host")
	cmd.Flags().BoolVar(&printJson, "json", false, "output baseline as json instead of a table")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable scan progress output; alerts and results are still printed")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newVersion())

	return cmd
}
