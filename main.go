// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"time"

	"github.com/lanwatch/arpsentry/internal/cli"
	"github.com/lanwatch/arpsentry/internal/core"
	"github.com/lanwatch/arpsentry/internal/logger"
	"github.com/lanwatch/arpsentry/pkg/network"
	"github.com/lanwatch/arpsentry/pkg/transport"
)

func main() {
	log := logger.New()

	runner := core.New()

	cmd := cli.Root(
		runner,
		func(name string) (network.Network, error) {
			return network.NewNetworkFromInterfaceName(name)
		},
		func(device string, timeout time.Duration) (transport.Transport, error) {
			return transport.Open(device, transport.WithTimeout(timeout))
		},
	)

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("arpsentry encountered an error")
	}
}
