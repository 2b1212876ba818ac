// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/lanwatch/arpsentry/internal/info"
	"github.com/lanwatch/arpsentry/internal/logger"
)

func newVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints version",
		Run: func(cmd *cobra.Command, args []string) {
			logger.New().Info().Msgf("arpsentry: %s", info.VERSION)
		},
	}
}
