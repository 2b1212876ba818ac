// SPDX-License-Identifier: GPL-3.0-or-later

// Package core wires the two phases together: active scan to build
// the baseline, then the reply monitor until interrupted.
package core

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/progress"
	"github.com/jedib0t/go-pretty/table"
	"github.com/rs/zerolog"

	"github.com/lanwatch/arpsentry/internal/logger"
	"github.com/lanwatch/arpsentry/pkg/arp"
	"github.com/lanwatch/arpsentry/pkg/network"
	"github.com/lanwatch/arpsentry/pkg/scanner"
	"github.com/lanwatch/arpsentry/pkg/transport"
)

// Entry is one baseline row in serializable form
type Entry struct {
	MAC string `json:"mac"`
	IP  string `json:"ip"`
}

// Core implements Runner
type Core struct {
	netInfo    network.Network
	transport  transport.Transport
	scanner    scanner.Scanner
	newMonitor MonitorFactory
	noProgress bool
	printJson  bool
	pw         progress.Writer
	arpTracker *progress.Tracker
	scanLevel  zerolog.Level
	log        logger.Logger
}

// New returns a new instance of Core
func New() *Core {
	return &Core{
		log: logger.New(),
	}
}

// Initialize prepares the runner with its collaborators and display
// options
func (c *Core) Initialize(
	netInfo network.Network,
	tr transport.Transport,
	coreScanner scanner.Scanner,
	newMonitor MonitorFactory,
	noProgress bool,
	printJson bool,
) {
	arpTracker := &progress.Tracker{Message: "starting arp scan"}
	arpTracker.Total = hostTotal(netInfo.FirstHost(), netInfo.LastHost())

	// log suppression is scoped to the sweep; the monitor phase must
	// keep alerting, so Run restores the level once the scan ends
	if noProgress {
		c.scanLevel = zerolog.GlobalLevel()
		logger.SetGlobalLevel(zerolog.Disabled)
	} else {
		coreScanner.SetRequestNotifications(c.requestCallback)
	}

	c.netInfo = netInfo
	c.transport = tr
	c.scanner = coreScanner
	c.newMonitor = newMonitor
	c.noProgress = noProgress
	c.printJson = printJson
	c.pw = progressWriter()
	c.arpTracker = arpTracker
}

// Run performs the scan, prints the baseline, then monitors replies
// until an interrupt arrives. The transport is released on every exit
// path.
func (c *Core) Run() error {
	defer c.transport.Close()

	start := time.Now()

	if !c.noProgress {
		c.pw.AppendTracker(c.arpTracker)
		go c.pw.Render()
	}

	tbl, err := c.scanner.Scan()

	if !c.noProgress {
		c.pw.Stop()
	} else {
		logger.SetGlobalLevel(c.scanLevel)
	}

	if err != nil {
		return err
	}

	c.log.Info().
		Int("entries", len(tbl)).
		Str("duration", time.Since(start).String()).
		Msg("scan complete - if devices are missing, run the tool again")

	c.printBaseline(tbl)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	c.log.Info().Msg("analyzing arp replies - press ctrl-c to exit")

	return c.newMonitor(tbl).Run(ctx)
}

func (c *Core) requestCallback(r *scanner.Request) {
	c.arpTracker.Message = fmt.Sprintf("probing %s", r.IP)
	c.arpTracker.Increment(1)

	if c.arpTracker.IsDone() {
		c.arpTracker.Message = "probe sweep complete"
	}
}

func (c *Core) printBaseline(tbl arp.Table) {
	if c.printJson {
		entries := []Entry{}

		for _, mac := range tbl.MACs() {
			entries = append(entries, Entry{MAC: mac.String(), IP: tbl[mac].String()})
		}

		data, err := json.Marshal(entries)

		if err != nil {
			c.log.Error().Err(err).Msg("failed to marshal baseline")
			return
		}

		fmt.Println(string(data))
		return
	}

	w := table.NewWriter()
	w.SetOutputMirror(os.Stdout)
	w.AppendHeader(table.Row{"HW ADDRESS", "IP ADDRESS"})

	for _, mac := range tbl.MACs() {
		w.AppendRow(table.Row{mac.String(), tbl[mac].String()})
	}

	w.Render()
}

// hostTotal counts the candidates in [first, last)
func hostTotal(first, last net.IP) int64 {
	f4 := first.To4()
	l4 := last.To4()

	if f4 == nil || l4 == nil {
		return 0
	}

	f := binary.BigEndian.Uint32(f4)
	l := binary.BigEndian.Uint32(l4)

	if l <= f {
		return 0
	}

	return int64(l - f)
}

// helpers
func progressWriter() progress.Writer {
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stdout)
	pw.SetAutoStop(false)
	pw.SetTrackerLength(25)
	pw.SetMessageWidth(40)
	pw.SetNumTrackersExpected(1)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample

	return pw
}
