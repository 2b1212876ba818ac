// SPDX-License-Identifier: GPL-3.0-or-later

// Package scanner builds the trusted baseline table by actively
// probing every host of the local segment, one at a time, with a
// bounded retry budget per host.
package scanner

import (
	"fmt"

	"github.com/lanwatch/arpsentry/internal/logger"
	"github.com/lanwatch/arpsentry/pkg/arp"
	"github.com/lanwatch/arpsentry/pkg/network"
	"github.com/lanwatch/arpsentry/pkg/transport"
)

//go:generate mockgen -destination=../../mock/scanner/scanner.go -package=mock_scanner . Scanner

// DefaultAttempts is the receive budget per probed host
const DefaultAttempts = 5

// Request notifies observers that a probe was sent
type Request struct {
	IP string
}

// Scanner produces the baseline table for a segment
type Scanner interface {
	Scan() (arp.Table, error)
	SetRequestNotifications(cb func(r *Request))
}

// ArpScanner implements Scanner with a strictly sequential sweep
type ArpScanner struct {
	netInfo   network.Network
	transport transport.Transport
	attempts  int
	notifier  func(r *Request)
	debug     logger.DebugLogger
}

// NewArpScanner returns a new instance of ArpScanner
func NewArpScanner(
	netInfo network.Network,
	tr transport.Transport,
	options ...Option,
) *ArpScanner {
	scanner := &ArpScanner{
		netInfo:   netInfo,
		transport: tr,
		attempts:  DefaultAttempts,
		debug:     logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(scanner)
	}

	return scanner
}

// SetRequestNotifications sets the callback invoked as each probe is
// sent
func (s *ArpScanner) SetRequestNotifications(cb func(r *Request)) {
	s.notifier = cb
}

// Scan probes every candidate from the segment's first host up to but
// excluding the broadcast address and returns the resulting table.
// Worst-case latency is candidates x attempts x receive timeout.
func (s *ArpScanner) Scan() (arp.Table, error) {
	localHW, ok := arp.MACFromHardwareAddr(s.netInfo.Interface().HardwareAddr)

	if !ok {
		return nil, fmt.Errorf(
			"scanner: interface %s has no ethernet address",
			s.netInfo.Interface().Name,
		)
	}

	localIP, ok := arp.IPv4FromNetIP(s.netInfo.UserIP())

	if !ok {
		return nil, fmt.Errorf("scanner: local address %s is not IPv4", s.netInfo.UserIP())
	}

	first, ok := arp.IPv4FromNetIP(s.netInfo.FirstHost())

	if !ok {
		return nil, fmt.Errorf("scanner: first host %s is not IPv4", s.netInfo.FirstHost())
	}

	last, ok := arp.IPv4FromNetIP(s.netInfo.LastHost())

	if !ok {
		return nil, fmt.Errorf("scanner: last host %s is not IPv4", s.netInfo.LastHost())
	}

	// the sweep steps from first toward last; an inverted range would
	// wrap through the whole address space before terminating
	if first.Compare(last) >= 0 {
		return nil, fmt.Errorf("scanner: no usable host range in %s", s.netInfo.Cidr())
	}

	fields := map[string]interface{}{
		"interface": s.netInfo.Interface().Name,
		"cidr":      s.netInfo.Cidr(),
	}
	s.debug.Info().Fields(fields).Msg("starting arp scan")

	table := arp.Table{}

	for host := first; host != last; host = host.Next() {
		if s.notifier != nil {
			s.notifier(&Request{IP: host.String()})
		}

		if err := s.transport.Send(arp.NewRequest(localHW, localIP, host)); err != nil {
			return nil, fmt.Errorf("scanner: request for %s: %w", host, err)
		}

		s.resolve(table, host)
	}

	return table, nil
}

// resolve waits for a reply from host, spending at most the attempt
// budget. Timeouts and non-matching frames each consume one cycle; an
// exhausted budget leaves the host unrecorded.
func (s *ArpScanner) resolve(table arp.Table, host arp.IPv4) {
	for attempt := 0; attempt < s.attempts; attempt++ {
		f, ok, err := s.transport.Receive()

		if err != nil {
			s.debug.Error().Err(err).Msg("scanner: error reading packet")
			continue
		}

		if !ok {
			continue
		}

		if f.Opcode != arp.OpReply || f.SenderIP != host {
			continue
		}

		table[f.SenderHW] = host

		return
	}
}
