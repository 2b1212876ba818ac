// SPDX-License-Identifier: GPL-3.0-or-later

package transport

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/gopacket/pcap"

	"github.com/lanwatch/arpsentry/internal/logger"
	"github.com/lanwatch/arpsentry/pkg/arp"
)

const snapshotLength = 65536

// PcapTransport implements Transport over a live pcap handle
type PcapTransport struct {
	cap     PacketCapture
	handle  PacketCaptureHandle
	timeout time.Duration
	debug   logger.DebugLogger
}

// Option configures a PcapTransport before the handle is opened
type Option func(t *PcapTransport)

// WithTimeout sets the bounded receive timeout
func WithTimeout(d time.Duration) Option {
	return func(t *PcapTransport) {
		t.timeout = d
	}
}

// WithPacketCapture sets the data structure used to open the capture
func WithPacketCapture(cap PacketCapture) Option {
	return func(t *PcapTransport) {
		t.cap = cap
	}
}

// Open binds a new PcapTransport to the named interface, filtered to
// ARP traffic
func Open(device string, options ...Option) (*PcapTransport, error) {
	t := &PcapTransport{
		cap:     &defaultPacketCapture{},
		timeout: DefaultTimeout,
		debug:   logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(t)
	}

	handle, err := t.cap.OpenLive(device, snapshotLength, true, t.timeout)

	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", device, err)
	}

	if err := handle.SetBPFFilter("arp"); err != nil {
		handle.Close()
		return nil, fmt.Errorf("transport: bpf filter: %w", err)
	}

	t.handle = handle

	return t, nil
}

// Send writes one encoded frame to the wire
func (t *PcapTransport) Send(f arp.Frame) error {
	return t.handle.WritePacketData(f.Encode())
}

// Receive reads one frame, waiting at most the configured timeout.
// Undecodable packets are noise: logged at debug level and reported
// like a timeout so callers treat them as a spent receive cycle.
func (t *PcapTransport) Receive() (arp.Frame, bool, error) {
	data, _, err := t.handle.ReadPacketData()

	if err != nil {
		if errors.Is(err, pcap.NextErrorTimeoutExpired) {
			return arp.Frame{}, false, nil
		}

		return arp.Frame{}, false, err
	}

	if len(data) < arp.FrameLength {
		t.debug.Warn().Int("len", len(data)).Msg("transport: runt packet")
		return arp.Frame{}, false, nil
	}

	// ethernet pads short frames on the wire; the codec's exact-length
	// contract is preserved by slicing at the boundary
	f, err := arp.DecodeFrame(data[:arp.FrameLength])

	if err != nil {
		t.debug.Warn().Err(err).Msg("transport: undecodable packet")
		return arp.Frame{}, false, nil
	}

	return f, true, nil
}

// Close releases the underlying handle
func (t *PcapTransport) Close() {
	t.handle.Close()
}
