// SPDX-License-Identifier: GPL-3.0-or-later

// Package transport provides the link-layer channel used for probing
// and monitoring: send one frame, receive one frame within a bounded
// timeout. The channel is a single-owner resource, opened once and
// used exclusively by the active component.
package transport

import (
	"time"

	"github.com/google/gopacket"

	"github.com/lanwatch/arpsentry/pkg/arp"
)

//go:generate mockgen -destination=../../mock/transport/transport.go -package=mock_transport . Transport,PacketCapture,PacketCaptureHandle

// DefaultTimeout bounds each receive attempt. It caps per-host retry
// latency during the scan and is the guard's only cancellation-check
// point.
const DefaultTimeout = time.Millisecond * 100

// Transport is a link-layer channel bound to one interface
type Transport interface {
	// Send writes a single frame to the wire
	Send(f arp.Frame) error
	// Receive blocks for at most the configured timeout. The boolean
	// is false when the timeout elapsed with no decodable ARP frame;
	// that is normal control flow, not an error.
	Receive() (frame arp.Frame, ok bool, err error)
	// Close releases the channel
	Close()
}

// PacketCaptureHandle is an open capture session
type PacketCaptureHandle interface {
	Close()
	ReadPacketData() (data []byte, ci gopacket.CaptureInfo, err error)
	WritePacketData(data []byte) (err error)
	SetBPFFilter(expr string) (err error)
}

// PacketCapture opens capture sessions; tests substitute a mock
type PacketCapture interface {
	OpenLive(device string, snaplen int32, promisc bool, timeout time.Duration) (handle PacketCaptureHandle, _ error)
}
