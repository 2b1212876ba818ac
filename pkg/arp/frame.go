// SPDX-License-Identifier: GPL-3.0-or-later

package arp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Wire layout of an address-resolution frame, ethernet header
// included. All multi-byte fields are network byte order and there is
// no padding between fields.
//
//	offset  size  field
//	0       6     ethernet destination
//	6       6     ethernet source
//	12      2     ethertype (0x0806)
//	14      2     hardware type (1 = ethernet)
//	16      2     protocol type (0x0800 = IPv4)
//	18      1     hardware address length (6)
//	19      1     protocol address length (4)
//	20      2     operation (1 = request, 2 = reply)
//	22      6     sender hardware address
//	28      4     sender protocol address
//	32      6     target hardware address
//	38      4     target protocol address
const FrameLength = 42

const (
	// OpRequest is the who-has operation code
	OpRequest uint16 = 1
	// OpReply is the is-at operation code
	OpReply uint16 = 2

	// EtherTypeARP is the ethernet type carried in the frame header
	EtherTypeARP uint16 = 0x0806
	// HardwareEthernet is the hardware type for ethernet
	HardwareEthernet uint16 = 0x0001
	// ProtocolIPv4 is the protocol type for IPv4
	ProtocolIPv4 uint16 = 0x0800
)

// ErrMalformedFrame reports a buffer that cannot hold the fixed
// 42-byte layout
var ErrMalformedFrame = errors.New("arp: malformed frame")

// Frame is the decoded form of the 42-byte wire record
type Frame struct {
	EthDst       MAC
	EthSrc       MAC
	EthType      uint16
	HardwareType uint16
	ProtocolType uint16
	HardwareLen  uint8
	ProtocolLen  uint8
	Opcode       uint16
	SenderHW     MAC
	SenderIP     IPv4
	TargetHW     MAC
	TargetIP     IPv4
}

// NewRequest builds a broadcast who-has request for target using the
// provided local identity as the sender
func NewRequest(localHW MAC, localIP IPv4, target IPv4) Frame {
	return Frame{
		EthDst:       BroadcastMAC,
		EthSrc:       localHW,
		EthType:      EtherTypeARP,
		HardwareType: HardwareEthernet,
		ProtocolType: ProtocolIPv4,
		HardwareLen:  6,
		ProtocolLen:  4,
		Opcode:       OpRequest,
		SenderHW:     localHW,
		SenderIP:     localIP,
		TargetHW:     ZeroMAC,
		TargetIP:     target,
	}
}

// Encode serializes the frame into a fresh 42-byte buffer
func (f Frame) Encode() []byte {
	buf := make([]byte, FrameLength)

	copy(buf[0:6], f.EthDst[:])
	copy(buf[6:12], f.EthSrc[:])
	binary.BigEndian.PutUint16(buf[12:14], f.EthType)
	binary.BigEndian.PutUint16(buf[14:16], f.HardwareType)
	binary.BigEndian.PutUint16(buf[16:18], f.ProtocolType)
	buf[18] = f.HardwareLen
	buf[19] = f.ProtocolLen
	binary.BigEndian.PutUint16(buf[20:22], f.Opcode)
	copy(buf[22:28], f.SenderHW[:])
	copy(buf[28:32], f.SenderIP[:])
	copy(buf[32:38], f.TargetHW[:])
	copy(buf[38:42], f.TargetIP[:])

	return buf
}

// DecodeFrame parses a fixed 42-byte buffer. Buffers of any other
// length fail with ErrMalformedFrame.
func DecodeFrame(buf []byte) (Frame, error) {
	if len(buf) != FrameLength {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrMalformedFrame, len(buf))
	}

	var f Frame

	copy(f.EthDst[:], buf[0:6])
	copy(f.EthSrc[:], buf[6:12])
	f.EthType = binary.BigEndian.Uint16(buf[12:14])
	f.HardwareType = binary.BigEndian.Uint16(buf[14:16])
	f.ProtocolType = binary.BigEndian.Uint16(buf[16:18])
	f.HardwareLen = buf[18]
	f.ProtocolLen = buf[19]
	f.Opcode = binary.BigEndian.Uint16(buf[20:22])
	copy(f.SenderHW[:], buf[22:28])
	copy(f.SenderIP[:], buf[28:32])
	copy(f.TargetHW[:], buf[32:38])
	copy(f.TargetIP[:], buf[38:42])

	return f, nil
}
