// SPDX-License-Identifier: GPL-3.0-or-later

package arp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanwatch/arpsentry/pkg/arp"
)

func TestFrame(t *testing.T) {
	localHW := arp.MAC{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	localIP := arp.IPv4{192, 168, 1, 100}
	target := arp.IPv4{192, 168, 1, 1}

	t.Run("request carries broadcast destination and local identity", func(st *testing.T) {
		f := arp.NewRequest(localHW, localIP, target)

		assert.Equal(st, arp.BroadcastMAC, f.EthDst)
		assert.Equal(st, localHW, f.EthSrc)
		assert.Equal(st, arp.EtherTypeARP, f.EthType)
		assert.Equal(st, arp.HardwareEthernet, f.HardwareType)
		assert.Equal(st, arp.ProtocolIPv4, f.ProtocolType)
		assert.Equal(st, uint8(6), f.HardwareLen)
		assert.Equal(st, uint8(4), f.ProtocolLen)
		assert.Equal(st, arp.OpRequest, f.Opcode)
		assert.Equal(st, localHW, f.SenderHW)
		assert.Equal(st, localIP, f.SenderIP)
		assert.Equal(st, arp.ZeroMAC, f.TargetHW)
		assert.Equal(st, target, f.TargetIP)
	})

	t.Run("encodes to the fixed wire layout", func(st *testing.T) {
		buf := arp.NewRequest(localHW, localIP, target).Encode()

		assert.Len(st, buf, arp.FrameLength)

		// ethertype at offset 12, opcode at offset 20
		assert.Equal(st, []byte{0x08, 0x06}, buf[12:14])
		assert.Equal(st, []byte{0x00, 0x01}, buf[14:16])
		assert.Equal(st, []byte{0x08, 0x00}, buf[16:18])
		assert.Equal(st, []byte{0x00, 0x01}, buf[20:22])
		assert.Equal(st, localHW[:], buf[22:28])
		assert.Equal(st, localIP[:], buf[28:32])
		assert.Equal(st, make([]byte, 6), buf[32:38])
		assert.Equal(st, target[:], buf[38:42])
	})

	t.Run("decode recovers every field", func(st *testing.T) {
		original := arp.Frame{
			EthDst:       arp.MAC{1, 2, 3, 4, 5, 6},
			EthSrc:       arp.MAC{6, 5, 4, 3, 2, 1},
			EthType:      arp.EtherTypeARP,
			HardwareType: arp.HardwareEthernet,
			ProtocolType: arp.ProtocolIPv4,
			HardwareLen:  6,
			ProtocolLen:  4,
			Opcode:       arp.OpReply,
			SenderHW:     arp.MAC{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01},
			SenderIP:     arp.IPv4{10, 0, 0, 7},
			TargetHW:     arp.MAC{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
			TargetIP:     arp.IPv4{10, 0, 0, 1},
		}

		decoded, err := arp.DecodeFrame(original.Encode())

		assert.NoError(st, err)
		assert.Equal(st, original, decoded)
	})

	t.Run("rejects buffers that are not exactly 42 bytes", func(st *testing.T) {
		for _, size := range []int{0, 1, 41, 43, 60} {
			_, err := arp.DecodeFrame(make([]byte, size))

			assert.ErrorIs(st, err, arp.ErrMalformedFrame)
		}
	})
}
