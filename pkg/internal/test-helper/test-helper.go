// SPDX-License-Identifier: GPL-3.0-or-later

package test_helper

import (
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// NewArpReplyPacketBytes returns the raw bytes of an ARP reply as a
// capture handle would deliver them
func NewArpReplyPacketBytes(srcIP net.IP, srcHwAddr net.HardwareAddr) []byte {
	eth := layers.Ethernet{
		SrcMAC:       srcHwAddr,
		DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		EthernetType: layers.EthernetTypeARP,
	}

	arp := layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPReply,
		SourceHwAddress:   srcHwAddr,
		SourceProtAddress: []byte(srcIP.To4()),
		DstHwAddress:      []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		DstProtAddress:    []byte{192, 168, 1, 1},
	}

	buf := gopacket.NewSerializeBuffer()

	opts := gopacket.SerializeOptions{
		FixLengths:       true,
		ComputeChecksums: true,
	}

	gopacket.SerializeLayers(buf, opts, &eth, &arp)

	return buf.Bytes()
}

// NewArpRequestPacketBytes returns the raw bytes of an ARP request
func NewArpRequestPacketBytes(srcIP net.IP, srcHwAddr net.HardwareAddr, targetIP net.IP) []byte {
	eth := layers.Ethernet{
		SrcMAC:       srcHwAddr,
		DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		EthernetType: layers.EthernetTypeARP,
	}

	arp := layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   srcHwAddr,
		SourceProtAddress: []byte(srcIP.To4()),
		DstHwAddress:      []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		DstProtAddress:    []byte(targetIP.To4()),
	}

	buf := gopacket.NewSerializeBuffer()

	opts := gopacket.SerializeOptions{
		FixLengths:       true,
		ComputeChecksums: true,
	}

	gopacket.SerializeLayers(buf, opts, &eth, &arp)

	return buf.Bytes()
}
