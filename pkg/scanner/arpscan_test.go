// SPDX-License-Identifier: GPL-3.0-or-later

package scanner_test

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_network "github.com/lanwatch/arpsentry/mock/network"
	mock_transport "github.com/lanwatch/arpsentry/mock/transport"
	"github.com/lanwatch/arpsentry/pkg/arp"
	"github.com/lanwatch/arpsentry/pkg/scanner"
)

func TestArpScanner(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockInterface := &net.Interface{
		Name:         "test-iface",
		HardwareAddr: net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
	}

	newNetInfo := func(first, last net.IP) *mock_network.MockNetwork {
		mockNetInfo := mock_network.NewMockNetwork(ctrl)

		mockNetInfo.EXPECT().Interface().AnyTimes().Return(mockInterface)
		mockNetInfo.EXPECT().UserIP().AnyTimes().Return(net.ParseIP("172.17.1.100"))
		mockNetInfo.EXPECT().Cidr().AnyTimes().Return("172.17.1.0/24")
		mockNetInfo.EXPECT().FirstHost().AnyTimes().Return(first)
		mockNetInfo.EXPECT().LastHost().AnyTimes().Return(last)

		return mockNetInfo
	}

	reply := func(hw arp.MAC, ip arp.IPv4) arp.Frame {
		return arp.Frame{
			Opcode:   arp.OpReply,
			SenderHW: hw,
			SenderIP: ip,
		}
	}

	t.Run("records a reply received on the k-th cycle", func(st *testing.T) {
		for k := 1; k <= 5; k++ {
			mockNetInfo := newNetInfo(
				net.ParseIP("172.17.1.1"),
				net.ParseIP("172.17.1.2"),
			)

			mockTransport := mock_transport.NewMockTransport(ctrl)

			hw := arp.MAC{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
			candidate := arp.IPv4{172, 17, 1, 1}

			mockTransport.EXPECT().Send(gomock.Any()).Return(nil)

			cycles := 0

			mockTransport.EXPECT().Receive().Times(k).DoAndReturn(func() (arp.Frame, bool, error) {
				cycles++
				if cycles == k {
					return reply(hw, candidate), true, nil
				}
				return arp.Frame{}, false, nil
			})

			arpScanner := scanner.NewArpScanner(mockNetInfo, mockTransport)

			table, err := arpScanner.Scan()

			assert.NoError(st, err)
			assert.Equal(st, arp.Table{hw: candidate}, table)
			assert.Equal(st, k, cycles)
		}
	})

	t.Run("spends exactly the attempt budget on a silent host", func(st *testing.T) {
		mockNetInfo := newNetInfo(
			net.ParseIP("172.17.1.1"),
			net.ParseIP("172.17.1.2"),
		)

		mockTransport := mock_transport.NewMockTransport(ctrl)

		mockTransport.EXPECT().Send(gomock.Any()).Return(nil)

		mockTransport.EXPECT().
			Receive().
			Times(scanner.DefaultAttempts).
			Return(arp.Frame{}, false, nil)

		arpScanner := scanner.NewArpScanner(mockNetInfo, mockTransport)

		table, err := arpScanner.Scan()

		assert.NoError(st, err)
		assert.Empty(st, table)
	})

	t.Run("non-matching frames consume the budget too", func(st *testing.T) {
		mockNetInfo := newNetInfo(
			net.ParseIP("172.17.1.1"),
			net.ParseIP("172.17.1.2"),
		)

		mockTransport := mock_transport.NewMockTransport(ctrl)

		mockTransport.EXPECT().Send(gomock.Any()).Return(nil)

		// a request and a reply for the wrong address are both noise
		wrongOp := arp.Frame{
			Opcode:   arp.OpRequest,
			SenderHW: arp.MAC{1, 2, 3, 4, 5, 6},
			SenderIP: arp.IPv4{172, 17, 1, 1},
		}
		wrongSender := reply(arp.MAC{1, 2, 3, 4, 5, 6}, arp.IPv4{172, 17, 1, 9})

		gomock.InOrder(
			mockTransport.EXPECT().Receive().Return(wrongOp, true, nil),
			mockTransport.EXPECT().Receive().Return(wrongSender, true, nil),
			mockTransport.EXPECT().Receive().Times(3).Return(arp.Frame{}, false, nil),
		)

		arpScanner := scanner.NewArpScanner(mockNetInfo, mockTransport)

		table, err := arpScanner.Scan()

		assert.NoError(st, err)
		assert.Empty(st, table)
	})

	t.Run("probes every candidate and never the broadcast address", func(st *testing.T) {
		mockNetInfo := newNetInfo(
			net.ParseIP("172.17.1.1"),
			net.ParseIP("172.17.1.4"),
		)

		mockTransport := mock_transport.NewMockTransport(ctrl)

		probed := []arp.IPv4{}

		mockTransport.EXPECT().Send(gomock.Any()).Times(3).DoAndReturn(func(f arp.Frame) error {
			probed = append(probed, f.TargetIP)
			return nil
		})

		mockTransport.EXPECT().
			Receive().
			Times(3 * scanner.DefaultAttempts).
			Return(arp.Frame{}, false, nil)

		arpScanner := scanner.NewArpScanner(mockNetInfo, mockTransport)

		_, err := arpScanner.Scan()

		assert.NoError(st, err)
		assert.Equal(st, []arp.IPv4{
			{172, 17, 1, 1},
			{172, 17, 1, 2},
			{172, 17, 1, 3},
		}, probed)
	})

	t.Run("later replies overwrite earlier entries for the same hardware address", func(st *testing.T) {
		mockNetInfo := newNetInfo(
			net.ParseIP("172.17.1.1"),
			net.ParseIP("172.17.1.3"),
		)

		mockTransport := mock_transport.NewMockTransport(ctrl)

		hw := arp.MAC{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}

		mockTransport.EXPECT().Send(gomock.Any()).Times(2).Return(nil)

		gomock.InOrder(
			mockTransport.EXPECT().Receive().Return(reply(hw, arp.IPv4{172, 17, 1, 1}), true, nil),
			mockTransport.EXPECT().Receive().Return(reply(hw, arp.IPv4{172, 17, 1, 2}), true, nil),
		)

		arpScanner := scanner.NewArpScanner(mockNetInfo, mockTransport)

		table, err := arpScanner.Scan()

		assert.NoError(st, err)
		assert.Equal(st, arp.Table{hw: {172, 17, 1, 2}}, table)
	})

	t.Run("notifies observers of each probe", func(st *testing.T) {
		mockNetInfo := newNetInfo(
			net.ParseIP("172.17.1.1"),
			net.ParseIP("172.17.1.3"),
		)

		mockTransport := mock_transport.NewMockTransport(ctrl)

		mockTransport.EXPECT().Send(gomock.Any()).Times(2).Return(nil)

		mockTransport.EXPECT().
			Receive().
			AnyTimes().
			Return(arp.Frame{}, false, nil)

		notified := []string{}

		arpScanner := scanner.NewArpScanner(
			mockNetInfo,
			mockTransport,
			scanner.WithAttempts(1),
			scanner.WithRequestNotifications(func(r *scanner.Request) {
				notified = append(notified, r.IP)
			}),
		)

		_, err := arpScanner.Scan()

		assert.NoError(st, err)
		assert.Equal(st, []string{"172.17.1.1", "172.17.1.2"}, notified)
	})

	t.Run("returns error if a request cannot be sent", func(st *testing.T) {
		mockNetInfo := newNetInfo(
			net.ParseIP("172.17.1.1"),
			net.ParseIP("172.17.1.2"),
		)

		mockTransport := mock_transport.NewMockTransport(ctrl)

		mockErr := errors.New("mock send error")

		mockTransport.EXPECT().Send(gomock.Any()).Return(mockErr)

		arpScanner := scanner.NewArpScanner(mockNetInfo, mockTransport)

		_, err := arpScanner.Scan()

		assert.Error(st, err)
		assert.ErrorIs(st, err, mockErr)
	})

	t.Run("returns error for an inverted host range without probing", func(st *testing.T) {
		// a /32 address yields first host above the broadcast; stepping
		// from it would wrap the whole address space
		mockNetInfo := newNetInfo(
			net.ParseIP("10.1.2.4"),
			net.ParseIP("10.1.2.3"),
		)

		mockTransport := mock_transport.NewMockTransport(ctrl)

		arpScanner := scanner.NewArpScanner(mockNetInfo, mockTransport)

		_, err := arpScanner.Scan()

		assert.Error(st, err)
	})

	t.Run("returns error for an empty host range without probing", func(st *testing.T) {
		mockNetInfo := newNetInfo(
			net.ParseIP("172.17.1.1"),
			net.ParseIP("172.17.1.1"),
		)

		mockTransport := mock_transport.NewMockTransport(ctrl)

		arpScanner := scanner.NewArpScanner(mockNetInfo, mockTransport)

		_, err := arpScanner.Scan()

		assert.Error(st, err)
	})

	t.Run("returns error for a non-ethernet interface", func(st *testing.T) {
		mockNetInfo := mock_network.NewMockNetwork(ctrl)

		mockNetInfo.EXPECT().Interface().AnyTimes().Return(&net.Interface{
			Name:         "test-iface",
			HardwareAddr: net.HardwareAddr{},
		})

		mockTransport := mock_transport.NewMockTransport(ctrl)

		arpScanner := scanner.NewArpScanner(mockNetInfo, mockTransport)

		_, err := arpScanner.Scan()

		assert.Error(st, err)
	})
}
