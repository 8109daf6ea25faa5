// Package transport implements the data-plane (spec.md §4.7): a UDP
// socket carrying MessagePack-encoded ClientInput datagrams in and
// GameDto snapshots out, at the simulation tick rate. Generalizes the
// teacher's WebSocket read loop (server/server.go's readLoop), which
// read JSON messages off one connection per client, into a single
// msgpack-framed, multi-client fan-out UDP socket.
package transport

import (
	"errors"
	"net"

	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
)

// Transport owns the UDP socket and the inbound input queue.
type Transport struct {
	conn *net.UDPConn
	cfg  config.Config
	log  *logrus.Entry

	Inbox *InputQueue
}

// Datagram pairs a decoded ClientInput with the sender address it
// arrived from, so Dispatch can record Player.Addr/PingTimestamp.
type Datagram struct {
	Addr  net.Addr
	Input game.ClientInput
}

// Listen opens the UDP socket on cfg.UDPPort.
func Listen(cfg config.Config, log *logrus.Entry) (*Transport, error) {
	addr, err := net.ResolveUDPAddr("udp", ":"+cfg.UDPPort)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, err
	}
	return &Transport{
		conn:  conn,
		cfg:   cfg,
		log:   log,
		Inbox: newInputQueue(),
	}, nil
}

// Close releases the UDP socket.
func (t *Transport) Close() error {
	return t.conn.Close()
}

// Addr returns the socket's bound local address.
func (t *Transport) Addr() net.Addr {
	return t.conn.LocalAddr()
}

// ReadLoop blocks reading datagrams until the socket is closed, decoding
// each into a ClientInput and enqueuing it for the next tick's Dispatch.
// Malformed packets are logged at debug level and dropped (spec.md §4.7).
func (t *Transport) ReadLoop() {
	buf := make([]byte, t.cfg.MaxPacketBytes)
	for {
		n, addr, err := t.conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			t.log.WithError(err).Debug("udp read error")
			continue
		}
		var input game.ClientInput
		if err := msgpack.Unmarshal(buf[:n], &input); err != nil {
			t.log.WithError(err).Debug("dropping malformed datagram")
			continue
		}
		t.Inbox.push(Datagram{Addr: addr, Input: input})
	}
}

// Broadcast sends dto to every address in addrs, once per tick
// (spec.md §4.7). Per-player send failures are logged and skipped, not
// fatal to the tick.
func (t *Transport) Broadcast(dto game.GameDto, addrs []net.Addr) {
	payload, err := msgpack.Marshal(dto)
	if err != nil {
		t.log.WithError(err).Error("marshal game snapshot")
		return
	}
	for _, addr := range addrs {
		if addr == nil {
			continue
		}
		if _, err := t.conn.WriteTo(payload, addr); err != nil {
			t.log.WithError(err).WithField("addr", addr.String()).Debug("send failed")
		}
	}
}
