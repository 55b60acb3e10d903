package dul

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/codeninja55/go-dcmx/dimse/pdu"
)

// Connection wraps a TCP connection with PDU framing and deadlines. It knows
// nothing about association state; the Machine decides what to send and the
// Association executes it here.
type Connection struct {
	conn          net.Conn
	maxPDULength  uint32
	readDeadline  time.Duration
	writeDeadline time.Duration

	mu     sync.Mutex
	closed bool
}

// NewConnection wraps an established net.Conn.
func NewConnection(conn net.Conn) *Connection {
	return &Connection{
		conn:          conn,
		maxPDULength:  pdu.DefaultMaxLength,
		readDeadline:  30 * time.Second,
		writeDeadline: 30 * time.Second,
	}
}

// Dial establishes a transport connection to the given address.
func Dial(ctx context.Context, network, address string) (*Connection, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, network, address)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}
	return NewConnection(conn), nil
}

// SetMaxPDULength records the negotiated maximum PDU length. SendPDU does not
// check outbound PDU sizes against it.
func (c *Connection) SetMaxPDULength(length uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if length == 0 || length > pdu.MaxLength {
		length = pdu.MaxLength
	}
	c.maxPDULength = length
}

// MaxPDULength returns the recorded maximum PDU length.
func (c *Connection) MaxPDULength() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxPDULength
}

// SendPDU writes one PDU under the write deadline.
func (c *Connection) SendPDU(ctx context.Context, p pdu.PDU) error {
	if deadline, ok := ctx.Deadline(); ok {
		if err := c.conn.SetWriteDeadline(deadline); err != nil {
			return fmt.Errorf("set write deadline: %w", err)
		}
	} else if c.writeDeadline > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeDeadline)); err != nil {
			return fmt.Errorf("set write deadline: %w", err)
		}
	}
	defer c.conn.SetWriteDeadline(time.Time{})

	if err := p.Encode(c.conn); err != nil {
		return fmt.Errorf("encode PDU: %w", err)
	}
	return nil
}

// ReadPDU reads one PDU under the read deadline.
func (c *Connection) ReadPDU(ctx context.Context) (pdu.PDU, error) {
	if deadline, ok := ctx.Deadline(); ok {
		if err := c.conn.SetReadDeadline(deadline); err != nil {
			return nil, fmt.Errorf("set read deadline: %w", err)
		}
	} else if c.readDeadline > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.readDeadline)); err != nil {
			return nil, fmt.Errorf("set read deadline: %w", err)
		}
	}
	defer c.conn.SetReadDeadline(time.Time{})

	return pdu.ReadPDU(c.conn)
}

// Close closes the transport connection. Safe to call more than once.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

// RemoteAddr returns the remote network address.
func (c *Connection) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// LocalAddr returns the local network address.
func (c *Connection) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// SetReadDeadline sets the per-read timeout.
func (c *Connection) SetReadDeadline(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readDeadline = d
}

// SetWriteDeadline sets the per-write timeout.
func (c *Connection) SetWriteDeadline(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeDeadline = d
}
