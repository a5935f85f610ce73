// pkg/bridge/client.go

// Package bridge connects the steering engine to a host simulation reached
// over a socket. Each tick the host sends a state readout frame and the
// engine answers with an actuation command frame. Sends run through a
// circuit breaker so a wedged host degrades the control loop instead of
// hanging it.
package bridge

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/halcyon-sim/go-steer/pkg/config"
	"github.com/halcyon-sim/go-steer/pkg/logging"
)

// Client is the engine side of the host connection.
type Client struct {
	mu   sync.Mutex
	conn net.Conn

	addr         string
	readTimeout  time.Duration
	writeTimeout time.Duration
	breaker      *Breaker
	logger       *logging.Logger
}

// NewClient creates a client for the configured host address. The
// connection is established by Connect.
func NewClient(cfg config.BridgeConfig) *Client {
	logger := logging.NewLogger()
	return &Client{
		addr:         cfg.Addr,
		readTimeout:  secondsDuration(cfg.ReadTimeout),
		writeTimeout: secondsDuration(cfg.WriteTimeout),
		breaker:      NewBreaker(cfg, logger),
		logger:       logger,
	}
}

// Connect dials the host, honoring the context deadline.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("failed to connect to host at %s: %w", c.addr, err)
	}
	c.conn = conn

	c.logger.Info(ctx, "connected to host", "addr", c.addr)
	return nil
}

// Close tears down the host connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// ReadState blocks for the next state readout frame from the host.
func (c *Client) ReadState(ctx context.Context) (*Readout, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetReadDeadline(deadline)
	} else {
		conn.SetReadDeadline(time.Now().Add(c.readTimeout))
	}
	defer conn.SetReadDeadline(time.Time{})

	msgType, data, err := readFrame(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read state frame: %w", err)
	}
	if msgType != StateReadout {
		return nil, fmt.Errorf("unexpected message type %d, want state readout", msgType)
	}

	var readout Readout
	if err := json.Unmarshal(data, &readout); err != nil {
		return nil, fmt.Errorf("failed to decode state frame: %w", err)
	}
	return &readout, nil
}

// SendCommand delivers an actuation command through the circuit breaker.
// When the breaker is open the command is dropped with an error and the
// host keeps whatever it was last told.
func (c *Client) SendCommand(ctx context.Context, cmd Command) error {
	return c.breaker.Execute(ctx, func() error {
		conn, err := c.connection()
		if err != nil {
			return err
		}

		data, err := json.Marshal(cmd)
		if err != nil {
			return fmt.Errorf("failed to encode command: %w", err)
		}

		if deadline, ok := ctx.Deadline(); ok {
			conn.SetWriteDeadline(deadline)
		} else {
			conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
		}
		defer conn.SetWriteDeadline(time.Time{})

		return writeFrame(conn, ActuationCommand, data)
	})
}

func (c *Client) connection() (net.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil, fmt.Errorf("not connected to host")
	}
	return c.conn, nil
}

// readFrame reads one type-prefixed, length-prefixed JSON frame.
func readFrame(r io.Reader) (MessageType, []byte, error) {
	var msgType MessageType
	if err := binary.Read(r, binary.BigEndian, &msgType); err != nil {
		return 0, nil, err
	}

	var msgLen uint16
	if err := binary.Read(r, binary.BigEndian, &msgLen); err != nil {
		return 0, nil, err
	}

	data := make([]byte, msgLen)
	if _, err := io.ReadFull(r, data); err != nil {
		return 0, nil, err
	}
	return msgType, data, nil
}

// writeFrame writes one type-prefixed, length-prefixed JSON frame.
func writeFrame(w io.Writer, msgType MessageType, data []byte) error {
	if len(data) > int(^uint16(0)) {
		return fmt.Errorf("frame too large: %d bytes", len(data))
	}
	if err := binary.Write(w, binary.BigEndian, msgType); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

func secondsDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
