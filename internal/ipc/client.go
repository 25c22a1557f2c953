package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"

	"launchlist/internal/domain"
)

// Client is the backing-process side of the socket
type Client struct {
	c *conn
}

// Dial connects to a list listening at path
func Dial(ctx context.Context, path string) (*Client, error) {
	var d net.Dialer
	nc, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", path, err)
	}
	return &Client{c: newConn(nc)}, nil
}

// Send encodes and writes an event
func (cl *Client) Send(event domain.DomainEvent) error {
	env, err := Encode(event)
	if err != nil {
		return err
	}
	return cl.c.write(env)
}

// SendRaw writes an envelope as given, without checking the payload
func (cl *Client) SendRaw(channel string, payload json.RawMessage) error {
	return cl.c.write(Envelope{Channel: channel, Payload: payload})
}

// Receive blocks for the next message from the list. The envelope is
// returned alongside the decoded event so callers can show the raw payload.
func (cl *Client) Receive() (Envelope, domain.DomainEvent, error) {
	env, err := cl.c.read()
	if err != nil {
		return Envelope{}, nil, err
	}
	event, err := Decode(env)
	if err != nil {
		return env, nil, err
	}
	return env, event, nil
}

// Close closes the connection
func (cl *Client) Close() error {
	return cl.c.close()
}
