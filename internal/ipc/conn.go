package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxEnvelopeSize bounds a single line on the wire; result sets with icons
// inlined as data URLs get large.
const maxEnvelopeSize = 8 << 20

// writeTimeout keeps a stuck peer from stalling outbound delivery
const writeTimeout = 2 * time.Second

// conn frames envelopes over a stream connection
type conn struct {
	id      string
	nc      net.Conn
	scanner *bufio.Scanner

	writeMu sync.Mutex
	enc     *json.Encoder
}

func newConn(nc net.Conn) *conn {
	scanner := bufio.NewScanner(nc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEnvelopeSize)
	return &conn{
		id:      uuid.New().String(),
		nc:      nc,
		scanner: scanner,
		enc:     json.NewEncoder(nc),
	}
}

// read returns the next envelope. A line that isn't valid JSON yields an
// error wrapping ErrMalformedPayload; the connection stays usable.
func (c *conn) read() (Envelope, error) {
	for c.scanner.Scan() {
		line := c.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var env Envelope
		if err := json.Unmarshal(line, &env); err != nil {
			return Envelope{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		return env, nil
	}
	if err := c.scanner.Err(); err != nil {
		return Envelope{}, err
	}
	return Envelope{}, io.EOF
}

// write sends one envelope; json.Encoder terminates it with a newline
func (c *conn) write(env Envelope) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.nc.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.enc.Encode(env)
}

func (c *conn) close() error {
	return c.nc.Close()
}
