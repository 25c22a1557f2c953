package ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"launchlist/internal/domain"
	"launchlist/internal/eventbus"
)

// ErrAlreadyRunning is returned by Listen when another list owns the socket
var ErrAlreadyRunning = errors.New("another instance is listening on the socket")

// Server accepts backing-process connections on a Unix socket. Inbound
// envelopes are decoded and published on the bus; outbound events published
// on the bus are written to every connected peer.
type Server struct {
	path string
	bus  eventbus.EventBus
	log  logrus.FieldLogger

	ln     net.Listener
	mu     sync.Mutex
	peers  map[*conn]struct{}
	unsubs []func()
	wg     sync.WaitGroup
	closed bool
}

// NewServer creates a server for the socket at path
func NewServer(path string, bus eventbus.EventBus, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{
		path:  path,
		bus:   bus,
		log:   log.WithField("component", "ipc"),
		peers: make(map[*conn]struct{}),
	}
}

// Path returns the socket path
func (s *Server) Path() string {
	return s.path
}

// Listen binds the socket, replacing a stale one left by a crashed instance
func (s *Server) Listen() error {
	if _, err := os.Stat(s.path); err == nil {
		probe, err := net.DialTimeout("unix", s.path, 200*time.Millisecond)
		if err == nil {
			probe.Close()
			return fmt.Errorf("%w: %s", ErrAlreadyRunning, s.path)
		}
		if err := os.Remove(s.path); err != nil {
			return fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	ln, err := net.Listen("unix", s.path)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.ln = ln
	for _, t := range domain.OutboundEvents {
		s.unsubs = append(s.unsubs, s.bus.Subscribe(t, s.broadcast))
	}
	s.mu.Unlock()

	s.log.WithField("socket", s.path).Info("listening")
	return nil
}

// Serve accepts connections until ctx is done or the server is closed
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		return errors.New("ipc: Serve called before Listen")
	}

	go func() {
		<-ctx.Done()
		s.Close()
	}()

	for {
		nc, err := ln.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept failed: %w", err)
		}

		c := newConn(nc)
		if !s.addPeer(c) {
			c.close()
			return nil
		}

		s.wg.Add(1)
		go s.handle(c)
	}
}

// Close stops accepting, drops every peer and removes the socket file
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
	var err error
	if s.ln != nil {
		err = s.ln.Close()
	}
	for c := range s.peers {
		c.close()
	}
	s.mu.Unlock()

	s.wg.Wait()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

// PeerCount returns the number of connected peers
func (s *Server) PeerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.peers)
}

func (s *Server) addPeer(c *conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.peers[c] = struct{}{}
	return true
}

func (s *Server) removePeer(c *conn) {
	s.mu.Lock()
	delete(s.peers, c)
	s.mu.Unlock()
	c.close()
}

// handle reads envelopes from one peer until it disconnects
func (s *Server) handle(c *conn) {
	defer s.wg.Done()
	defer s.removePeer(c)

	log := s.log.WithField("peer", c.id)
	log.Debug("peer connected")
	for {
		env, err := c.read()
		if err != nil {
			if errors.Is(err, ErrMalformedPayload) {
				log.WithError(err).Warn("dropping malformed envelope")
				continue
			}
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				log.WithError(err).Warn("peer read failed")
			}
			log.Debug("peer disconnected")
			return
		}

		if !IsInbound(domain.EventType(env.Channel)) {
			log.WithField("channel", env.Channel).Warn("dropping message on a channel peers may not send")
			continue
		}

		event, err := Decode(env)
		if err != nil {
			log.WithError(err).WithField("channel", env.Channel).Warn("dropping message")
			continue
		}
		s.bus.Publish(event)
	}
}

// broadcast writes an outbound event to every peer. Sends are fire and
// forget; a peer that can't be written to is dropped.
func (s *Server) broadcast(event domain.DomainEvent) {
	env, err := Encode(event)
	if err != nil {
		s.log.WithError(err).Error("failed to encode outbound message")
		return
	}

	s.mu.Lock()
	peers := make([]*conn, 0, len(s.peers))
	for c := range s.peers {
		peers = append(peers, c)
	}
	s.mu.Unlock()

	if len(peers) == 0 {
		s.log.WithField("channel", env.Channel).Debug("no peers connected, message not delivered")
		return
	}

	for _, c := range peers {
		if err := c.write(env); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{"channel": env.Channel, "peer": c.id}).Warn("dropping peer after failed write")
			s.removePeer(c)
		}
	}
}
