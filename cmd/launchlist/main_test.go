package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchlist/internal/domain"
	"launchlist/internal/eventbus"
	"launchlist/internal/ipc"
)

func TestBuildEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		payload string
		wantErr error
	}{
		{name: "navigation without payload", channel: "select-next-item"},
		{name: "results array", channel: "query-results", payload: `[{"id":"a","action":"open"}]`},
		{name: "empty results", channel: "query-results"},
		{name: "outbound channel", channel: "window-resize", payload: `{"height":90}`, wantErr: ipc.ErrUnknownChannel},
		{name: "unknown channel", channel: "bogus", wantErr: ipc.ErrUnknownChannel},
		{name: "invalid json", channel: "query-results", payload: `[{`, wantErr: ipc.ErrMalformedPayload},
		{name: "results not an array", channel: "query-results", payload: `{"id":"a"}`, wantErr: ipc.ErrMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := buildEnvelope(tt.channel, tt.payload)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.channel, env.Channel)
		})
	}
}

type fakeReceiver struct {
	envs []ipc.Envelope
}

func (f *fakeReceiver) Receive() (ipc.Envelope, domain.DomainEvent, error) {
	if len(f.envs) == 0 {
		return ipc.Envelope{}, nil, io.EOF
	}
	env := f.envs[0]
	f.envs = f.envs[1:]
	event, err := ipc.Decode(env)
	return env, event, err
}

func TestListenerPrintsAndCopies(t *testing.T) {
	var out bytes.Buffer
	var copied []string
	l := &listener{
		out:  &out,
		copy: func(s string) error { copied = append(copied, s); return nil },
		log:  logrus.New(),
	}

	r := &fakeReceiver{envs: []ipc.Envelope{
		{Channel: "window-resize", Payload: []byte(`{"height":150}`)},
		{Channel: "bogus"},
		{Channel: "copy-current-item", Payload: []byte(`{"id":"a","value":"alpha"}`)},
		{Channel: "copy-current-item", Payload: []byte(`{"id":"b","title":"Beta"}`)},
	}}

	require.NoError(t, l.run(r))
	assert.Equal(t, []string{"alpha", "Beta"}, copied)
	assert.Contains(t, out.String(), `window-resize {"height":150}`)
	assert.NotContains(t, out.String(), "bogus")
}

func TestListenerCopyError(t *testing.T) {
	l := &listener{
		out:  io.Discard,
		copy: func(string) error { return errors.New("no clipboard") },
		log:  logrus.New(),
	}
	env := ipc.Envelope{Channel: "copy-current-item", Payload: []byte(`{"value":"x"}`)}
	event, err := ipc.Decode(env)
	require.NoError(t, err)

	assert.Error(t, l.handle(env, event))
}

func TestSendCommandReachesServer(t *testing.T) {
	dir, err := os.MkdirTemp("", "ll")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	sock := filepath.Join(dir, "s.sock")

	bus := eventbus.New()
	defer bus.Close()
	got := make(chan domain.DomainEvent, 1)
	bus.Subscribe(domain.EventQueryResults, func(e eventbus.DomainEvent) { got <- e })

	srv := ipc.NewServer(sock, bus, nil)
	require.NoError(t, srv.Listen())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Serve(ctx)
	defer srv.Close()

	cmd := NewRootCmd()
	cmd.SetArgs([]string{
		"--config", filepath.Join(dir, "missing.toml"),
		"--socket", sock,
		"send", "query-results", `[{"id":"a","title":"Alpha","action":"open"}]`,
	})
	cmd.SetOut(io.Discard)
	require.NoError(t, cmd.Execute())

	select {
	case e := <-got:
		results := e.(domain.QueryResultsEvent).Results
		require.Len(t, results, 1)
		assert.Equal(t, "Alpha", results[0].Title)
	case <-time.After(2 * time.Second):
		t.Fatal("query-results never reached the bus")
	}
}

func TestSendCommandRejectsOutbound(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"send", "execute-item", `{}`})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.ErrorIs(t, cmd.Execute(), ipc.ErrUnknownChannel)
}
