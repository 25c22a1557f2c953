package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"launchlist/internal/domain"
	"launchlist/internal/ipc"
)

const dialTimeout = 2 * time.Second

// NewSendCmd creates the send command
func NewSendCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <channel> [payload]",
		Short: "Send a message to a running list",
		Long: `Send one inbound message to a running list. The payload is JSON; pass "-"
to read it from stdin. Only query-results takes a payload.

Channels: query-results, select-previous-item, select-next-item,
copy-current-item-key, execute-current-item`,
		Example: `  launchlist send select-next-item
  launchlist send query-results '[{"id":"a","title":"Alpha","value":"alpha","action":"open"}]'
  launcher-core --json | launchlist send query-results -`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload string
			if len(args) == 2 {
				payload = args[1]
			}
			if payload == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read payload: %w", err)
				}
				payload = string(data)
			}

			env, err := buildEnvelope(args[0], payload)
			if err != nil {
				return err
			}

			_, cfg, err := loadConfig(root, nil)
			if err != nil {
				return err
			}
			return send(cmd.Context(), cfg.SocketPath, env)
		},
	}
	return cmd
}

// buildEnvelope checks that channel is inbound and payload fits it
func buildEnvelope(channel, payload string) (ipc.Envelope, error) {
	if !ipc.IsInbound(domain.EventType(channel)) {
		return ipc.Envelope{}, fmt.Errorf("%q is not an inbound channel: %w", channel, ipc.ErrUnknownChannel)
	}

	env := ipc.Envelope{Channel: channel}
	if trimmed := bytes.TrimSpace([]byte(payload)); len(trimmed) > 0 {
		if !json.Valid(trimmed) {
			return ipc.Envelope{}, fmt.Errorf("payload is not valid JSON: %w", ipc.ErrMalformedPayload)
		}
		env.Payload = json.RawMessage(trimmed)
	}

	if _, err := ipc.Decode(env); err != nil {
		return ipc.Envelope{}, err
	}
	return env, nil
}

func send(ctx context.Context, path string, env ipc.Envelope) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	client, err := ipc.Dial(ctx, path)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.SendRaw(env.Channel, env.Payload); err != nil {
		return fmt.Errorf("failed to send %s: %w", env.Channel, err)
	}
	fmt.Fprintf(os.Stderr, "sent %s\n", env.Channel)
	return nil
}
