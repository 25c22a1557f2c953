package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"launchlist/internal/domain"
	"launchlist/internal/ipc"
)

// NewListenCmd creates the listen command
func NewListenCmd(root *rootOptions) *cobra.Command {
	var useClipboard bool

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Print messages sent by a running list",
		Long: `Connect to a running list and print every outbound message (window-resize,
item-details-request, copy-current-item, execute-item) as one line of JSON.
With --clipboard, copy-current-item also writes the item value to the system
clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig(root, nil)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			client, err := ipc.Dial(ctx, cfg.SocketPath)
			if err != nil {
				return err
			}
			defer client.Close()

			var copyFn func(string) error
			if useClipboard {
				copyFn = clipboard.WriteAll
			}
			l := &listener{out: cmd.OutOrStdout(), copy: copyFn, log: logrus.StandardLogger()}

			go func() {
				<-ctx.Done()
				client.Close()
			}()
			if err := l.run(client); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&useClipboard, "clipboard", false, "write copy-current-item values to the system clipboard")
	return cmd
}

type receiver interface {
	Receive() (ipc.Envelope, domain.DomainEvent, error)
}

type listener struct {
	out  io.Writer
	copy func(string) error
	log  logrus.FieldLogger
}

// run prints envelopes until the connection closes
func (l *listener) run(r receiver) error {
	for {
		env, event, err := r.Receive()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil && !errors.Is(err, ipc.ErrMalformedPayload) && !errors.Is(err, ipc.ErrUnknownChannel) {
			return err
		}
		if err != nil {
			l.log.WithError(err).WithField("channel", env.Channel).Warn("dropping message")
			continue
		}
		if err := l.handle(env, event); err != nil {
			l.log.WithError(err).Warn("failed to handle message")
		}
	}
}

func (l *listener) handle(env ipc.Envelope, event domain.DomainEvent) error {
	if len(env.Payload) > 0 {
		fmt.Fprintf(l.out, "%s %s\n", env.Channel, env.Payload)
	} else {
		fmt.Fprintln(l.out, env.Channel)
	}

	copied, ok := event.(domain.CopyCurrentItemEvent)
	if !ok || l.copy == nil {
		return nil
	}
	text := copied.Item.Value
	if text == "" {
		text = copied.Item.DisplayTitle()
	}
	if err := l.copy(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
