package main

import (
	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every command
type rootOptions struct {
	configPath string
	socketPath string
}

// NewRootCmd creates the root command. Without a subcommand it runs the list.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "launchlist",
		Short: "Launcher result list driven over a local socket",
		Long: `launchlist shows the results of a launcher query and lets you move through
them, copy them and run them. The launcher core talks to it over a Unix
socket: it pushes result sets and navigation commands, and receives resize,
details, copy and execute requests back.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/launchlist/config.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.socketPath, "socket", "", "socket path (overrides socket_path from the config)")

	rootCmd.AddCommand(NewSendCmd(opts))
	rootCmd.AddCommand(NewListenCmd(opts))

	return rootCmd
}
