package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"launchlist/internal/config"
	"launchlist/internal/eventbus"
	"launchlist/internal/ipc"
	"launchlist/internal/logging"
	"launchlist/internal/ui"
)

// loadConfig reads the config and applies flag overrides
func loadConfig(opts *rootOptions, bus eventbus.EventBus) (config.ConfigService, *config.Config, error) {
	var svc config.ConfigService
	if bus != nil {
		svc = config.NewConfigServiceWithBus(opts.configPath, bus)
	} else {
		svc = config.NewConfigService(opts.configPath)
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}
	if opts.socketPath != "" {
		cfg.SocketPath = opts.socketPath
	}
	return svc, cfg, nil
}

func runList(parent context.Context, opts *rootOptions) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()

	svc, cfg, err := loadConfig(opts, bus)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logrus.StandardLogger()
	log.WithField("config", svc.Path()).Info("starting")

	srv := ipc.NewServer(cfg.SocketPath, bus, log)
	if err := srv.Listen(); err != nil {
		return err
	}
	defer srv.Close()

	go func() {
		if err := srv.Serve(ctx); err != nil {
			log.WithError(err).Error("ipc server stopped")
		}
	}()

	go func() {
		if err := config.Watch(ctx, svc, bus, log); err != nil {
			log.WithError(err).Warn("config reload disabled")
		}
	}()

	model := ui.NewModel(bus, cfg, log)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	log.Info("starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.WithError(err).Error("error running program")
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("UI exited normally")
	return nil
}
