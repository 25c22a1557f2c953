package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"launchlist/internal/domain"
	"launchlist/internal/eventbus"
)

// Watch reloads the config file whenever it changes on disk and publishes a
// ConfigChangedEvent with the new theme. It blocks until ctx is done.
// The parent directory is watched since editors often replace the file.
func Watch(ctx context.Context, svc ConfigService, bus eventbus.EventBus, log logrus.FieldLogger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	path := filepath.Clean(svc.Path())
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, err := svc.LoadFromPath(path)
			if err != nil {
				log.WithError(err).Warn("ignoring config change")
				continue
			}
			log.WithField("path", path).Info("config reloaded")
			bus.Publish(domain.ConfigChangedEvent{Theme: cfg.Theme})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("config watcher error")
		}
	}
}
