package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Loader manages configuration loading, watching, and atomic updates, so a
// rotated API token is picked up without restarting the process.
type Loader struct {
	mu         sync.Mutex
	configPath string
	config     *Config
	watcher    *fsnotify.Watcher
	onChange   func(*Config) error
	logger     *zap.Logger
	stopChan   chan struct{}
	stopOnce   sync.Once
}

// NewLoader creates a new configuration loader with file watching.
func NewLoader(configPath string, logger *zap.Logger) (*Loader, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Loader{
		configPath: configPath,
		watcher:    watcher,
		logger:     logger,
		stopChan:   make(chan struct{}),
	}, nil
}

// Load loads the initial configuration from file.
func (l *Loader) Load() (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cfg, err := Load(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	l.config = cfg
	return cfg, nil
}

// Current returns the most recently loaded configuration.
func (l *Loader) Current() *Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.config
}

// StartWatching starts watching the configuration file for changes.
// The onChange callback is called with the reloaded configuration.
func (l *Loader) StartWatching(onChange func(*Config) error) error {
	l.mu.Lock()
	l.onChange = onChange
	l.mu.Unlock()

	if err := l.watcher.Add(l.configPath); err != nil {
		return fmt.Errorf("failed to watch config file: %w", err)
	}

	go l.watchLoop()

	l.logger.Info("Started watching configuration file",
		zap.String("path", l.configPath))

	return nil
}

// watchLoop runs the file watching loop.
func (l *Loader) watchLoop() {
	for {
		select {
		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				l.handleFileChange()
			}

		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.logger.Error("File watcher error", zap.Error(err))

		case <-l.stopChan:
			return
		}
	}
}

// handleFileChange reloads the configuration and notifies the callback.
func (l *Loader) handleFileChange() {
	l.logger.Info("Configuration file changed, reloading...")

	cfg, err := Load(l.configPath)
	if err != nil {
		l.logger.Error("Failed to reload config", zap.Error(err))
		return
	}
	if err := cfg.Validate(); err != nil {
		l.logger.Error("Reloaded config is invalid", zap.Error(err))
		return
	}

	l.mu.Lock()
	l.config = cfg
	onChange := l.onChange
	l.mu.Unlock()

	if onChange != nil {
		if err := onChange(cfg); err != nil {
			l.logger.Error("Config change callback failed", zap.Error(err))
		}
	}
}

// Stop stops watching and releases the watcher.
func (l *Loader) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		if err := l.watcher.Close(); err != nil {
			l.logger.Error("Failed to close file watcher", zap.Error(err))
		}
	})
}
