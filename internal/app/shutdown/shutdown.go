package shutdown

//go:generate mockgen -source=shutdown.go -destination=shutdown_mock.go -package=shutdown

import (
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"bootsplash/internal/config"
	"bootsplash/internal/config/logger"
)

// Signal is the process-level exit request read by the playback loops
type Signal interface {
	Requested() bool
	Request(reason string)
	Start() error
	Close()
}

// signalState implements the Signal interface
type signalState struct {
	exitFile  string
	signals   bool
	requested atomic.Bool
	fsWatcher *fsnotify.Watcher
	sigCh     chan os.Signal
	done      chan struct{}
	once      sync.Once
	log       logger.Logger
}

// New creates a Signal watching the configured exit file and process signals
func New(cfg *config.Config, log logger.Logger) Signal {
	return &signalState{
		exitFile: cfg.Exit.File,
		signals:  cfg.Exit.Signals,
		done:     make(chan struct{}),
		log:      log.WithComponent("SHUTDOWN"),
	}
}

// Requested reports whether exit has been requested
func (s *signalState) Requested() bool {
	return s.requested.Load()
}

// Request marks the exit request; only the first reason is logged
func (s *signalState) Request(reason string) {
	if s.requested.CompareAndSwap(false, true) {
		s.log.Info().Msgf("Exit requested: %s", reason)
	}
}

// Start installs the signal handler and the exit file watcher. A missing
// exit file directory only disables the file trigger.
func (s *signalState) Start() error {
	if s.signals {
		s.sigCh = make(chan os.Signal, 1)
		signal.Notify(s.sigCh, syscall.SIGINT, syscall.SIGTERM)

		go s.waitSignal()
	}

	if s.exitFile == "" {
		return nil
	}

	if _, err := os.Stat(s.exitFile); err == nil {
		s.Request("exit file present")
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := fsw.Add(filepath.Dir(s.exitFile)); err != nil {
		fsw.Close()
		s.log.Warn().Err(err).Msgf("Cannot watch exit file '%s'", s.exitFile)

		return nil
	}

	s.fsWatcher = fsw

	go s.processEvents()

	return nil
}

func (s *signalState) waitSignal() {
	select {
	case sig := <-s.sigCh:
		s.Request(sig.String())
	case <-s.done:
	}
}

// processEvents requests exit when the exit file is created or written
func (s *signalState) processEvents() {
	for {
		select {
		case event, ok := <-s.fsWatcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) == filepath.Clean(s.exitFile) && event.Has(fsnotify.Create|fsnotify.Write) {
				s.Request("exit file created")
			}
		case err, ok := <-s.fsWatcher.Errors:
			if !ok {
				return
			}

			s.log.Error().Err(err).Msg("Exit file watcher error")
		case <-s.done:
			return
		}
	}
}

// Close stops the signal handler and the watcher
func (s *signalState) Close() {
	s.once.Do(func() {
		close(s.done)

		if s.sigCh != nil {
			signal.Stop(s.sigCh)
		}

		if s.fsWatcher != nil {
			s.fsWatcher.Close()
		}
	})
}
