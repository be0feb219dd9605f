package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harun/logtail/internal/config"
	"github.com/harun/logtail/internal/logger"
	"github.com/harun/logtail/internal/metrics"
	"github.com/harun/logtail/internal/ui"
	"github.com/harun/logtail/pkg/tailer"
)

// Options configure the runtime.
type Options struct {
	// Path is the file to tail.
	Path string

	// Plain disables the viewer and prints appended lines to Stdout.
	Plain bool

	// Stdout is the plain mode sink, defaulting to os.Stdout.
	Stdout io.Writer
}

// App wires a tail session to one of its frontends, the Bubble Tea viewer or
// the plain printer, and optionally exposes Prometheus metrics.
type App struct {
	config *config.Config
	logger *logger.Logger
	opts   Options

	metrics    *metrics.Metrics
	metricsSrv *http.Server
}

// New creates a new app instance
func New(cfg *config.Config, log *logger.Logger, opts Options) (*App, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("a file path is required")
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	a := &App{
		config: cfg,
		logger: log,
		opts:   opts,
	}

	if cfg.Metrics.Enabled {
		a.metrics = metrics.NewMetrics()
	}

	return a, nil
}

// Run blocks until ctx is cancelled or the viewer exits.
func (a *App) Run(ctx context.Context) error {
	if a.metrics != nil {
		a.startMetricsServer()
		defer a.stopMetricsServer()
	}

	if a.opts.Plain {
		return a.runPlain(ctx)
	}
	return a.runViewer(ctx)
}

// runViewer drives the Bubble Tea program. The session pushes batches into
// the program as messages; the viewport height feeds back into the wanted
// line count.
func (a *App) runViewer(ctx context.Context) error {
	viewHeight := &atomic.Int64{}
	viewHeight.Store(int64(a.config.Tail.MinLines))

	model := ui.New(ui.Options{
		Path:       a.opts.Path,
		Follow:     a.config.UI.Follow,
		StatusBar:  a.config.UI.StatusBar,
		ViewHeight: viewHeight,
	})
	program := tea.NewProgram(model, tea.WithContext(ctx))

	session, err := a.newSession(
		func() int {
			want := int(viewHeight.Load())
			if want < a.config.Tail.MinLines {
				want = a.config.Tail.MinLines
			}
			return want
		},
		func(lines []string) {
			program.Send(ui.BatchMsg{Lines: lines})
		},
		func(msg string) {
			program.Send(ui.DecodeErrorMsg{Message: msg})
		},
		func(err error) {
			if errors.Is(err, tailer.ErrDecode) {
				// The decode callback already delivered a message
				return
			}
			program.Send(ui.ReadErrorMsg{Err: err})
		},
	)
	if err != nil {
		return err
	}
	defer session.Stop()

	session.Start(func(bool) {
		state := session.State()
		a.observeWatch(state == tailer.StateWatching)
		program.Send(ui.StateMsg{State: state})
	})
	defer a.observeWatch(false)

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			// Shutdown through signal cancellation is a clean exit
			return nil
		}
		return err
	}
	return nil
}

// runPlain tails into the plain printer until the context ends.
func (a *App) runPlain(ctx context.Context) error {
	printer := newPlainPrinter(a.opts.Stdout)

	session, err := a.newSession(
		func() int { return a.config.Tail.MinLines },
		printer.deliver,
		nil,
		nil,
	)
	if err != nil {
		return err
	}
	defer session.Stop()

	ready := make(chan bool, 1)
	session.Start(func(ok bool) { ready <- ok })

	select {
	case ok := <-ready:
		if !ok {
			return fmt.Errorf("initial read of %s failed", a.opts.Path)
		}
	case <-ctx.Done():
		return nil
	}

	a.observeWatch(session.State() == tailer.StateWatching)
	defer a.observeWatch(false)

	<-ctx.Done()
	return nil
}

// newSession builds the tail session shared by both frontends, with metrics
// folded into the callbacks.
func (a *App) newSession(wantLines func() int, onBatch func([]string), onDecodeError func(string), onReadError func(error)) (*tailer.Session, error) {
	zlog := a.logger.GetZerolog()

	return tailer.New(tailer.Config{
		Path:          a.opts.Path,
		PartitionSize: a.config.Tail.PartitionSize,
		MaxBytes:      a.config.Tail.MaxBytes,
		WantLines:     wantLines,
		Logger:        &zlog,
		OnBatch: func(lines []string) {
			a.observeBatch(lines)
			onBatch(lines)
		},
		OnDecodeError: func(msg string) {
			if onDecodeError != nil {
				onDecodeError(msg)
			}
		},
		OnReadError: func(err error) {
			a.observeReadError(err)
			if onReadError != nil {
				onReadError(err)
			}
		},
	})
}

func (a *App) observeBatch(lines []string) {
	if a.metrics == nil {
		return
	}
	a.metrics.ReadsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	a.metrics.LinesDelivered.Set(float64(len(lines)))
}

func (a *App) observeReadError(err error) {
	if a.metrics == nil {
		return
	}
	outcome := metrics.OutcomeIOError
	if errors.Is(err, tailer.ErrDecode) {
		outcome = metrics.OutcomeDecodeError
	}
	a.metrics.ReadsTotal.WithLabelValues(outcome).Inc()
}

func (a *App) observeWatch(active bool) {
	if a.metrics == nil {
		return
	}
	value := 0.0
	if active {
		value = 1
	}
	a.metrics.WatchActive.Set(value)
}

func (a *App) startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())

	a.metricsSrv = &http.Server{
		Addr:    a.config.Metrics.Addr,
		Handler: mux,
	}

	go func() {
		a.logger.Info().Str("addr", a.config.Metrics.Addr).Msg("Metrics server listening")
		if err := a.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error().Err(err).Msg("Metrics server failed")
		}
	}()
}

func (a *App) stopMetricsServer() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := a.metricsSrv.Shutdown(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("Metrics server shutdown failed")
	}
}

// ReadOnce performs a single backward read of path and returns its tail
// lines. No watch is kept; the session is torn down once the batch arrives.
func ReadOnce(cfg *config.Config, log *logger.Logger, path string, want int) ([]string, error) {
	result := make(chan []string, 1)
	failure := make(chan error, 1)

	zlog := log.GetZerolog()
	session, err := tailer.New(tailer.Config{
		Path:          path,
		PartitionSize: cfg.Tail.PartitionSize,
		MaxBytes:      cfg.Tail.MaxBytes,
		WantLines:     func() int { return want },
		Logger:        &zlog,
		OnBatch: func(lines []string) {
			select {
			case result <- lines:
			default:
			}
		},
		OnReadError: func(err error) {
			select {
			case failure <- err:
			default:
			}
		},
	})
	if err != nil {
		return nil, err
	}
	defer session.Stop()

	done := make(chan bool, 1)
	session.Start(func(ok bool) { done <- ok })

	if ok := <-done; !ok {
		select {
		case err := <-failure:
			return nil, err
		default:
			return nil, fmt.Errorf("read %s failed", path)
		}
	}
	return <-result, nil
}
