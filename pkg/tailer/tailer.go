package tailer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// State identifies the lifecycle phase of a Session.
type State int

const (
	// StateIdle means no read is running and no watcher is active.
	StateIdle State = iota
	// StateReading means a read is executing on the serial lane.
	StateReading
	// StateWatching means the watcher is active and waiting for changes.
	StateWatching
	// StateStopped is terminal; a stopped session cannot be restarted.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReading:
		return "reading"
	case StateWatching:
		return "watching"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session tails a single file. All reads, initial and watch-triggered, run
// one at a time on a serial lane, and each delivered batch fully replaces
// the previous one.
type Session struct {
	cfg    Config
	logger zerolog.Logger
	lane   *readLane

	mu      sync.Mutex
	state   State
	started bool
	watcher *fileWatcher
}

// New validates cfg and creates a Session. The session owns no file handle
// between reads; the target is opened fresh for each read.
func New(cfg Config) (*Session, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	base := log.Logger
	if cfg.Logger != nil {
		base = *cfg.Logger
	}
	logger := base.With().
		Str("session_id", uuid.New().String()).
		Str("path", cfg.Path).
		Logger()

	return &Session{
		cfg:    cfg,
		logger: logger,
		lane:   newReadLane(logger),
	}, nil
}

// Start performs one initial read and, when it succeeds, begins watching the
// target for changes. onDone is invoked exactly once with the outcome of the
// initial read. Start does not block; it is a no-op reporting failure when
// called twice or after Stop.
func (s *Session) Start(onDone func(success bool)) {
	if onDone == nil {
		onDone = func(bool) {}
	}

	s.mu.Lock()
	if s.state == StateStopped || s.started {
		state := s.state
		s.mu.Unlock()
		s.logger.Warn().Str("state", state.String()).Msg("Start ignored")
		go onDone(false)
		return
	}
	s.started = true
	s.mu.Unlock()

	if !s.lane.enqueue(func() { s.initialRead(onDone) }) {
		go onDone(false)
	}
}

// Stop ends the session: queued reads are discarded and the watcher exits.
// Idempotent; the session cannot be restarted.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.state == StateStopped {
		s.mu.Unlock()
		return
	}
	s.state = StateStopped
	watcher := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	s.lane.stop()
	if watcher != nil {
		watcher.stop()
	}
	s.logger.Info().Msg("Tail session stopped")
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) initialRead(onDone func(bool)) {
	if err := s.readOnce(); err != nil {
		s.logger.Error().Err(err).Msg("Initial read failed")
		s.setState(StateIdle)
		onDone(false)
		return
	}

	if s.beginWatching() {
		s.setState(StateWatching)
	} else {
		s.setState(StateIdle)
	}
	onDone(true)
}

// beginWatching establishes the file watcher. Failure to establish it is not
// fatal: the initial content stands, only live updates are lost.
func (s *Session) beginWatching() bool {
	watcher, err := newFileWatcher(s.logger, s.cfg.Path, s.scheduleRead)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to establish file watch, live updates disabled")
		return false
	}

	s.mu.Lock()
	if s.state == StateStopped {
		s.mu.Unlock()
		watcher.stop()
		return false
	}
	s.watcher = watcher
	s.mu.Unlock()
	return true
}

// scheduleRead queues a re-read on the serial lane. Every trigger queues its
// own read; triggers arriving after Stop are discarded.
func (s *Session) scheduleRead() {
	ok := s.lane.enqueue(func() {
		if err := s.readOnce(); err != nil {
			s.logger.Error().Err(err).Msg("Triggered read failed")
		}
		s.setState(StateWatching)
	})
	if !ok {
		s.logger.Debug().Msg("Read trigger discarded")
	}
}

// readOnce runs the full pipeline of a single read: consult the line-count
// policy, scan backward, reconstruct lines, trim to the wanted count and
// deliver. The file handle never outlives the read.
func (s *Session) readOnce() error {
	s.setState(StateReading)
	begin := time.Now()

	want := s.cfg.WantLines()
	if want < 0 {
		want = 0
	}

	lines, err := s.readTail(want)
	if err != nil {
		if errors.Is(err, ErrDecode) && s.cfg.OnDecodeError != nil {
			s.cfg.OnDecodeError(fmt.Sprintf("cannot read %s: %v", s.cfg.Path, err))
		}
		if s.cfg.OnReadError != nil {
			s.cfg.OnReadError(err)
		}
		return err
	}

	// Trimming to the wanted count keeps the delivered batch independent of
	// how the scan happened to be partitioned.
	if len(lines) > want {
		lines = lines[len(lines)-want:]
	}

	if s.stopped() {
		s.logger.Debug().Msg("Discarding batch read after stop")
		return nil
	}

	s.cfg.OnBatch(lines)
	s.logger.Debug().
		Int("lines", len(lines)).
		Dur("elapsed", time.Since(begin)).
		Msg("Delivered line batch")
	return nil
}

// readTail opens the target and produces its reconstructed tail lines.
func (s *Session) readTail(want int) ([]string, error) {
	file, err := s.cfg.Fs.Open(s.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.cfg.Path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", s.cfg.Path, err)
	}

	parts, err := mapPartitions(file, info.Size(), s.cfg.PartitionSize, s.cfg.MaxBytes, want)
	if err != nil {
		return nil, err
	}

	return reconstructLines(parts), nil
}

// setState moves the session to next unless it is already stopped; Stopped
// is terminal.
func (s *Session) setState(next State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateStopped {
		return
	}
	s.state = next
}

func (s *Session) stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateStopped
}
