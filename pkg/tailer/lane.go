package tailer

import (
	"sync"

	"github.com/rs/zerolog"
)

// readQueueDepth bounds how many triggers may be pending at once. A dropped
// trigger is harmless as long as one read remains queued, because every read
// observes the file as it is at execution time.
const readQueueDepth = 128

// readLane executes queued tasks one at a time in submission order. Every
// trigger enqueues its own task; nothing is coalesced.
type readLane struct {
	tasks    chan func()
	done     chan struct{}
	stopOnce sync.Once
	logger   zerolog.Logger
}

func newReadLane(logger zerolog.Logger) *readLane {
	l := &readLane{
		tasks:  make(chan func(), readQueueDepth),
		done:   make(chan struct{}),
		logger: logger,
	}
	go l.run()
	return l
}

// run drains the task queue until the lane is stopped.
func (l *readLane) run() {
	for {
		select {
		case <-l.done:
			return
		case task := <-l.tasks:
			// Tasks queued before the stop are discarded, not run.
			select {
			case <-l.done:
				return
			default:
			}
			task()
		}
	}
}

// enqueue schedules task on the lane. It reports false once the lane is
// stopped or the queue is full.
func (l *readLane) enqueue(task func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.tasks <- task:
		return true
	case <-l.done:
		return false
	default:
		l.logger.Warn().Int("depth", readQueueDepth).Msg("Read queue full, dropping trigger")
		return false
	}
}

// stop wakes the worker and prevents queued tasks from running. It does not
// wait for an in-flight task, so it is safe to call from a task's own
// callback.
func (l *readLane) stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}
