// Package tailer reads the most recent lines of a growing text file and
// re-reads it whenever the file changes on disk.
//
// Invariants:
// - At most one read is in flight at a time; batches are delivered in
//   completion order.
// - Partitioning is invisible: reconstructed lines equal splitting the full
//   mapped range directly.
// - A backward scan performs at most ceil(maxBytes/partitionSize) window
//   reads.
// - Stop is idempotent and terminal.
//
// Usage:
//
//	session, err := tailer.New(tailer.Config{
//		Path:      "/var/log/app.log",
//		WantLines: func() int { return 40 },
//		OnBatch:   func(lines []string) { render(lines) },
//	})
//	if err != nil {
//		return err
//	}
//	defer session.Stop()
//	session.Start(func(ok bool) { log.Info().Bool("ok", ok).Msg("Initial read done") })
package tailer
