// Package progress reports build throughput as the input stream is consumed.
package progress

import (
	"time"

	"github.com/rs/zerolog"
)

// logEvery is how often, in processed games, a progress line is emitted —
// the same cadence as the original tool's PrintProgress (SPEC_FULL.md §4.6).
const logEvery = 10000

// Printer logs a periodic progress line through a zerolog.Logger instead of
// the original tool's carriage-return console line, matching how the rest of
// this codebase reports (internal/logx). It satisfies book.Progress
// structurally.
type Printer struct {
	log        zerolog.Logger
	totalGames int
	processed  int
	accepted   int
	start      time.Time
}

// NewPrinter returns a Printer that reports against an expected totalGames
// count, used only to compute a completion percentage.
func NewPrinter(log zerolog.Logger, totalGames int) *Printer {
	return &Printer{log: log, totalGames: totalGames, start: time.Now()}
}

// StartPGN counts one more game seen from the input stream and, every
// logEvery games, emits a progress line.
func (p *Printer) StartPGN() {
	p.processed++
	if p.processed%logEvery != 0 {
		return
	}
	pct := 0.0
	if p.totalGames > 0 {
		pct = float64(p.processed) * 100 / float64(p.totalGames)
	}
	p.log.Info().
		Float64("percent", pct).
		Dur("elapsed", time.Since(p.start)).
		Int("processed", p.processed).
		Int("accepted", p.accepted).
		Msg("progress")
}

// StartMoves records the current count of accepted games, reported on the
// next progress line.
func (p *Printer) StartMoves(accepted int) {
	p.accepted = accepted
}
