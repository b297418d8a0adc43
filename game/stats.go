package game

import "time"

// RunStats aggregates finished games over the lifetime of the
// process. Nothing is written to disk; the totals only feed the exit
// log line.
type RunStats struct {
	StartTime time.Time
	Games     int
	Best      int

	total int
}

func NewRunStats() *RunStats {
	return &RunStats{StartTime: time.Now()}
}

// Record adds one finished game.
func (r *RunStats) Record(score int) {
	r.Games++
	r.total += score
	if score > r.Best {
		r.Best = score
	}
}

// Mean returns the average score of recorded games.
func (r *RunStats) Mean() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.total) / float64(r.Games)
}

// Uptime is the wall-clock time since the process started playing.
func (r *RunStats) Uptime() time.Duration {
	return time.Since(r.StartTime)
}
