package renderer

import (
	"sync"
	"sync/atomic"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// progressInterval is how many completed rows pass between progress lines
const progressInterval = 10

// progressReporter counts finished rows across workers and logs throttled progress.
// The mutex only keeps log lines from interleaving; it never guards render state.
type progressReporter struct {
	totalRows int
	completed atomic.Int64
	mu        sync.Mutex
	logger    core.Logger
}

func newProgressReporter(totalRows int, logger core.Logger) *progressReporter {
	return &progressReporter{totalRows: totalRows, logger: logger}
}

// RowDone records one finished row
func (p *progressReporter) RowDone() {
	completed := int(p.completed.Add(1))
	if completed%progressInterval != 0 && completed != p.totalRows {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	percent := float64(completed) / float64(p.totalRows) * 100.0
	p.logger.Printf("Progress: %.1f%% (%d/%d)\n", percent, completed, p.totalRows)
}

// Completed returns the number of finished rows
func (p *progressReporter) Completed() int {
	return int(p.completed.Load())
}
