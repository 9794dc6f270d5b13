package renderer

import (
	"math/rand"
	"sync"
)

// RowBand is a contiguous range of image rows [StartRow, EndRow) owned by one worker
type RowBand struct {
	Index    int
	StartRow int
	EndRow   int
}

// Rows returns the number of rows in the band
func (b RowBand) Rows() int {
	return b.EndRow - b.StartRow
}

// PartitionRows splits height rows into contiguous bands, one per worker.
// workers is clamped to [1, height]; the last band absorbs the remainder,
// so every row belongs to exactly one band.
func PartitionRows(height, workers int) []RowBand {
	if height <= 0 {
		return nil
	}
	workers = max(1, min(workers, height))

	rowsPerBand := height / workers
	bands := make([]RowBand, workers)
	for k := range bands {
		start := k * rowsPerBand
		end := start + rowsPerBand
		if k == workers-1 {
			end = height
		}
		bands[k] = RowBand{Index: k, StartRow: start, EndRow: end}
	}
	return bands
}

// WorkerPool runs one worker per row band and waits for all of them
type WorkerPool struct {
	workers []*Worker
	wg      sync.WaitGroup
}

// Worker renders a single band with its own random stream
type Worker struct {
	ID       int
	band     RowBand
	random   *rand.Rand
	renderer *TileRenderer
	progress *progressReporter
}

// NewWorkerPool creates a worker per band. Band k draws from a stream seeded with seed+k,
// so a render is reproducible for a given seed and band layout.
func NewWorkerPool(bands []RowBand, renderer *TileRenderer, seed int64, progress *progressReporter) *WorkerPool {
	wp := &WorkerPool{}
	for _, band := range bands {
		wp.workers = append(wp.workers, &Worker{
			ID:       band.Index,
			band:     band,
			random:   rand.New(rand.NewSource(seed + int64(band.Index))),
			renderer: renderer,
			progress: progress,
		})
	}
	return wp
}

// Run starts all workers and blocks until every band is finished
func (wp *WorkerPool) Run() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
	wp.wg.Wait()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	w.renderer.RenderBand(w.band, w.random, w.progress.RowDone)
}
