package protocol

import (
	"sync"

	"github.com/nvandessel/rankforge/internal/propgraph"
)

// Job is one asynchronous encode. Callers poll InProgress for a status flag
// and call Wait for the outcome; a job produces a batch or an error, never
// both. There is no cancellation: once started, an encode runs to completion
// or failure, and a failed encode is only retried by starting a new job.
type Job struct {
	mu      sync.Mutex
	running bool
	batch   *Batch
	err     error
	done    chan struct{}
}

// Start launches an encode of the given graph snapshot in the background.
// The graph must be a snapshot, not live state: nothing may mutate it while
// the job runs.
func (e *Encoder) Start(g propgraph.Graph, meta Metadata) *Job {
	j := &Job{
		running: true,
		done:    make(chan struct{}),
	}

	go func() {
		batch, err := e.Encode(g, meta)

		j.mu.Lock()
		j.running = false
		if err != nil {
			j.err = err
		} else {
			j.batch = batch
		}
		j.mu.Unlock()

		close(j.done)
	}()

	return j
}

// InProgress reports whether the encode is still running.
func (j *Job) InProgress() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

// Wait blocks until the encode finishes and returns its outcome.
func (j *Job) Wait() (*Batch, error) {
	<-j.done
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.batch, j.err
}
