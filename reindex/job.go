// Copyright 2026 Vantry Commerce
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reindex

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/index"
	"github.com/vantry/shopsearch/pipeline"
)

// DefaultBatchSize is used when Start is given a batch size below 1.
const DefaultBatchSize = 50

// State is the job's lifecycle position.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Status is a point-in-time view of a job. Total is frozen when a fresh
// start begins, not read live from the store.
type Status struct {
	State     State
	Processed int
	Total     int
	Error     string
}

// Job coordinates a full rebuild of the search index. One Job owns its
// status; Pause and Status may be called from other goroutines while
// Start or Resume runs the loop.
type Job struct {
	store      *pipeline.SnapshotStore
	builder    *pipeline.DocumentBuilder
	writer     index.Writer
	locales    []string
	currencies []string
	logger     *slog.Logger
	progress   *ProgressTracker

	mu        sync.Mutex
	state     State
	processed int
	total     int
	batchSize int
	err       error
}

// Option configures a Job.
type Option func(*Job) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(j *Job) error {
		if logger == nil {
			logger = slog.Default()
		}
		j.logger = logger
		return nil
	}
}

// WithProgress attaches a progress tracker that is restarted on every fresh
// start and advanced at each batch boundary.
func WithProgress(progress *ProgressTracker) Option {
	return func(j *Job) error {
		j.progress = progress
		return nil
	}
}

// NewJob creates an idle reindex job.
func NewJob(store *pipeline.SnapshotStore, builder *pipeline.DocumentBuilder, writer index.Writer, locales, currencies []string, opts ...Option) (*Job, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if builder == nil {
		return nil, ErrNilBuilder
	}
	if writer == nil {
		return nil, ErrNilWriter
	}

	j := &Job{
		store:      store,
		builder:    builder,
		writer:     writer,
		locales:    locales,
		currencies: currencies,
		logger:     slog.Default(),
		state:      StateIdle,
		batchSize:  DefaultBatchSize,
	}
	for _, opt := range opts {
		if err := opt(j); err != nil {
			return nil, err
		}
	}
	return j, nil
}

// Status reports the job's current state.
func (j *Job) Status() Status {
	j.mu.Lock()
	defer j.mu.Unlock()

	status := Status{
		State:     j.state,
		Processed: j.processed,
		Total:     j.total,
	}
	if j.err != nil {
		status.Error = j.err.Error()
	}
	return status
}

// Start begins a full reindex and runs it to completion, pause, or failure.
//
// From idle, completed, or failed, Start resets progress, freezes the
// snapshot total, and opens a fresh staging area. Start on a running job is
// a no-op. Start on a paused job re-enters the loop with progress intact,
// exactly like Resume.
func (j *Job) Start(ctx context.Context, batchSize int) error {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}

	j.mu.Lock()
	if j.state == StateRunning {
		j.mu.Unlock()
		return nil
	}

	j.batchSize = batchSize
	fresh := j.state == StateIdle || j.state == StateCompleted || j.state == StateFailed
	if fresh {
		j.processed = 0
		j.err = nil
		j.total = j.store.Size()
	}
	j.mu.Unlock()

	if fresh {
		if err := j.writer.BeginFullReindex(ctx); err != nil {
			return fmt.Errorf("begin full reindex: %w", err)
		}
		if j.progress != nil {
			j.progress.Start(j.total)
		}
		j.logger.Info("full reindex started", "total", j.total, "batch_size", batchSize)
	}

	j.setState(StateRunning)
	return j.processLoop(ctx)
}

// Pause requests a halt at the next batch boundary. Progress is kept.
// No-op unless the job is running.
func (j *Job) Pause() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.state == StateRunning {
		j.state = StatePaused
		j.logger.Info("full reindex pausing", "processed", j.processed, "total", j.total)
	}
}

// Resume re-enters the processing loop with progress unchanged.
// No-op unless the job is paused.
func (j *Job) Resume(ctx context.Context) error {
	j.mu.Lock()
	if j.state != StatePaused {
		j.mu.Unlock()
		return nil
	}
	j.state = StateRunning
	j.mu.Unlock()

	j.logger.Info("full reindex resumed", "processed", j.processed)
	return j.processLoop(ctx)
}

// processLoop drives batches until the snapshot is exhausted, the job is
// paused, or a writer call fails. The snapshot is frozen at loop entry.
func (j *Job) processLoop(ctx context.Context) error {
	events := j.store.Snapshot()

	for {
		j.mu.Lock()
		if j.state != StateRunning || j.processed >= len(events) {
			j.mu.Unlock()
			break
		}
		start := j.processed
		end := min(start+j.batchSize, len(events))
		j.mu.Unlock()

		batch := events[start:end]
		documents := make([]core.IndexDocument, 0, len(batch)*len(j.locales)*len(j.currencies))
		for _, event := range batch {
			documents = append(documents, j.builder.Build(event, j.locales, j.currencies)...)
		}

		if err := j.writer.WriteBatch(ctx, documents); err != nil {
			return j.fail(ctx, fmt.Errorf("write batch at offset %d: %w", start, err))
		}

		j.mu.Lock()
		j.processed = end
		j.mu.Unlock()
		if j.progress != nil {
			j.progress.Increment(end - start)
		}
	}

	j.mu.Lock()
	done := j.processed >= len(events) && j.state == StateRunning
	j.mu.Unlock()
	if !done {
		return nil
	}

	if err := j.writer.FinalizeFullReindex(ctx); err != nil {
		return j.fail(ctx, fmt.Errorf("finalize full reindex: %w", err))
	}
	j.setState(StateCompleted)
	if j.progress != nil {
		j.progress.Finish()
	}
	j.logger.Info("full reindex completed", "total", len(events))
	return nil
}

// fail rolls the staged writes back, records the error, and returns it.
// Rollback runs detached from the caller's context so a cancellation that
// caused the failure cannot also strand the staging area.
func (j *Job) fail(ctx context.Context, err error) error {
	if rollbackErr := j.writer.RollbackFullReindex(context.WithoutCancel(ctx)); rollbackErr != nil {
		j.logger.Error("rollback after failed reindex", "error", rollbackErr)
	}

	j.mu.Lock()
	j.state = StateFailed
	j.err = err
	j.mu.Unlock()

	j.logger.Error("full reindex failed", "error", err)
	return err
}

func (j *Job) setState(state State) {
	j.mu.Lock()
	j.state = state
	j.mu.Unlock()
}
