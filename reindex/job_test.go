package reindex

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/index"
	"github.com/vantry/shopsearch/pipeline"
)

// hookedWriter wraps the in-memory writer with test instrumentation: an
// optional gate that blocks WriteBatch until released, a one-shot write
// failure, and a BeginFullReindex call counter.
type hookedWriter struct {
	*index.InMemoryWriter
	begins   atomic.Int64
	failNext atomic.Bool
	entered  chan struct{}
	gate     chan struct{}
}

func newHookedWriter() *hookedWriter {
	return &hookedWriter{InMemoryWriter: index.NewInMemoryWriter()}
}

func (w *hookedWriter) BeginFullReindex(ctx context.Context) error {
	w.begins.Add(1)
	return w.InMemoryWriter.BeginFullReindex(ctx)
}

func (w *hookedWriter) WriteBatch(ctx context.Context, documents []core.IndexDocument) error {
	if w.entered != nil {
		w.entered <- struct{}{}
		<-w.gate
	}
	if w.failNext.CompareAndSwap(true, false) {
		return errors.New("backend unavailable")
	}
	return w.InMemoryWriter.WriteBatch(ctx, documents)
}

func seededStore(t *testing.T, n int) *pipeline.SnapshotStore {
	t.Helper()
	store := pipeline.NewSnapshotStore()
	for i := 1; i <= n; i++ {
		store.Apply(core.CatalogEvent{
			ID:     core.CatalogID(i),
			Domain: core.DomainProduct,
			Name:   "Item",
		})
	}
	return store
}

func newTestJob(t *testing.T, store *pipeline.SnapshotStore, writer index.Writer, opts ...Option) *Job {
	t.Helper()
	job, err := NewJob(store, pipeline.NewDocumentBuilder(nil), writer,
		[]string{"en-US"}, []string{"USD"}, opts...)
	require.NoError(t, err)
	return job
}

func TestStartRunsToCompletion(t *testing.T) {
	writer := newHookedWriter()
	job := newTestJob(t, seededStore(t, 5), writer)

	require.NoError(t, job.Start(context.Background(), 2))

	status := job.Status()
	assert.Equal(t, StateCompleted, status.State)
	assert.Equal(t, 5, status.Processed)
	assert.Equal(t, 5, status.Total)
	assert.Empty(t, status.Error)

	assert.Len(t, writer.Snapshot(), 5, "every snapshot item's documents are live after finalize")
}

func TestStartEmptySnapshot(t *testing.T) {
	writer := newHookedWriter()
	job := newTestJob(t, pipeline.NewSnapshotStore(), writer)

	require.NoError(t, job.Start(context.Background(), 10))

	status := job.Status()
	assert.Equal(t, StateCompleted, status.State)
	assert.Zero(t, status.Total)
	assert.Zero(t, status.Processed)
}

func TestPauseAndResume(t *testing.T) {
	writer := newHookedWriter()
	writer.entered = make(chan struct{})
	writer.gate = make(chan struct{})
	job := newTestJob(t, seededStore(t, 4), writer)

	done := make(chan error, 1)
	go func() { done <- job.Start(context.Background(), 2) }()

	// First batch is inside the writer. Pause, then let the write finish:
	// the pause takes effect at the batch boundary without losing progress.
	<-writer.entered
	job.Pause()
	writer.gate <- struct{}{}
	require.NoError(t, <-done)

	status := job.Status()
	assert.Equal(t, StatePaused, status.State)
	assert.Equal(t, 2, status.Processed)
	assert.Equal(t, 4, status.Total)

	go func() { done <- job.Resume(context.Background()) }()
	<-writer.entered
	writer.gate <- struct{}{}
	require.NoError(t, <-done)

	status = job.Status()
	assert.Equal(t, StateCompleted, status.State)
	assert.Equal(t, status.Total, status.Processed, "processed equals total exactly at completion")
	assert.Len(t, writer.Snapshot(), 4)
	assert.Equal(t, int64(1), writer.begins.Load(), "resume never re-stages")
}

func TestStartWhilePausedActsAsResume(t *testing.T) {
	writer := newHookedWriter()
	writer.entered = make(chan struct{})
	writer.gate = make(chan struct{})
	job := newTestJob(t, seededStore(t, 4), writer)

	done := make(chan error, 1)
	go func() { done <- job.Start(context.Background(), 2) }()
	<-writer.entered
	job.Pause()
	writer.gate <- struct{}{}
	require.NoError(t, <-done)
	require.Equal(t, StatePaused, job.Status().State)

	go func() { done <- job.Start(context.Background(), 2) }()
	<-writer.entered
	writer.gate <- struct{}{}
	require.NoError(t, <-done)

	status := job.Status()
	assert.Equal(t, StateCompleted, status.State)
	assert.Equal(t, 4, status.Processed)
	assert.Equal(t, int64(1), writer.begins.Load(), "start on a paused job keeps progress and staging")
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	writer := newHookedWriter()
	writer.entered = make(chan struct{})
	writer.gate = make(chan struct{})
	job := newTestJob(t, seededStore(t, 2), writer)

	done := make(chan error, 1)
	go func() { done <- job.Start(context.Background(), 1) }()
	<-writer.entered

	require.NoError(t, job.Start(context.Background(), 1), "second start returns immediately")
	assert.Equal(t, int64(1), writer.begins.Load())

	writer.gate <- struct{}{}
	<-writer.entered
	writer.gate <- struct{}{}
	require.NoError(t, <-done)
	assert.Equal(t, StateCompleted, job.Status().State)
}

func TestResumeWhenNotPausedIsNoOp(t *testing.T) {
	writer := newHookedWriter()
	job := newTestJob(t, seededStore(t, 1), writer)

	require.NoError(t, job.Resume(context.Background()), "resume on idle is a no-op")
	assert.Equal(t, StateIdle, job.Status().State)
}

func TestFailureRollsBackAndStaysRestartable(t *testing.T) {
	writer := newHookedWriter()
	ctx := context.Background()

	// Pre-existing live content must survive the failed rebuild.
	require.NoError(t, writer.ReplaceCatalogDocuments(ctx, 99, []core.IndexDocument{{
		ID: core.DocumentID(99, "en-US", "USD"), CatalogID: 99,
	}}))

	job := newTestJob(t, seededStore(t, 3), writer)
	writer.failNext.Store(true)

	err := job.Start(ctx, 2)
	require.Error(t, err)

	status := job.Status()
	assert.Equal(t, StateFailed, status.State)
	assert.Contains(t, status.Error, "backend unavailable")

	snapshot := writer.Snapshot()
	require.Len(t, snapshot, 1, "staged writes were rolled back")
	assert.Contains(t, snapshot, core.CatalogID(99))

	// A subsequent start resets and retries from scratch.
	require.NoError(t, job.Start(ctx, 2))
	status = job.Status()
	assert.Equal(t, StateCompleted, status.State)
	assert.Empty(t, status.Error)
	assert.Len(t, writer.Snapshot(), 3)
}

func TestTotalFrozenAtStart(t *testing.T) {
	writer := newHookedWriter()
	writer.entered = make(chan struct{})
	writer.gate = make(chan struct{})
	store := seededStore(t, 2)
	job := newTestJob(t, store, writer)

	done := make(chan error, 1)
	go func() { done <- job.Start(context.Background(), 1) }()
	<-writer.entered

	// Grow the store mid-run; the reported total must not move.
	store.Apply(core.CatalogEvent{ID: 50, Domain: core.DomainProduct, Name: "Late"})
	job.Pause()
	writer.gate <- struct{}{}
	require.NoError(t, <-done)

	assert.Equal(t, 2, job.Status().Total)
}

func TestProgressTracker(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgressTracker(&buf, 1)

	progress.Start(4)
	progress.Increment(2)
	progress.Increment(2)
	progress.Finish()

	output := buf.String()
	assert.Contains(t, output, "2/4")
	assert.Contains(t, output, "4/4")
	assert.True(t, strings.HasSuffix(output, "\n"))
	assert.Greater(t, progress.Elapsed(), time.Duration(0))
}

func TestJobWithProgress(t *testing.T) {
	var buf bytes.Buffer
	writer := newHookedWriter()
	job := newTestJob(t, seededStore(t, 3), writer,
		WithProgress(NewProgressTracker(&buf, 1)))

	require.NoError(t, job.Start(context.Background(), 2))
	assert.Contains(t, buf.String(), "3/3")
}

func TestNewJobNilDependencies(t *testing.T) {
	builder := pipeline.NewDocumentBuilder(nil)
	writer := index.NewInMemoryWriter()
	store := pipeline.NewSnapshotStore()

	_, err := NewJob(nil, builder, writer, nil, nil)
	require.ErrorIs(t, err, ErrNilStore)

	_, err = NewJob(store, nil, writer, nil, nil)
	require.ErrorIs(t, err, ErrNilBuilder)

	_, err = NewJob(store, builder, nil, nil, nil)
	require.ErrorIs(t, err, ErrNilWriter)
}
