// Package uploader drives file uploads against the upload API: it validates
// and queues files, decides between the single-shot and multipart paths,
// bounds upload concurrency, aggregates per-task progress and isolates
// failures per file.
package uploader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/aodysseos/ai-dashboard/internal/api"
	"github.com/aodysseos/ai-dashboard/internal/uploader/chunk"
	"github.com/aodysseos/ai-dashboard/internal/uploader/queue"
	"github.com/aodysseos/ai-dashboard/internal/uploader/transfer"
	"github.com/google/uuid"
)

// Status is the lifecycle state of one upload task. Success and error are
// terminal: a failed task must be removed and re-added, never auto-retried.
type Status string

const (
	StatusPending   Status = "pending"
	StatusUploading Status = "uploading"
	StatusSuccess   Status = "success"
	StatusError     Status = "error"
)

// Task is the orchestrator's view of one queued file.
type Task struct {
	ID          string
	Name        string
	Size        int64
	ContentType string
	Status      Status
	Progress    int
	Err         string
	StorageKey  string
}

// Source couples a file's declared metadata with its content.
type Source struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.ReaderAt
}

// Counts is a per-status tally of the queue.
type Counts struct {
	Pending   int
	Uploading int
	Success   int
	Error     int
}

// Options configures an Orchestrator. Zero values fall back to the defaults.
type Options struct {
	MaxFiles            int
	MaxFileSize         int64
	ChunkSize           int64
	AcceptedContentType string
	Concurrency         int
	// OnProgress, when set, observes per-task progress as a monotonically
	// non-decreasing percentage. Invoked from upload goroutines.
	OnProgress func(taskID string, percent int)
}

const (
	defaultMaxFiles    = 200
	defaultMaxFileSize = 10 * 1024 * 1024
	defaultChunkSize   = 5 * 1024 * 1024
	defaultConcurrency = 5
	defaultContentType = "application/pdf"
)

// Orchestrator owns the upload task collection. The collection is replaced
// copy-on-write under the mutex; every mutation re-reads current state by
// task id, so it stays consistent across the suspension points of in-flight
// uploads.
type Orchestrator struct {
	client   *Client
	transfer *transfer.Client
	opts     Options
	logger   *slog.Logger

	mu      sync.Mutex
	tasks   []Task
	sources map[string]Source
}

// New creates an Orchestrator talking to the given API client.
func New(client *Client, opts Options, logger *slog.Logger) *Orchestrator {
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = defaultMaxFiles
	}
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = defaultMaxFileSize
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = defaultChunkSize
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.AcceptedContentType == "" {
		opts.AcceptedContentType = defaultContentType
	}

	return &Orchestrator{
		client:   client,
		transfer: transfer.New(),
		opts:     opts,
		logger:   logger,
		sources:  make(map[string]Source),
	}
}

// Add validates the given files and queues the accepted ones as pending
// tasks. Rejections are returned as human-readable messages, one per
// rejected file; the queue itself is left consistent either way.
func (o *Orchestrator) Add(sources ...Source) []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	var rejections []string

	if len(o.tasks)+len(sources) > o.opts.MaxFiles {
		rejections = append(rejections, fmt.Sprintf("Maximum %d files allowed", o.opts.MaxFiles))
	}

	next := make([]Task, len(o.tasks), len(o.tasks)+len(sources))
	copy(next, o.tasks)

	for _, src := range sources {
		if len(next) >= o.opts.MaxFiles {
			break
		}

		if err := chunk.ValidateFile(src.Name, src.ContentType, o.opts.AcceptedContentType, src.Size, o.opts.MaxFileSize); err != nil {
			rejections = append(rejections, fmt.Sprintf("%s: %s", src.Name, err))
			continue
		}

		duplicate := false
		for _, t := range next {
			if t.Name == src.Name && t.Size == src.Size {
				duplicate = true
				break
			}
		}
		if duplicate {
			rejections = append(rejections, fmt.Sprintf("%s: File already added", src.Name))
			continue
		}

		task := Task{
			ID:          uuid.NewString(),
			Name:        src.Name,
			Size:        src.Size,
			ContentType: src.ContentType,
			Status:      StatusPending,
		}
		next = append(next, task)
		o.sources[task.ID] = src
	}

	o.tasks = next

	if len(rejections) > 0 {
		o.logger.Warn("rejected files", "count", len(rejections))
	}
	return rejections
}

// Remove deletes a task by id. No-op when absent. In-flight network calls
// for the task are not cancelled.
func (o *Orchestrator) Remove(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	next := make([]Task, 0, len(o.tasks))
	for _, t := range o.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	o.tasks = next
	delete(o.sources, id)
}

// Clear empties the queue unconditionally, in-flight tasks included. Their
// outstanding network calls are not cancelled, only their representation
// disappears.
func (o *Orchestrator) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.tasks = nil
	o.sources = make(map[string]Source)
}

// Tasks returns a snapshot of the queue.
func (o *Orchestrator) Tasks() []Task {
	o.mu.Lock()
	defer o.mu.Unlock()

	snapshot := make([]Task, len(o.tasks))
	copy(snapshot, o.tasks)
	return snapshot
}

// Counts tallies the queue per status.
func (o *Orchestrator) Counts() Counts {
	o.mu.Lock()
	defer o.mu.Unlock()

	var c Counts
	for _, t := range o.tasks {
		switch t.Status {
		case StatusPending:
			c.Pending++
		case StatusUploading:
			c.Uploading++
		case StatusSuccess:
			c.Success++
		case StatusError:
			c.Error++
		}
	}
	return c
}

// UploadAll uploads every pending task with bounded concurrency and blocks
// until all of them reach a terminal state. Tasks already terminal are
// untouched. Overlapping calls are not deduplicated: a second call while a
// batch is in flight re-submits whatever is still pending at that moment.
func (o *Orchestrator) UploadAll(ctx context.Context) {
	var pending []string
	for _, t := range o.Tasks() {
		if t.Status == StatusPending {
			pending = append(pending, t.ID)
		}
	}
	if len(pending) == 0 {
		return
	}

	q := queue.New(o.opts.Concurrency)
	for _, id := range pending {
		id := id
		o.mutate(id, func(t *Task) { t.Status = StatusUploading })

		q.Submit(func() {
			if err := o.uploadOne(ctx, id); err != nil {
				o.logger.Error("upload failed", "task", id, "error", err)
				o.mutate(id, func(t *Task) {
					t.Status = StatusError
					t.Err = err.Error()
				})
				return
			}
			o.mutate(id, func(t *Task) {
				t.Status = StatusSuccess
				t.Progress = 100
			})
			o.notifyProgress(id, 100)
		})
	}
	q.Wait()
}

// uploadOne runs the per-file state machine: single-shot below the chunking
// threshold, multipart above it.
func (o *Orchestrator) uploadOne(ctx context.Context, id string) error {
	task, src, ok := o.lookup(id)
	if !ok {
		return fmt.Errorf("task %s no longer queued", id)
	}

	if task.Size > o.opts.ChunkSize {
		return o.uploadMultipart(ctx, task, src)
	}
	return o.uploadSingle(ctx, task, src)
}

func (o *Orchestrator) uploadSingle(ctx context.Context, task Task, src Source) error {
	uploads, err := o.client.PresignUploads(ctx, []api.FileUpload{{
		Filename:    task.Name,
		Size:        task.Size,
		ContentType: task.ContentType,
	}})
	if err != nil {
		return err
	}
	if len(uploads) != 1 {
		return fmt.Errorf("expected one presigned URL, got %d", len(uploads))
	}

	o.mutate(task.ID, func(t *Task) { t.StorageKey = uploads[0].Key })

	body := io.NewSectionReader(src.Content, 0, task.Size)
	return o.transfer.PutObject(ctx, uploads[0].UploadURL, body, task.Size, func(percent int) {
		o.setProgress(task.ID, percent)
	})
}

// uploadMultipart runs the part loop strictly in part-number order and fails
// the whole file on the first part that cannot be signed or transferred.
func (o *Orchestrator) uploadMultipart(ctx context.Context, task Task, src Source) error {
	session, err := o.client.InitiateMultipart(ctx, task.Name, task.ContentType, task.Size)
	if err != nil {
		return err
	}

	o.mutate(task.ID, func(t *Task) { t.StorageKey = session.Key })

	ranges := chunk.Split(task.Size, o.opts.ChunkSize)
	parts := make([]api.Part, 0, len(ranges))

	for i, rg := range ranges {
		partNumber := i + 1

		part, err := o.client.SignPart(ctx, session.UploadID, session.Key, partNumber)
		if err != nil {
			return err
		}

		body := io.NewSectionReader(src.Content, rg.Offset, rg.Length)
		etag, err := o.transfer.PutPart(ctx, part.UploadURL, body, rg.Length)
		if err != nil {
			return err
		}
		parts = append(parts, api.Part{PartNumber: partNumber, ETag: etag})

		percent := int(math.Round(float64(partNumber) / float64(len(ranges)) * 100))
		o.setProgress(task.ID, percent)
	}

	_, err = o.client.CompleteMultipart(ctx, session.UploadID, session.Key, parts)
	return err
}

func (o *Orchestrator) lookup(id string) (Task, Source, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	src, ok := o.sources[id]
	if !ok {
		return Task{}, Source{}, false
	}
	for _, t := range o.tasks {
		if t.ID == id {
			return t, src, true
		}
	}
	return Task{}, Source{}, false
}

// mutate applies fn to the task with the given id, replacing the collection
// by value. No-op when the task was removed in the meantime.
func (o *Orchestrator) mutate(id string, fn func(*Task)) {
	o.mu.Lock()
	defer o.mu.Unlock()

	next := make([]Task, len(o.tasks))
	copy(next, o.tasks)
	for i := range next {
		if next[i].ID == id {
			fn(&next[i])
			break
		}
	}
	o.tasks = next
}

// setProgress raises the task's progress, keeping it monotonic.
func (o *Orchestrator) setProgress(id string, percent int) {
	changed := false
	o.mutate(id, func(t *Task) {
		if percent > t.Progress {
			t.Progress = percent
			changed = true
		}
	})
	if changed {
		o.notifyProgress(id, percent)
	}
}

func (o *Orchestrator) notifyProgress(id string, percent int) {
	if o.opts.OnProgress != nil {
		o.opts.OnProgress(id, percent)
	}
}
