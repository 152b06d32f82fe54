package ingest

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a status lookup references an
// unknown or already-evicted task id.
var ErrTaskNotFound = errors.New("task not found")

// TaskState is the lifecycle state of an asynchronous ingestion.
type TaskState string

const (
	TaskQueued     TaskState = "queued"
	TaskProcessing TaskState = "processing"
	TaskCompleted  TaskState = "completed"
	TaskFailed     TaskState = "failed"
)

// Task is the status record of one asynchronous ingestion.
type Task struct {
	ID         string
	State      TaskState
	Message    string
	ChunkCount int
	Updated    time.Time
}

// Tracker default eviction parameters.
const (
	DefaultTaskTTL  = 24 * time.Hour
	DefaultMaxTasks = 1000
)

// Tracker retains ingestion task statuses for polling.
//
// Entries expire after a TTL and the tracker holds at most a fixed
// number of entries, evicting the stalest first, so long-running
// processes do not accumulate status records without bound.
type Tracker struct {
	mu    sync.Mutex
	tasks map[string]*Task
	ttl   time.Duration
	max   int
	now   func() time.Time
}

// NewTracker creates a tracker with the given TTL and entry cap.
// Non-positive values take the defaults.
func NewTracker(ttl time.Duration, maxEntries int) *Tracker {
	if ttl <= 0 {
		ttl = DefaultTaskTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxTasks
	}
	return &Tracker{
		tasks: make(map[string]*Task),
		ttl:   ttl,
		max:   maxEntries,
		now:   time.Now,
	}
}

// Create registers a new queued task and returns its id.
func (t *Tracker) Create(message string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.evictLocked()

	id := uuid.New().String()
	t.tasks[id] = &Task{
		ID:      id,
		State:   TaskQueued,
		Message: message,
		Updated: t.now(),
	}
	return id
}

// Update mutates a task's state. Only the task that owns an id writes
// to it; unknown ids are ignored (the task may have been evicted).
func (t *Tracker) Update(id string, state TaskState, message string, chunkCount int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	task, ok := t.tasks[id]
	if !ok {
		return
	}
	task.State = state
	task.Message = message
	task.ChunkCount = chunkCount
	task.Updated = t.now()
}

// Status returns a copy of the task record.
func (t *Tracker) Status(id string) (Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	task, ok := t.tasks[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	return *task, nil
}

// Len returns the number of retained tasks.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.tasks)
}

// evictLocked removes expired entries, then the stalest entries beyond
// the cap. Caller holds the mutex.
func (t *Tracker) evictLocked() {
	cutoff := t.now().Add(-t.ttl)
	for id, task := range t.tasks {
		if task.Updated.Before(cutoff) {
			delete(t.tasks, id)
		}
	}

	if len(t.tasks) < t.max {
		return
	}

	stale := make([]*Task, 0, len(t.tasks))
	for _, task := range t.tasks {
		stale = append(stale, task)
	}
	sort.Slice(stale, func(i, j int) bool {
		return stale[i].Updated.Before(stale[j].Updated)
	})
	for _, task := range stale[:len(stale)-t.max+1] {
		delete(t.tasks, task.ID)
	}
}
