package ingest

import (
	"errors"
	"testing"
	"time"
)

func TestTrackerLifecycle(t *testing.T) {
	tracker := NewTracker(0, 0)

	id := tracker.Create("Döküman sıraya alındı")
	task, err := tracker.Status(id)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if task.State != TaskQueued {
		t.Errorf("State = %q, want queued", task.State)
	}
	if task.Message != "Döküman sıraya alındı" {
		t.Errorf("Message = %q", task.Message)
	}

	tracker.Update(id, TaskProcessing, "Döküman işleniyor", 0)
	tracker.Update(id, TaskCompleted, "PDF başarıyla işlendi: 12 metin parçası eklendi", 12)

	task, err = tracker.Status(id)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if task.State != TaskCompleted || task.ChunkCount != 12 {
		t.Errorf("task = %+v, want completed with 12 chunks", task)
	}
}

func TestTrackerStatusUnknownID(t *testing.T) {
	tracker := NewTracker(0, 0)

	if _, err := tracker.Status("yok-boyle-bir-id"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Status() error = %v, want ErrTaskNotFound", err)
	}
}

func TestTrackerUpdateUnknownIDIgnored(t *testing.T) {
	tracker := NewTracker(0, 0)
	tracker.Update("evicted-id", TaskCompleted, "done", 3)

	if tracker.Len() != 0 {
		t.Errorf("Len() = %d, update on unknown id must not create entries", tracker.Len())
	}
}

func TestTrackerTTLEviction(t *testing.T) {
	tracker := NewTracker(time.Hour, 100)

	now := time.Now()
	tracker.now = func() time.Time { return now }
	stale := tracker.Create("eski görev")

	// Two hours later the stale entry is past its TTL
	tracker.now = func() time.Time { return now.Add(2 * time.Hour) }
	fresh := tracker.Create("yeni görev")

	if _, err := tracker.Status(stale); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("stale task survived TTL eviction: %v", err)
	}
	if _, err := tracker.Status(fresh); err != nil {
		t.Errorf("fresh task missing: %v", err)
	}
}

func TestTrackerMaxEntriesEvictsStalest(t *testing.T) {
	tracker := NewTracker(time.Hour, 3)

	now := time.Now()
	ids := make([]string, 4)
	for i := range ids {
		tick := now.Add(time.Duration(i) * time.Minute)
		tracker.now = func() time.Time { return tick }
		ids[i] = tracker.Create("görev")
	}

	if tracker.Len() > 3 {
		t.Errorf("Len() = %d, want at most 3", tracker.Len())
	}
	// The oldest entry went first
	if _, err := tracker.Status(ids[0]); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("oldest task survived cap eviction: %v", err)
	}
	if _, err := tracker.Status(ids[3]); err != nil {
		t.Errorf("newest task missing: %v", err)
	}
}

func TestTrackerStatusReturnsCopy(t *testing.T) {
	tracker := NewTracker(0, 0)
	id := tracker.Create("görev")

	task, _ := tracker.Status(id)
	task.Message = "değiştirildi"

	again, _ := tracker.Status(id)
	if again.Message != "görev" {
		t.Error("Status() exposed the internal task record")
	}
}
