package workers

import (
	"chat-app/contract"
	"chat-app/errors"
	"chat-app/store"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

var _ contract.ISnapshotScheduler = (*SnapshotWriter)(nil)

// SnapshotWriter is the single writer of the durable snapshots.
//
// Schedule only marks a snapshot kind as dirty. The worker captures the
// tables when it gets to write, so a burst of mutations collapses into one
// write of the latest state and two writes of the same kind never reorder.
// Failures are logged and never reach the request that scheduled them.
type SnapshotWriter struct {
	log     *slog.Logger
	repo    contract.ISnapshotRepository
	tables  store.Tables
	mu      sync.Mutex
	dirty   map[contract.SnapshotKind]bool
	wake    chan struct{}
	writeMu sync.Mutex
}

func NewSnapshotWriter(log *slog.Logger, repo contract.ISnapshotRepository, tables store.Tables) *SnapshotWriter {
	return &SnapshotWriter{
		log:    log,
		repo:   repo,
		tables: tables,
		dirty:  make(map[contract.SnapshotKind]bool),
		wake:   make(chan struct{}, 1),
	}
}

func (w *SnapshotWriter) Schedule(kinds ...contract.SnapshotKind) {
	if len(kinds) == 0 {
		return
	}
	w.mu.Lock()
	for _, kind := range kinds {
		w.dirty[kind] = true
	}
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
		// A wake-up is already pending, it will pick these kinds up.
	}
}

// Run writes pending snapshots until ctx is done, then flushes what is left.
func (w *SnapshotWriter) Run(ctx context.Context) error {
	for {
		select {
		case <-w.wake:
			w.Flush()
		case <-ctx.Done():
			w.Flush()
			w.log.Debug("Context done, snapshot writer stopped")
			return nil
		}
	}
}

// Flush writes every dirty kind now.
func (w *SnapshotWriter) Flush() {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	pending := w.dirty
	w.dirty = make(map[contract.SnapshotKind]bool)
	w.mu.Unlock()

	// Data first: a crash in between leaves at worst a new chat without its
	// key, which LoadSnapshots drops on the next start.
	for _, kind := range []contract.SnapshotKind{contract.DataSnapshot, contract.KeySnapshot} {
		if !pending[kind] {
			continue
		}
		if err := w.write(kind); err != nil {
			w.log.Error("Unable to persist snapshot", "kind", kind.String(), "error", err)
		}
	}
}

func (w *SnapshotWriter) write(kind contract.SnapshotKind) error {
	var payload any
	switch kind {
	case contract.DataSnapshot:
		payload = w.tables.Snapshot()
	case contract.KeySnapshot:
		payload = w.tables.KeySnapshot()
	default:
		return fmt.Errorf("%w: unknown kind %d", errors.ErrPersistence, kind)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPersistence, err)
	}
	if err := w.repo.Save(kind, data); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrPersistence, err)
	}
	return nil
}

// LoadSnapshots restores the tables from the repository.
// A missing record leaves the matching part of the state empty.
func LoadSnapshots(log *slog.Logger, repo contract.ISnapshotRepository, tables store.Tables) error {
	var snapshot store.Snapshot
	var keys store.KeySnapshot

	data, err := repo.Load(contract.DataSnapshot)
	if err != nil {
		return err
	}
	if data != nil {
		if err := json.Unmarshal(data, &snapshot); err != nil {
			return fmt.Errorf("%w: decoding %s: %w", errors.ErrPersistence, contract.DataSnapshot, err)
		}
	}

	data, err = repo.Load(contract.KeySnapshot)
	if err != nil {
		return err
	}
	if data != nil {
		if err := json.Unmarshal(data, &keys); err != nil {
			return fmt.Errorf("%w: decoding %s: %w", errors.ErrPersistence, contract.KeySnapshot, err)
		}
	}

	for _, id := range tables.Restore(snapshot, keys) {
		log.Warn("Chat dropped on restore, its key was never persisted", "chat", id)
	}
	return nil
}
