package storage

import (
	"chat-app/contract"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const (
	DataSnapshotKey = "snapshot:db"
	KeySnapshotKey  = "snapshot:keys"
)

var _ contract.ISnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository keeps the latest encoded snapshot of each kind in badger.
// Each save is one transaction overwriting the previous record.
type SnapshotRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSnapshotRepository(db *badger.DB, log *slog.Logger) *SnapshotRepository {
	return &SnapshotRepository{db: db, log: log}
}

func (r SnapshotRepository) Save(kind contract.SnapshotKind, payload []byte) error {
	key, err := keyOf(kind)
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, payload)
	})
	if err != nil {
		return fmt.Errorf("saving %s snapshot: %w", kind, err)
	}
	r.log.Debug("Snapshot saved", "kind", kind.String(), "bytes", len(payload))
	return nil
}

func (r SnapshotRepository) Load(kind contract.SnapshotKind) ([]byte, error) {
	key, err := keyOf(kind)
	if err != nil {
		return nil, err
	}

	var payload []byte
	err = r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s snapshot: %w", kind, err)
	}
	return payload, nil
}

func keyOf(kind contract.SnapshotKind) ([]byte, error) {
	switch kind {
	case contract.DataSnapshot:
		return []byte(DataSnapshotKey), nil
	case contract.KeySnapshot:
		return []byte(KeySnapshotKey), nil
	default:
		return nil, fmt.Errorf("unknown snapshot kind %d", kind)
	}
}
