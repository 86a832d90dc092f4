package storage

import (
	"chat-app/contract"
	"chat-app/domain/chat"
	"chat-app/runtime/workers"
	"chat-app/store"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func TestSnapshotRepository_SaveAndLoad(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewSnapshotRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given nothing has been saved
	payload, err := repo.Load(contract.DataSnapshot)
	req.NoError(err)
	req.Nil(payload)

	// When both kinds are saved twice
	req.NoError(repo.Save(contract.DataSnapshot, []byte(`{"users":[],"chats":[]}`)))
	req.NoError(repo.Save(contract.KeySnapshot, []byte(`{"keys":[]}`)))
	req.NoError(repo.Save(contract.KeySnapshot, []byte(`{"keys":[{"id":"c1","key":"k1"}]}`)))

	// Then the latest record of each kind is returned
	payload, err = repo.Load(contract.DataSnapshot)
	req.NoError(err)
	req.JSONEq(`{"users":[],"chats":[]}`, string(payload))
	payload, err = repo.Load(contract.KeySnapshot)
	req.NoError(err)
	req.JSONEq(`{"keys":[{"id":"c1","key":"k1"}]}`, string(payload))

	req.Error(repo.Save(contract.SnapshotKind(42), nil))
}

func TestSnapshotRepository_SurvivesRestart(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a populated state written by the snapshot writer
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	tables := store.NewTables()
	tables.Users.Upsert(chat.Profile{Login: "alice", Name: "Alice"})
	_, err = tables.Chats.Create("c1", []string{"alice", "bob"}, "k1")
	req.NoError(err)
	tables.Counters.Init("alice", "c1")
	req.NoError(tables.Counters.Set("alice", "c1", 2))

	writer := workers.NewSnapshotWriter(log, NewSnapshotRepository(db, log), tables)
	writer.Schedule(contract.DataSnapshot, contract.KeySnapshot)
	writer.Flush()
	req.NoError(db.Close())

	// When the database is reopened
	db, err = badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	restored := store.NewTables()
	req.NoError(workers.LoadSnapshots(log, NewSnapshotRepository(db, log), restored))

	// Then the durable state is back
	req.Equal(tables.Chats.Chats(), restored.Chats.Chats())
	key, err := restored.Chats.Key("c1")
	req.NoError(err)
	req.Equal("k1", key)
	n, err := restored.Counters.Get("alice", "c1")
	req.NoError(err)
	req.Equal(2, n)
}
