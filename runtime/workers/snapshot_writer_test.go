package workers

import (
	"chat-app/contract"
	"chat-app/domain/chat"
	"chat-app/mocks"
	"chat-app/store"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestSnapshotWriter_FlushWritesDirtyKinds(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockISnapshotRepository(ctrl)

	tables := store.NewTables()
	_, err := tables.Chats.Create("c1", []string{"alice", "bob"}, "k1")
	req.NoError(err)
	writer := NewSnapshotWriter(log, repo, tables)

	// Given both kinds are scheduled several times
	writer.Schedule(contract.DataSnapshot)
	writer.Schedule(contract.KeySnapshot, contract.DataSnapshot)

	// Then each one is written once, data before keys
	gomock.InOrder(
		repo.EXPECT().Save(contract.DataSnapshot, gomock.Any()).
			DoAndReturn(func(_ contract.SnapshotKind, payload []byte) error {
				var snapshot store.Snapshot
				req.NoError(json.Unmarshal(payload, &snapshot))
				req.Len(snapshot.Chats, 1)
				return nil
			}),
		repo.EXPECT().Save(contract.KeySnapshot, gomock.Any()).
			DoAndReturn(func(_ contract.SnapshotKind, payload []byte) error {
				req.JSONEq(`{"keys":[{"id":"c1","key":"k1"}]}`, string(payload))
				return nil
			}),
	)
	writer.Flush()

	// And nothing is left to write
	writer.Flush()
}

func TestSnapshotWriter_FailureIsOnlyLogged(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockISnapshotRepository(ctrl)
	writer := NewSnapshotWriter(log, repo, store.NewTables())

	repo.EXPECT().Save(contract.KeySnapshot, gomock.Any()).Return(errors.New("disk full"))

	writer.Schedule(contract.KeySnapshot)
	writer.Flush()
}

func TestSnapshotWriter_Run(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockISnapshotRepository(ctrl)
	tables := store.NewTables()
	writer := NewSnapshotWriter(log, repo, tables)

	var mu sync.Mutex
	var saved []contract.SnapshotKind
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(kind contract.SnapshotKind, _ []byte) error {
			mu.Lock()
			defer mu.Unlock()
			saved = append(saved, kind)
			return nil
		}).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- writer.Run(ctx) }()

	// When a mutation is scheduled while the worker runs
	tables.Users.Upsert(chat.Profile{Login: "alice"})
	writer.Schedule(contract.DataSnapshot)

	req.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(saved) > 0
	}, time.Second, 5*time.Millisecond)

	// Then the worker stops cleanly
	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("snapshot writer did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	req.Equal(contract.DataSnapshot, saved[0])
}

func TestLoadSnapshots(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockISnapshotRepository(ctrl)

	t.Run("Nothing saved yet", func(t *testing.T) {
		repo.EXPECT().Load(contract.DataSnapshot).Return(nil, nil)
		repo.EXPECT().Load(contract.KeySnapshot).Return(nil, nil)

		tables := store.NewTables()
		req.NoError(LoadSnapshots(log, repo, tables))
		req.Empty(tables.Chats.Chats())
	})

	t.Run("Saved state is restored", func(t *testing.T) {
		repo.EXPECT().Load(contract.DataSnapshot).Return([]byte(`{
			"users":[{"login":"alice","name":"Alice","surname":"","counters":[{"id":"c1","number":3}]}],
			"chats":[{"id":"c1","users":["alice","bob"],"messages":[]}]
		}`), nil)
		repo.EXPECT().Load(contract.KeySnapshot).Return([]byte(`{"keys":[{"id":"c1","key":"k1"}]}`), nil)

		tables := store.NewTables()
		req.NoError(LoadSnapshots(log, repo, tables))
		n, err := tables.Counters.Get("alice", "c1")
		req.NoError(err)
		req.Equal(3, n)
		key, err := tables.Chats.Key("c1")
		req.NoError(err)
		req.Equal("k1", key)
	})

	t.Run("Chat saved before its key is dropped", func(t *testing.T) {
		// Given a crash between the data write and the key write of a new chat
		repo.EXPECT().Load(contract.DataSnapshot).Return([]byte(`{
			"users":[{"login":"alice","name":"Alice","surname":"","counters":[{"id":"c1","number":1},{"id":"c2","number":0}]}],
			"chats":[{"id":"c1","users":["alice","bob"],"messages":[]},{"id":"c2","users":["alice","carol"],"messages":[]}]
		}`), nil)
		repo.EXPECT().Load(contract.KeySnapshot).Return([]byte(`{"keys":[{"id":"c1","key":"k1"}]}`), nil)

		tables := store.NewTables()
		req.NoError(LoadSnapshots(log, repo, tables))

		// Then the chat that could never be read is not restored
		req.Equal([]chat.ChatID{"c1"}, lo.Map(tables.Chats.Chats(), func(c chat.Chat, _ int) chat.ChatID { return c.ID }))
		req.Equal([]chat.ChatID{"c1"}, tables.Counters.ChatIDs("alice"))
	})

	t.Run("Corrupted record", func(t *testing.T) {
		repo.EXPECT().Load(contract.DataSnapshot).Return([]byte(`{`), nil)

		err := LoadSnapshots(log, repo, store.NewTables())
		req.Error(err)
	})
}
