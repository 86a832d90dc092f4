//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-app/domain/chat"
	"chat-app/domain/event"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the live push channel of one connected user.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
	Close()
}

type IPresenceHub interface {
	Attach(login string, sink EventSink)
	Detach(login string, sink EventSink) bool
	Sink(login string) (EventSink, bool)
	SetOnline(login string, online bool)
	IsOnline(login string) bool
	SetTyping(login string, chatID chat.ChatID) (chat.ChatID, bool)
	ClearTyping(login string) (chat.ChatID, bool)
	IsTyping(login string) bool
	SetCurrentChat(login string, chatID chat.ChatID)
	CurrentChat(login string) (chat.ChatID, bool)
	ClearCurrentChat(login string)
	ViewersOf(chatID chat.ChatID) []string
}

type PresenceStats struct {
	Connections int
	Online      int
	Viewing     int
}

type IPresenceStats interface {
	Stats() PresenceStats
}

type IBroadcaster interface {
	PushTo(ctx context.Context, logins []string, e event.DomainEvent)
}

// IUserDirectory is what the chat core needs from the profile collaborator.
type IUserDirectory interface {
	Exists(login string) bool
	DisplayInfo(login string) (chat.DisplayInfo, error)
}

type SnapshotKind int

const (
	DataSnapshot SnapshotKind = iota
	KeySnapshot
)

func (k SnapshotKind) String() string {
	switch k {
	case DataSnapshot:
		return "data"
	case KeySnapshot:
		return "keys"
	default:
		return "unknown"
	}
}

// ISnapshotScheduler accepts fire-and-forget persistence requests.
type ISnapshotScheduler interface {
	Schedule(kinds ...SnapshotKind)
}

// ISnapshotRepository persists encoded snapshots, one record per kind.
// Load returns nil without error when nothing was ever saved.
type ISnapshotRepository interface {
	Save(kind SnapshotKind, payload []byte) error
	Load(kind SnapshotKind) ([]byte, error)
}
