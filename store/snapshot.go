package store

import (
	"slices"

	"chat-app/domain/chat"

	"github.com/samber/lo"
)

// UserRecord is the durable form of a user: its profile and its counters.
// Online, typing, current chat and the live connection are never part of it.
type UserRecord struct {
	chat.Profile
	Counters []chat.Counter `json:"counters"`
}

// Snapshot is the durable view of users and chats.
type Snapshot struct {
	Users []UserRecord `json:"users"`
	Chats []chat.Chat  `json:"chats"`
}

// KeySnapshot holds the chat keys, persisted apart from the chats.
type KeySnapshot struct {
	Keys []chat.ChatKey `json:"keys"`
}

// Tables groups the stores a snapshot is built from and restored into.
type Tables struct {
	Users    *UserStore
	Chats    *ChatStore
	Counters *CounterLedger
}

func NewTables() Tables {
	return Tables{Users: NewUserStore(), Chats: NewChatStore(), Counters: NewCounterLedger()}
}

// Snapshot captures users and chats. Logins known only to the ledger are
// kept as bare records so their counters survive a reload.
func (t Tables) Snapshot() Snapshot {
	counters, logins := t.Counters.All()
	profiles := t.Users.Profiles()
	known := lo.SliceToMap(profiles, func(p chat.Profile) (string, struct{}) { return p.Login, struct{}{} })

	users := lo.Map(profiles, func(p chat.Profile, _ int) UserRecord {
		return UserRecord{Profile: p, Counters: orEmpty(counters[p.Login])}
	})
	for _, login := range logins {
		if _, ok := known[login]; !ok {
			users = append(users, UserRecord{Profile: chat.Profile{Login: login}, Counters: orEmpty(counters[login])})
		}
	}
	return Snapshot{Users: users, Chats: t.Chats.Chats()}
}

func (t Tables) KeySnapshot() KeySnapshot {
	return KeySnapshot{Keys: t.Chats.Keys()}
}

// Restore replaces every table with the persisted state. Chats persisted
// without their key are left out along with their counters, their ids are
// returned.
func (t Tables) Restore(snapshot Snapshot, keys KeySnapshot) []chat.ChatID {
	t.Users.Load(lo.Map(snapshot.Users, func(u UserRecord, _ int) chat.Profile { return u.Profile }))
	dropped := t.Chats.Load(snapshot.Chats, keys.Keys)
	counters := make(map[string][]chat.Counter, len(snapshot.Users))
	logins := make([]string, 0, len(snapshot.Users))
	for _, u := range snapshot.Users {
		counters[u.Login] = u.Counters
		logins = append(logins, u.Login)
	}
	t.Counters.Load(logins, counters)
	for _, c := range dropped {
		t.Counters.RemoveChat(c.ID, c.Users)
	}
	return lo.Map(dropped, func(c chat.Chat, _ int) chat.ChatID { return c.ID })
}

func orEmpty(counters []chat.Counter) []chat.Counter {
	if counters == nil {
		return []chat.Counter{}
	}
	return slices.Clone(counters)
}
