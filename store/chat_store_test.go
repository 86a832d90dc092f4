package store

import (
	"testing"

	"chat-app/domain/chat"
	"chat-app/errors"

	"github.com/stretchr/testify/require"
)

func TestChatStore_CreateAndGet(t *testing.T) {
	req := require.New(t)
	s := NewChatStore()

	// Given a chat is created
	created, err := s.Create("c1", []string{"alice", "bob"}, "key-1")
	req.NoError(err)
	req.Equal(chat.ChatID("c1"), created.ID)
	req.NotNil(created.Messages)
	req.Empty(created.Messages)

	// Then it can be fetched with its key
	fetched, err := s.Get("c1")
	req.NoError(err)
	req.Equal(created, fetched)
	key, err := s.Key("c1")
	req.NoError(err)
	req.Equal("key-1", key)

	// And a second creation with the same id fails
	_, err = s.Create("c1", []string{"carol", "dave"}, "key-2")
	req.ErrorIs(err, errors.ErrDuplicateChat)
	key, _ = s.Key("c1")
	req.Equal("key-1", key)

	_, err = s.Get("unknown")
	req.ErrorIs(err, errors.ErrNotFound)
	_, err = s.Key("unknown")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestChatStore_AppendOrReplace_EditKeepsReadFlag(t *testing.T) {
	req := require.New(t)
	s := NewChatStore()
	_, err := s.Create("c1", []string{"alice", "bob"}, "k")
	req.NoError(err)

	// Given two messages where the first one has been read
	stored, index, edited, err := s.AppendOrReplace("c1", chat.Message{ID: "m1", Login: "alice", Text: "a", Read: true})
	req.NoError(err)
	req.False(stored.Read, "a new message is always unread")
	req.Equal(0, index)
	req.False(edited)
	_, index, _, err = s.AppendOrReplace("c1", chat.Message{ID: "m2", Login: "bob", Text: "b"})
	req.NoError(err)
	req.Equal(1, index)
	req.NoError(s.MarkRead("c1", "m1"))

	// When the first one is edited with read=false
	stored, index, edited, err = s.AppendOrReplace("c1", chat.Message{ID: "m1", Login: "alice", Text: "edited"})
	req.NoError(err)

	// Then it stays in place and keeps its read flag
	req.True(edited)
	req.Equal(0, index)
	req.True(stored.Read)
	c, _ := s.Get("c1")
	req.Len(c.Messages, 2)
	req.Equal("edited", c.Messages[0].Text)
	req.True(c.Messages[0].Read)

	_, _, _, err = s.AppendOrReplace("missing", chat.Message{ID: "x"})
	req.ErrorIs(err, errors.ErrChatNotFound)
}

func TestChatStore_DeleteMessage(t *testing.T) {
	req := require.New(t)
	s := NewChatStore()
	_, _ = s.Create("c1", []string{"alice", "bob"}, "k")
	_, _, _, _ = s.AppendOrReplace("c1", chat.Message{ID: "m1", Login: "alice"})
	_, _, _, _ = s.AppendOrReplace("c1", chat.Message{ID: "m2", Login: "alice"})
	req.NoError(s.MarkRead("c1", "m2"))

	removed, err := s.DeleteMessage("c1", "m2")
	req.NoError(err)
	req.True(removed.Read)

	c, _ := s.Get("c1")
	req.Len(c.Messages, 1)
	req.Equal("m1", c.Messages[0].ID)

	_, err = s.DeleteMessage("c1", "m2")
	req.ErrorIs(err, errors.ErrMsgNotFound)
	req.ErrorIs(s.MarkRead("c1", "m2"), errors.ErrNotFound)
}

func TestChatStore_DeleteRemovesKey(t *testing.T) {
	req := require.New(t)
	s := NewChatStore()
	_, _ = s.Create("c1", []string{"alice", "bob"}, "k1")
	_, _ = s.Create("c2", []string{"alice", "carol"}, "k2")

	req.NoError(s.Delete("c1"))

	_, err := s.Get("c1")
	req.ErrorIs(err, errors.ErrNotFound)
	_, err = s.Key("c1")
	req.ErrorIs(err, errors.ErrNotFound)
	req.Equal([]chat.ChatKey{{ID: "c2", Key: "k2"}}, s.Keys())
	req.ErrorIs(s.Delete("c1"), errors.ErrChatNotFound)
}

func TestChatStore_GetReturnsCopy(t *testing.T) {
	req := require.New(t)
	s := NewChatStore()
	_, _ = s.Create("c1", []string{"alice", "bob"}, "k")
	_, _, _, _ = s.AppendOrReplace("c1", chat.Message{ID: "m1", Text: "original"})

	c, _ := s.Get("c1")
	c.Messages[0].Text = "tampered"
	c.Users[0] = "mallory"

	again, _ := s.Get("c1")
	req.Equal("original", again.Messages[0].Text)
	req.Equal("alice", again.Users[0])
}

func TestChatStore_FindBetweenAndPeers(t *testing.T) {
	req := require.New(t)
	s := NewChatStore()
	_, _ = s.Create("c1", []string{"alice", "bob"}, "k")
	_, _ = s.Create("c2", []string{"alice", "carol"}, "k")
	_, _ = s.Create("c3", []string{"alice", "bob", "carol"}, "k")

	id, ok := s.FindBetween("bob", "alice")
	req.True(ok)
	req.Equal(chat.ChatID("c1"), id)
	_, ok = s.FindBetween("bob", "dave")
	req.False(ok)

	req.ElementsMatch([]string{"bob", "carol"}, s.PeersOf("alice"))
	req.Empty(s.PeersOf("dave"))
}

func TestChatStore_Load(t *testing.T) {
	req := require.New(t)
	s := NewChatStore()
	_, _ = s.Create("old", []string{"x", "y"}, "k")

	dropped := s.Load(
		[]chat.Chat{{ID: "c1", Users: []string{"alice", "bob"}}, {ID: "keyless", Users: []string{"alice", "carol"}}},
		[]chat.ChatKey{{ID: "c1", Key: "k1"}, {ID: "orphan", Key: "k2"}},
	)

	_, err := s.Get("old")
	req.ErrorIs(err, errors.ErrNotFound)
	c, err := s.Get("c1")
	req.NoError(err)
	req.NotNil(c.Messages)
	req.Equal([]chat.ChatKey{{ID: "c1", Key: "k1"}}, s.Keys())
	req.Len(dropped, 1)
	req.Equal(chat.ChatID("keyless"), dropped[0].ID)
	_, err = s.Get("keyless")
	req.ErrorIs(err, errors.ErrChatNotFound)
}
