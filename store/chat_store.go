// Package store owns the in-memory tables of the chat core.
// Every getter returns copies, so callers never alias store memory.
package store

import (
	"fmt"
	"slices"
	"sync"

	"chat-app/domain/chat"
	"chat-app/errors"

	"github.com/samber/lo"
)

// ChatStore indexes chats and their keys by id.
// Keys live in their own table so they can be persisted and purged apart from chats.
type ChatStore struct {
	mu    sync.RWMutex
	chats map[chat.ChatID]*chat.Chat
	order []chat.ChatID
	keys  map[chat.ChatID]string
}

func NewChatStore() *ChatStore {
	return &ChatStore{
		chats: make(map[chat.ChatID]*chat.Chat),
		keys:  make(map[chat.ChatID]string),
	}
}

// Create registers a chat with its key. It fails with ErrDuplicateChat
// when the id is already taken.
func (s *ChatStore) Create(id chat.ChatID, users []string, key string) (chat.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chats[id]; ok {
		return chat.Chat{}, fmt.Errorf("chat %s: %w", id, errors.ErrDuplicateChat)
	}
	c := &chat.Chat{ID: id, Users: slices.Clone(users), Messages: []chat.Message{}}
	s.chats[id] = c
	s.order = append(s.order, id)
	s.keys[id] = key
	return c.Clone(), nil
}

func (s *ChatStore) Get(id chat.ChatID) (chat.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chats[id]
	if !ok {
		return chat.Chat{}, fmt.Errorf("%s: %w", id, errors.ErrChatNotFound)
	}
	return c.Clone(), nil
}

func (s *ChatStore) Key(id chat.ChatID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.keys[id]
	if !ok {
		return "", fmt.Errorf("%s: %w", id, errors.ErrKeyNotFound)
	}
	return key, nil
}

// AppendOrReplace stores message. An existing id is an edit: the content is
// replaced but the stored read flag survives. A new id is appended unread.
// It returns the stored message, its index and whether it was an edit.
func (s *ChatStore) AppendOrReplace(id chat.ChatID, message chat.Message) (chat.Message, int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chats[id]
	if !ok {
		return chat.Message{}, 0, false, fmt.Errorf("%s: %w", id, errors.ErrChatNotFound)
	}
	if index := c.IndexOf(message.ID); index >= 0 {
		message.Read = c.Messages[index].Read
		c.Messages[index] = message
		return message, index, true, nil
	}
	message.Read = false
	c.Messages = append(c.Messages, message)
	return message, len(c.Messages) - 1, false, nil
}

func (s *ChatStore) MarkRead(id chat.ChatID, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chats[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, errors.ErrChatNotFound)
	}
	index := c.IndexOf(messageID)
	if index < 0 {
		return fmt.Errorf("%s in chat %s: %w", messageID, id, errors.ErrMsgNotFound)
	}
	c.Messages[index].Read = true
	return nil
}

// DeleteMessage removes a message and returns it as it was before removal.
func (s *ChatStore) DeleteMessage(id chat.ChatID, messageID string) (chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chats[id]
	if !ok {
		return chat.Message{}, fmt.Errorf("%s: %w", id, errors.ErrChatNotFound)
	}
	index := c.IndexOf(messageID)
	if index < 0 {
		return chat.Message{}, fmt.Errorf("%s in chat %s: %w", messageID, id, errors.ErrMsgNotFound)
	}
	removed := c.Messages[index]
	c.Messages = slices.Delete(c.Messages, index, index+1)
	return removed, nil
}

// Delete removes a chat together with its key.
func (s *ChatStore) Delete(id chat.ChatID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chats[id]; !ok {
		return fmt.Errorf("%s: %w", id, errors.ErrChatNotFound)
	}
	delete(s.chats, id)
	delete(s.keys, id)
	s.order = slices.DeleteFunc(s.order, func(other chat.ChatID) bool { return other == id })
	return nil
}

// FindBetween returns the first chat whose users include both logins.
func (s *ChatStore) FindBetween(first, second string) (chat.ChatID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		c := s.chats[id]
		if c.HasUser(first) && c.HasUser(second) {
			return id, true
		}
	}
	return "", false
}

// PeersOf returns every user sharing at least one chat with login, login excluded.
func (s *ChatStore) PeersOf(login string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var peers []string
	for _, id := range s.order {
		c := s.chats[id]
		if c.HasUser(login) {
			peers = append(peers, c.Others(login)...)
		}
	}
	return lo.Uniq(peers)
}

// Chats returns a copy of every chat in creation order.
func (s *ChatStore) Chats() []chat.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Map(s.order, func(id chat.ChatID, _ int) chat.Chat { return s.chats[id].Clone() })
}

func (s *ChatStore) Keys() []chat.ChatKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Map(s.order, func(id chat.ChatID, _ int) chat.ChatKey {
		return chat.ChatKey{ID: id, Key: s.keys[id]}
	})
}

// Load replaces the whole table. Keys without a chat are dropped, and so are
// chats without a key since none of their messages could be read or written.
// The dropped chats are returned.
func (s *ChatStore) Load(chats []chat.Chat, keys []chat.ChatKey) []chat.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID := lo.SliceToMap(keys, func(k chat.ChatKey) (chat.ChatID, string) { return k.ID, k.Key })
	s.chats = make(map[chat.ChatID]*chat.Chat, len(chats))
	s.keys = make(map[chat.ChatID]string, len(keys))
	s.order = nil
	var dropped []chat.Chat
	for _, c := range chats {
		if _, ok := s.chats[c.ID]; ok {
			continue
		}
		key, ok := byID[c.ID]
		if !ok {
			dropped = append(dropped, c.Clone())
			continue
		}
		loaded := c.Clone()
		if loaded.Messages == nil {
			loaded.Messages = []chat.Message{}
		}
		s.chats[c.ID] = &loaded
		s.keys[c.ID] = key
		s.order = append(s.order, c.ID)
	}
	return dropped
}
