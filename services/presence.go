package services

import (
	"chat-app/contract"
	"chat-app/domain/chat"
	"chat-app/domain/event"
	"chat-app/errors"
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Attach registers the live connection of a known user.
func (s *ChatService) Attach(login string, sink contract.EventSink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureUser(login); err != nil {
		return err
	}
	s.presence.Attach(login, sink)
	s.log.Debug("Live connection attached", "login", login)
	return nil
}

// Detach forgets sink if it is still the live connection of login.
func (s *ChatService) Detach(login string, sink contract.EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.presence.Detach(login, sink) {
		s.log.Debug("Live connection detached", "login", login)
	}
}

// SetOnline flips the online flag and tells the other users of every chat
// login belongs to.
func (s *ChatService) SetOnline(ctx context.Context, login string, online bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureUser(login); err != nil {
		return err
	}
	s.presence.SetOnline(login, online)
	s.broadcaster.PushTo(detached(ctx), s.tables.Chats.PeersOf(login), event.PresenceChanged{Login: login, Online: online})
	return nil
}

func (s *ChatService) IsOnline(login string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureUser(login); err != nil {
		return false, err
	}
	return s.presence.IsOnline(login), nil
}

// SetTyping marks login as typing in chatID and tells the chat's other users.
// Moving to another chat ends the typing state in the previous one.
func (s *ChatService) SetTyping(ctx context.Context, login string, chatID chat.ChatID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.memberChat(login, chatID)
	if err != nil {
		return err
	}
	if previous, ok := s.presence.SetTyping(login, c.ID); ok && previous != c.ID {
		s.pushTypingStopped(ctx, login, previous)
	}
	s.broadcaster.PushTo(detached(ctx), c.Others(login), event.TypingChanged{Login: login, ChatID: c.ID, Typing: true})
	return nil
}

// ResetTyping clears the typing state. The other users of the chat login was
// typing in are told, falling back to the chat it is viewing.
func (s *ChatService) ResetTyping(ctx context.Context, login string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureUser(login); err != nil {
		return err
	}
	chatID, ok := s.presence.ClearTyping(login)
	if !ok {
		chatID, ok = s.presence.CurrentChat(login)
	}
	if ok {
		s.pushTypingStopped(ctx, login, chatID)
	}
	return nil
}

// pushTypingStopped skips chats deleted in the meantime.
func (s *ChatService) pushTypingStopped(ctx context.Context, login string, chatID chat.ChatID) {
	c, err := s.tables.Chats.Get(chatID)
	if err != nil {
		return
	}
	s.broadcaster.PushTo(detached(ctx), c.Others(login), event.TypingChanged{Login: login, ChatID: c.ID, Typing: false})
}

func (s *ChatService) IsTyping(login string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureUser(login); err != nil {
		return false, err
	}
	return s.presence.IsTyping(login), nil
}

// SetCurrentChat records the chat login is viewing. Switching away from
// another chat leaves it first, with the same effects as ClearCurrentChat.
func (s *ChatService) SetCurrentChat(ctx context.Context, login string, chatID chat.ChatID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.memberChat(login, chatID); err != nil {
		return err
	}
	if previous, ok := s.presence.CurrentChat(login); ok && previous != chatID {
		if err := s.leave(ctx, login, previous); err != nil {
			return err
		}
	}
	s.presence.SetCurrentChat(login, chatID)
	return nil
}

// ClearCurrentChat is the leave trigger. It does nothing when login views no chat.
func (s *ChatService) ClearCurrentChat(ctx context.Context, login string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureUser(login); err != nil {
		return err
	}
	current, ok := s.presence.CurrentChat(login)
	if !ok {
		return nil
	}
	return s.leave(ctx, login, current)
}

// CurrentChat returns the chat login is viewing, nil when none.
func (s *ChatService) CurrentChat(login string) (*chat.ChatID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureUser(login); err != nil {
		return nil, err
	}
	current, ok := s.presence.CurrentChat(login)
	if !ok {
		return nil, nil
	}
	return lo.ToPtr(current), nil
}

// leave runs the teardown steps for login leaving chatID:
//  1. the unread messages of the others are added to login's counter,
//  2. an empty chat nobody else is viewing is deleted with its key and counters,
//  3. login's current chat is cleared.
//
// A chat that no longer exists only clears the view.
func (s *ChatService) leave(ctx context.Context, login string, chatID chat.ChatID) error {
	defer s.presence.ClearCurrentChat(login)

	c, err := s.tables.Chats.Get(chatID)
	if errors.Is(err, errors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if missed := c.UnreadFrom(login); missed > 0 {
		if err := s.tables.Counters.Increment(login, c.ID, missed); err != nil {
			s.log.Warn("Counter missing on leave", "login", login, "chat_id", c.ID, "error", err)
		} else {
			s.snapshots.Schedule(contract.DataSnapshot)
		}
	}

	if len(c.Messages) > 0 {
		return nil
	}
	viewers := slices.DeleteFunc(s.presence.ViewersOf(c.ID), func(viewer string) bool { return viewer == login })
	if len(viewers) > 0 {
		return nil
	}

	if err := s.tables.Chats.Delete(c.ID); err != nil {
		return err
	}
	s.tables.Counters.RemoveChat(c.ID, c.Users)
	s.snapshots.Schedule(contract.DataSnapshot, contract.KeySnapshot)

	s.log.Info("Empty chat deleted", "chat_id", c.ID, "left_by", login)
	s.broadcaster.PushTo(detached(ctx), c.Users, event.ChatDeleted{ChatID: c.ID})
	return nil
}

func (s *ChatService) ensureUser(login string) error {
	if !s.directory.Exists(login) {
		return fmt.Errorf("%s: %w", login, errors.ErrUserNotFound)
	}
	return nil
}

// memberChat returns chatID when login is one of its users.
func (s *ChatService) memberChat(login string, chatID chat.ChatID) (chat.Chat, error) {
	if err := s.ensureUser(login); err != nil {
		return chat.Chat{}, err
	}
	c, err := s.tables.Chats.Get(chatID)
	if err != nil {
		return chat.Chat{}, err
	}
	if !c.HasUser(login) {
		return chat.Chat{}, fmt.Errorf("%w: %s is not a participant of %s", errors.ErrInvalidPayload, login, chatID)
	}
	return c, nil
}
