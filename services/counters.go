package services

import (
	"chat-app/contract"
	"chat-app/domain/chat"
)

// Counters returns the unread counters of login in chat creation order.
func (s *ChatService) Counters(login string) ([]chat.Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureUser(login); err != nil {
		return nil, err
	}
	return s.tables.Counters.List(login), nil
}

// IncrementCounter bumps the badge of a chat login is not viewing.
// Clients call it when a message arrives for another chat.
func (s *ChatService) IncrementCounter(login string, chatID chat.ChatID) ([]chat.Counter, error) {
	return s.adjustCounter(login, func() error {
		return s.tables.Counters.Increment(login, chatID, 1)
	})
}

func (s *ChatService) SetCounter(login string, chatID chat.ChatID, number int) ([]chat.Counter, error) {
	return s.adjustCounter(login, func() error {
		return s.tables.Counters.Set(login, chatID, number)
	})
}

// ResetCounter zeroes one counter and returns the full list so a client can
// resync every badge at once.
func (s *ChatService) ResetCounter(login string, chatID chat.ChatID) ([]chat.Counter, error) {
	return s.adjustCounter(login, func() error {
		_, err := s.tables.Counters.Reset(login, chatID)
		return err
	})
}

func (s *ChatService) adjustCounter(login string, adjust func() error) ([]chat.Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureUser(login); err != nil {
		return nil, err
	}
	if err := adjust(); err != nil {
		return nil, err
	}
	s.snapshots.Schedule(contract.DataSnapshot)
	return s.tables.Counters.List(login), nil
}
