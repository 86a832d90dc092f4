package store

import (
	"fmt"
	"sync"

	"chat-app/contract"
	"chat-app/domain/chat"
	"chat-app/errors"

	"github.com/samber/lo"
)

var _ contract.IUserDirectory = (*UserStore)(nil)

// UserStore is the in-process stand-in for the profile collaborator.
// The chat core only reads display info and checks existence through it.
type UserStore struct {
	mu       sync.RWMutex
	profiles map[string]chat.Profile
	order    []string
}

func NewUserStore() *UserStore {
	return &UserStore{profiles: make(map[string]chat.Profile)}
}

// Upsert creates or replaces the profile of p.Login.
func (s *UserStore) Upsert(p chat.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[p.Login]; !ok {
		s.order = append(s.order, p.Login)
	}
	s.profiles[p.Login] = p
}

func (s *UserStore) Get(login string) (chat.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[login]
	if !ok {
		return chat.Profile{}, fmt.Errorf("%s: %w", login, errors.ErrUserNotFound)
	}
	return p, nil
}

func (s *UserStore) Exists(login string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.profiles[login]
	return ok
}

func (s *UserStore) DisplayInfo(login string) (chat.DisplayInfo, error) {
	p, err := s.Get(login)
	if err != nil {
		return chat.DisplayInfo{}, err
	}
	return p.DisplayInfo(), nil
}

// Profiles returns every profile in registration order.
func (s *UserStore) Profiles() []chat.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Map(s.order, func(login string, _ int) chat.Profile { return s.profiles[login] })
}

func (s *UserStore) Load(profiles []chat.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = make(map[string]chat.Profile, len(profiles))
	s.order = nil
	for _, p := range profiles {
		if _, ok := s.profiles[p.Login]; !ok {
			s.order = append(s.order, p.Login)
		}
		s.profiles[p.Login] = p
	}
}
