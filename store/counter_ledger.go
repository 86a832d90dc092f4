package store

import (
	"fmt"
	"slices"
	"sync"

	"chat-app/domain/chat"
	"chat-app/errors"

	"github.com/samber/lo"
)

// CounterLedger keeps, per user, the ordered list of unread counters of the
// chats they belong to. Numbers never go below zero.
type CounterLedger struct {
	mu       sync.RWMutex
	counters map[string][]chat.Counter
	order    []string
}

func NewCounterLedger() *CounterLedger {
	return &CounterLedger{counters: make(map[string][]chat.Counter)}
}

// Init opens a zero counter for login in chatID. It is a no-op if one exists.
func (l *CounterLedger) Init(login string, chatID chat.ChatID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	list, known := l.counters[login]
	if !known {
		l.order = append(l.order, login)
	}
	if slices.ContainsFunc(list, func(c chat.Counter) bool { return c.ChatID == chatID }) {
		return
	}
	l.counters[login] = append(list, chat.Counter{ChatID: chatID, Number: 0})
}

func (l *CounterLedger) Get(login string, chatID chat.ChatID) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	index, err := l.indexOf(login, chatID)
	if err != nil {
		return 0, err
	}
	return l.counters[login][index].Number, nil
}

// Increment adds n to the counter. A negative n is rejected.
func (l *CounterLedger) Increment(login string, chatID chat.ChatID, n int) error {
	if n < 0 {
		return fmt.Errorf("negative increment %d: %w", n, errors.ErrInvalidPayload)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	index, err := l.indexOf(login, chatID)
	if err != nil {
		return err
	}
	l.counters[login][index].Number += n
	return nil
}

// Decrement removes one, floored at zero.
func (l *CounterLedger) Decrement(login string, chatID chat.ChatID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	index, err := l.indexOf(login, chatID)
	if err != nil {
		return err
	}
	if l.counters[login][index].Number > 0 {
		l.counters[login][index].Number--
	}
	return nil
}

func (l *CounterLedger) Set(login string, chatID chat.ChatID, number int) error {
	if number < 0 {
		return fmt.Errorf("negative counter %d: %w", number, errors.ErrInvalidPayload)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	index, err := l.indexOf(login, chatID)
	if err != nil {
		return err
	}
	l.counters[login][index].Number = number
	return nil
}

// Reset zeroes one counter and returns every counter of login so a client
// can resync all of its badges at once.
func (l *CounterLedger) Reset(login string, chatID chat.ChatID) ([]chat.Counter, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	index, err := l.indexOf(login, chatID)
	if err != nil {
		return nil, err
	}
	l.counters[login][index].Number = 0
	return slices.Clone(l.counters[login]), nil
}

// List returns the counters of login, an empty list for an unknown login.
func (l *CounterLedger) List(login string) []chat.Counter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	list := slices.Clone(l.counters[login])
	if list == nil {
		return []chat.Counter{}
	}
	return list
}

func (l *CounterLedger) ChatIDs(login string) []chat.ChatID {
	return lo.Map(l.List(login), func(c chat.Counter, _ int) chat.ChatID { return c.ChatID })
}

// RemoveChat drops the counter of chatID for every given login.
func (l *CounterLedger) RemoveChat(chatID chat.ChatID, logins []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, login := range logins {
		list, ok := l.counters[login]
		if !ok {
			continue
		}
		l.counters[login] = slices.DeleteFunc(list, func(c chat.Counter) bool { return c.ChatID == chatID })
	}
}

// All returns a copy of the ledger keyed by login, plus logins in first-seen order.
func (l *CounterLedger) All() (map[string][]chat.Counter, []string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	all := make(map[string][]chat.Counter, len(l.counters))
	for login, list := range l.counters {
		all[login] = slices.Clone(list)
	}
	return all, slices.Clone(l.order)
}

// Load replaces the ledger. Logins are taken in the order given.
func (l *CounterLedger) Load(logins []string, counters map[string][]chat.Counter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counters = make(map[string][]chat.Counter, len(counters))
	l.order = nil
	for _, login := range logins {
		if _, ok := l.counters[login]; ok {
			continue
		}
		l.counters[login] = slices.Clone(counters[login])
		l.order = append(l.order, login)
	}
}

func (l *CounterLedger) indexOf(login string, chatID chat.ChatID) (int, error) {
	list, ok := l.counters[login]
	if !ok {
		return 0, fmt.Errorf("%s: %w", login, errors.ErrUserNotFound)
	}
	index := slices.IndexFunc(list, func(c chat.Counter) bool { return c.ChatID == chatID })
	if index < 0 {
		return 0, fmt.Errorf("counter of %s for chat %s: %w", login, chatID, errors.ErrNotFound)
	}
	return index, nil
}
