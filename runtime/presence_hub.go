package runtime

import (
	"chat-app/contract"
	"chat-app/domain/chat"
	"sort"
	"sync"
)

var _ contract.IPresenceHub = (*PresenceHub)(nil)

// presence is the transient state of one login. It lives for the process
// lifetime only and is never written to a snapshot.
type presence struct {
	sink        contract.EventSink
	online      bool
	typingIn    *chat.ChatID
	currentChat *chat.ChatID
}

type PresenceHub struct {
	mu       sync.RWMutex
	sessions map[string]*presence // map login -> transient state
}

func NewPresenceHub() *PresenceHub {
	return &PresenceHub{sessions: make(map[string]*presence)}
}

// Attach registers the live connection of a login.
// A login owns at most one connection: a previous sink is closed and replaced.
func (h *PresenceHub) Attach(login string, sink contract.EventSink) {
	h.mu.Lock()
	p := h.entry(login)
	previous := p.sink
	p.sink = sink
	h.mu.Unlock()

	if previous != nil && previous != sink {
		previous.Close()
	}
}

// Detach removes sink if it is still the current connection of login.
// It reports whether something was removed, so a newer connection survives
// the cleanup of an older one.
func (h *PresenceHub) Detach(login string, sink contract.EventSink) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.sessions[login]
	if !ok || p.sink == nil || p.sink != sink {
		return false
	}
	p.sink = nil
	h.gc(login, p)
	return true
}

func (h *PresenceHub) Sink(login string) (contract.EventSink, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	p, ok := h.sessions[login]
	if !ok || p.sink == nil {
		return nil, false
	}
	return p.sink, true
}

func (h *PresenceHub) SetOnline(login string, online bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.entry(login)
	p.online = online
	h.gc(login, p)
}

func (h *PresenceHub) IsOnline(login string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	p, ok := h.sessions[login]
	return ok && p.online
}

// SetTyping records that login types in chatID and returns the chat it was
// typing in before, if any.
func (h *PresenceHub) SetTyping(login string, chatID chat.ChatID) (chat.ChatID, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.entry(login)
	previous := p.typingIn
	id := chatID
	p.typingIn = &id
	if previous == nil {
		return "", false
	}
	return *previous, true
}

// ClearTyping stops the typing state of login and returns the chat it was
// typing in.
func (h *PresenceHub) ClearTyping(login string) (chat.ChatID, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.sessions[login]
	if !ok || p.typingIn == nil {
		return "", false
	}
	chatID := *p.typingIn
	p.typingIn = nil
	h.gc(login, p)
	return chatID, true
}

func (h *PresenceHub) IsTyping(login string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	p, ok := h.sessions[login]
	return ok && p.typingIn != nil
}

func (h *PresenceHub) SetCurrentChat(login string, chatID chat.ChatID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := chatID
	h.entry(login).currentChat = &id
}

func (h *PresenceHub) CurrentChat(login string) (chat.ChatID, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	p, ok := h.sessions[login]
	if !ok || p.currentChat == nil {
		return "", false
	}
	return *p.currentChat, true
}

func (h *PresenceHub) ClearCurrentChat(login string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.sessions[login]
	if !ok {
		return
	}
	p.currentChat = nil
	h.gc(login, p)
}

// ViewersOf returns the logins currently viewing chatID, sorted.
func (h *PresenceHub) ViewersOf(chatID chat.ChatID) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var viewers []string
	for login, p := range h.sessions {
		if p.currentChat != nil && *p.currentChat == chatID {
			viewers = append(viewers, login)
		}
	}
	sort.Strings(viewers)
	return viewers
}

func (h *PresenceHub) Stats() contract.PresenceStats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var stats contract.PresenceStats
	for _, p := range h.sessions {
		if p.sink != nil {
			stats.Connections++
		}
		if p.online {
			stats.Online++
		}
		if p.currentChat != nil {
			stats.Viewing++
		}
	}
	return stats
}

func (h *PresenceHub) entry(login string) *presence {
	p, ok := h.sessions[login]
	if !ok {
		p = &presence{}
		h.sessions[login] = p
	}
	return p
}

// gc drops an entry once it holds nothing, so the map does not grow with
// every login ever seen.
func (h *PresenceHub) gc(login string, p *presence) {
	if p.sink == nil && !p.online && p.typingIn == nil && p.currentChat == nil {
		delete(h.sessions, login)
	}
}
