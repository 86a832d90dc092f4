package server

import (
	"chat-app/domain/chat"
	"chat-app/errors"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

func chatID(r *http.Request) chat.ChatID {
	return chat.ChatID(r.PathValue("chatId"))
}

func (s *ChatServer) upsertProfile(w http.ResponseWriter, r *http.Request) {
	var profile chat.Profile
	if err := decode(r, &profile); err != nil {
		s.writeError(w, r, err)
		return
	}
	profile.Login = r.PathValue("login")
	if err := s.chat.UpsertProfile(profile); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profile)
}

func (s *ChatServer) setOnline(online bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.chat.SetOnline(r.Context(), r.PathValue("login"), online); err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]bool{"online": online})
	}
}

func (s *ChatServer) isOnline(w http.ResponseWriter, r *http.Request) {
	online, err := s.chat.IsOnline(r.PathValue("login"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"online": online})
}

func (s *ChatServer) setTyping(w http.ResponseWriter, r *http.Request) {
	if err := s.chat.SetTyping(r.Context(), r.PathValue("login"), chatID(r)); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"typing": true})
}

func (s *ChatServer) resetTyping(w http.ResponseWriter, r *http.Request) {
	if err := s.chat.ResetTyping(r.Context(), r.PathValue("login")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"typing": false})
}

func (s *ChatServer) isTyping(w http.ResponseWriter, r *http.Request) {
	typing, err := s.chat.IsTyping(r.PathValue("login"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"typing": typing})
}

type currentChatResponse struct {
	ChatID *chat.ChatID `json:"chatId"`
}

func (s *ChatServer) setCurrentChat(w http.ResponseWriter, r *http.Request) {
	id := chatID(r)
	if err := s.chat.SetCurrentChat(r.Context(), r.PathValue("login"), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, currentChatResponse{ChatID: &id})
}

func (s *ChatServer) clearCurrentChat(w http.ResponseWriter, r *http.Request) {
	if err := s.chat.ClearCurrentChat(r.Context(), r.PathValue("login")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, currentChatResponse{})
}

func (s *ChatServer) currentChat(w http.ResponseWriter, r *http.Request) {
	current, err := s.chat.CurrentChat(r.PathValue("login"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, currentChatResponse{ChatID: current})
}

func (s *ChatServer) counters(w http.ResponseWriter, r *http.Request) {
	counters, err := s.chat.Counters(r.PathValue("login"))
	s.writeCounters(w, r, counters, err)
}

type setCounterRequest struct {
	Number *int `json:"number"`
}

func (s *ChatServer) setCounter(w http.ResponseWriter, r *http.Request) {
	var body setCounterRequest
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	if body.Number == nil {
		s.writeError(w, r, fmt.Errorf("%w: number is required", errors.ErrInvalidPayload))
		return
	}
	counters, err := s.chat.SetCounter(r.PathValue("login"), chatID(r), *body.Number)
	s.writeCounters(w, r, counters, err)
}

func (s *ChatServer) incrementCounter(w http.ResponseWriter, r *http.Request) {
	counters, err := s.chat.IncrementCounter(r.PathValue("login"), chatID(r))
	s.writeCounters(w, r, counters, err)
}

func (s *ChatServer) resetCounter(w http.ResponseWriter, r *http.Request) {
	counters, err := s.chat.ResetCounter(r.PathValue("login"), chatID(r))
	s.writeCounters(w, r, counters, err)
}

func (s *ChatServer) writeCounters(w http.ResponseWriter, r *http.Request, counters []chat.Counter, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, counters)
}

func (s *ChatServer) lastMessages(w http.ResponseWriter, r *http.Request) {
	previews, err := s.chat.LastMessages(r.PathValue("login"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, previews)
}

func (s *ChatServer) createChat(w http.ResponseWriter, r *http.Request) {
	var cmd chat.CreateChatCommand
	if err := decode(r, &cmd); err != nil {
		s.writeError(w, r, err)
		return
	}
	created, err := s.chat.CreateChat(r.Context(), cmd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

type chatBetweenResponse struct {
	Exists bool         `json:"exists"`
	ChatID *chat.ChatID `json:"chatId"`
}

// chatBetween answers GET /chats?users=a,b.
func (s *ChatServer) chatBetween(w http.ResponseWriter, r *http.Request) {
	users := strings.Split(r.URL.Query().Get("users"), ",")
	if len(users) != 2 || users[0] == "" || users[1] == "" {
		s.writeError(w, r, fmt.Errorf("%w: users must name exactly two logins", errors.ErrInvalidPayload))
		return
	}
	id, ok := s.chat.ChatExists(users[0], users[1])
	if !ok {
		s.writeJSON(w, http.StatusOK, chatBetweenResponse{})
		return
	}
	s.writeJSON(w, http.StatusOK, chatBetweenResponse{Exists: true, ChatID: &id})
}

func (s *ChatServer) getChat(w http.ResponseWriter, r *http.Request) {
	c, err := s.chat.GetChat(chatID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

type sendMessageRequest struct {
	ID       string          `json:"id"`
	Login    string          `json:"login"`
	Text     string          `json:"text"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

func (s *ChatServer) sendMessage(w http.ResponseWriter, r *http.Request) {
	var body sendMessageRequest
	if err := decode(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	msg, err := s.chat.SendMessage(r.Context(), chat.SendMessageCommand{
		ChatID:   chatID(r),
		ID:       body.ID,
		Login:    body.Login,
		Text:     body.Text,
		Metadata: body.Metadata,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, msg)
}

func (s *ChatServer) lastMessage(w http.ResponseWriter, r *http.Request) {
	last, err := s.chat.LastMessage(chatID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, last)
}

func (s *ChatServer) markRead(w http.ResponseWriter, r *http.Request) {
	cmd := chat.MessageRefCommand{ChatID: chatID(r), MessageID: r.PathValue("messageId")}
	if err := s.chat.MarkRead(r.Context(), cmd); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *ChatServer) deleteMessage(w http.ResponseWriter, r *http.Request) {
	cmd := chat.MessageRefCommand{ChatID: chatID(r), MessageID: r.PathValue("messageId")}
	deleted, err := s.chat.DeleteMessage(r.Context(), cmd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, deleted)
}
