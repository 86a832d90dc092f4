package server

import (
	"chat-app/errors"
	"chat-app/services"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ChatServer exposes the chat operations over HTTP with JSON bodies and the
// live event stream as server-sent events.
type ChatServer struct {
	log          *slog.Logger
	chat         services.IChatService
	bufferSize   int
	writeTimeout time.Duration
}

const defaultWriteTimeout = 10 * time.Second

// NewChatServer builds the HTTP surface. writeTimeout bounds every frame
// written to a live stream, a non positive value falls back to the default.
func NewChatServer(log *slog.Logger, chat services.IChatService, bufferSize int, writeTimeout time.Duration) *ChatServer {
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &ChatServer{log: log, chat: chat, bufferSize: bufferSize, writeTimeout: writeTimeout}
}

// Handler returns the routed handler wrapped with request logging.
func (s *ChatServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("PUT /users/{login}", s.upsertProfile)
	mux.HandleFunc("GET /events/{login}", s.events)

	mux.HandleFunc("POST /users/{login}/online", s.setOnline(true))
	mux.HandleFunc("DELETE /users/{login}/online", s.setOnline(false))
	mux.HandleFunc("GET /users/{login}/online", s.isOnline)

	mux.HandleFunc("PUT /users/{login}/typing/{chatId}", s.setTyping)
	mux.HandleFunc("DELETE /users/{login}/typing", s.resetTyping)
	mux.HandleFunc("GET /users/{login}/typing", s.isTyping)

	mux.HandleFunc("PUT /users/{login}/current-chat/{chatId}", s.setCurrentChat)
	mux.HandleFunc("DELETE /users/{login}/current-chat", s.clearCurrentChat)
	mux.HandleFunc("GET /users/{login}/current-chat", s.currentChat)

	mux.HandleFunc("GET /users/{login}/counters", s.counters)
	mux.HandleFunc("PUT /users/{login}/counters/{chatId}", s.setCounter)
	mux.HandleFunc("POST /users/{login}/counters/{chatId}/increment", s.incrementCounter)
	mux.HandleFunc("POST /users/{login}/counters/{chatId}/reset", s.resetCounter)

	mux.HandleFunc("GET /users/{login}/last-messages", s.lastMessages)

	mux.HandleFunc("POST /chats", s.createChat)
	mux.HandleFunc("GET /chats", s.chatBetween)
	mux.HandleFunc("GET /chats/{chatId}", s.getChat)
	mux.HandleFunc("POST /chats/{chatId}/messages", s.sendMessage)
	mux.HandleFunc("GET /chats/{chatId}/last-message", s.lastMessage)
	mux.HandleFunc("POST /chats/{chatId}/messages/{messageId}/read", s.markRead)
	mux.HandleFunc("DELETE /chats/{chatId}/messages/{messageId}", s.deleteMessage)

	return s.logRequests(mux)
}

func (s *ChatServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

func (s *ChatServer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Warn("Unable to write response", "error", err)
	}
}

// writeError maps a service error to its status and structured body.
func (s *ChatServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.MapToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	s.writeJSON(w, status, errors.ToErrorResponse(err))
}

func decode(r *http.Request, into any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}
	return nil
}
