package server

import (
	"chat-app/domain/event"
	"chat-app/errors"
	"chat-app/sink"
	"fmt"
	"net/http"
	"time"
)

// events streams the live events of a login as server-sent events.
// The first frame is always the start sentinel. The connection stays
// attached until the client goes away, a newer connection replaces it or a
// frame cannot be written within the write timeout.
func (s *ChatServer) events(w http.ResponseWriter, r *http.Request) {
	if _, ok := w.(http.Flusher); !ok {
		s.writeError(w, r, fmt.Errorf("streaming unsupported by the response writer"))
		return
	}

	login := r.PathValue("login")
	conn := sink.NewSSESink(login, s.bufferSize)
	if err := s.chat.Attach(login, conn); err != nil {
		s.writeError(w, r, err)
		return
	}
	defer conn.Close()
	defer s.chat.Detach(login, conn)

	s.log.Info("Live connection opened", "login", login, "connection_id", conn.ID)
	defer s.log.Info("Live connection closed", "login", login, "connection_id", conn.ID)

	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	if err := s.writeFrame(rc, w, []byte(event.StartFrame)); err != nil {
		s.log.Debug("Live connection write failed", "login", login, "error", err)
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case <-conn.Done():
			return
		case e := <-conn.Events():
			data, err := event.Encode(e)
			if err != nil {
				s.log.Error("Unable to encode event", "type", e.EventType(), "error", err)
				continue
			}
			if err := s.writeFrame(rc, w, data); err != nil {
				s.log.Debug("Live connection write failed", "login", login, "error", err)
				return
			}
		}
	}
}

// writeFrame writes and flushes one frame under a fresh write deadline, so a
// client that stopped reading fails the write instead of blocking it.
func (s *ChatServer) writeFrame(rc *http.ResponseController, w http.ResponseWriter, data []byte) error {
	if err := rc.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return err
	}
	return rc.Flush()
}
