package sink

import (
	"chat-app/contract"
	"chat-app/domain/event"
	"chat-app/errors"
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ contract.EventSink = (*SSESink)(nil)

// SSESink buffers the events of one live connection.
// The HTTP handler owning the connection drains Events and writes the frames.
type SSESink struct {
	ID     uuid.UUID
	Login  string
	events chan event.DomainEvent
	done   chan struct{}
	once   sync.Once
}

func NewSSESink(login string, bufferSize int) *SSESink {
	return &SSESink{
		ID:     uuid.New(),
		Login:  login,
		events: make(chan event.DomainEvent, bufferSize),
		done:   make(chan struct{}),
	}
}

// Consume is called by the broadcaster.
// It waits for room in the buffer until ctx expires, so a stalled reader
// surfaces as an error and gets detached instead of silently losing events.
func (s *SSESink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case <-s.done:
		return errors.ErrSinkClosed
	default:
	}

	select {
	case s.events <- e:
		return nil
	case <-s.done:
		return errors.ErrSinkClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SSESink) Events() <-chan event.DomainEvent { return s.events }

// Done is closed once the sink has been closed, by a replacing connection
// or by a failed delivery.
func (s *SSESink) Done() <-chan struct{} { return s.done }

func (s *SSESink) Close() {
	s.once.Do(func() { close(s.done) })
}
