package sink_test

import (
	"chat-app/domain/event"
	"chat-app/errors"
	"chat-app/sink"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSSESink_Consume(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	t.Run("Events are buffered in order", func(t *testing.T) {
		s := sink.NewSSESink("alice", 2)
		req.NoError(s.Consume(ctx, event.ChatDeleted{ChatID: "c1"}))
		req.NoError(s.Consume(ctx, event.ChatDeleted{ChatID: "c2"}))

		req.Equal(event.ChatDeleted{ChatID: "c1"}, <-s.Events())
		req.Equal(event.ChatDeleted{ChatID: "c2"}, <-s.Events())
	})

	t.Run("A full buffer fails once the deadline expires", func(t *testing.T) {
		s := sink.NewSSESink("alice", 1)
		req.NoError(s.Consume(ctx, event.ChatDeleted{ChatID: "c1"}))

		timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		err := s.Consume(timeoutCtx, event.ChatDeleted{ChatID: "c2"})
		req.ErrorIs(err, context.DeadlineExceeded)
	})

	t.Run("A closed sink rejects events", func(t *testing.T) {
		s := sink.NewSSESink("alice", 1)
		s.Close()
		s.Close()

		req.ErrorIs(s.Consume(ctx, event.ChatDeleted{ChatID: "c1"}), errors.ErrSinkClosed)
		select {
		case <-s.Done():
		default:
			req.Fail("done channel should be closed")
		}
	})

	t.Run("Closing unblocks a pending delivery", func(t *testing.T) {
		s := sink.NewSSESink("alice", 1)
		req.NoError(s.Consume(ctx, event.ChatDeleted{ChatID: "c1"}))

		result := make(chan error, 1)
		go func() { result <- s.Consume(ctx, event.ChatDeleted{ChatID: "c2"}) }()
		time.Sleep(10 * time.Millisecond)
		s.Close()

		select {
		case err := <-result:
			req.ErrorIs(err, errors.ErrSinkClosed)
		case <-time.After(time.Second):
			req.Fail("Consume stayed blocked after Close")
		}
	})
}
