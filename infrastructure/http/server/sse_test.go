package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// deadlineWriter records how frames reach the connection. Once stalled, a
// write blocks until the current deadline like a socket nobody reads.
type deadlineWriter struct {
	mu        sync.Mutex
	header    http.Header
	ops       []string
	deadlines []time.Time
	stalled   bool
}

func newDeadlineWriter() *deadlineWriter {
	return &deadlineWriter{header: make(http.Header)}
}

func (w *deadlineWriter) Header() http.Header { return w.header }

func (w *deadlineWriter) WriteHeader(int) {}

func (w *deadlineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	w.ops = append(w.ops, "write")
	stalled := w.stalled
	var deadline time.Time
	if len(w.deadlines) > 0 {
		deadline = w.deadlines[len(w.deadlines)-1]
	}
	w.mu.Unlock()

	if !stalled {
		return len(p), nil
	}
	time.Sleep(time.Until(deadline))
	return 0, os.ErrDeadlineExceeded
}

func (w *deadlineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ops = append(w.ops, "flush")
}

func (w *deadlineWriter) SetWriteDeadline(deadline time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ops = append(w.ops, "deadline")
	w.deadlines = append(w.deadlines, deadline)
	return nil
}

func (w *deadlineWriter) stall() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stalled = true
}

func (w *deadlineWriter) recorded() ([]string, []time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.ops...), append([]time.Time(nil), w.deadlines...)
}

func streamTo(t *testing.T, server *ChatServer, w *deadlineWriter, login string) (context.CancelFunc, <-chan struct{}) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	request := httptest.NewRequest(http.MethodGet, "/events/"+login, nil).WithContext(ctx)
	done := make(chan struct{})
	go func() {
		server.Handler().ServeHTTP(w, request)
		close(done)
	}()
	return cancel, done
}

func TestChatServer_Events_DeadlinePerFrame(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	svc := newTestService(t)
	ts := serve(t, svc)
	seed(t, ts)

	// Given alice streaming through a connection that supports deadlines
	timeout := 200 * time.Millisecond
	start := time.Now()
	w := newDeadlineWriter()
	cancel, done := streamTo(t, NewChatServer(log, svc, 16, timeout), w, "alice")
	req.Eventually(func() bool { ops, _ := w.recorded(); return len(ops) >= 3 }, time.Second, 10*time.Millisecond)

	// When bob starts typing in their chat
	status, _ := call(t, ts, http.MethodPut, "/users/bob/typing/c1", nil)
	req.Equal(http.StatusOK, status)
	req.Eventually(func() bool { ops, _ := w.recorded(); return len(ops) >= 6 }, time.Second, 10*time.Millisecond)
	cancel()
	<-done

	// Then each frame is written under its own fresh deadline
	ops, deadlines := w.recorded()
	req.Equal([]string{"deadline", "write", "flush", "deadline", "write", "flush"}, ops)
	for _, deadline := range deadlines {
		req.True(deadline.After(start))
		req.False(deadline.After(time.Now().Add(timeout)))
	}
}

func TestChatServer_Events_StalledClientEndsStream(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	svc := newTestService(t)
	ts := serve(t, svc)
	seed(t, ts)

	// Given alice streaming, then no longer reading
	w := newDeadlineWriter()
	_, done := streamTo(t, NewChatServer(log, svc, 16, 50*time.Millisecond), w, "alice")
	req.Eventually(func() bool { ops, _ := w.recorded(); return len(ops) >= 3 }, time.Second, 10*time.Millisecond)
	w.stall()

	// When an event is due to alice
	status, _ := call(t, ts, http.MethodPut, "/users/bob/typing/c1", nil)
	req.Equal(http.StatusOK, status)

	// Then the handler gives up at the deadline instead of hanging
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("stream handler still blocked on a stalled client")
	}
}
