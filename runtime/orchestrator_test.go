package runtime

import (
	"chat-app/mocks"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

type statusRecorder struct {
	mu       sync.Mutex
	statuses []bool
}

func (r *statusRecorder) record(running bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, running)
}

func (r *statusRecorder) all() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.statuses...)
}

func TestOrchestrator_Start_RunsSupervisorUntilCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a supervisor blocking until its context is done
	supervisor := mocks.NewMockISupervisor(ctrl)
	writer := mocks.NewMockWorker(ctrl)
	heartbeat := mocks.NewMockWorker(ctrl)
	supervisor.EXPECT().Add(writer, heartbeat).Return(supervisor)
	supervisor.EXPECT().Run(gomock.Any()).Do(func(ctx context.Context) { <-ctx.Done() })

	orchestrator := NewOrchestrator(log, supervisor, writer, heartbeat)
	recorder := &statusRecorder{}
	orchestrator.OnStatusChange(recorder.record)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- orchestrator.Start(ctx) }()

	// Then it reports running
	req.Eventually(orchestrator.IsRunning, time.Second, 10*time.Millisecond)

	// When the context is canceled
	cancel()

	// Then Start returns and listeners saw both transitions
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("orchestrator did not stop")
	}
	req.False(orchestrator.IsRunning())
	req.Equal([]bool{true, false}, recorder.all())
}

func TestOrchestrator_StartTwice(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	supervisor := mocks.NewMockISupervisor(ctrl)
	release := make(chan struct{})
	supervisor.EXPECT().Add().Return(supervisor)
	supervisor.EXPECT().Run(gomock.Any()).Do(func(ctx context.Context) { <-release })
	supervisor.EXPECT().Stop().Do(func() { close(release) })

	orchestrator := NewOrchestrator(log, supervisor)
	done := make(chan error, 1)
	go func() { done <- orchestrator.Start(context.Background()) }()
	req.Eventually(orchestrator.IsRunning, time.Second, 10*time.Millisecond)

	// When started again while running
	err := orchestrator.Start(context.Background())

	// Then it is refused
	req.Error(err)

	orchestrator.Stop()
	req.NoError(<-done)
}
