package workers

import (
	"chat-app/contract"
	"chat-app/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHeartbeatWorker_ReportsPresence(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	presence := mocks.NewMockIPresenceStats(ctrl)

	beats := make(chan struct{}, 10)
	presence.EXPECT().Stats().
		DoAndReturn(func() contract.PresenceStats {
			select {
			case beats <- struct{}{}:
			default:
			}
			return contract.PresenceStats{Connections: 2, Online: 1}
		}).
		MinTimes(1)

	worker := NewHeartbeatWorker(log, presence, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	select {
	case <-beats:
	case <-time.After(time.Second):
		req.Fail("no heartbeat emitted")
	}

	cancel()
	req.NoError(<-done)
}
