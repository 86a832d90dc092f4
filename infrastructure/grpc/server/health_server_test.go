package server

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func startHealthServer(t *testing.T) (*HealthServer, healthpb.HealthClient) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	hs := NewHealthServer(log)
	served := make(chan error, 1)
	go func() { served <- hs.Serve(listener) }()

	conn, err := grpc.NewClient(listener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		hs.GracefulStop()
		require.NoError(t, <-served)
	})
	return hs, healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealthServer_FollowsServingStatus(t *testing.T) {
	req := require.New(t)
	hs, client := startHealthServer(t)

	// Given a freshly started server
	// Then it is not serving yet
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))

	// When the workers are running
	hs.SetServing(true)

	// Then both the overall and the chat service report SERVING
	req.Equal(healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	req.Equal(healthpb.HealthCheckResponse_SERVING, check(t, client, ChatServiceName))

	// When they stop
	hs.SetServing(false)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ChatServiceName))
}

func TestHealthServer_UnknownService(t *testing.T) {
	req := require.New(t)
	_, client := startHealthServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: "unknown"})
	req.Error(err)
}
