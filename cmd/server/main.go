package main

import (
	"chat-app/domain/chat"
	"chat-app/infrastructure/grpc/server"
	httpserver "chat-app/infrastructure/http/server"
	"chat-app/infrastructure/storage"
	"chat-app/internal"
	"chat-app/moderation"
	"chat-app/runtime"
	"chat-app/runtime/workers"
	"chat-app/services"
	"chat-app/store"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Exit codes to provide meaningful status to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a server failure.
// Returning instead of exiting lets the deferred database close run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB) and persisted state
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	snapshotRepository := storage.NewSnapshotRepository(db, logger)
	tables := store.NewTables()
	if err := workers.LoadSnapshots(logger, snapshotRepository, tables); err != nil {
		return exitRuntime, fmt.Errorf("loading snapshots failed: %w", err)
	}
	logger.Info("State restored",
		"users", len(tables.Users.Profiles()),
		"chats", len(tables.Chats.Chats()))

	// 3. Live state and chat service
	hub := runtime.NewPresenceHub()
	broadcaster := runtime.NewBroadcaster(logger, hub, config.DeliveryTimeout)
	writer := workers.NewSnapshotWriter(logger, snapshotRepository, tables)

	moderator, err := buildModerator(config, charReplacement, logger)
	if err != nil {
		return exitConfig, err
	}
	chatService := services.NewChatService(logger, tables, hub, broadcaster, writer, moderator)

	if config.DebugInspectorPort > 0 {
		endpoint := "/inspect"
		stats := func() map[string]any {
			s := hub.Stats()
			return map[string]any{"Connections": s.Connections, "Online": s.Online, "Viewing": s.Viewing}
		}
		inspector := internal.StartDebugServer(logger, db, config.DebugInspectorPort, endpoint, SnapshotMapper, stats)
		defer func() { _ = inspector.Close() }()
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugInspectorPort, endpoint))
	}

	// 4. Supervision
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, supervisor,
		writer,
		workers.NewHeartbeatWorker(logger, hub, config.HeartbeatInterval),
	)
	healthServer := server.NewHealthServer(logger)
	orchestrator.OnStatusChange(healthServer.SetServing)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	grpcListener, err := net.Listen("tcp", config.GRPCAddress())
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", config.GRPCAddress(), err)
	}

	g, gctx := errgroup.WithContext(ctx)
	httpServer := &http.Server{
		Addr:    config.HTTPAddress(),
		Handler: httpserver.NewChatServer(logger, chatService, config.ConnectionBufferSize, config.StreamWriteTimeout).Handler(),
		// Live streams end with the process instead of holding Shutdown.
		BaseContext: func(net.Listener) context.Context { return gctx },
	}

	g.Go(func() error {
		if err := orchestrator.Start(gctx); err != nil {
			return fmt.Errorf("orchestrator error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return healthServer.Serve(grpcListener)
	})
	g.Go(func() error {
		logger.Info("Starting HTTP server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		healthServer.GracefulStop()
		orchestrator.Stop()
		return err
	})

	err = g.Wait()

	// Requests served during shutdown may have scheduled writes after the
	// writer stopped.
	writer.Flush()
	if err != nil {
		return exitRuntime, err
	}
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}

func buildModerator(config internal.Config, char rune, logger *slog.Logger) (*moderation.Moderator, error) {
	words := moderation.ParseWords(config.CensoredWords)
	if len(words) == 0 {
		logger.Info("Moderation disabled, no censored words configured")
		return nil, nil
	}
	moderator, err := moderation.NewModerator(words, char, logger)
	if err != nil {
		return nil, fmt.Errorf("moderation setup failed: %w", err)
	}
	logger.Info(fmt.Sprintf("%d censored words loaded", len(words)))
	return moderator, nil
}

// SnapshotMapper summarizes the persisted snapshots in the debug inspector.
func SnapshotMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	switch key {
	case storage.DataSnapshotKey:
		var snapshot store.Snapshot
		if err := json.Unmarshal(val, &snapshot); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		messages := lo.SumBy(snapshot.Chats, func(c chat.Chat) int { return len(c.Messages) })
		row.Detail = fmt.Sprintf("%d users, %d chats, %d messages",
			len(snapshot.Users), len(snapshot.Chats), messages)
	case storage.KeySnapshotKey:
		var keys store.KeySnapshot
		if err := json.Unmarshal(val, &keys); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Detail = fmt.Sprintf("%d chat keys", len(keys.Keys))
	}
	return row
}
