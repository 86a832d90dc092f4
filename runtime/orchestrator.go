// Package runtime holds the live side of the chat: who is connected, who is
// looking at which chat, and how events reach them. It carries no chat rules.
package runtime

import (
	"chat-app/contract"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// StatusListener is told when the supervised workers start and stop running.
type StatusListener func(running bool)

// Orchestrator owns the background workers of the process (snapshot writer,
// heartbeat) and keeps them alive through the supervisor.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	workers    []contract.Worker
	listeners  []StatusListener
	running    bool
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, workers ...contract.Worker) *Orchestrator {
	return &Orchestrator{log: log, supervisor: supervisor, workers: workers}
}

// OnStatusChange registers a listener, typically the health endpoint.
func (o *Orchestrator) OnStatusChange(listener StatusListener) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listeners = append(o.listeners, listener)
}

func (o *Orchestrator) IsRunning() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running
}

// Start hands every worker to the supervisor and blocks until ctx is done or
// Stop is called.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return fmt.Errorf("orchestrator already running")
	}
	o.running = true
	o.supervisor.Add(o.workers...)
	o.mu.Unlock()

	o.log.Info(fmt.Sprintf("Starting orchestrator with %d supervised workers", len(o.workers)))
	o.notify(true)
	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
		o.notify(false)
	}()

	o.supervisor.Run(ctx)
	o.log.Info("Orchestrator stopped")
	return nil
}

// Stop cancels the supervised context. Start returns once the workers are gone.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}

func (o *Orchestrator) notify(running bool) {
	o.mu.Lock()
	listeners := append([]StatusListener(nil), o.listeners...)
	o.mu.Unlock()

	for _, listener := range listeners {
		listener(running)
	}
}
