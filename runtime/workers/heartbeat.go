package workers

import (
	"chat-app/contract"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker periodically logs the health of the process together with
// the number of live connections.
type HeartbeatWorker struct {
	log      *slog.Logger
	presence contract.IPresenceStats
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, presence contract.IPresenceStats, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, presence: presence, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	stats := w.presence.Stats()
	attrs := []any{
		"connections", stats.Connections,
		"online", stats.Online,
		"viewing", stats.Viewing,
	}

	rss, cpu, status, err := getSelfStats(p)
	if err != nil {
		w.log.Warn("Failed to collect self stats", "error", err)
	} else {
		attrs = append(attrs, "pid", p.Pid, "status", status, "cpu_percent", cpu, "ram_bytes", rss)
	}
	w.log.Info("Heartbeat", attrs...)
}

// getSelfStats retrieves memory, CPU and OS status of the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
