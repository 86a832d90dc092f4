package runtime

import (
	"chat-app/contract"
	"chat-app/domain/event"
	"context"
	"log/slog"
	"time"
)

var _ contract.IBroadcaster = (*Broadcaster)(nil)

// Broadcaster pushes a domain event to the live connections of a set of logins.
//
// Delivery is best effort: there is no retry and no replay. A sink failing
// within the delivery timeout is detached and closed, the other recipients
// still get the event. Logins without a connection are skipped.
//
// Callers invoke PushTo sequentially, so events reach a connection in call order.
type Broadcaster struct {
	log             *slog.Logger
	hub             contract.IPresenceHub
	deliveryTimeout time.Duration
}

func NewBroadcaster(log *slog.Logger, hub contract.IPresenceHub, deliveryTimeout time.Duration) *Broadcaster {
	return &Broadcaster{log: log, hub: hub, deliveryTimeout: deliveryTimeout}
}

func (b *Broadcaster) PushTo(ctx context.Context, logins []string, e event.DomainEvent) {
	for _, login := range logins {
		sink, ok := b.hub.Sink(login)
		if !ok {
			continue
		}
		if err := b.deliver(ctx, sink, e); err != nil {
			b.log.Warn("Dropping live connection",
				"login", login, "event", e.EventType(), "error", err)
			if b.hub.Detach(login, sink) {
				sink.Close()
			}
		}
	}
}

func (b *Broadcaster) deliver(ctx context.Context, sink contract.EventSink, e event.DomainEvent) error {
	deliveryCtx, cancel := context.WithTimeout(ctx, b.deliveryTimeout)
	defer cancel()
	return sink.Consume(deliveryCtx, e)
}
