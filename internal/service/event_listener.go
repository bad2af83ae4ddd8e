package service

import (
	"context"

	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/pkg/admin/dashboard"
	adminEvents "casino-admin-be/pkg/admin/events"
	"casino-admin-be/pkg/events"
	pktNats "casino-admin-be/pkg/nats"
)

// dashboardEvents change numbers shown on the dashboard.
var dashboardEvents = map[string]bool{
	adminEvents.PlayerStatusChanged: true,
	adminEvents.PlayerTierChanged:   true,
	adminEvents.BonusStatusChanged:  true,
	adminEvents.RaceChanged:         true,
	adminEvents.TierTableChanged:    true,
}

// EventListener drops cached dashboard stats when another instance reports a change.
type EventListener struct {
	subscriber *pktNats.Subscriber
	aggregator *dashboard.Aggregator
	logger     logger.ILogger
}

func NewEventListener(sub *pktNats.Subscriber, aggregator *dashboard.Aggregator, log logger.ILogger) *EventListener {
	return &EventListener{
		subscriber: sub,
		aggregator: aggregator,
		logger:     log,
	}
}

func (l *EventListener) Start(ctx context.Context) error {
	return l.subscriber.Subscribe(ctx, pktNats.Subject(">"), "admin-dashboard-cache", l.HandleEvent)
}

func (l *EventListener) HandleEvent(_ context.Context, event events.Event) error {
	if !dashboardEvents[event.EventType()] {
		return nil
	}
	l.aggregator.Invalidate()
	l.logger.Debug("EventListener", "Dashboard cache invalidated", map[string]interface{}{"type": event.EventType()})
	return nil
}
