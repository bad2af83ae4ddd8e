package events

import (
	"context"
	"time"

	"casino-admin-be/internal/pkg/logger"
	pkgEvents "casino-admin-be/pkg/events"
	pktNats "casino-admin-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	AdminCreated        = "ADMIN_CREATED"
	PlayerStatusChanged = "PLAYER_STATUS_CHANGED"
	PlayerTierChanged   = "PLAYER_TIER_CHANGED"
	BonusStatusChanged  = "BONUS_STATUS_CHANGED"
	RaceChanged         = "RACE_CHANGED"
	TierTableChanged    = "TIER_TABLE_CHANGED"
	PromotionPublished  = "PROMOTION_PUBLISHED"
	ApiKeyRevoked       = "API_KEY_REVOKED"
)

// Publisher abstracts domain event publishing for admin operations.
// Publishing is fire and forget: failures are logged, never returned.
type Publisher interface {
	PublishAdminCreated(ctx context.Context, adminId uuid.UUID, email, roleName string)
	PublishPlayerStatusChanged(ctx context.Context, userId uuid.UUID, from, to, reason string)
	PublishPlayerTierChanged(ctx context.Context, userId uuid.UUID, tierId *uuid.UUID)
	PublishBonusStatusChanged(ctx context.Context, bonusId uuid.UUID, code, from, to string)
	PublishRaceChanged(ctx context.Context, raceId uuid.UUID, action string)
	PublishTierTableChanged(ctx context.Context, tierId uuid.UUID, action string)
	PublishPromotionPublished(ctx context.Context, promotionId uuid.UUID, slug string)
	PublishApiKeyRevoked(ctx context.Context, keyId uuid.UUID, prefix string)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisher accepts a nil publisher, in which case events are dropped.
func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *NatsPublisher) PublishAdminCreated(ctx context.Context, adminId uuid.UUID, email, roleName string) {
	p.publish(ctx, AdminCreated, map[string]interface{}{
		"admin_id": adminId.String(),
		"email":    email,
		"role":     roleName,
	})
}

func (p *NatsPublisher) PublishPlayerStatusChanged(ctx context.Context, userId uuid.UUID, from, to, reason string) {
	p.publish(ctx, PlayerStatusChanged, map[string]interface{}{
		"user_id": userId.String(),
		"from":    from,
		"to":      to,
		"reason":  reason,
	})
}

func (p *NatsPublisher) PublishPlayerTierChanged(ctx context.Context, userId uuid.UUID, tierId *uuid.UUID) {
	data := map[string]interface{}{"user_id": userId.String(), "tier_id": nil}
	if tierId != nil {
		data["tier_id"] = tierId.String()
	}
	p.publish(ctx, PlayerTierChanged, data)
}

func (p *NatsPublisher) PublishBonusStatusChanged(ctx context.Context, bonusId uuid.UUID, code, from, to string) {
	p.publish(ctx, BonusStatusChanged, map[string]interface{}{
		"bonus_id": bonusId.String(),
		"code":     code,
		"from":     from,
		"to":       to,
	})
}

func (p *NatsPublisher) PublishRaceChanged(ctx context.Context, raceId uuid.UUID, action string) {
	p.publish(ctx, RaceChanged, map[string]interface{}{
		"race_id": raceId.String(),
		"action":  action,
	})
}

func (p *NatsPublisher) PublishTierTableChanged(ctx context.Context, tierId uuid.UUID, action string) {
	p.publish(ctx, TierTableChanged, map[string]interface{}{
		"tier_id": tierId.String(),
		"action":  action,
	})
}

func (p *NatsPublisher) PublishPromotionPublished(ctx context.Context, promotionId uuid.UUID, slug string) {
	p.publish(ctx, PromotionPublished, map[string]interface{}{
		"promotion_id": promotionId.String(),
		"slug":         slug,
	})
}

func (p *NatsPublisher) PublishApiKeyRevoked(ctx context.Context, keyId uuid.UUID, prefix string) {
	p.publish(ctx, ApiKeyRevoked, map[string]interface{}{
		"api_key_id": keyId.String(),
		"prefix":     prefix,
	})
}
