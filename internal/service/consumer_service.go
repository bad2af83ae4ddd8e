package service

import (
	"context"
	"encoding/json"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// ActivityBroadcaster pushes stored audit entries to live admin sessions.
type ActivityBroadcaster interface {
	Broadcast(ctx context.Context, msg dto.AuditMessage)
}

type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	uowFactory  unitofwork.RepositoryFactory
	broadcaster ActivityBroadcaster
	logger      logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	broadcaster ActivityBroadcaster,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		logger:      log,
	}
}

// Consume subscribes and processes messages in the background until ctx ends.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AuditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("AUDIT", "Dropping malformed audit message", map[string]interface{}{"message_id": msg.UUID, "error": err.Error()})
		msg.Ack()
		return
	}

	entry := &entity.AuditLog{
		AdminId:    payload.AdminId,
		AdminEmail: payload.AdminEmail,
		Action:     payload.Action,
		EntityType: payload.EntityType,
		EntityId:   payload.EntityId,
		Details:    payload.Details,
		IpAddress:  payload.IpAddress,
		CreatedAt:  payload.OccurredAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AuditLogRepository().Create(ctx, entry); err != nil {
		cs.logger.Error("AUDIT", "Failed to store audit entry", map[string]interface{}{"action": payload.Action, "error": err.Error()})
		msg.Nack()
		return
	}

	if cs.broadcaster != nil {
		cs.broadcaster.Broadcast(ctx, payload)
	}
	msg.Ack()
}
