package integration

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MessagePublisher is the transport an EventPublisher writes to: RabbitMQ in
// production, the in-process queue otherwise.
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Close() error
}

type RoutingKeys struct {
	TaskSubmitted    string
	FeedbackProvided string
}

type EventPublisher interface {
	PublishTaskSubmitted(ctx context.Context, event *models.TaskSubmittedEvent) error
	PublishFeedbackProvided(ctx context.Context, event *models.FeedbackProvidedEvent) error
	Close() error
}

type eventPublisher struct {
	transport MessagePublisher
	keys      RoutingKeys
	logger    zerolog.Logger
}

func NewEventPublisher(transport MessagePublisher, keys RoutingKeys, logger zerolog.Logger) EventPublisher {
	return &eventPublisher{
		transport: transport,
		keys:      keys,
		logger:    logger,
	}
}

func (p *eventPublisher) PublishTaskSubmitted(ctx context.Context, event *models.TaskSubmittedEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	event.Type = models.EventTypeTaskSubmitted

	if err := p.publish(ctx, p.keys.TaskSubmitted, event); err != nil {
		return err
	}

	p.logger.Info().
		Str("event_id", event.EventID).
		Int("task_id", event.TaskID).
		Str("student", event.Student).
		Msg("Task submitted event published")

	return nil
}

func (p *eventPublisher) PublishFeedbackProvided(ctx context.Context, event *models.FeedbackProvidedEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	event.Type = models.EventTypeFeedbackProvided

	if err := p.publish(ctx, p.keys.FeedbackProvided, event); err != nil {
		return err
	}

	p.logger.Info().
		Str("event_id", event.EventID).
		Int("feedback_id", event.FeedbackID).
		Int("task_id", event.TaskID).
		Int("students", len(event.Students)).
		Msg("Feedback provided event published")

	return nil
}

func (p *eventPublisher) publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.transport.Publish(ctx, routingKey, body); err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}

	return nil
}

func (p *eventPublisher) Close() error {
	return p.transport.Close()
}
