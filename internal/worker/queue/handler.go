package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/RubachokBoss/ontrack-service/internal/service"
	"github.com/rs/zerolog"
)

// MessageHandler turns published events into notifications.
type MessageHandler interface {
	HandleTaskSubmitted(ctx context.Context, event models.TaskSubmittedEvent) error
	HandleFeedbackProvided(ctx context.Context, event models.FeedbackProvidedEvent) error
	ProcessMessage(ctx context.Context, msg Message) error
}

type messageHandler struct {
	notificationService service.NotificationService
	logger              zerolog.Logger
}

func NewMessageHandler(notificationService service.NotificationService, logger zerolog.Logger) MessageHandler {
	return &messageHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

func (h *messageHandler) HandleTaskSubmitted(_ context.Context, event models.TaskSubmittedEvent) error {
	if event.TaskID <= 0 {
		return Permanent(fmt.Errorf("invalid task_id %d", event.TaskID))
	}

	h.logger.Info().
		Str("event_id", event.EventID).
		Int("task_id", event.TaskID).
		Str("student", event.Student).
		Msg("Handling task submitted event")

	h.notificationService.NotifyTutorOnTaskSubmission(event.Creator, event.TaskID, event.Student)
	return nil
}

func (h *messageHandler) HandleFeedbackProvided(_ context.Context, event models.FeedbackProvidedEvent) error {
	if event.TaskID <= 0 {
		return Permanent(fmt.Errorf("invalid task_id %d", event.TaskID))
	}

	h.logger.Info().
		Str("event_id", event.EventID).
		Int("feedback_id", event.FeedbackID).
		Int("students", len(event.Students)).
		Msg("Handling feedback provided event")

	message := fmt.Sprintf("Feedback from %s: %s", event.Tutor, event.Comments)
	for _, student := range event.Students {
		h.notificationService.NotifyStudentOnTaskUpdate(student, event.TaskID, message)
	}

	return nil
}

func (h *messageHandler) ProcessMessage(ctx context.Context, msg Message) error {
	var envelope models.EventEnvelope
	if err := json.Unmarshal(msg.Body, &envelope); err != nil {
		return Permanent(fmt.Errorf("failed to unmarshal message: %w", err))
	}

	switch envelope.Type {
	case "":
		return Permanent(errors.New("message type not specified"))

	case models.EventTypeTaskSubmitted:
		var event models.TaskSubmittedEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return Permanent(fmt.Errorf("failed to unmarshal task submitted event: %w", err))
		}
		return h.HandleTaskSubmitted(ctx, event)

	case models.EventTypeFeedbackProvided:
		var event models.FeedbackProvidedEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return Permanent(fmt.Errorf("failed to unmarshal feedback provided event: %w", err))
		}
		return h.HandleFeedbackProvided(ctx, event)

	default:
		h.logger.Warn().
			Str("type", envelope.Type).
			Str("routing_key", msg.RoutingKey).
			Msg("Unknown message type")
		return nil
	}
}
