package service

import (
	"context"
	"time"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/RubachokBoss/ontrack-service/internal/service/integration"
	"github.com/rs/zerolog"
)

// WorkflowService runs the task and feedback operations that other parties
// should hear about and publishes the matching events. The underlying services
// stay unaware of each other; publishing failures are logged, never returned.
type WorkflowService interface {
	SubmitTask(ctx context.Context, taskID int, student, submission string) bool
	ProvideFeedback(ctx context.Context, taskID int, tutor, comments string) *models.Feedback
}

type workflowService struct {
	taskService     TaskService
	feedbackService FeedbackService
	publisher       integration.EventPublisher
	logger          zerolog.Logger
}

func NewWorkflowService(
	taskService TaskService,
	feedbackService FeedbackService,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) WorkflowService {
	return &workflowService{
		taskService:     taskService,
		feedbackService: feedbackService,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *workflowService) SubmitTask(ctx context.Context, taskID int, student, submission string) bool {
	if !s.taskService.SubmitTask(taskID, student, submission) {
		return false
	}

	task, ok := s.taskService.GetTask(taskID)
	if !ok {
		return true
	}

	event := &models.TaskSubmittedEvent{
		TaskID:    taskID,
		Student:   student,
		Creator:   task.Creator,
		Timestamp: time.Now().Unix(),
	}

	if err := s.publisher.PublishTaskSubmitted(ctx, event); err != nil {
		s.logger.Error().Err(err).Int("task_id", taskID).Msg("Failed to publish task submitted event")
	}

	return true
}

func (s *workflowService) ProvideFeedback(ctx context.Context, taskID int, tutor, comments string) *models.Feedback {
	feedback := s.feedbackService.ProvideFeedback(taskID, tutor, comments)

	task, ok := s.taskService.GetTask(taskID)
	if !ok || len(task.Submissions) == 0 {
		s.logger.Debug().Int("task_id", taskID).Msg("No submitters to notify about feedback")
		return feedback
	}

	event := &models.FeedbackProvidedEvent{
		FeedbackID: feedback.ID,
		TaskID:     taskID,
		Tutor:      tutor,
		Comments:   comments,
		Students:   task.Submitters(),
		Timestamp:  time.Now().Unix(),
	}

	if err := s.publisher.PublishFeedbackProvided(ctx, event); err != nil {
		s.logger.Error().Err(err).Int("feedback_id", feedback.ID).Msg("Failed to publish feedback provided event")
	}

	return feedback
}
