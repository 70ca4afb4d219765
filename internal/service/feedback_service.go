package service

import (
	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/RubachokBoss/ontrack-service/internal/repository"
	"github.com/rs/zerolog"
)

type FeedbackService interface {
	// ProvideFeedback never checks that taskID names an existing task.
	ProvideFeedback(taskID int, tutor, comments string) *models.Feedback
	GetFeedback(id int) (*models.Feedback, bool)
	ListFeedbackForTask(taskID int) []models.Feedback
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       zerolog.Logger
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, logger zerolog.Logger) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (s *feedbackService) ProvideFeedback(taskID int, tutor, comments string) *models.Feedback {
	feedback := s.feedbackRepo.Create(taskID, tutor, comments)

	s.logger.Info().
		Int("feedback_id", feedback.ID).
		Int("task_id", taskID).
		Str("tutor", tutor).
		Msg("Feedback provided")

	return feedback
}

func (s *feedbackService) GetFeedback(id int) (*models.Feedback, bool) {
	return s.feedbackRepo.GetByID(id)
}

func (s *feedbackService) ListFeedbackForTask(taskID int) []models.Feedback {
	return s.feedbackRepo.GetByTaskID(taskID)
}
