package repository

import (
	"time"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/rs/zerolog"
)

type FeedbackRepository interface {
	Create(taskID int, tutor, comments string) *models.Feedback
	GetByID(id int) (*models.Feedback, bool)
	GetByTaskID(taskID int) []models.Feedback
}

type feedbackRepository struct {
	*MemoryRepository[models.Feedback]
}

func NewFeedbackRepository(logger zerolog.Logger) FeedbackRepository {
	return &feedbackRepository{
		MemoryRepository: NewMemoryRepository((*models.Feedback).Clone, logger),
	}
}

func (r *feedbackRepository) Create(taskID int, tutor, comments string) *models.Feedback {
	return r.insert(func(id int) *models.Feedback {
		return &models.Feedback{
			ID:        id,
			TaskID:    taskID,
			Tutor:     tutor,
			Comments:  comments,
			CreatedAt: time.Now().UTC(),
		}
	})
}

func (r *feedbackRepository) GetByID(id int) (*models.Feedback, bool) {
	return r.get(id)
}

func (r *feedbackRepository) GetByTaskID(taskID int) []models.Feedback {
	result := []models.Feedback{}
	for _, feedback := range r.all() {
		if feedback.TaskID == taskID {
			result = append(result, feedback)
		}
	}
	return result
}
