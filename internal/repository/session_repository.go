package repository

import (
	"time"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/rs/zerolog"
)

type SessionRepository interface {
	Create(tutor, student string, date time.Time, timeOfDay string) *models.Session
	GetByID(id int) (*models.Session, bool)
	GetAll() []models.Session
}

type sessionRepository struct {
	*MemoryRepository[models.Session]
}

func NewSessionRepository(logger zerolog.Logger) SessionRepository {
	return &sessionRepository{
		MemoryRepository: NewMemoryRepository((*models.Session).Clone, logger),
	}
}

func (r *sessionRepository) Create(tutor, student string, date time.Time, timeOfDay string) *models.Session {
	return r.insert(func(id int) *models.Session {
		return &models.Session{
			ID:      id,
			Tutor:   tutor,
			Student: student,
			Date:    date,
			Time:    timeOfDay,
		}
	})
}

func (r *sessionRepository) GetByID(id int) (*models.Session, bool) {
	return r.get(id)
}

func (r *sessionRepository) GetAll() []models.Session {
	return r.all()
}
