package service

import (
	"time"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/RubachokBoss/ontrack-service/internal/repository"
	"github.com/rs/zerolog"
)

type TutoringService interface {
	ScheduleSession(tutor, student string, date time.Time, timeOfDay string) *models.Session
	GetSession(id int) (*models.Session, bool)
	ListSessions() []models.Session
}

type tutoringService struct {
	sessionRepo repository.SessionRepository
	logger      zerolog.Logger
}

func NewTutoringService(sessionRepo repository.SessionRepository, logger zerolog.Logger) TutoringService {
	return &tutoringService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// ScheduleSession does not look for overlapping sessions of the tutor or student.
func (s *tutoringService) ScheduleSession(tutor, student string, date time.Time, timeOfDay string) *models.Session {
	session := s.sessionRepo.Create(tutor, student, date, timeOfDay)

	s.logger.Info().
		Int("session_id", session.ID).
		Str("tutor", tutor).
		Str("student", student).
		Time("date", date).
		Str("time", timeOfDay).
		Msg("Session scheduled")

	return session
}

func (s *tutoringService) GetSession(id int) (*models.Session, bool) {
	return s.sessionRepo.GetByID(id)
}

func (s *tutoringService) ListSessions() []models.Session {
	return s.sessionRepo.GetAll()
}
