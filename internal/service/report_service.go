package service

import (
	"time"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/rs/zerolog"
)

// Reports are not derived from task, feedback or session data yet.
const (
	StubAverageScore   = 90
	StubTasksCompleted = 20
)

type ProgressReportService interface {
	GenerateReport(student string) *models.ProgressReport
}

type progressReportService struct {
	logger zerolog.Logger
}

func NewProgressReportService(logger zerolog.Logger) ProgressReportService {
	return &progressReportService{
		logger: logger,
	}
}

func (s *progressReportService) GenerateReport(student string) *models.ProgressReport {
	report := &models.ProgressReport{
		Student:        student,
		AverageScore:   StubAverageScore,
		TasksCompleted: StubTasksCompleted,
		GeneratedAt:    time.Now().UTC(),
	}

	s.logger.Debug().Str("student", student).Msg("Progress report generated")

	return report
}
