package service

import (
	"fmt"

	"github.com/RubachokBoss/ontrack-service/internal/repository"
	"github.com/rs/zerolog"
)

type NotificationService interface {
	NotifyStudentOnTaskUpdate(student string, taskID int, message string)
	NotifyTutorOnTaskSubmission(tutor string, taskID int, student string)
	GetNotifications(recipient string) []string
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           zerolog.Logger
}

func NewNotificationService(notificationRepo repository.NotificationRepository, logger zerolog.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (s *notificationService) NotifyStudentOnTaskUpdate(student string, taskID int, message string) {
	s.notificationRepo.Append(student, fmt.Sprintf("Task %d: %s", taskID, message))

	s.logger.Info().
		Str("recipient", student).
		Int("task_id", taskID).
		Msg("Student notified of task update")
}

func (s *notificationService) NotifyTutorOnTaskSubmission(tutor string, taskID int, student string) {
	s.notificationRepo.Append(tutor, fmt.Sprintf("Task %d submitted by %s", taskID, student))

	s.logger.Info().
		Str("recipient", tutor).
		Int("task_id", taskID).
		Str("student", student).
		Msg("Tutor notified of task submission")
}

func (s *notificationService) GetNotifications(recipient string) []string {
	return s.notificationRepo.GetByRecipient(recipient)
}
