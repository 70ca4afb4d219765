package service

import (
	"errors"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/RubachokBoss/ontrack-service/internal/repository"
	"github.com/rs/zerolog"
)

type TaskService interface {
	CreateTask(title, description, creator string) *models.Task
	AddCollaborator(taskID int, name string) bool
	SubmitTask(taskID int, student, submission string) bool
	GetTask(taskID int) (*models.Task, bool)
	ListTasks() []models.Task
}

type taskService struct {
	taskRepo repository.TaskRepository
	logger   zerolog.Logger
}

func NewTaskService(taskRepo repository.TaskRepository, logger zerolog.Logger) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (s *taskService) CreateTask(title, description, creator string) *models.Task {
	task := s.taskRepo.Create(title, description, creator)

	s.logger.Info().
		Int("task_id", task.ID).
		Str("title", task.Title).
		Str("creator", task.Creator).
		Msg("Task created")

	return task
}

func (s *taskService) AddCollaborator(taskID int, name string) bool {
	_, err := s.taskRepo.AddCollaborator(taskID, name)
	switch {
	case err == nil:
		s.logger.Info().
			Int("task_id", taskID).
			Str("collaborator", name).
			Msg("Collaborator added")
		return true
	case errors.Is(err, models.ErrAlreadyCollaborator):
		s.logger.Debug().
			Int("task_id", taskID).
			Str("collaborator", name).
			Msg("Collaborator already present")
		return false
	default:
		s.logger.Debug().Err(err).Int("task_id", taskID).Msg("Collaborator not added")
		return false
	}
}

func (s *taskService) SubmitTask(taskID int, student, submission string) bool {
	if _, err := s.taskRepo.UpsertSubmission(taskID, student, submission); err != nil {
		s.logger.Debug().Err(err).Int("task_id", taskID).Msg("Submission rejected")
		return false
	}

	s.logger.Info().
		Int("task_id", taskID).
		Str("student", student).
		Msg("Task submitted")

	return true
}

func (s *taskService) GetTask(taskID int) (*models.Task, bool) {
	return s.taskRepo.GetByID(taskID)
}

func (s *taskService) ListTasks() []models.Task {
	return s.taskRepo.GetAll()
}
