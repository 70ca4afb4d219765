package repository

import (
	"errors"
	"time"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/rs/zerolog"
)

type TaskRepository interface {
	Create(title, description, creator string) *models.Task
	GetByID(id int) (*models.Task, bool)
	GetAll() []models.Task
	AddCollaborator(id int, name string) (*models.Task, error)
	UpsertSubmission(id int, student, submission string) (*models.Task, error)
}

type taskRepository struct {
	*MemoryRepository[models.Task]
}

func NewTaskRepository(logger zerolog.Logger) TaskRepository {
	return &taskRepository{
		MemoryRepository: NewMemoryRepository((*models.Task).Clone, logger),
	}
}

func (r *taskRepository) Create(title, description, creator string) *models.Task {
	now := time.Now().UTC()

	return r.insert(func(id int) *models.Task {
		return &models.Task{
			ID:            id,
			Title:         title,
			Description:   description,
			Creator:       creator,
			Collaborators: []string{},
			Submissions:   make(map[string]string),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	})
}

func (r *taskRepository) GetByID(id int) (*models.Task, bool) {
	return r.get(id)
}

func (r *taskRepository) GetAll() []models.Task {
	return r.all()
}

func (r *taskRepository) AddCollaborator(id int, name string) (*models.Task, error) {
	task, err := r.update(id, func(task *models.Task) error {
		if task.HasCollaborator(name) {
			return models.ErrAlreadyCollaborator
		}
		task.Collaborators = append(task.Collaborators, name)
		task.UpdatedAt = time.Now().UTC()
		return nil
	})

	return task, taskError(err)
}

func (r *taskRepository) UpsertSubmission(id int, student, submission string) (*models.Task, error) {
	task, err := r.update(id, func(task *models.Task) error {
		task.Submissions[student] = submission
		task.UpdatedAt = time.Now().UTC()
		return nil
	})

	return task, taskError(err)
}

func taskError(err error) error {
	if errors.Is(err, errNotFound) {
		return models.ErrTaskNotFound
	}
	return err
}
