package repository

import (
	"errors"
	"time"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/rs/zerolog"
)

type StudyGroupRepository interface {
	Create(groupName, creator string) *models.StudyGroup
	GetByID(id int) (*models.StudyGroup, bool)
	GetAll() []models.StudyGroup
	// AddMember reports whether the member list changed; joining twice is a no-op.
	AddMember(id int, name string) (*models.StudyGroup, bool, error)
}

type studyGroupRepository struct {
	*MemoryRepository[models.StudyGroup]
}

func NewStudyGroupRepository(logger zerolog.Logger) StudyGroupRepository {
	return &studyGroupRepository{
		MemoryRepository: NewMemoryRepository((*models.StudyGroup).Clone, logger),
	}
}

func (r *studyGroupRepository) Create(groupName, creator string) *models.StudyGroup {
	return r.insert(func(id int) *models.StudyGroup {
		return &models.StudyGroup{
			ID:        id,
			GroupName: groupName,
			Creator:   creator,
			Members:   []string{creator},
			CreatedAt: time.Now().UTC(),
		}
	})
}

func (r *studyGroupRepository) GetByID(id int) (*models.StudyGroup, bool) {
	return r.get(id)
}

func (r *studyGroupRepository) GetAll() []models.StudyGroup {
	return r.all()
}

func (r *studyGroupRepository) AddMember(id int, name string) (*models.StudyGroup, bool, error) {
	added := false
	group, err := r.update(id, func(group *models.StudyGroup) error {
		if group.HasMember(name) {
			return nil
		}
		group.Members = append(group.Members, name)
		added = true
		return nil
	})

	if errors.Is(err, errNotFound) {
		return nil, false, models.ErrGroupNotFound
	}
	return group, added, err
}
