package service

import (
	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/RubachokBoss/ontrack-service/internal/repository"
	"github.com/rs/zerolog"
)

type StudyGroupService interface {
	CreateStudyGroup(groupName, creator string) *models.StudyGroup
	JoinStudyGroup(studentName string, groupID int) bool
	GetStudyGroup(id int) (*models.StudyGroup, bool)
	ListStudyGroups() []models.StudyGroup
}

type studyGroupService struct {
	groupRepo repository.StudyGroupRepository
	logger    zerolog.Logger
}

func NewStudyGroupService(groupRepo repository.StudyGroupRepository, logger zerolog.Logger) StudyGroupService {
	return &studyGroupService{
		groupRepo: groupRepo,
		logger:    logger,
	}
}

func (s *studyGroupService) CreateStudyGroup(groupName, creator string) *models.StudyGroup {
	group := s.groupRepo.Create(groupName, creator)

	s.logger.Info().
		Int("group_id", group.ID).
		Str("group_name", groupName).
		Str("creator", creator).
		Msg("Study group created")

	return group
}

// JoinStudyGroup succeeds for any existing group, including when the student
// is already a member; membership never holds duplicates.
func (s *studyGroupService) JoinStudyGroup(studentName string, groupID int) bool {
	_, added, err := s.groupRepo.AddMember(groupID, studentName)
	if err != nil {
		s.logger.Debug().Err(err).Int("group_id", groupID).Msg("Join rejected")
		return false
	}

	s.logger.Info().
		Int("group_id", groupID).
		Str("student", studentName).
		Bool("new_member", added).
		Msg("Student joined study group")

	return true
}

func (s *studyGroupService) GetStudyGroup(id int) (*models.StudyGroup, bool) {
	return s.groupRepo.GetByID(id)
}

func (s *studyGroupService) ListStudyGroups() []models.StudyGroup {
	return s.groupRepo.GetAll()
}
