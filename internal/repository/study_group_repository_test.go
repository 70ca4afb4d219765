package repository

import (
	"testing"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyGroupRepository_Create_CreatorIsMember(t *testing.T) {
	repo := NewStudyGroupRepository(zerolog.Nop())

	group := repo.Create("Group1", "Creator")

	assert.Equal(t, 1, group.ID)
	assert.Equal(t, "Group1", group.GroupName)
	assert.Equal(t, "Creator", group.Creator)
	assert.Equal(t, []string{"Creator"}, group.Members)
}

func TestStudyGroupRepository_AddMember(t *testing.T) {
	repo := NewStudyGroupRepository(zerolog.Nop())
	group := repo.Create("Group1", "Creator")

	updated, added, err := repo.AddMember(group.ID, "Student1")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"Creator", "Student1"}, updated.Members)

	updated, added, err = repo.AddMember(group.ID, "Student1")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"Creator", "Student1"}, updated.Members)

	_, added, err = repo.AddMember(group.ID, "Creator")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestStudyGroupRepository_CreateReturnsStoredGroup(t *testing.T) {
	repo := NewStudyGroupRepository(zerolog.Nop())
	group := repo.Create("Group1", "Creator")

	_, _, err := repo.AddMember(group.ID, "Student1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Creator", "Student1"}, group.Members)

	fetched, ok := repo.GetByID(group.ID)
	require.True(t, ok)
	fetched.Members[0] = "tampered"
	assert.Equal(t, "Creator", group.Members[0])
}

func TestStudyGroupRepository_AddMember_MissingGroup(t *testing.T) {
	repo := NewStudyGroupRepository(zerolog.Nop())

	group, added, err := repo.AddMember(5, "Student1")
	assert.ErrorIs(t, err, models.ErrGroupNotFound)
	assert.False(t, added)
	assert.Nil(t, group)
}
