package repository

import (
	"sync"
	"testing"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepository_Create_AssignsSequentialIDs(t *testing.T) {
	repo := NewTaskRepository(zerolog.Nop())

	first := repo.Create("Task 1", "Description 1", "Creator 1")
	second := repo.Create("Task 2", "Description 2", "Creator 2")

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "Task 1", first.Title)
	assert.Equal(t, "Description 1", first.Description)
	assert.Equal(t, "Creator 1", first.Creator)
	assert.Empty(t, first.Collaborators)
	assert.Empty(t, first.Submissions)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestTaskRepository_CreateReturnsStoredTask(t *testing.T) {
	repo := NewTaskRepository(zerolog.Nop())
	created := repo.Create("Task", "Desc", "Creator")

	_, err := repo.AddCollaborator(created.ID, "Alice")
	require.NoError(t, err)
	_, err = repo.UpsertSubmission(created.ID, "Student1", "answer")
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice"}, created.Collaborators)
	assert.Equal(t, map[string]string{"Student1": "answer"}, created.Submissions)
}

func TestTaskRepository_GetByIDReturnsCopy(t *testing.T) {
	repo := NewTaskRepository(zerolog.Nop())
	created := repo.Create("Task", "Desc", "Creator")

	fetched, ok := repo.GetByID(created.ID)
	require.True(t, ok)
	fetched.Title = "changed"
	fetched.Collaborators = append(fetched.Collaborators, "intruder")
	fetched.Submissions["intruder"] = "text"

	stored, ok := repo.GetByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Task", stored.Title)
	assert.Empty(t, stored.Collaborators)
	assert.Empty(t, stored.Submissions)
}

func TestTaskRepository_GetByID_Missing(t *testing.T) {
	repo := NewTaskRepository(zerolog.Nop())

	task, ok := repo.GetByID(999)
	assert.False(t, ok)
	assert.Nil(t, task)
}

func TestTaskRepository_AddCollaborator(t *testing.T) {
	repo := NewTaskRepository(zerolog.Nop())
	task := repo.Create("Task", "Desc", "Creator")

	updated, err := repo.AddCollaborator(task.ID, "Alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, updated.Collaborators)

	_, err = repo.AddCollaborator(task.ID, "Alice")
	assert.ErrorIs(t, err, models.ErrAlreadyCollaborator)

	_, err = repo.AddCollaborator(task.ID, "Bob")
	require.NoError(t, err)

	stored, _ := repo.GetByID(task.ID)
	assert.Equal(t, []string{"Alice", "Bob"}, stored.Collaborators)
}

func TestTaskRepository_AddCollaborator_MissingTask(t *testing.T) {
	repo := NewTaskRepository(zerolog.Nop())

	_, err := repo.AddCollaborator(42, "Alice")
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestTaskRepository_UpsertSubmission_Overwrites(t *testing.T) {
	repo := NewTaskRepository(zerolog.Nop())
	task := repo.Create("Task", "Desc", "Creator")

	_, err := repo.UpsertSubmission(task.ID, "Student 1", "first draft")
	require.NoError(t, err)
	updated, err := repo.UpsertSubmission(task.ID, "Student 1", "final")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"Student 1": "final"}, updated.Submissions)

	_, err = repo.UpsertSubmission(999, "Student 1", "text")
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestTaskRepository_GetAll_OrderedByID(t *testing.T) {
	repo := NewTaskRepository(zerolog.Nop())
	for _, title := range []string{"a", "b", "c"} {
		repo.Create(title, "", "creator")
	}

	tasks := repo.GetAll()
	require.Len(t, tasks, 3)
	for i, task := range tasks {
		assert.Equal(t, i+1, task.ID)
	}
}

func TestTaskRepository_ConcurrentCreate(t *testing.T) {
	repo := NewTaskRepository(zerolog.Nop())

	const n = 50
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- repo.Create("Task", "Desc", "Creator").ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for id := 1; id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}
