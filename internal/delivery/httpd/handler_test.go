package httpd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/RubachokBoss/ontrack-service/internal/repository"
	"github.com/RubachokBoss/ontrack-service/internal/service"
	"github.com/RubachokBoss/ontrack-service/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPublisher struct {
	submitted int
	feedback  int
}

func (p *nopPublisher) PublishTaskSubmitted(context.Context, *models.TaskSubmittedEvent) error {
	p.submitted++
	return nil
}

func (p *nopPublisher) PublishFeedbackProvided(context.Context, *models.FeedbackProvidedEvent) error {
	p.feedback++
	return nil
}

func (p *nopPublisher) Close() error { return nil }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func newTestRouter(t *testing.T) (http.Handler, *nopPublisher) {
	t.Helper()
	logger := zerolog.Nop()

	tasks := service.NewTaskService(repository.NewTaskRepository(logger), logger)
	feedback := service.NewFeedbackService(repository.NewFeedbackRepository(logger), logger)
	publisher := &nopPublisher{}

	services := Services{
		Tasks:         tasks,
		Feedback:      feedback,
		Tutoring:      service.NewTutoringService(repository.NewSessionRepository(logger), logger),
		StudyGroups:   service.NewStudyGroupService(repository.NewStudyGroupRepository(logger), logger),
		Reports:       service.NewProgressReportService(logger),
		Notifications: service.NewNotificationService(repository.NewNotificationRepository(logger), logger),
		Workflow:      service.NewWorkflowService(tasks, feedback, publisher, logger),
	}

	stats := func() worker.WorkerStats { return worker.WorkerStats{ActiveWorkers: 2} }

	router := chi.NewRouter()
	router.Use(Recovery(logger))
	NewHandler(services, stats, logger).RegisterRoutes(router)
	return router, publisher
}

func do(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestHandler_HealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "worker")
}

func TestHandler_TaskLifecycle(t *testing.T) {
	router, publisher := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/v1/tasks", `{"title":"Task 1","description":"Description 1","creator":"Creator 1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	task := decodeData[models.Task](t, env)
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "Task 1", task.Title)

	rec, env = do(t, router, http.MethodPost, "/api/v1/tasks/1/collaborators", `{"name":"Collaborator 1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Collaborator 1"}, decodeData[models.Task](t, env).Collaborators)

	rec, env = do(t, router, http.MethodPost, "/api/v1/tasks/1/collaborators", `{"name":"Collaborator 1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Conflict", env.Error)
	assert.Equal(t, "already a collaborator", env.Message)

	rec, _ = do(t, router, http.MethodPost, "/api/v1/tasks/1/submissions", `{"student":"Student1","submission":"answer"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, publisher.submitted)

	rec, env = do(t, router, http.MethodGet, "/api/v1/tasks/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"Student1": "answer"}, decodeData[models.Task](t, env).Submissions)

	rec, env = do(t, router, http.MethodGet, "/api/v1/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]models.Task](t, env), 1)
}

func TestHandler_TaskNotFound(t *testing.T) {
	router, publisher := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/v1/tasks/999", ""},
		{http.MethodPost, "/api/v1/tasks/999/collaborators", `{"name":"Collaborator 1"}`},
		{http.MethodPost, "/api/v1/tasks/999/submissions", `{"student":"Student1","submission":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec, env := do(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Not Found", env.Error)
			assert.Equal(t, "task not found", env.Message)
		})
	}

	assert.Zero(t, publisher.submitted)
}

func TestHandler_BadRequests(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"non-integer task id", http.MethodGet, "/api/v1/tasks/abc", ""},
		{"malformed task body", http.MethodPost, "/api/v1/tasks", `{"title":`},
		{"malformed feedback body", http.MethodPost, "/api/v1/feedback", `[]`},
		{"bad session date", http.MethodPost, "/api/v1/sessions", `{"tutor":"T","student":"S","date":"tomorrow","time":"10:00 AM"}`},
		{"non-integer group id", http.MethodPost, "/api/v1/groups/x/members", `{"student":"S"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Bad Request", env.Error)
		})
	}
}

func TestHandler_Feedback(t *testing.T) {
	router, publisher := newTestRouter(t)

	do(t, router, http.MethodPost, "/api/v1/tasks", `{"title":"Task 1","creator":"Creator 1"}`)
	do(t, router, http.MethodPost, "/api/v1/tasks/1/submissions", `{"student":"Student1","submission":"answer"}`)

	rec, env := do(t, router, http.MethodPost, "/api/v1/feedback", `{"task_id":1,"tutor":"Tutor 1","comments":"Good job!"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	feedback := decodeData[models.Feedback](t, env)
	assert.Equal(t, 1, feedback.ID)
	assert.Equal(t, 1, publisher.feedback)

	rec, env = do(t, router, http.MethodPost, "/api/v1/feedback", `{"task_id":999,"tutor":"Tutor 1","comments":"orphan"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 999, decodeData[models.Feedback](t, env).TaskID)

	rec, env = do(t, router, http.MethodGet, "/api/v1/feedback/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Good job!", decodeData[models.Feedback](t, env).Comments)

	rec, env = do(t, router, http.MethodGet, "/api/v1/tasks/1/feedback", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]models.Feedback](t, env), 1)

	rec, env = do(t, router, http.MethodGet, "/api/v1/feedback/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "feedback not found", env.Message)
}

func TestHandler_Sessions(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/v1/sessions", `{"tutor":"Tutor 1","student":"Student 1","date":"2024-03-01","time":"10:00 AM"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	session := decodeData[models.Session](t, env)
	assert.Equal(t, "Tutor 1", session.Tutor)
	assert.Equal(t, "10:00 AM", session.Time)
	assert.Equal(t, "2024-03-01", session.Date.Format("2006-01-02"))

	rec, _ = do(t, router, http.MethodPost, "/api/v1/sessions", `{"tutor":"Tutor 1","student":"Student 2","date":"2024-03-01T10:00:00Z","time":"10:00 AM"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = do(t, router, http.MethodGet, "/api/v1/sessions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]models.Session](t, env), 2)

	rec, _ = do(t, router, http.MethodGet, "/api/v1/sessions/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, router, http.MethodGet, "/api/v1/sessions/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "session not found", env.Message)
}

func TestHandler_StudyGroups(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/v1/groups", `{"group_name":"Group 1","creator":"Student 1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"Student 1"}, decodeData[models.StudyGroup](t, env).Members)

	rec, env = do(t, router, http.MethodPost, "/api/v1/groups/1/members", `{"student":"Student 2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Student 1", "Student 2"}, decodeData[models.StudyGroup](t, env).Members)

	rec, env = do(t, router, http.MethodPost, "/api/v1/groups/1/members", `{"student":"Student 2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Student 1", "Student 2"}, decodeData[models.StudyGroup](t, env).Members)

	rec, env = do(t, router, http.MethodPost, "/api/v1/groups/5/members", `{"student":"Student 2"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "study group not found", env.Message)

	rec, env = do(t, router, http.MethodGet, "/api/v1/groups", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]models.StudyGroup](t, env), 1)
}

func TestHandler_Report(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/v1/reports/Student1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	report := decodeData[models.ProgressReport](t, env)
	assert.Equal(t, "Student1", report.Student)
	assert.Equal(t, 90, report.AverageScore)
	assert.Equal(t, 20, report.TasksCompleted)
}

func TestHandler_Notifications(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/v1/notifications/Student1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decodeData[models.NotificationsResponse](t, env)
	assert.Equal(t, "Student1", empty.Recipient)
	assert.NotNil(t, empty.Notifications)
	assert.Empty(t, empty.Notifications)

	rec, env = do(t, router, http.MethodPost, "/api/v1/notifications/Student1/task-updates", `{"task_id":1,"message":"Task updated"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"Task 1: Task updated"}, decodeData[models.NotificationsResponse](t, env).Notifications)
}

func TestRecovery(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Recovery(zerolog.Nop()))
	router.Get("/panic", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec, env := do(t, router, http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", env.Message)
}
