package httpd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/RubachokBoss/ontrack-service/internal/service"
	"github.com/RubachokBoss/ontrack-service/internal/worker"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Services struct {
	Tasks         service.TaskService
	Feedback      service.FeedbackService
	Tutoring      service.TutoringService
	StudyGroups   service.StudyGroupService
	Reports       service.ProgressReportService
	Notifications service.NotificationService
	Workflow      service.WorkflowService
}

type Handler struct {
	services Services
	stats    func() worker.WorkerStats
	logger   zerolog.Logger
}

// NewHandler wires the services into HTTP handlers. stats may be nil when no
// notification worker runs.
func NewHandler(services Services, stats func() worker.WorkerStats, logger zerolog.Logger) *Handler {
	return &Handler{
		services: services,
		stats:    stats,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	router.Route("/api/v1", func(api chi.Router) {
		api.Route("/tasks", func(r chi.Router) {
			r.Post("/", h.CreateTask)
			r.Get("/", h.ListTasks)
			r.Get("/{id}", h.GetTask)
			r.Post("/{id}/collaborators", h.AddCollaborator)
			r.Post("/{id}/submissions", h.SubmitTask)
			r.Get("/{id}/feedback", h.ListTaskFeedback)
		})

		api.Route("/feedback", func(r chi.Router) {
			r.Post("/", h.ProvideFeedback)
			r.Get("/{id}", h.GetFeedback)
		})

		api.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.ScheduleSession)
			r.Get("/", h.ListSessions)
			r.Get("/{id}", h.GetSession)
		})

		api.Route("/groups", func(r chi.Router) {
			r.Post("/", h.CreateStudyGroup)
			r.Get("/", h.ListStudyGroups)
			r.Get("/{id}", h.GetStudyGroup)
			r.Post("/{id}/members", h.JoinStudyGroup)
		})

		api.Get("/reports/{student}", h.GenerateReport)

		api.Route("/notifications/{recipient}", func(r chi.Router) {
			r.Get("/", h.GetNotifications)
			r.Post("/task-updates", h.NotifyTaskUpdate)
		})
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "ontrack-service",
		"timestamp": time.Now().UTC(),
	}

	if h.stats != nil {
		response["worker"] = h.stats()
	}

	writeJSON(w, http.StatusOK, response)
}

func getIntURLParam(r *http.Request, key string) (int, error) {
	value := chi.URLParam(r, key)

	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, value)
	}

	return id, nil
}

// decodeJSON writes a 400 response and returns false on a malformed body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrTaskNotFound),
		errors.Is(err, models.ErrFeedbackNotFound),
		errors.Is(err, models.ErrSessionNotFound),
		errors.Is(err, models.ErrGroupNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrAlreadyCollaborator):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   http.StatusText(status),
		"message": message,
	})
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeStatus(w, http.StatusOK, data)
}

func writeStatus(w http.ResponseWriter, status int, data interface{}) {
	response := map[string]interface{}{
		"success": true,
		"data":    data,
	}
	writeJSON(w, status, response)
}
