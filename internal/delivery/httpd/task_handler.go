package httpd

import (
	"net/http"

	"github.com/RubachokBoss/ontrack-service/internal/models"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created := h.services.Tasks.CreateTask(req.Title, req.Description, req.Creator)

	// Encode a locked copy; the created task is shared with the store.
	task, _ := h.services.Tasks.GetTask(created.ID)
	writeStatus(w, http.StatusCreated, task)
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.services.Tasks.ListTasks())
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := getIntURLParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, ok := h.services.Tasks.GetTask(taskID)
	if !ok {
		h.handleServiceError(w, models.ErrTaskNotFound)
		return
	}

	writeSuccess(w, task)
}

func (h *Handler) AddCollaborator(w http.ResponseWriter, r *http.Request) {
	taskID, err := getIntURLParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.AddCollaboratorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if !h.services.Tasks.AddCollaborator(taskID, req.Name) {
		if _, ok := h.services.Tasks.GetTask(taskID); !ok {
			h.handleServiceError(w, models.ErrTaskNotFound)
			return
		}
		h.handleServiceError(w, models.ErrAlreadyCollaborator)
		return
	}

	task, _ := h.services.Tasks.GetTask(taskID)
	writeSuccess(w, task)
}

func (h *Handler) SubmitTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := getIntURLParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.SubmitTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if !h.services.Workflow.SubmitTask(r.Context(), taskID, req.Student, req.Submission) {
		h.handleServiceError(w, models.ErrTaskNotFound)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"task_id": taskID,
		"student": req.Student,
		"message": "Submission recorded",
	})
}

func (h *Handler) ListTaskFeedback(w http.ResponseWriter, r *http.Request) {
	taskID, err := getIntURLParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeSuccess(w, h.services.Feedback.ListFeedbackForTask(taskID))
}
