package httpd

import (
	"net/http"

	"github.com/RubachokBoss/ontrack-service/internal/models"
)

func (h *Handler) ProvideFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.ProvideFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	feedback := h.services.Workflow.ProvideFeedback(r.Context(), req.TaskID, req.Tutor, req.Comments)

	writeStatus(w, http.StatusCreated, feedback)
}

func (h *Handler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackID, err := getIntURLParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	feedback, ok := h.services.Feedback.GetFeedback(feedbackID)
	if !ok {
		h.handleServiceError(w, models.ErrFeedbackNotFound)
		return
	}

	writeSuccess(w, feedback)
}
