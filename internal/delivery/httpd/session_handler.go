package httpd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/RubachokBoss/ontrack-service/internal/models"
)

func (h *Handler) ScheduleSession(w http.ResponseWriter, r *http.Request) {
	var req models.ScheduleSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	date, err := parseSessionDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session := h.services.Tutoring.ScheduleSession(req.Tutor, req.Student, date, req.Time)

	writeStatus(w, http.StatusCreated, session)
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.services.Tutoring.ListSessions())
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getIntURLParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, ok := h.services.Tutoring.GetSession(sessionID)
	if !ok {
		h.handleServiceError(w, models.ErrSessionNotFound)
		return
	}

	writeSuccess(w, session)
}

func parseSessionDate(value string) (time.Time, error) {
	if date, err := time.Parse(time.DateOnly, value); err == nil {
		return date, nil
	}

	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return date, nil
}
