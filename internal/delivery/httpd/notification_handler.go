package httpd

import (
	"net/http"

	"github.com/RubachokBoss/ontrack-service/internal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	recipient := chi.URLParam(r, "recipient")

	writeSuccess(w, models.NotificationsResponse{
		Recipient:     recipient,
		Notifications: h.services.Notifications.GetNotifications(recipient),
	})
}

func (h *Handler) NotifyTaskUpdate(w http.ResponseWriter, r *http.Request) {
	recipient := chi.URLParam(r, "recipient")

	var req models.TaskUpdateNotificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	h.services.Notifications.NotifyStudentOnTaskUpdate(recipient, req.TaskID, req.Message)

	writeStatus(w, http.StatusCreated, models.NotificationsResponse{
		Recipient:     recipient,
		Notifications: h.services.Notifications.GetNotifications(recipient),
	})
}
