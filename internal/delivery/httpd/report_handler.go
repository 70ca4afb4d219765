package httpd

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	student := chi.URLParam(r, "student")

	writeSuccess(w, h.services.Reports.GenerateReport(student))
}
