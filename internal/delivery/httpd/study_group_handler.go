package httpd

import (
	"net/http"

	"github.com/RubachokBoss/ontrack-service/internal/models"
)

func (h *Handler) CreateStudyGroup(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudyGroupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created := h.services.StudyGroups.CreateStudyGroup(req.GroupName, req.Creator)

	// Encode a locked copy; the created group is shared with the store.
	group, _ := h.services.StudyGroups.GetStudyGroup(created.ID)
	writeStatus(w, http.StatusCreated, group)
}

func (h *Handler) ListStudyGroups(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.services.StudyGroups.ListStudyGroups())
}

func (h *Handler) GetStudyGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := getIntURLParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	group, ok := h.services.StudyGroups.GetStudyGroup(groupID)
	if !ok {
		h.handleServiceError(w, models.ErrGroupNotFound)
		return
	}

	writeSuccess(w, group)
}

func (h *Handler) JoinStudyGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := getIntURLParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.JoinStudyGroupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if !h.services.StudyGroups.JoinStudyGroup(req.Student, groupID) {
		h.handleServiceError(w, models.ErrGroupNotFound)
		return
	}

	group, _ := h.services.StudyGroups.GetStudyGroup(groupID)
	writeSuccess(w, group)
}
