// internal/handler/member.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/stackboard/stackboard/internal/service"
)

type MemberHandler struct {
	service *service.MemberService
}

func NewMemberHandler(service *service.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

func (h *MemberHandler) Add(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}

	var input service.AddMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	member, err := h.service.Add(r.Context(), orgID, projectID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}

	offset, limit := pageParams(r)
	members, total, err := h.service.List(r.Context(), orgID, projectID, offset, limit)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        members,
		Total:        total,
	})
}

func (h *MemberHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}
	memberID, err := uuidParam(r, "memberID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	var input service.UpdateMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	member, err := h.service.UpdateRole(r.Context(), orgID, projectID, memberID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Remove(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}
	memberID, err := uuidParam(r, "memberID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	if err := h.service.Remove(r.Context(), orgID, projectID, memberID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// projectScope parses the {orgID}/{projectID} pair shared by the
// project-nested resources.
func projectScope(w http.ResponseWriter, r *http.Request) (orgID, projectID uuid.UUID, ok bool) {
	orgID, err := uuidParam(r, "orgID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return orgID, projectID, false
	}
	projectID, err = uuidParam(r, "projectID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return orgID, projectID, false
	}
	return orgID, projectID, true
}
