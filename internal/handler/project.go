// internal/handler/project.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/stackboard/stackboard/internal/middleware"
	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/service"
)

type ProjectHandler struct {
	service *service.ProjectService
}

func NewProjectHandler(service *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuidParam(r, "orgID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var input service.CreateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	project, err := h.service.Create(r.Context(), orgID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuidParam(r, "orgID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	offset, limit := pageParams(r)
	projects, total, err := h.service.List(r.Context(), principal, orgID, offset, limit)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        projects,
		Total:        total,
	})
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}

	project, err := h.service.Get(r.Context(), orgID, projectID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}

	var input service.UpdateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	project, err := h.service.Update(r.Context(), orgID, projectID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.ProjectArchived)
}

func (h *ProjectHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.ProjectActive)
}

func (h *ProjectHandler) setStatus(w http.ResponseWriter, r *http.Request, status model.ProjectStatus) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}

	project, err := h.service.SetStatus(r.Context(), orgID, projectID, status)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, project)
}
