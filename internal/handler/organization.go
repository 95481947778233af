// internal/handler/organization.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/stackboard/stackboard/internal/model"
	"github.com/stackboard/stackboard/internal/service"
)

type OrganizationHandler struct {
	service *service.OrganizationService
}

func NewOrganizationHandler(service *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	org, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, org)
}

func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pageParams(r)

	orgs, total, err := h.service.List(r.Context(), offset, limit)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        orgs,
		Total:        total,
	})
}

func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuidParam(r, "orgID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	org, err := h.service.Get(r.Context(), orgID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuidParam(r, "orgID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var input service.UpdateOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	org, err := h.service.Update(r.Context(), orgID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) Ban(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.OrgStatusBanned)
}

func (h *OrganizationHandler) Unban(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.OrgStatusActive)
}

func (h *OrganizationHandler) setStatus(w http.ResponseWriter, r *http.Request, status model.OrganizationStatus) {
	orgID, err := uuidParam(r, "orgID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	org, err := h.service.SetStatus(r.Context(), orgID, status)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}
