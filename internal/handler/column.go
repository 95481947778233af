// internal/handler/column.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/stackboard/stackboard/internal/service"
)

type ColumnHandler struct {
	service *service.ColumnService
}

func NewColumnHandler(service *service.ColumnService) *ColumnHandler {
	return &ColumnHandler{service: service}
}

func (h *ColumnHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}

	var input service.CreateColumnInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	column, err := h.service.Create(r.Context(), orgID, projectID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, column)
}

func (h *ColumnHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}

	columns, err := h.service.List(r.Context(), orgID, projectID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        columns,
		Total:        int64(len(columns)),
	})
}

func (h *ColumnHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}
	columnID, err := uuidParam(r, "columnID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid column ID")
		return
	}

	var input service.UpdateColumnInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	column, err := h.service.Update(r.Context(), orgID, projectID, columnID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, column)
}

func (h *ColumnHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}
	columnID, err := uuidParam(r, "columnID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid column ID")
		return
	}

	if err := h.service.Delete(r.Context(), orgID, projectID, columnID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ReorderColumnsRequest struct {
	TicketColumns []service.ColumnOrderInput `json:"ticketColumns"`
}

// Reorder applies a new board column layout in one shot.
func (h *ColumnHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}

	var req ReorderColumnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.service.Reorder(r.Context(), orgID, projectID, req.TicketColumns); err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
