// internal/handler/ticket.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/stackboard/stackboard/internal/service"
)

type TicketHandler struct {
	service *service.TicketService
}

func NewTicketHandler(service *service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}

	var input service.CreateTicketInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ticket, err := h.service.Create(r.Context(), orgID, projectID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ticket)
}

func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}

	offset, limit := pageParams(r)
	tickets, total, err := h.service.List(r.Context(), orgID, projectID, offset, limit)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        tickets,
		Total:        total,
	})
}

func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}
	ticketID, err := uuidParam(r, "ticketID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	ticket, err := h.service.Get(r.Context(), orgID, projectID, ticketID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ticket)
}

func (h *TicketHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}
	ticketID, err := uuidParam(r, "ticketID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	var input service.UpdateTicketInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ticket, err := h.service.Update(r.Context(), orgID, projectID, ticketID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ticket)
}

func (h *TicketHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}
	ticketID, err := uuidParam(r, "ticketID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ticket ID")
		return
	}

	if err := h.service.Delete(r.Context(), orgID, projectID, ticketID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ReorderTicketsRequest struct {
	Tickets []service.TicketOrderInput `json:"tickets"`
}

// Reorder applies the declarative board layout: each entry is a
// ticket's final column and position. Either every update lands or
// none do.
func (h *TicketHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	orgID, projectID, ok := projectScope(w, r)
	if !ok {
		return
	}

	var req ReorderTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.service.Reorder(r.Context(), orgID, projectID, req.Tickets); err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
