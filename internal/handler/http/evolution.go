package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rhpro/folha-backend-go/internal/domain/evolution"
	"github.com/rhpro/folha-backend-go/internal/handler/http/response"
)

type EvolutionHandler interface {
	ListEvolution(w http.ResponseWriter, r *http.Request)
	CreateEvolution(w http.ResponseWriter, r *http.Request)
	DeleteEvolution(w http.ResponseWriter, r *http.Request)
}

type evolutionHandlerImpl struct {
	evolutionService evolution.EvolutionService
}

func NewEvolutionHandler(evolutionService evolution.EvolutionService) EvolutionHandler {
	return &evolutionHandlerImpl{evolutionService: evolutionService}
}

func (h *evolutionHandlerImpl) ListEvolution(w http.ResponseWriter, r *http.Request) {
	records, err := h.evolutionService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

func (h *evolutionHandlerImpl) CreateEvolution(w http.ResponseWriter, r *http.Request) {
	var req evolution.CreateEvolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.evolutionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Salary evolution registered", created)
}

func (h *evolutionHandlerImpl) DeleteEvolution(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	if err := h.evolutionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary evolution entry deleted", nil)
}
