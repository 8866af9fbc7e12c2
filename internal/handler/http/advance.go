package http

import (
	"encoding/json"
	"net/http"

	"github.com/rhpro/folha-backend-go/internal/domain/advance"
	"github.com/rhpro/folha-backend-go/internal/handler/http/response"
	"github.com/rhpro/folha-backend-go/internal/pkg/validator"
)

type AdvanceHandler interface {
	GetAdvances(w http.ResponseWriter, r *http.Request)
	SaveAdvances(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: advanceService}
}

func (h *advanceHandlerImpl) GetAdvances(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if !validator.IsValidPeriod(period) {
		response.BadRequest(w, "Query parameter period must be YYYY-MM", nil)
		return
	}

	advances, err := h.advanceService.GetByPeriod(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, advances)
}

func (h *advanceHandlerImpl) SaveAdvances(w http.ResponseWriter, r *http.Request) {
	var req advance.SaveAdvancesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	saved, err := h.advanceService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Advances saved", saved)
}
