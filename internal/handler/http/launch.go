package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rhpro/folha-backend-go/internal/domain/launch"
	"github.com/rhpro/folha-backend-go/internal/handler/http/response"
)

type LaunchHandler interface {
	ListLaunches(w http.ResponseWriter, r *http.Request)
	GetLaunch(w http.ResponseWriter, r *http.Request)
	CreateLaunch(w http.ResponseWriter, r *http.Request)
	QuickCreateLaunch(w http.ResponseWriter, r *http.Request)
	UpdateLaunch(w http.ResponseWriter, r *http.Request)
	DeleteLaunch(w http.ResponseWriter, r *http.Request)
}

type launchHandlerImpl struct {
	launchService launch.LaunchService
}

func NewLaunchHandler(launchService launch.LaunchService) LaunchHandler {
	return &launchHandlerImpl{launchService: launchService}
}

func (h *launchHandlerImpl) ListLaunches(w http.ResponseWriter, r *http.Request) {
	launches, err := h.launchService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, launches)
}

func (h *launchHandlerImpl) GetLaunch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Launch ID is required", nil)
		return
	}

	l, err := h.launchService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, l)
}

func (h *launchHandlerImpl) CreateLaunch(w http.ResponseWriter, r *http.Request) {
	var req launch.CreateLaunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.launchService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Launch created", created)
}

func (h *launchHandlerImpl) QuickCreateLaunch(w http.ResponseWriter, r *http.Request) {
	var req launch.QuickLaunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.launchService.QuickCreate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Launch created", created)
}

func (h *launchHandlerImpl) UpdateLaunch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Launch ID is required", nil)
		return
	}

	var req launch.UpdateLaunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	updated, err := h.launchService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

func (h *launchHandlerImpl) DeleteLaunch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Launch ID is required", nil)
		return
	}

	if err := h.launchService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Launch deleted", nil)
}
