// AngelaMos | 2026
// handler.go

package agreement

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

const (
	msgForbidden     = "Admins cannot create agreements."
	msgOtherEmail    = "Agreements can only be submitted for your own email."
	msgAlreadyExists = "User already has an agreement."
	msgNotFound      = "Agreement not found"
	msgPartialUpdate = "Agreement status updated but role assignment failed"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

// RegisterRoutes mounts /agreements. The {key} segment is an email for the
// lookup and a document id for the status update.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/agreements", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.ListPending)
		r.Get("/{key}", h.GetByEmail)
		r.Put("/{key}/update", h.UpdateStatus)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAgreementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, err := h.service.Submit(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubmitterMismatch):
			core.Forbidden(w, msgOtherEmail)
		case errors.Is(err, core.ErrForbidden):
			core.Forbidden(w, msgForbidden)
		case errors.Is(err, ErrAlreadyExists):
			core.BadRequest(w, msgAlreadyExists)
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, CreateAgreementResponse{
		Message:     "Agreement created successfully",
		AgreementID: id,
	})
}

func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPending(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, items)
}

func (h *Handler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "key")

	a, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, msgNotFound)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, a)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "key")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	a, err := h.service.UpdateStatus(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidID):
			core.BadRequest(w, "invalid agreement id")
		case errors.Is(err, core.ErrNotFound) && !errors.Is(err, ErrRoleGrantFailed):
			core.NotFound(w, msgNotFound)
		case errors.Is(err, ErrInvalidTransition):
			core.BadRequest(w, "invalid status transition")
		case errors.Is(err, ErrRoleGrantFailed):
			core.JSONError(w, core.NewAppError(
				http.StatusInternalServerError, msgPartialUpdate, err,
			))
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, UpdateStatusResponse{
		Message: "Agreement updated successfully",
		Status:  a.Status,
	})
}
