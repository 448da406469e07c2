// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/estateease-api/internal/core"
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

// RegisterRoutes mounts /users. The {key} segment is an email for reads and
// a document id for role updates.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Upsert)
		r.Get("/", h.List)
		r.Get("/{key}", h.GetByEmail)
		r.Put("/{key}", h.UpdateRole)
	})
}

func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	res, err := h.service.Upsert(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if !res.Created {
		core.OK(w, UpsertResponse{
			Message: "User already exists, last login updated",
			UserID:  res.UserID,
		})
		return
	}

	core.Created(w, UpsertResponse{
		Message: "User created successfully",
		UserID:  res.UserID,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, users)
}

func (h *Handler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "key")

	user, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "User not found")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, user)
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "key")

	var req UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.UpdateRole(r.Context(), id, req.Role); err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidID), errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid user id or role")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "User not found")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Message(w, http.StatusOK, "User role updated successfully")
}
