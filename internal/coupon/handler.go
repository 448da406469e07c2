// AngelaMos | 2026
// handler.go

package coupon

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

const (
	msgInvalidCoupon = "Invalid or expired coupon"
	msgNotFound      = "Coupon not found"
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

// RegisterRoutes mounts /coupons. {key} is the coupon code for GET and the
// document id for PUT and DELETE.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/coupons", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{key}", h.Validate)
		r.Put("/{key}", h.Update)
		r.Delete("/{key}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, items)
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Validate(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		if errors.Is(err, ErrInvalidCoupon) {
			core.NotFound(w, msgInvalidCoupon)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, c)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, CreateCouponResponse{
		Message:  "Coupon created successfully",
		CouponID: id,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), chi.URLParam(r, "key"), req); err != nil {
		h.writeIDError(w, err)
		return
	}

	core.Message(w, http.StatusOK, "Coupon updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		h.writeIDError(w, err)
		return
	}

	core.Message(w, http.StatusOK, "Coupon deleted successfully")
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (CouponRequest, bool) {
	var req CouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return req, false
	}
	return req, true
}

func (h *Handler) writeIDError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidID):
		core.BadRequest(w, "invalid coupon id")
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, msgNotFound)
	default:
		core.InternalServerError(w, err)
	}
}
