// AngelaMos | 2026
// handler.go

package payment

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

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/", h.Record)
		r.Get("/{key}", h.History)
	})
	r.Post("/create-payment-intent", h.CreateIntent)
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, err := h.service.Record(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, RecordPaymentResponse{
		Message:   "Payment recorded successfully",
		PaymentID: id,
	})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "key")
	month := r.URL.Query().Get("month")

	items, err := h.service.History(r.Context(), email, month)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, items)
}

func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	secret, err := h.service.CreateIntent(r.Context(), req.Price)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			core.BadRequest(w, "invalid price")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, CreateIntentResponse{ClientSecret: secret})
}
