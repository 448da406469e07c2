// AngelaMos | 2026
// handler.go

package apartment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/apartments", h.List)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, items)
}
