// AngelaMos | 2026
// announcement.go

package announcement

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

const CollectionName = "announcements"

type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title"         json:"title"`
	Description string             `bson:"description"   json:"description"`
	CreatedAt   time.Time          `bson:"createdAt"     json:"createdAt"`
}

type CreateRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
}

type CreateResponse struct {
	Message        string `json:"message"`
	AnnouncementID string `json:"announcementId"`
}

type Repository interface {
	Create(ctx context.Context, a *Announcement) (string, error)
	List(ctx context.Context) ([]Announcement, error)
}

type repository struct {
	announcements *core.Collection[Announcement]
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{
		announcements: core.NewCollection[Announcement](db, CollectionName),
	}
}

func (r *repository) Create(ctx context.Context, a *Announcement) (string, error) {
	id, err := r.announcements.Insert(ctx, a)
	if err != nil {
		return "", fmt.Errorf("create announcement: %w", err)
	}
	return id, nil
}

// List returns announcements newest first.
func (r *repository) List(ctx context.Context) ([]Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	items, err := r.announcements.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return items, nil
}

type Handler struct {
	repo      Repository
	validator *validator.Validate
	now       func() time.Time
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo:      repo,
		validator: core.NewValidator(),
		now:       time.Now,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/announcements", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, err := h.repo.Create(r.Context(), &Announcement{
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   h.now(),
	})
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, CreateResponse{
		Message:        "Announcement created successfully",
		AnnouncementID: id,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, items)
}
