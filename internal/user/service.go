// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/carterperez-dev/estateease-api/internal/core"
	"github.com/carterperez-dev/estateease-api/internal/metrics"
)

type Service struct {
	repo    Repository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m, now: time.Now}
}

// Upsert creates the user on first login. For a known email only lastLogin
// is refreshed; displayName and role stay as first stored.
func (s *Service) Upsert(
	ctx context.Context,
	req UpsertUserRequest,
) (UpsertResult, error) {
	email := strings.TrimSpace(req.Email)

	lastLogin := s.now()
	if req.LastLogin != nil {
		lastLogin = *req.LastLogin
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.repo.UpdateLastLogin(ctx, existing.ID, lastLogin); err != nil {
			return UpsertResult{}, err
		}
		s.metrics.UserUpserted("refreshed")
		return UpsertResult{UserID: existing.ID.Hex()}, nil
	case !errors.Is(err, core.ErrNotFound):
		return UpsertResult{}, err
	}

	role := req.Role
	if role == "" {
		role = RoleUser
	}

	id, err := s.repo.Create(ctx, &User{
		Email:       email,
		DisplayName: req.DisplayName,
		Role:        role,
		LastLogin:   lastLogin,
	})
	if err != nil {
		return UpsertResult{}, err
	}

	s.metrics.UserUpserted("created")
	return UpsertResult{UserID: id, Created: true}, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, strings.TrimSpace(email))
}

func (s *Service) UpdateRole(ctx context.Context, id, role string) error {
	if !ValidRole(role) {
		return fmt.Errorf(
			"update role: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}
	return s.repo.UpdateRole(ctx, id, role)
}

// GrantRoleByEmail sets role on the user owning email. Setting a role the
// user already has is a successful no-op, so callers may retry it. An email
// with no stored user matches nothing and is also a no-op.
func (s *Service) GrantRoleByEmail(ctx context.Context, email, role string) error {
	if !ValidRole(role) {
		return fmt.Errorf(
			"grant role: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	err := s.repo.UpdateRoleByEmail(ctx, email, role)
	if errors.Is(err, core.ErrNotFound) {
		slog.WarnContext(ctx, "role grant matched no user",
			"email", email,
			"role", role,
		)
		return nil
	}
	return err
}

// RoleOf returns the stored role for email, or "" when no user exists.
func (s *Service) RoleOf(ctx context.Context, email string) (string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return u.Role, nil
}
