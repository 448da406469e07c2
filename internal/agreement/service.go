// AngelaMos | 2026
// service.go

package agreement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/estateease-api/internal/core"
	"github.com/carterperez-dev/estateease-api/internal/metrics"
)

var (
	ErrAlreadyExists     = errors.New("user already has an agreement")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRoleGrantFailed   = errors.New("role assignment failed after status update")
	ErrSubmitterMismatch = errors.New("token email does not match submitted email")
)

type RoleGranter interface {
	GrantRoleByEmail(ctx context.Context, email, role string) error
}

type ServiceConfig struct {
	Repo       Repository
	Policy     SubmitPolicy
	Roles      RoleGranter
	Transactor core.Transactor
	Metrics    *metrics.Metrics
}

type Service struct {
	repo    Repository
	policy  SubmitPolicy
	roles   RoleGranter
	tx      core.Transactor
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(cfg ServiceConfig) *Service {
	tx := cfg.Transactor
	if tx == nil {
		tx = core.NoTx{}
	}

	return &Service{
		repo:    cfg.Repo,
		policy:  cfg.Policy,
		roles:   cfg.Roles,
		tx:      tx,
		metrics: cfg.Metrics,
		now:     time.Now,
	}
}

// Submit creates a pending agreement. The policy check and the duplicate
// check are plain reads before the insert, so two concurrent submissions for
// the same email can both succeed.
func (s *Service) Submit(
	ctx context.Context,
	req CreateAgreementRequest,
) (string, error) {
	email := strings.TrimSpace(req.UserEmail)

	if err := s.policy.CanSubmit(ctx, email); err != nil {
		if errors.Is(err, core.ErrForbidden) {
			s.metrics.AgreementSubmitted("forbidden")
		}
		return "", err
	}

	exists, err := s.repo.ExistsForEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		s.metrics.AgreementSubmitted("duplicate")
		return "", fmt.Errorf("submit agreement for %s: %w", email, ErrAlreadyExists)
	}

	id, err := s.repo.Create(ctx, &Agreement{
		UserName:    req.UserName,
		UserEmail:   email,
		FloorNo:     req.FloorNo,
		BlockName:   req.BlockName,
		ApartmentNo: req.ApartmentNo,
		Rent:        req.Rent,
		Status:      StatusPending,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return "", err
	}

	s.metrics.AgreementSubmitted("created")
	return id, nil
}

// UpdateStatus moves an agreement to accepted or rejected. Accepting with a
// role also grants that role to the agreement's user.
//
// With an atomic Transactor both writes commit or neither does. Otherwise
// the status write stays committed when the grant fails and ErrRoleGrantFailed
// is returned; replaying the same accepted update retries only the grant.
func (s *Service) UpdateStatus(
	ctx context.Context,
	id string,
	req UpdateStatusRequest,
) (*Agreement, error) {
	ctx, span := core.StartSpan(ctx, "agreement.UpdateStatus",
		attribute.String("agreement.id", id),
		attribute.String("agreement.status", req.Status),
	)
	defer span.End()

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(a.Status, req.Status) {
		s.metrics.AgreementStatusChanged(req.Status, "invalid_transition")
		return nil, fmt.Errorf(
			"update agreement %s from %s to %s: %w",
			id, a.Status, req.Status, ErrInvalidTransition,
		)
	}

	grantRole := req.Status == StatusAccepted && req.Role != ""
	now := s.now()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if a.Status != req.Status {
			if err := s.repo.UpdateStatus(ctx, a.ID, req.Status, now); err != nil {
				return err
			}
			core.AddSpanEvent(ctx, "status written")
		}

		if grantRole {
			if err := s.roles.GrantRoleByEmail(ctx, a.UserEmail, req.Role); err != nil {
				return fmt.Errorf("%w: %w", ErrRoleGrantFailed, err)
			}
			core.AddSpanEvent(ctx, "role granted",
				attribute.String("user.role", req.Role),
			)
		}
		return nil
	})
	if err != nil {
		core.SetSpanError(ctx, err)
		if errors.Is(err, ErrRoleGrantFailed) && s.tx.Atomic() {
			s.metrics.AgreementStatusChanged(req.Status, "rolled_back")
			return nil, fmt.Errorf("update agreement %s rolled back: %v", id, err)
		}
		if errors.Is(err, ErrRoleGrantFailed) {
			s.metrics.AgreementStatusChanged(req.Status, "partial")
		} else {
			s.metrics.AgreementStatusChanged(req.Status, "error")
		}
		return nil, err
	}

	if a.Status != req.Status {
		a.Status = req.Status
		a.UpdatedAt = &now
	}

	s.metrics.AgreementStatusChanged(req.Status, "ok")
	return a, nil
}

func (s *Service) ListPending(ctx context.Context) ([]Agreement, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}

// GetByEmail trims email the same way Submit does before storing it.
func (s *Service) GetByEmail(ctx context.Context, email string) (*Agreement, error) {
	return s.repo.GetByEmail(ctx, strings.TrimSpace(email))
}
