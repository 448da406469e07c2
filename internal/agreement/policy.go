// AngelaMos | 2026
// policy.go

package agreement

import (
	"context"
	"fmt"
	"strings"

	"github.com/carterperez-dev/estateease-api/internal/core"
	"github.com/carterperez-dev/estateease-api/internal/middleware"
	"github.com/carterperez-dev/estateease-api/internal/user"
)

// SubmitPolicy decides whether an agreement may be submitted for email.
// A refusal wraps core.ErrForbidden.
type SubmitPolicy interface {
	CanSubmit(ctx context.Context, email string) error
}

type RoleLookup interface {
	RoleOf(ctx context.Context, email string) (string, error)
}

// StoredRolePolicy refuses submissions for emails whose stored user is an
// admin. Unknown emails are allowed.
type StoredRolePolicy struct {
	Roles RoleLookup
}

func (p StoredRolePolicy) CanSubmit(ctx context.Context, email string) error {
	role, err := p.Roles.RoleOf(ctx, email)
	if err != nil {
		return fmt.Errorf("check submitter role: %w", err)
	}
	if role == user.RoleAdmin {
		return fmt.Errorf("admin %s submitting agreement: %w", email, core.ErrForbidden)
	}
	return nil
}

// ClaimsPolicy always applies Fallback. A verified token on the request can
// only add refusals: an admin token, or a token for a different email than
// the one being submitted.
type ClaimsPolicy struct {
	Fallback SubmitPolicy
}

func (p ClaimsPolicy) CanSubmit(ctx context.Context, email string) error {
	if claims := middleware.GetClaims(ctx); claims != nil {
		if claims.Role == user.RoleAdmin {
			return fmt.Errorf("admin token submitting agreement: %w", core.ErrForbidden)
		}
		if !strings.EqualFold(strings.TrimSpace(claims.Email), email) {
			return fmt.Errorf(
				"token for %s submitting agreement for %s: %w: %w",
				claims.Email, email, ErrSubmitterMismatch, core.ErrForbidden,
			)
		}
	}
	return p.Fallback.CanSubmit(ctx, email)
}

var (
	_ SubmitPolicy = StoredRolePolicy{}
	_ SubmitPolicy = ClaimsPolicy{}
)
