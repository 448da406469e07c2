// AngelaMos | 2026
// fake_test.go

package agreement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

type memRepository struct {
	mu    sync.Mutex
	items []Agreement
}

func (m *memRepository) Create(_ context.Context, a *Agreement) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a.ID = primitive.NewObjectID()
	m.items = append(m.items, *a)
	return a.ID.Hex(), nil
}

func (m *memRepository) GetByID(_ context.Context, id string) (*Agreement, error) {
	oid, err := core.ParseID(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == oid {
			a := m.items[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("get agreement: %w", core.ErrNotFound)
}

func (m *memRepository) GetByEmail(_ context.Context, email string) (*Agreement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].UserEmail == email {
			a := m.items[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("get agreement by email: %w", core.ErrNotFound)
}

func (m *memRepository) ExistsForEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *memRepository) ListByStatus(_ context.Context, status string) ([]Agreement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Agreement, 0)
	for _, a := range m.items {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memRepository) UpdateStatus(
	_ context.Context,
	id primitive.ObjectID,
	status string,
	at time.Time,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = status
			m.items[i].UpdatedAt = &at
			return nil
		}
	}
	return fmt.Errorf("update agreement status: %w", core.ErrNotFound)
}

func (m *memRepository) status(id string) string {
	a, err := m.GetByID(context.Background(), id)
	if err != nil {
		return ""
	}
	return a.Status
}

func (m *memRepository) snapshot() []Agreement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Agreement(nil), m.items...)
}

func (m *memRepository) restore(items []Agreement) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
}

// roleStore stands in for the user service on both sides of the agreement
// flow: role lookup for the policy and role grant on acceptance.
type roleStore struct {
	mu       sync.Mutex
	roles    map[string]string
	grantErr error
	grants   int
}

func newRoleStore(roles map[string]string) *roleStore {
	if roles == nil {
		roles = map[string]string{}
	}
	return &roleStore{roles: roles}
}

func (s *roleStore) RoleOf(_ context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roles[email], nil
}

func (s *roleStore) GrantRoleByEmail(_ context.Context, email, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grants++
	if s.grantErr != nil {
		return s.grantErr
	}
	if _, ok := s.roles[email]; !ok {
		return nil
	}
	s.roles[email] = role
	return nil
}

func (s *roleStore) role(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roles[email]
}

// snapshotTx emulates a store transaction by restoring the agreement
// repository when fn fails.
type snapshotTx struct {
	repo *memRepository
}

func (t snapshotTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	before := t.repo.snapshot()
	if err := fn(ctx); err != nil {
		t.repo.restore(before)
		return err
	}
	return nil
}

func (snapshotTx) Atomic() bool {
	return true
}
