// AngelaMos | 2026
// fake_test.go

package user

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

type memRepository struct {
	mu    sync.Mutex
	users []User
}

func (m *memRepository) Create(_ context.Context, u *User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u.ID = primitive.NewObjectID()
	m.users = append(m.users, *u)
	return u.ID.Hex(), nil
}

func (m *memRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (m *memRepository) List(_ context.Context) ([]User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *memRepository) UpdateLastLogin(
	_ context.Context,
	id primitive.ObjectID,
	at time.Time,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].LastLogin = at
			return nil
		}
	}
	return core.ErrNotFound
}

func (m *memRepository) UpdateRole(_ context.Context, id, role string) error {
	oid, err := core.ParseID(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == oid {
			m.users[i].Role = role
			return nil
		}
	}
	return fmt.Errorf("update role: %w", core.ErrNotFound)
}

func (m *memRepository) UpdateRoleByEmail(_ context.Context, email, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].Email == email {
			m.users[i].Role = role
			return nil
		}
	}
	return fmt.Errorf("update role by email: %w", core.ErrNotFound)
}
