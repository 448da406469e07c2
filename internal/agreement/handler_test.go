// AngelaMos | 2026
// handler_test.go

package agreement

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/estateease-api/internal/middleware"
	"github.com/carterperez-dev/estateease-api/internal/user"
)

type fixture struct {
	repo   *memRepository
	roles  *roleStore
	router *chi.Mux
}

func newFixture(roles map[string]string) *fixture {
	f := &fixture{
		repo:  &memRepository{},
		roles: newRoleStore(roles),
	}
	f.router = chi.NewRouter()
	NewHandler(newTestService(f.repo, f.roles, nil)).RegisterRoutes(f.router)
	return f
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	return rec
}

func agreementBody(email string) map[string]any {
	return map[string]any{
		"userName":    "Tenant",
		"userEmail":   email,
		"floorNo":     2,
		"blockName":   "A",
		"apartmentNo": 204,
		"rent":        1500,
	}
}

func TestCreateAgreementEndpoint(t *testing.T) {
	f := newFixture(nil)

	rec := do(t, f.router, http.MethodPost, "/agreements", agreementBody("a@x.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateAgreementResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Agreement created successfully", resp.Message)
	assert.NotEmpty(t, resp.AgreementID)

	dup := do(t, f.router, http.MethodPost, "/agreements", agreementBody("a@x.com"))
	assert.Equal(t, http.StatusBadRequest, dup.Code)
	assert.JSONEq(t, `{"message":"User already has an agreement."}`, dup.Body.String())
}

func TestCreateAgreementAdminForbidden(t *testing.T) {
	f := newFixture(map[string]string{"boss@x.com": user.RoleAdmin})

	rec := do(t, f.router, http.MethodPost, "/agreements", agreementBody("boss@x.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Admins cannot create agreements."}`, rec.Body.String())
	assert.Empty(t, f.repo.items)
}

func TestCreateAgreementForOtherEmailForbidden(t *testing.T) {
	repo := &memRepository{}
	roles := newRoleStore(nil)
	r := chi.NewRouter()
	NewHandler(NewService(ServiceConfig{
		Repo:   repo,
		Policy: ClaimsPolicy{Fallback: StoredRolePolicy{Roles: roles}},
		Roles:  roles,
	})).RegisterRoutes(r)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(agreementBody("someone@x.com")))
	req := httptest.NewRequest(http.MethodPost, "/agreements", &buf)
	req = req.WithContext(middleware.WithClaims(req.Context(), &middleware.Claims{
		Email: "tenant@x.com",
		Role:  user.RoleUser,
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t,
		`{"message":"Agreements can only be submitted for your own email."}`,
		rec.Body.String(),
	)
	assert.Empty(t, repo.items)
}

func TestCreateAgreementValidation(t *testing.T) {
	f := newFixture(nil)

	body := agreementBody("not-an-email")
	rec := do(t, f.router, http.MethodPost, "/agreements", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "userEmail")

	malformed := httptest.NewRecorder()
	f.router.ServeHTTP(malformed, httptest.NewRequest(
		http.MethodPost, "/agreements", bytes.NewBufferString("{"),
	))
	assert.Equal(t, http.StatusBadRequest, malformed.Code)
}

func TestListPendingEndpoint(t *testing.T) {
	f := newFixture(nil)

	empty := do(t, f.router, http.MethodGet, "/agreements", nil)
	assert.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, `[]`, empty.Body.String())

	do(t, f.router, http.MethodPost, "/agreements", agreementBody("a@x.com"))

	rec := do(t, f.router, http.MethodGet, "/agreements", nil)
	var items []Agreement
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, StatusPending, items[0].Status)
}

func TestGetAgreementByEmailEndpoint(t *testing.T) {
	f := newFixture(nil)
	do(t, f.router, http.MethodPost, "/agreements", agreementBody("a@x.com"))

	found := do(t, f.router, http.MethodGet, "/agreements/a@x.com", nil)
	assert.Equal(t, http.StatusOK, found.Code)

	var a Agreement
	require.NoError(t, json.NewDecoder(found.Body).Decode(&a))
	assert.Equal(t, 204, a.ApartmentNo)

	missing := do(t, f.router, http.MethodGet, "/agreements/ghost@x.com", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.JSONEq(t, `{"message":"Agreement not found"}`, missing.Body.String())
}

func TestUpdateStatusEndpoint(t *testing.T) {
	f := newFixture(map[string]string{"a@x.com": user.RoleUser})

	rec := do(t, f.router, http.MethodPost, "/agreements", agreementBody("a@x.com"))
	var created CreateAgreementResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	path := "/agreements/" + created.AgreementID + "/update"
	upd := do(t, f.router, http.MethodPut, path, map[string]any{
		"status": StatusAccepted,
		"role":   user.RoleMember,
	})
	require.Equal(t, http.StatusOK, upd.Code)
	assert.JSONEq(t,
		`{"message":"Agreement updated successfully","status":"accepted"}`,
		upd.Body.String(),
	)
	assert.Equal(t, user.RoleMember, f.roles.role("a@x.com"))

	back := do(t, f.router, http.MethodPut, path, map[string]any{"status": StatusRejected})
	assert.Equal(t, http.StatusBadRequest, back.Code)
	assert.JSONEq(t, `{"message":"invalid status transition"}`, back.Body.String())
}

func TestUpdateStatusEndpointErrors(t *testing.T) {
	f := newFixture(nil)

	tests := []struct {
		name   string
		path   string
		body   map[string]any
		status int
	}{
		{
			name:   "unknown status",
			path:   "/agreements/64b7f0c2a1b2c3d4e5f60718/update",
			body:   map[string]any{"status": "archived"},
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed id",
			path:   "/agreements/xyz/update",
			body:   map[string]any{"status": StatusAccepted},
			status: http.StatusBadRequest,
		},
		{
			name:   "missing agreement",
			path:   "/agreements/64b7f0c2a1b2c3d4e5f60718/update",
			body:   map[string]any{"status": StatusAccepted},
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, f.router, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestUpdateStatusEndpointPartialFailure(t *testing.T) {
	f := newFixture(map[string]string{"a@x.com": user.RoleUser})

	rec := do(t, f.router, http.MethodPost, "/agreements", agreementBody("a@x.com"))
	var created CreateAgreementResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	f.roles.grantErr = errors.New("socket closed")
	upd := do(t, f.router, http.MethodPut,
		"/agreements/"+created.AgreementID+"/update",
		map[string]any{"status": StatusAccepted, "role": user.RoleMember},
	)

	assert.Equal(t, http.StatusInternalServerError, upd.Code)
	assert.JSONEq(t,
		`{"message":"Agreement status updated but role assignment failed"}`,
		upd.Body.String(),
	)
	assert.NotContains(t, upd.Body.String(), "socket closed")
}
