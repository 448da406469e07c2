// AngelaMos | 2026
// handler_test.go

package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo *memRepository) *chi.Mux {
	r := chi.NewRouter()
	NewHandler(NewService(repo, nil)).RegisterRoutes(r)
	return r
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

func TestUpsertEndpointStatusCodes(t *testing.T) {
	r := newTestRouter(&memRepository{})
	body := map[string]any{"email": "a@x.com", "displayName": "Alice"}

	first := do(t, r, http.MethodPost, "/users", body)
	assert.Equal(t, http.StatusCreated, first.Code)

	second := do(t, r, http.MethodPost, "/users", body)
	assert.Equal(t, http.StatusOK, second.Code)

	var resp UpsertResponse
	require.NoError(t, json.NewDecoder(second.Body).Decode(&resp))
	assert.NotEmpty(t, resp.UserID)
}

func TestUpsertEndpointValidation(t *testing.T) {
	r := newTestRouter(&memRepository{})

	rec := do(t, r, http.MethodPost, "/users", map[string]any{"email": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestGetUserByEmail(t *testing.T) {
	repo := &memRepository{}
	r := newTestRouter(repo)
	do(t, r, http.MethodPost, "/users", map[string]any{"email": "a@x.com"})

	found := do(t, r, http.MethodGet, "/users/a@x.com", nil)
	assert.Equal(t, http.StatusOK, found.Code)

	missing := do(t, r, http.MethodGet, "/users/ghost@x.com", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, missing.Body.String())
}

func TestListUsersEmptyArray(t *testing.T) {
	rec := do(t, newTestRouter(&memRepository{}), http.MethodGet, "/users", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdateRoleEndpoint(t *testing.T) {
	repo := &memRepository{}
	r := newTestRouter(repo)
	do(t, r, http.MethodPost, "/users", map[string]any{"email": "a@x.com"})
	id := repo.users[0].ID.Hex()

	ok := do(t, r, http.MethodPut, "/users/"+id, map[string]any{"role": "admin"})
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Equal(t, RoleAdmin, repo.users[0].Role)

	bad := do(t, r, http.MethodPut, "/users/"+id, map[string]any{"role": "owner"})
	assert.Equal(t, http.StatusBadRequest, bad.Code)

	missing := do(t, r, http.MethodPut, "/users/64b7f0c2a1b2c3d4e5f60718", map[string]any{"role": "user"})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
