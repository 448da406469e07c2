// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/carterperez-dev/estateease-api/internal/core"
)

func TestRepositoryAgainstMockDeployment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get by email decodes document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "a@x.com"},
			{Key: "displayName", Value: "Alice"},
			{Key: "role", Value: RoleMember},
			{Key: "lastLogin", Value: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		}))

		u, err := NewRepository(mt.DB).GetByEmail(context.Background(), "a@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, id, u.ID)
		assert.Equal(mt, RoleMember, u.Role)
		assert.Equal(mt, "Alice", u.DisplayName)
	})

	mt.Run("get by email maps no documents to not found", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewRepository(mt.DB).GetByEmail(context.Background(), "ghost@x.com")
		assert.ErrorIs(mt, err, core.ErrNotFound)
	})

	mt.Run("create returns generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u := &User{ID: primitive.NewObjectID(), Email: "a@x.com", Role: RoleUser}
		id, err := NewRepository(mt.DB).Create(context.Background(), u)
		require.NoError(mt, err)
		assert.Equal(mt, u.ID.Hex(), id)
	})

	mt.Run("update role by email with no match is not found", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 0},
			{Key: "nModified", Value: 0},
		})

		err := NewRepository(mt.DB).UpdateRoleByEmail(context.Background(), "ghost@x.com", RoleMember)
		assert.ErrorIs(mt, err, core.ErrNotFound)
	})

	mt.Run("update role rejects malformed id", func(mt *mtest.T) {
		err := NewRepository(mt.DB).UpdateRole(context.Background(), "xyz", RoleMember)
		assert.ErrorIs(mt, err, core.ErrInvalidID)
	})
}
