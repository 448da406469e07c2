// AngelaMos | 2026
// repository_test.go

package agreement

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

	mt.Run("list by status decodes documents", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "userEmail", Value: "a@x.com"},
				{Key: "floorNo", Value: 1},
				{Key: "apartmentNo", Value: 101},
				{Key: "rent", Value: 900.5},
				{Key: "status", Value: StatusPending},
			}),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		items, err := NewRepository(mt.DB).ListByStatus(context.Background(), StatusPending)
		require.NoError(mt, err)
		require.Len(mt, items, 1)
		assert.Equal(mt, 101, items[0].ApartmentNo)
		assert.InDelta(mt, 900.5, items[0].Rent, 0.001)
	})

	mt.Run("exists for email", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		exists, err := NewRepository(mt.DB).ExistsForEmail(context.Background(), "ghost@x.com")
		require.NoError(mt, err)
		assert.False(mt, exists)
	})

	mt.Run("update status with no match is not found", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 0},
			{Key: "nModified", Value: 0},
		})

		err := NewRepository(mt.DB).UpdateStatus(
			context.Background(), primitive.NewObjectID(), StatusAccepted, time.Now(),
		)
		assert.ErrorIs(mt, err, core.ErrNotFound)
	})

	mt.Run("get by id rejects malformed id", func(mt *mtest.T) {
		_, err := NewRepository(mt.DB).GetByID(context.Background(), "xyz")
		assert.ErrorIs(mt, err, core.ErrInvalidID)
	})
}
