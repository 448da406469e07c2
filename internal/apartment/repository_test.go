// AngelaMos | 2026
// repository_test.go

package apartment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestRepositoryListSortsByLocation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find carries sort", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "blockName", Value: "A"}, {Key: "floorNo", Value: 1}, {Key: "apartmentNo", Value: 101}},
		))

		items, err := NewRepository(mt.DB).List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, items, 1)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		sort, ok := started.Command.Lookup("sort").DocumentOK()
		require.True(mt, ok)

		keys, err := sort.Elements()
		require.NoError(mt, err)
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, k.Key())
		}
		assert.Equal(mt, []string{"blockName", "floorNo", "apartmentNo"}, names)
	})
}
