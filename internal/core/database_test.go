// AngelaMos | 2026
// database_test.go

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestInTxRunsCallbackOnce(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("transient error is returned", func(mt *mtest.T) {
		db := &Database{Client: mt.Client, DB: mt.DB}
		transient := mongo.CommandError{
			Code:   251,
			Name:   "NoSuchTransaction",
			Labels: []string{"TransientTransactionError"},
		}

		calls := 0
		err := db.InTx(context.Background(), func(ctx context.Context) error {
			calls++
			return transient
		})

		assert.Equal(mt, 1, calls)
		var cmdErr mongo.CommandError
		assert.True(mt, errors.As(err, &cmdErr))
		assert.True(mt, cmdErr.HasErrorLabel("TransientTransactionError"))
	})

	mt.Run("empty unit of work commits", func(mt *mtest.T) {
		db := &Database{Client: mt.Client, DB: mt.DB}

		calls := 0
		err := db.InTx(context.Background(), func(ctx context.Context) error {
			calls++
			return nil
		})

		assert.NoError(mt, err)
		assert.Equal(mt, 1, calls)
		assert.True(mt, db.Atomic())
	})
}
