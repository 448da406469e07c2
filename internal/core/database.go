// AngelaMos | 2026
// database.go

package core

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/carterperez-dev/estateease-api/internal/config"
)

// Database owns the process-wide Mongo client. It is created once at startup
// and shared by every repository.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	pool   *poolCounters
}

type poolCounters struct {
	open             atomic.Int64
	inUse            atomic.Int64
	checkoutFailures atomic.Int64
}

type PoolStats struct {
	MaxPoolSize      uint64 `json:"max_pool_size"`
	Open             int64  `json:"open_connections"`
	InUse            int64  `json:"in_use"`
	CheckoutFailures int64  `json:"checkout_failures"`
}

func NewDatabase(
	ctx context.Context,
	cfg config.DatabaseConfig,
) (*Database, error) {
	counters := &poolCounters{}

	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).
			SetStrict(true).
			SetDeprecationErrors(true)).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetPoolMonitor(&event.PoolMonitor{Event: counters.observe})

	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx) //nolint:errcheck // cleanup on connection failure
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{
		Client: client,
		DB:     client.Database(cfg.Name),
		pool:   counters,
	}, nil
}

func (c *poolCounters) observe(evt *event.PoolEvent) {
	switch evt.Type {
	case event.ConnectionCreated:
		c.open.Add(1)
	case event.ConnectionClosed:
		c.open.Add(-1)
	case event.GetSucceeded:
		c.inUse.Add(1)
	case event.ConnectionReturned:
		c.inUse.Add(-1)
	case event.GetFailed:
		c.checkoutFailures.Add(1)
	}
}

func (d *Database) Close(ctx context.Context) error {
	if d.Client != nil {
		return d.Client.Disconnect(ctx)
	}
	return nil
}

func (d *Database) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.Client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

func (d *Database) Stats(maxPoolSize uint64) PoolStats {
	return PoolStats{
		MaxPoolSize:      maxPoolSize,
		Open:             d.pool.open.Load(),
		InUse:            d.pool.inUse.Load(),
		CheckoutFailures: d.pool.checkoutFailures.Load(),
	}
}

// Transactor runs fn as one unit of work. Atomic reports whether a failure
// inside fn rolls back the writes fn already made.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
	Atomic() bool
}

// InTx runs fn once inside a Mongo session transaction and aborts it when fn
// fails. Transient transaction errors are returned to the caller, not retried.
// The deployment must be a replica set or sharded cluster.
func (d *Database) InTx(
	ctx context.Context,
	fn func(ctx context.Context) error,
) error {
	sess, err := d.Client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	if err := sess.StartTransaction(); err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		return fn(sc)
	})
	if err != nil {
		if abortErr := sess.AbortTransaction(context.WithoutCancel(ctx)); abortErr != nil {
			return errors.Join(err, fmt.Errorf("abort transaction: %w", abortErr))
		}
		return err
	}

	if err := sess.CommitTransaction(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (d *Database) Atomic() bool {
	return true
}

// NoTx runs each write on its own; earlier writes stay committed when a later
// one fails.
type NoTx struct{}

func (NoTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (NoTx) Atomic() bool {
	return false
}

var (
	_ Transactor = (*Database)(nil)
	_ Transactor = NoTx{}
)
