package redisclient

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

//go:embed scripts/add_unavailable_date.lua
var addUnavailableDateScript string

const unavailableDatesKey = "bookings:unavailable_dates"

type Client struct {
	rdb           *redis.Client
	addDateScript *redis.Script
}

// NewClient creates a new Redis client with Lua scripts loaded
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{
		rdb:           rdb,
		addDateScript: redis.NewScript(addUnavailableDateScript),
	}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetUnavailableDates returns the cached unavailable-date set. An empty result
// with ok=false means the cache is cold and the caller must recompute. Redis
// removes empty sets, so a missing key and an empty set are the same state.
func (c *Client) GetUnavailableDates(ctx context.Context) ([]string, bool, error) {
	dates, err := c.rdb.SMembers(ctx, unavailableDatesKey).Result()
	if err != nil {
		return nil, false, err
	}
	if len(dates) == 0 {
		return nil, false, nil
	}
	return dates, true, nil
}

// SetUnavailableDates replaces the cached unavailable-date set
func (c *Client) SetUnavailableDates(ctx context.Context, dates []string, ttl time.Duration) error {
	if len(dates) == 0 {
		return c.rdb.Del(ctx, unavailableDatesKey).Err()
	}

	members := make([]interface{}, len(dates))
	for i, d := range dates {
		members[i] = d
	}

	pipe := c.rdb.Pipeline()
	pipe.Del(ctx, unavailableDatesKey)
	pipe.SAdd(ctx, unavailableDatesKey, members...)
	pipe.Expire(ctx, unavailableDatesKey, ttl)

	_, err := pipe.Exec(ctx)
	return err
}

// AddUnavailableDate adds one date to the cached set so a just-accepted
// booking blocks its day without waiting for a recompute. The add runs only
// when the set is warm: extending a cold key would pin a partial set with no
// TTL. Returns false when the cache was cold and nothing was written.
func (c *Client) AddUnavailableDate(ctx context.Context, date string) (bool, error) {
	result, err := c.addDateScript.Run(ctx, c.rdb, []string{unavailableDatesKey}, date).Result()
	if err != nil {
		return false, fmt.Errorf("add unavailable date script failed: %w", err)
	}

	added, ok := result.(int64)
	if !ok {
		return false, fmt.Errorf("unexpected script result type")
	}

	return added >= 0, nil
}

// InvalidateUnavailableDates drops the cached set
func (c *Client) InvalidateUnavailableDates(ctx context.Context) error {
	return c.rdb.Del(ctx, unavailableDatesKey).Err()
}

// SetIdempotentOrder maps a checkout idempotency key to its order id
func (c *Client) SetIdempotentOrder(ctx context.Context, key string, orderID int64, ttl time.Duration) error {
	return c.rdb.Set(ctx, fmt.Sprintf("idempotency:checkout:%s", key), orderID, ttl).Err()
}

// GetIdempotentOrder returns the order id previously stored for an
// idempotency key, or found=false when the key is unseen
func (c *Client) GetIdempotentOrder(ctx context.Context, key string) (int64, bool, error) {
	val, err := c.rdb.Get(ctx, fmt.Sprintf("idempotency:checkout:%s", key)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	orderID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt idempotency value %q: %w", val, err)
	}
	return orderID, true, nil
}
