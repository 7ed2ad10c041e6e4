package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps staff session tokens in Redis with a TTL.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Client: client, TTL: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *SessionStore) Put(ctx context.Context, token string, staffID int) error {
	return s.Client.Set(ctx, sessionKey(token), strconv.Itoa(staffID), s.TTL).Err()
}

// Get returns the staff id bound to the token, or 0 when the session does
// not exist or has expired.
func (s *SessionStore) Get(ctx context.Context, token string) (int, error) {
	val, err := s.Client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(val)
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.Client.Del(ctx, sessionKey(token)).Err()
}

// StatsCache accumulates daily counters maintained by the event consumer.
type StatsCache struct {
	Client *redis.Client
}

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{Client: client}
}

func (c *StatsCache) RevenueKey(date string) string {
	return "stats:revenue:" + date
}

func (c *StatsCache) InvoiceCountKey(date string) string {
	return "stats:invoices:" + date
}

func (c *StatsCache) IncrRevenue(ctx context.Context, date string, amount float64) error {
	return c.Client.IncrByFloat(ctx, c.RevenueKey(date), amount).Err()
}

func (c *StatsCache) IncrInvoiceCount(ctx context.Context, date string) error {
	return c.Client.Incr(ctx, c.InvoiceCountKey(date)).Err()
}

func (c *StatsCache) Revenue(ctx context.Context, date string) (float64, bool, error) {
	val, err := c.Client.Get(ctx, c.RevenueKey(date)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	amount, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, err
	}
	return amount, true, nil
}
