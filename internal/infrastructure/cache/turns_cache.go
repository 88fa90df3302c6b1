package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"turnos-payment-register/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// TurnsCache keeps a short-lived per-operator copy of the remote turns list.
// The remote system stays the system of record; this only absorbs the
// repeated list reads a ledger session produces. Misses and Redis failures
// both read as cache misses.
type TurnsCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewTurnsCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) *TurnsCache {
	return &TurnsCache{client: client, ttl: ttl, log: log}
}

func turnsKey(operatorID string) string {
	return fmt.Sprintf("payment_turns:%s", operatorID)
}

func (c *TurnsCache) Get(ctx context.Context, operatorID string) ([]entity.Turn, bool) {
	raw, err := c.client.Get(ctx, turnsKey(operatorID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Turns cache read failed for operator %s: %v", operatorID, err)
		}
		return nil, false
	}

	var turns []entity.Turn
	if err := json.Unmarshal(raw, &turns); err != nil {
		c.log.Warnf("Turns cache entry corrupted for operator %s: %v", operatorID, err)
		return nil, false
	}
	return turns, true
}

func (c *TurnsCache) Set(ctx context.Context, operatorID string, turns []entity.Turn) {
	raw, err := json.Marshal(turns)
	if err != nil {
		c.log.Warnf("Failed to encode turns for cache: %v", err)
		return
	}
	if err := c.client.Set(ctx, turnsKey(operatorID), raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Turns cache write failed for operator %s: %v", operatorID, err)
	}
}

// Invalidate drops the operator's entry, forcing the next read to hit the
// remote API. Called after every successful save or cancel.
func (c *TurnsCache) Invalidate(ctx context.Context, operatorID string) {
	if err := c.client.Del(ctx, turnsKey(operatorID)).Err(); err != nil {
		c.log.Warnf("Turns cache invalidation failed for operator %s: %v", operatorID, err)
	}
}
