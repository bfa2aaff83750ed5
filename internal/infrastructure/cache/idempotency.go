package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyKeyPrefix = "idem:"
	pendingMarker        = "pending"
	defaultTTL           = 24 * time.Hour
)

// NewRedisClient abre el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

type storedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// IdempotencyStore guarda en Redis la respuesta de una petición identificada por Idempotency-Key.
// Ciclo: Reserve (SETNX con marca pendiente) -> Complete (respuesta final) o Release (se descarta).
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore construye el store. ttl <= 0 usa 24h.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Reserve toma la clave. Devuelve false si ya estaba tomada (pendiente o completada).
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, idempotencyKeyPrefix+key, pendingMarker, s.ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Lookup devuelve la respuesta guardada. found es false si la clave no existe o sigue pendiente.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (status int, body []byte, found bool, err error) {
	raw, err := s.client.Get(ctx, idempotencyKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil, false, nil
	}
	if err != nil {
		return 0, nil, false, err
	}
	if raw == pendingMarker {
		return 0, nil, false, nil
	}
	var resp storedResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return 0, nil, false, fmt.Errorf("decode idempotent response: %w", err)
	}
	return resp.Status, resp.Body, true, nil
}

// Complete reemplaza la marca pendiente por la respuesta final.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, status int, body []byte) error {
	raw, err := json.Marshal(storedResponse{Status: status, Body: body})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, idempotencyKeyPrefix+key, raw, s.ttl).Err()
}

// Release libera la clave para que la petición pueda repetirse.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, idempotencyKeyPrefix+key).Err()
}
