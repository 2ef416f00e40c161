// Package rediscache implementa el cache de reportes sobre Redis, con una
// variante noop para instalaciones sin Redis.
package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/elzarapeimports/zarape-pos-api/internal/application/reportes"
	appconfig "github.com/elzarapeimports/zarape-pos-api/pkg/config"
)

var _ reportes.Cache = (*Cache)(nil)

// Cache adaptador de reportes.Cache sobre go-redis.
type Cache struct {
	client *redis.Client
}

// New conecta a Redis y verifica la conexión.
func New(ctx context.Context, cfg appconfig.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Cache{client: client}, nil
}

// Get devuelve el valor y si existía.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set guarda el valor con expiración.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete descarta la clave.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close cierra la conexión.
func (c *Cache) Close() error {
	return c.client.Close()
}

var _ reportes.Cache = (*Noop)(nil)

// Noop cache deshabilitado: nunca acierta, nunca falla.
type Noop struct{}

// NewNoop crea el cache noop.
func NewNoop() *Noop { return &Noop{} }

// Get nunca encuentra nada.
func (*Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set descarta el valor.
func (*Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete no hace nada.
func (*Noop) Delete(context.Context, string) error { return nil }
