package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/PuntoVenta-api/internal/application/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

var _ cart.SessionStore = (*CartStore)(nil)

// TTL de la sesión de caja. Una jornada completa; el carrito sobrevive a
// pausas del operador pero no se acumula indefinidamente.
const sessionTTL = 12 * time.Hour

// CartStore guarda la sesión de checkout de cada operador en Redis como JSON.
type CartStore struct {
	client *redis.Client
}

func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

// NewClient abre la conexión y verifica con PING.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func sessionKey(staffID string) string {
	return "pos:session:" + staffID
}

// Get devuelve la sesión del operador, o nil si no existe.
func (s *CartStore) Get(ctx context.Context, staffID string) (*entity.CheckoutSession, error) {
	raw, err := s.client.Get(ctx, sessionKey(staffID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var session entity.CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// Save persiste la sesión renovando el TTL.
func (s *CartStore) Save(ctx context.Context, session *entity.CheckoutSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.StaffID), raw, sessionTTL).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// Delete descarta la sesión del operador.
func (s *CartStore) Delete(ctx context.Context, staffID string) error {
	if err := s.client.Del(ctx, sessionKey(staffID)).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}
