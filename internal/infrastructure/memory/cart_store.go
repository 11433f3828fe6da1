package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/PuntoVenta-api/internal/application/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

var _ cart.SessionStore = (*CartStore)(nil)

// CartStore guarda las sesiones de checkout en memoria. Reemplazo directo del
// adaptador Redis para despliegues de una sola caja y para pruebas.
type CartStore struct {
	mu       sync.RWMutex
	sessions map[string]*entity.CheckoutSession
}

func NewCartStore() *CartStore {
	return &CartStore{sessions: make(map[string]*entity.CheckoutSession)}
}

func (s *CartStore) Get(_ context.Context, staffID string) (*entity.CheckoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[staffID]
	if !ok {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (s *CartStore) Save(_ context.Context, session *entity.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *session
	s.sessions[session.StaffID] = &clone
	return nil
}

func (s *CartStore) Delete(_ context.Context, staffID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, staffID)
	return nil
}
