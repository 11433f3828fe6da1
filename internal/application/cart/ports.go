package cart

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// SessionStore guarda la sesión de checkout de cada operador (carrito +
// estado). El carrito es efímero: vive aquí, nunca en la base de datos.
// Get devuelve nil sin error cuando el operador no tiene sesión.
type SessionStore interface {
	Get(ctx context.Context, staffID string) (*entity.CheckoutSession, error)
	Save(ctx context.Context, session *entity.CheckoutSession) error
	Delete(ctx context.Context, staffID string) error
}
