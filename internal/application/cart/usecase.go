package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/pos"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// UseCase agregador de carrito: aplica las transformaciones puras de
// internal/domain/pos sobre la sesión del operador y la persiste en el
// SessionStore. Los totales se derivan en cada lectura.
type UseCase struct {
	sessions    SessionStore
	productRepo repository.ProductRepository
	currency    string // moneda local por defecto de las sesiones nuevas
}

// NewUseCase construye el agregador.
func NewUseCase(sessions SessionStore, productRepo repository.ProductRepository, currency string) *UseCase {
	return &UseCase{sessions: sessions, productRepo: productRepo, currency: currency}
}

// Session devuelve la sesión del operador, creándola vacía si no existe o si
// la anterior quedó en estado terminal SETTLED (una liquidación cerrada abre
// sesión nueva; un ABORTED conserva el carrito para retomarlo).
func (uc *UseCase) Session(ctx context.Context, staffID, branchID string) (*entity.CheckoutSession, error) {
	s, err := uc.sessions.Get(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if s == nil || s.Status == entity.CheckoutSettled {
		s = &entity.CheckoutSession{
			StaffID:  staffID,
			BranchID: branchID,
			Status:   entity.CheckoutCartOpen,
			Cart:     entity.Cart{Currency: uc.currency},
		}
		if err := uc.sessions.Save(ctx, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddLine agrega una unidad del producto al carrito de la sesión.
func (uc *UseCase) AddLine(ctx context.Context, staffID, branchID, productID string) (*dto.CartResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.mutate(ctx, staffID, branchID, func(c entity.Cart) entity.Cart {
		return pos.AddLine(c, product)
	})
}

// SetQuantity suma delta a la cantidad de una línea (elimina al llegar a 0).
func (uc *UseCase) SetQuantity(ctx context.Context, staffID, branchID, productID string, delta int64) (*dto.CartResponse, error) {
	return uc.mutate(ctx, staffID, branchID, func(c entity.Cart) entity.Cart {
		return pos.SetLineQuantity(c, productID, delta)
	})
}

// SetPrice sobreescribe el precio unitario de una línea.
func (uc *UseCase) SetPrice(ctx context.Context, staffID, branchID, productID string, value decimal.Decimal) (*dto.CartResponse, error) {
	return uc.mutate(ctx, staffID, branchID, func(c entity.Cart) entity.Cart {
		return pos.SetLinePrice(c, productID, value)
	})
}

// SetDiscount fija el descuento por unidad de una línea.
func (uc *UseCase) SetDiscount(ctx context.Context, staffID, branchID, productID string, value decimal.Decimal) (*dto.CartResponse, error) {
	return uc.mutate(ctx, staffID, branchID, func(c entity.Cart) entity.Cart {
		return pos.SetLineDiscount(c, productID, value)
	})
}

// SetOrderDiscount fija el descuento global de la orden.
func (uc *UseCase) SetOrderDiscount(ctx context.Context, staffID, branchID string, value decimal.Decimal) (*dto.CartResponse, error) {
	return uc.mutate(ctx, staffID, branchID, func(c entity.Cart) entity.Cart {
		return pos.SetOrderDiscount(c, value)
	})
}

// SetCustomer asocia un cliente a la venta (vacío = mostrador).
func (uc *UseCase) SetCustomer(ctx context.Context, staffID, branchID, customerID string) (*dto.CartResponse, error) {
	return uc.mutate(ctx, staffID, branchID, func(c entity.Cart) entity.Cart {
		c.CustomerID = customerID
		return c
	})
}

// SetForeignMode configura el modo divisa. Activarlo exige un código ISO 4217
// válido y una tasa de cambio positiva.
func (uc *UseCase) SetForeignMode(ctx context.Context, staffID, branchID string, in dto.SetForeignModeRequest) (*dto.CartResponse, error) {
	if in.Active {
		if !pos.ValidCurrencyCode(in.ForeignCurrency) {
			return nil, domain.ErrInvalidInput
		}
		if !in.ExchangeRate.GreaterThan(decimal.Zero) {
			return nil, domain.ErrCurrencyConfig
		}
	}
	return uc.mutate(ctx, staffID, branchID, func(c entity.Cart) entity.Cart {
		c.Foreign = entity.ForeignMode{
			Active:          in.Active,
			ForeignCurrency: in.ForeignCurrency,
			ExchangeRate:    in.ExchangeRate,
		}
		return c
	})
}

// Clear vacía el carrito. El handler debe haber confirmado la intención.
func (uc *UseCase) Clear(ctx context.Context, staffID, branchID string) (*dto.CartResponse, error) {
	return uc.mutate(ctx, staffID, branchID, func(c entity.Cart) entity.Cart {
		return pos.Clear(c)
	})
}

// View devuelve el carrito con sus totales derivados.
func (uc *UseCase) View(ctx context.Context, staffID, branchID string) (*dto.CartResponse, error) {
	s, err := uc.Session(ctx, staffID, branchID)
	if err != nil {
		return nil, err
	}
	return ToCartResponse(s)
}

// mutate aplica una transformación pura al carrito de la sesión y persiste.
// Solo se permite mutar con la sesión en CART_OPEN.
func (uc *UseCase) mutate(ctx context.Context, staffID, branchID string, fn func(entity.Cart) entity.Cart) (*dto.CartResponse, error) {
	s, err := uc.Session(ctx, staffID, branchID)
	if err != nil {
		return nil, err
	}
	if s.Status != entity.CheckoutCartOpen {
		return nil, domain.ErrCheckoutState
	}
	s.Cart = fn(s.Cart)
	if err := uc.sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return ToCartResponse(s)
}

// ToCartResponse arma la vista del carrito: totales y, si aplica, los campos
// de divisa derivados del total vigente.
func ToCartResponse(s *entity.CheckoutSession) (*dto.CartResponse, error) {
	foreignAmount, foreignCode, rate, err := pos.ForeignFields(s.Cart)
	if err != nil {
		return nil, err
	}
	return &dto.CartResponse{
		Status:            s.Status,
		Lines:             s.Cart.Lines,
		OrderDiscount:     s.Cart.OrderDiscount,
		CustomerID:        s.Cart.CustomerID,
		Currency:          s.Cart.Currency,
		Subtotal:          pos.Subtotal(s.Cart),
		LineDiscountTotal: pos.LineDiscountTotal(s.Cart),
		GrandTotal:        pos.GrandTotal(s.Cart),
		ForeignAmount:     foreignAmount,
		ForeignCurrency:   foreignCode,
		ExchangeRate:      rate,
	}, nil
}
