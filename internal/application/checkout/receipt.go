package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/pos"
)

// ReceiptData todo lo que el ticket impreso necesita, ya derivado: líneas,
// totales y conversión a divisa si el modo está activo.
type ReceiptData struct {
	GeneratedAt     time.Time
	BranchID        string
	StaffID         string
	Lines           []entity.CartLine
	Subtotal        decimal.Decimal
	LineDiscounts   decimal.Decimal
	OrderDiscount   decimal.Decimal
	GrandTotal      decimal.Decimal
	Currency        string
	ForeignAmount   *decimal.Decimal
	ForeignCurrency string
	ExchangeRate    *decimal.Decimal
}

// TicketGenerator renderiza el ticket de venta (PDF).
type TicketGenerator interface {
	GenerateTicket(ctx context.Context, data *ReceiptData) ([]byte, error)
}

// Receipt renderiza el ticket del carrito en revisión. Exige CHECKOUT_REVIEW
// con al menos una línea: el ticket acompaña al cobro, no al armado.
func (uc *UseCase) Receipt(ctx context.Context, staffID, branchID string) ([]byte, error) {
	s, err := uc.cartUC.Session(ctx, staffID, branchID)
	if err != nil {
		return nil, err
	}
	if s.Status != entity.CheckoutReview {
		return nil, domain.ErrCheckoutState
	}
	if len(s.Cart.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	foreignAmount, foreignCode, exchangeRate, err := pos.ForeignFields(s.Cart)
	if err != nil {
		return nil, err
	}
	data := &ReceiptData{
		GeneratedAt:     time.Now(),
		BranchID:        s.BranchID,
		StaffID:         s.StaffID,
		Lines:           s.Cart.Lines,
		Subtotal:        pos.Subtotal(s.Cart),
		LineDiscounts:   pos.LineDiscountTotal(s.Cart),
		OrderDiscount:   s.Cart.OrderDiscount,
		GrandTotal:      pos.GrandTotal(s.Cart),
		Currency:        s.Cart.Currency,
		ForeignAmount:   foreignAmount,
		ForeignCurrency: foreignCode,
		ExchangeRate:    exchangeRate,
	}
	return uc.tickets.GenerateTicket(ctx, data)
}
