package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/pos"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

// Policy política del motor de liquidación.
// AllowOversell reproduce el comportamiento del POS original: el commit no
// bloquea ventas por encima de AvailableUnits y puede dejar existencias
// negativas. Con false, una línea sin cobertura falla el commit completo con
// ErrInsufficientStock y la transacción se revierte.
type Policy struct {
	AllowOversell bool
}

// UseCase motor de liquidación de checkout: valida la revisión, arma la
// transacción de venta y aplica los deltas de inventario/stock en una unidad
// de trabajo. Estados de la sesión: CART_OPEN → CHECKOUT_REVIEW →
// {SETTLED | ABORTED}.
type UseCase struct {
	txRunner     TxRunner
	sessions     cart.SessionStore
	cartUC       *cart.UseCase
	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerRepository
	txReadRepo   repository.TransactionRepository
	tickets      TicketGenerator
	policy       Policy
	log          *logger.Logger
}

// NewUseCase construye el motor.
func NewUseCase(
	txRunner TxRunner,
	sessions cart.SessionStore,
	cartUC *cart.UseCase,
	accountRepo repository.AccountRepository,
	customerRepo repository.CustomerRepository,
	txReadRepo repository.TransactionRepository,
	tickets TicketGenerator,
	policy Policy,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		sessions:     sessions,
		cartUC:       cartUC,
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		txReadRepo:   txReadRepo,
		tickets:      tickets,
		policy:       policy,
		log:          log,
	}
}

// OpenReview pasa la sesión a CHECKOUT_REVIEW. Exige al menos una línea.
// Desde ABORTED se permite retomar la revisión (el carrito se conservó).
func (uc *UseCase) OpenReview(ctx context.Context, staffID, branchID string) (*dto.CartResponse, error) {
	s, err := uc.cartUC.Session(ctx, staffID, branchID)
	if err != nil {
		return nil, err
	}
	if len(s.Cart.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	switch s.Status {
	case entity.CheckoutCartOpen, entity.CheckoutReview, entity.CheckoutAborted:
		s.Status = entity.CheckoutReview
	default:
		return nil, domain.ErrCheckoutState
	}
	if err := uc.sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return cart.ToCartResponse(s)
}

// SetPayment fija método de pago y cuenta de depósito durante la revisión.
func (uc *UseCase) SetPayment(ctx context.Context, staffID, branchID string, in dto.SetPaymentRequest) (*dto.CartResponse, error) {
	if in.PaymentMethod == "" || in.AccountID == "" {
		return nil, domain.ErrMissingPayment
	}
	account, err := uc.accountRepo.GetByID(in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	s, err := uc.cartUC.Session(ctx, staffID, branchID)
	if err != nil {
		return nil, err
	}
	if s.Status != entity.CheckoutReview {
		return nil, domain.ErrCheckoutState
	}
	s.PaymentMethod = in.PaymentMethod
	s.AccountID = in.AccountID
	if err := uc.sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return cart.ToCartResponse(s)
}

// Abort descarta el checkout pendiente sin tocar el inventario. El carrito
// no se vacía: el operador puede reabrir la revisión.
func (uc *UseCase) Abort(ctx context.Context, staffID, branchID string) (*dto.CartResponse, error) {
	s, err := uc.cartUC.Session(ctx, staffID, branchID)
	if err != nil {
		return nil, err
	}
	if s.Status != entity.CheckoutReview {
		return nil, domain.ErrCheckoutState
	}
	s.Status = entity.CheckoutAborted
	if err := uc.sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return cart.ToCartResponse(s)
}

// SubmitSale es el commit CHECKOUT_REVIEW → SETTLED. En una sola transacción
// de BD: (1) persiste la Transaction con monto = grandTotal y los campos de
// divisa si aplica, (2) por cada línea aplica consumo de receta y descuento
// de stock directo, (3) marca la sesión SETTLED y resetea el carrito.
//
// Referencias obsoletas (producto o ítem eliminado entre el armado del
// carrito y el commit) se omiten con un registro de advertencia en lugar de
// fallar la venta: comportamiento documentado, no un accidente.
func (uc *UseCase) SubmitSale(ctx context.Context, staffID, branchID string) (*dto.TransactionResponse, error) {
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
	if s.PaymentMethod == "" || s.AccountID == "" {
		return nil, domain.ErrMissingPayment
	}
	if s.Cart.CustomerID != "" {
		// Cliente opcional: si la referencia ya no existe se degrada a venta
		// de mostrador en lugar de bloquear el cobro.
		customer, err := uc.customerRepo.GetByID(s.Cart.CustomerID)
		if err == nil && customer == nil {
			uc.log.Warn().Str("customer_id", s.Cart.CustomerID).Msg("cliente inexistente al liquidar; venta de mostrador")
			s.Cart.CustomerID = ""
		}
	}

	grandTotal := pos.GrandTotal(s.Cart)
	foreignAmount, foreignCode, exchangeRate, err := pos.ForeignFields(s.Cart)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Transaction{
		ID:              uuid.New().String(),
		Amount:          grandTotal,
		Currency:        s.Cart.Currency,
		ForeignAmount:   foreignAmount,
		ForeignCurrency: foreignCode,
		ExchangeRate:    exchangeRate,
		PaymentMethod:   s.PaymentMethod,
		Type:            entity.TransactionTypeSale,
		Timestamp:       now,
		BranchID:        s.BranchID,
		AccountID:       s.AccountID,
		CustomerID:      s.Cart.CustomerID,
		StaffID:         s.StaffID,
	}

	err = uc.txRunner.RunSettlement(ctx, func(
		txRepo repository.TransactionRepository,
		itemRepo repository.InventoryItemRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := txRepo.Create(sale); err != nil {
			return err
		}
		for _, line := range s.Cart.Lines {
			if err := uc.applyLine(itemRepo, productRepo, s.BranchID, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sesión liquidada: carrito nuevo conservando moneda y modo divisa.
	s.Status = entity.CheckoutSettled
	s.Cart = entity.Cart{Currency: s.Cart.Currency, Foreign: s.Cart.Foreign}
	s.PaymentMethod = ""
	s.AccountID = ""
	if err := uc.sessions.Save(ctx, s); err != nil {
		uc.log.Error().Err(err).Str("sale_id", sale.ID).Msg("venta liquidada pero no se pudo cerrar la sesión")
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("staff_id", staffID).
		Str("amount", sale.Amount.StringFixed(2)).
		Msg("venta liquidada")
	return ToTransactionResponse(sale), nil
}

// applyLine aplica los efectos de inventario de una línea dentro de la
// transacción: consumo por receta si el producto es compuesto y, además,
// descuento de DirectStock acotado en 0 si lo tiene (ambas rutas pueden
// dispararse para el mismo producto; quirk heredado del POS original).
func (uc *UseCase) applyLine(
	itemRepo repository.InventoryItemRepository,
	productRepo repository.ProductRepository,
	branchID string,
	line entity.CartLine,
) error {
	product, err := productRepo.GetByID(line.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		uc.log.Warn().Str("product_id", line.ProductID).Msg("producto inexistente al liquidar; línea omitida")
		return nil
	}
	qty := decimal.NewFromInt(line.Quantity)

	if product.IsComposite() {
		for _, c := range product.Components {
			item, err := itemRepo.GetForUpdate(c.InventoryItemID)
			if err != nil {
				return err
			}
			if item == nil {
				uc.log.Warn().
					Str("product_id", product.ID).
					Str("inventory_item_id", c.InventoryItemID).
					Msg("ítem de receta inexistente al liquidar; componente omitido")
				continue
			}
			if !visibleInBranch(item.BranchID, branchID) {
				uc.log.Warn().
					Str("inventory_item_id", item.ID).
					Str("branch_id", branchID).
					Msg("ítem de receta fuera del alcance de la sucursal; componente omitido")
				continue
			}
			needed := c.QuantityPerUnit.Mul(qty)
			if !uc.policy.AllowOversell && item.QuantityOnHand.LessThan(needed) {
				return domain.ErrInsufficientStock
			}
			if err := itemRepo.AdjustQuantity(item.ID, needed.Neg()); err != nil {
				return err
			}
		}
	}

	if product.DirectStock > 0 {
		if !uc.policy.AllowOversell && !product.IsComposite() && product.DirectStock < line.Quantity {
			return domain.ErrInsufficientStock
		}
		remaining := product.DirectStock - line.Quantity
		if remaining < 0 {
			remaining = 0 // el stock directo se acota en 0, nunca negativo
		}
		if err := productRepo.UpdateDirectStock(product.ID, remaining); err != nil {
			return err
		}
	}
	return nil
}

// visibleInBranch regla del filtro de sucursal: registro global o de la misma sucursal.
func visibleInBranch(itemBranch, branch string) bool {
	return itemBranch == "" || itemBranch == branch
}

// GetSale devuelve una venta liquidada por ID.
func (uc *UseCase) GetSale(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	sale, err := uc.txReadRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return ToTransactionResponse(sale), nil
}

// ToTransactionResponse mapea la entidad a su DTO.
func ToTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:              t.ID,
		Amount:          t.Amount,
		Currency:        t.Currency,
		ForeignAmount:   t.ForeignAmount,
		ForeignCurrency: t.ForeignCurrency,
		ExchangeRate:    t.ExchangeRate,
		PaymentMethod:   t.PaymentMethod,
		Type:            t.Type,
		Timestamp:       t.Timestamp,
		BranchID:        t.BranchID,
		AccountID:       t.AccountID,
		CustomerID:      t.CustomerID,
		StaffID:         t.StaffID,
	}
}
