package entity

import "github.com/shopspring/decimal"

// Estados de la sesión de checkout.
const (
	CheckoutCartOpen = "CART_OPEN"
	CheckoutReview   = "CHECKOUT_REVIEW"
	CheckoutSettled  = "SETTLED"
	CheckoutAborted  = "ABORTED"
)

// CartLine una línea del carrito. UnitPrice copia el precio del producto al
// agregarlo y puede sobreescribirse; PerUnitDiscount es descuento por unidad.
type CartLine struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	PerUnitDiscount decimal.Decimal `json:"per_unit_discount"`
}

// ForeignMode configuración de divisa extranjera del carrito.
type ForeignMode struct {
	Active          bool            `json:"active"`
	ForeignCurrency string          `json:"foreign_currency"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
}

// Cart es efímero: nace vacío al abrir sesión, lo muta el agregador y se
// descarta tras liquidar. Los totales nunca se guardan, se derivan.
type Cart struct {
	Lines         []CartLine      `json:"lines"`
	OrderDiscount decimal.Decimal `json:"order_discount"`
	CustomerID    string          `json:"customer_id,omitempty"`
	Currency      string          `json:"currency"`
	Foreign       ForeignMode     `json:"foreign"`
}

// CheckoutSession sesión de venta de un operador: carrito + máquina de estados
// CART_OPEN → CHECKOUT_REVIEW → {SETTLED | ABORTED}.
type CheckoutSession struct {
	StaffID       string `json:"staff_id"`
	BranchID      string `json:"branch_id"`
	Status        string `json:"status"`
	Cart          Cart   `json:"cart"`
	PaymentMethod string `json:"payment_method,omitempty"`
	AccountID     string `json:"account_id,omitempty"`
}
