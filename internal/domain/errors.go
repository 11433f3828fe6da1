package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrMissingPayment    = errors.New("falta método de pago o cuenta de depósito")
	ErrCurrencyConfig    = errors.New("tasa de cambio inválida para modo divisa")
	ErrCheckoutState     = errors.New("transición de checkout inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
