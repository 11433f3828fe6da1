package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/checkout"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// CheckoutHandler maneja la revisión y liquidación de la venta (protegido).
type CheckoutHandler struct {
	uc *checkout.UseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.UseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

func checkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingPayment):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_PAYMENT", Message: err.Error()})
	case errors.Is(err, domain.ErrCheckoutState):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHECKOUT_STATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrCurrencyConfig):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CURRENCY_CONFIG", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Review godoc
// @Summary      Abrir la revisión del carrito (CHECKOUT_REVIEW)
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/checkout/review [post]
func (h *CheckoutHandler) Review(c *fiber.Ctx) error {
	out, err := h.uc.OpenReview(c.Context(), GetStaffID(c), GetBranchID(c))
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(out)
}

// SetPayment godoc
// @Summary      Fijar método de pago y cuenta de depósito
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetPaymentRequest  true  "Pago"
// @Success      200   {object}  dto.CartResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout/payment [put]
func (h *CheckoutHandler) SetPayment(c *fiber.Ctx) error {
	var in dto.SetPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PaymentMethod == "" || in.AccountID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payment_method y account_id son requeridos"})
	}
	out, err := h.uc.SetPayment(c.Context(), GetStaffID(c), GetBranchID(c), in)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Liquidar la venta
// @Description  Registra la transacción y aplica los deltas de inventario en una sola transacción de BD.
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.TransactionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/checkout/commit [post]
func (h *CheckoutHandler) Commit(c *fiber.Ctx) error {
	out, err := h.uc.SubmitSale(c.Context(), GetStaffID(c), GetBranchID(c))
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Abort godoc
// @Summary      Abortar la revisión conservando el carrito
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkout/abort [post]
func (h *CheckoutHandler) Abort(c *fiber.Ctx) error {
	out, err := h.uc.Abort(c.Context(), GetStaffID(c), GetBranchID(c))
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Ticket PDF del carrito en revisión
// @Tags         checkout
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkout/receipt [get]
func (h *CheckoutHandler) Receipt(c *fiber.Ctx) error {
	pdf, err := h.uc.Receipt(c.Context(), GetStaffID(c), GetBranchID(c))
	if err != nil {
		return checkoutError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ticket.pdf"`)
	return c.Send(pdf)
}

// GetSale godoc
// @Summary      Obtener una venta liquidada por ID
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *CheckoutHandler) GetSale(c *fiber.Ctx) error {
	out, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(out)
}
