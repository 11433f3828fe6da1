package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/cart"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// CartHandler maneja el carrito del operador autenticado. Todas las rutas
// operan sobre la sesión del StaffID del token; no hay ID de carrito en la URL.
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) respond(c *fiber.Ctx, out *dto.CartResponse, err error) error {
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrCurrencyConfig):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrCheckoutState):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHECKOUT_STATE", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// View godoc
// @Summary      Ver el carrito con totales derivados
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.View(c.Context(), GetStaffID(c), GetBranchID(c))
	return h.respond(c, out, err)
}

// AddLine godoc
// @Summary      Agregar una unidad de un producto al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddLineRequest  true  "Producto"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/lines [post]
func (h *CartHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.AddLine(c.Context(), GetStaffID(c), GetBranchID(c), in.ProductID)
	return h.respond(c, out, err)
}

// SetQuantity godoc
// @Summary      Ajustar cantidad de una línea (delta con signo; 0 la elimina)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetQuantityRequest  true  "Ajuste"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/lines/quantity [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetQuantity(c.Context(), GetStaffID(c), GetBranchID(c), in.ProductID, in.Delta)
	return h.respond(c, out, err)
}

// SetPrice godoc
// @Summary      Fijar precio unitario de una línea (acota en >= 0)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetAmountRequest  true  "Precio"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/lines/price [put]
func (h *CartHandler) SetPrice(c *fiber.Ctx) error {
	var in dto.SetAmountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetPrice(c.Context(), GetStaffID(c), GetBranchID(c), in.ProductID, in.Value)
	return h.respond(c, out, err)
}

// SetDiscount godoc
// @Summary      Fijar descuento por unidad de una línea (sin tope por precio)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetAmountRequest  true  "Descuento"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/lines/discount [put]
func (h *CartHandler) SetDiscount(c *fiber.Ctx) error {
	var in dto.SetAmountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetDiscount(c.Context(), GetStaffID(c), GetBranchID(c), in.ProductID, in.Value)
	return h.respond(c, out, err)
}

// SetOrderDiscount godoc
// @Summary      Fijar descuento global de la orden
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetOrderDiscountRequest  true  "Descuento"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/discount [put]
func (h *CartHandler) SetOrderDiscount(c *fiber.Ctx) error {
	var in dto.SetOrderDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetOrderDiscount(c.Context(), GetStaffID(c), GetBranchID(c), in.Value)
	return h.respond(c, out, err)
}

// SetCustomer godoc
// @Summary      Asociar cliente al carrito (vacío = venta de mostrador)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetCustomerRequest  true  "Cliente"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/customer [put]
func (h *CartHandler) SetCustomer(c *fiber.Ctx) error {
	var in dto.SetCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetCustomer(c.Context(), GetStaffID(c), GetBranchID(c), in.CustomerID)
	return h.respond(c, out, err)
}

// SetForeignMode godoc
// @Summary      Configurar modo divisa del carrito
// @Description  Activar exige código ISO 4217 válido y tasa > 0.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetForeignModeRequest  true  "Modo divisa"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/foreign [put]
func (h *CartHandler) SetForeignMode(c *fiber.Ctx) error {
	var in dto.SetForeignModeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetForeignMode(c.Context(), GetStaffID(c), GetBranchID(c), in)
	return h.respond(c, out, err)
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.Clear(c.Context(), GetStaffID(c), GetBranchID(c))
	return h.respond(c, out, err)
}
