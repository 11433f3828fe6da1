package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/scope"
)

// ScopeHandler vista consolidada filtrada por sucursal (protegido).
type ScopeHandler struct {
	uc *scope.UseCase
}

// NewScopeHandler construye el handler.
func NewScopeHandler(uc *scope.UseCase) *ScopeHandler {
	return &ScopeHandler{uc: uc}
}

// View godoc
// @Summary      Vista de sucursal: inventario y transacciones visibles
// @Description  scope "ALL" muestra todas las sucursales; otro valor muestra esa sucursal más los registros globales.
// @Tags         scope
// @Security     Bearer
// @Produce      json
// @Param        scope   query  string  false  "Sucursal o ALL"
// @Param        limit   query  int     false  "Límite de transacciones"   default(50)
// @Param        offset  query  int     false  "Offset de transacciones"  default(0)
// @Success      200     {object}  dto.ScopedViewResponse
// @Router       /api/scope/view [get]
func (h *ScopeHandler) View(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.View(scopeOf(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
