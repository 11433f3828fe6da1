package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/backup"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
)

// BackupHandler respaldo fuera de banda (solo admin).
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Sync godoc
// @Summary      Empujar un snapshot al respaldo remoto
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/backup/sync [post]
func (h *BackupHandler) Sync(c *fiber.Ctx) error {
	if err := h.uc.Sync(c.Context()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKUP_PUSH", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": "synced", "last_synced": h.uc.LastSynced()})
}

// Restore godoc
// @Summary      Traer el último snapshot remoto
// @Description  Devuelve el snapshot; aplicarlo a la BD es una operación administrativa aparte.
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  backup.Snapshot
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/backup/restore [get]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	snapshot, err := h.uc.Restore(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKUP_PULL", Message: err.Error()})
	}
	return c.JSON(snapshot)
}

// Status godoc
// @Summary      Marcador de última sincronización exitosa
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/backup/status [get]
func (h *BackupHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"last_synced": h.uc.LastSynced()})
}
