package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// AlertHandler listado y resolución de alertas.
type AlertHandler struct {
	uc *inventory.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *inventory.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        store_id    query  string  false  "Tienda"
// @Param        item_id     query  string  false  "Artículo"
// @Param        alert_type  query  string  false  "LOW_STOCK, REORDER o EXPIRY"
// @Param        resolved    query  bool    false  "Estado"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AlertListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	limit, offset := pageFromQuery(c)
	resolved, err := optionalBoolQuery(c, "resolved")
	if err != nil {
		return writeError(c, err)
	}
	q := dto.AlertListQuery{
		PageRequest: dto.PageRequest{Limit: limit, Offset: offset},
		StoreID:     c.Query("store_id"),
		ItemID:      c.Query("item_id"),
		AlertType:   c.Query("alert_type"),
		Resolved:    resolved,
	}
	if err := validateStruct(q); err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListAlerts(c.UserContext(), GetUserID(c), repository.AlertFilter{
		StoreID:   q.StoreID,
		ItemID:    q.ItemID,
		AlertType: q.AlertType,
		Resolved:  q.Resolved,
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AlertListResponse{
		Items: toAlertResponses(list),
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	})
}

// Resolve godoc
// @Summary      Resolver alerta
// @Description  Idempotente: una alerta ya resuelta conserva su resolved_at original.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.ResolveAlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/resolve [post]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	alert, err := h.uc.ResolveAlert(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ResolveAlertResponse{
		Resolved:   alert.IsResolved,
		ResolvedAt: alert.ResolvedAt,
		Alert:      toAlertResponse(alert),
	})
}
