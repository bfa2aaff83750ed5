package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
)

// InventoryHandler mutaciones de cantidad de artículos y lectura del libro.
type InventoryHandler struct {
	adjust *inventory.AdjustStockUseCase
	ledger *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjust *inventory.AdjustStockUseCase, ledger *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{adjust: adjust, ledger: ledger}
}

// AdjustStock godoc
// @Summary      Ajustar cantidad de un artículo
// @Description  Aplica quantity_change (positivo entrada, negativo salida) y registra el asiento ADD/REMOVE.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id               path    string                  true   "ID del artículo"
// @Param        Idempotency-Key  header  string                  false  "Clave de idempotencia"
// @Param        body             body    dto.AdjustStockRequest  true   "Variación"
// @Success      200  {object}  dto.AdjustStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/adjust-stock [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	res, err := h.adjust.AdjustStock(c.UserContext(), inventory.AdjustStockInput{
		ActorID:        GetUserID(c),
		ItemID:         c.Params("id"),
		QuantityChange: in.QuantityChange,
		Notes:          in.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toAdjustStockResponse(res))
}

// CorrectStock godoc
// @Summary      Corregir cantidad de un artículo
// @Description  Fija la cantidad a new_quantity registrando un asiento ADJUST.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del artículo"
// @Param        body  body  dto.CorrectStockRequest  true  "Cantidad corregida"
// @Success      200  {object}  dto.AdjustStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/correct-stock [post]
func (h *InventoryHandler) CorrectStock(c *fiber.Ctx) error {
	var in dto.CorrectStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	res, err := h.adjust.CorrectStock(c.UserContext(), inventory.CorrectStockInput{
		ActorID:     GetUserID(c),
		ItemID:      c.Params("id"),
		NewQuantity: *in.NewQuantity,
		Notes:       in.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toAdjustStockResponse(res))
}

// ListChanges godoc
// @Summary      Listar asientos del libro
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id      query  string  false  "Artículo"
// @Param        change_type  query  string  false  "ADD, REMOVE o ADJUST"
// @Param        ordering     query  string  false  "timestamp o -timestamp"  default(-timestamp)
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.InventoryChangeListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory-changes [get]
func (h *InventoryHandler) ListChanges(c *fiber.Ctx) error {
	limit, offset := pageFromQuery(c)
	q := dto.ChangeListQuery{
		PageRequest: dto.PageRequest{Limit: limit, Offset: offset},
		ItemID:      c.Query("item_id"),
		ChangeType:  c.Query("change_type"),
		Ordering:    c.Query("ordering"),
	}
	if err := validateStruct(q); err != nil {
		return writeError(c, err)
	}
	list, err := h.ledger.ListChanges(c.UserContext(), GetUserID(c), repository.ChangeFilter{
		ItemID:     q.ItemID,
		ChangeType: q.ChangeType,
		Ascending:  q.Ordering == "timestamp",
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.InventoryChangeResponse, 0, len(list))
	for _, ch := range list {
		items = append(items, toChangeResponse(ch))
	}
	return c.JSON(dto.InventoryChangeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	})
}

func toAdjustStockResponse(res *inventory.AdjustStockResult) dto.AdjustStockResponse {
	return dto.AdjustStockResponse{
		PreviousQuantity: res.Change.PreviousQuantity,
		NewQuantity:      res.Change.NewQuantity,
		ChangeRecordID:   res.Change.ID,
		Change:           toChangeResponse(res.Change),
		Item:             *usecase.ToItemResponse(res.Item),
	}
}
