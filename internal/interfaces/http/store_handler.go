package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
)

// StoreHandler maneja tiendas y su stock por artículo (protegido).
type StoreHandler struct {
	uc    *usecase.StoreUseCase
	stock *inventory.StoreStockUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase, stock *inventory.StoreStockUseCase) *StoreHandler {
	return &StoreHandler{uc: uc, stock: stock}
}

// Create godoc
// @Summary      Crear tienda
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "Datos de la tienda"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tienda por ID
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tiendas
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.StoreListResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	limit, offset := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), GetUserID(c), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListInventory godoc
// @Summary      Stock de una tienda
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {array}   dto.StoreInventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/inventory [get]
func (h *StoreHandler) ListInventory(c *fiber.Ctx) error {
	list, err := h.stock.ListStoreStock(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.StoreInventoryResponse, 0, len(list))
	for _, si := range list {
		out = append(out, toStoreInventoryResponse(si))
	}
	return c.JSON(out)
}

// SetInventory godoc
// @Summary      Crear o actualizar stock de un artículo en la tienda
// @Description  Campos omitidos conservan su valor (o el por defecto 0/10/20/50 si el registro es nuevo). Evalúa alertas.
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id       path  string                    true  "ID de la tienda"
// @Param        item_id  path  string                    true  "ID del artículo"
// @Param        body     body  dto.SetStoreStockRequest  true  "Cantidad y umbrales"
// @Success      200  {object}  dto.StoreStockWriteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/inventory/{item_id} [put]
func (h *StoreHandler) SetInventory(c *fiber.Ctx) error {
	var in dto.SetStoreStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	res, err := h.stock.SetStoreStock(c.UserContext(), inventory.SetStoreStockInput{
		ActorID:           GetUserID(c),
		StoreID:           c.Params("id"),
		ItemID:            c.Params("item_id"),
		Quantity:          in.Quantity,
		LowStockThreshold: in.LowStockThreshold,
		ReorderPoint:      in.ReorderPoint,
		ReorderQuantity:   in.ReorderQuantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStoreStockWriteResponse(res))
}

// AdjustInventory godoc
// @Summary      Ajustar stock de un artículo en la tienda
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "ID de la tienda"
// @Param        item_id  path  string                       true  "ID del artículo"
// @Param        body     body  dto.AdjustStoreStockRequest  true  "Variación"
// @Success      200  {object}  dto.StoreStockWriteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/inventory/{item_id}/adjust [post]
func (h *StoreHandler) AdjustInventory(c *fiber.Ctx) error {
	var in dto.AdjustStoreStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	res, err := h.stock.AdjustStoreStock(c.UserContext(), inventory.AdjustStoreStockInput{
		ActorID:        GetUserID(c),
		StoreID:        c.Params("id"),
		ItemID:         c.Params("item_id"),
		QuantityChange: in.QuantityChange,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStoreStockWriteResponse(res))
}

func toStoreStockWriteResponse(res *inventory.StoreStockResult) dto.StoreStockWriteResponse {
	return dto.StoreStockWriteResponse{
		Stock:         toStoreInventoryResponse(res.Stock),
		AlertsCreated: toAlertResponses(res.AlertsCreated),
	}
}
