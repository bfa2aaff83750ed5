package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
)

// ReportHandler reportes de stock por tienda.
type ReportHandler struct {
	uc *inventory.StockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *inventory.StockReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Stock godoc
// @Summary      Reporte de stock
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        store_id  query  string  false  "Limitar a una tienda"
// @Success      200  {object}  dto.StockReportDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	report, err := h.uc.GenerateStockReport(c.UserContext(), GetUserID(c), c.Query("store_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockReportDTO(report))
}

// StockPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        store_id  query  string  false  "Limitar a una tienda"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/stock/pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	out, err := h.uc.GenerateStockReportPDF(c.UserContext(), GetUserID(c), c.Query("store_id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte-stock-%s.pdf"`, c.Query("store_id", "todas")))
	return c.Send(out)
}
