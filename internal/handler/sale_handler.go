package handler

import (
	"net/http"

	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/transaction のAPI
type SaleHandler struct {
	uc *usecase.SaleUsecase
}

// DI
func NewSaleHandler(uc *usecase.SaleUsecase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

func (h *SaleHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/transaction", h.record)
}

type saleItemRequest struct {
	ID int64 `json:"id"`
	// nameはクライアント互換のため受けるが、保存はDBの商品名スナップショット
	Name string `json:"name"`
	Qty  int64  `json:"qty"`
}

type recordSaleRequest struct {
	Items []saleItemRequest `json:"items"`
	Total int64             `json:"total"`
}

type recordSaleResponse struct {
	Success bool   `json:"success"`
	TrxID   string `json:"trx_id"`
}

func (h *SaleHandler) record(c echo.Context) error {
	var req recordSaleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.SaleItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.SaleItemInput{
			ProductID: it.ID,
			Quantity:  it.Qty,
		})
	}

	out, err := h.uc.RecordSale(c.Request().Context(), usecase.RecordSaleInput{
		Items: items,
		Total: req.Total,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, recordSaleResponse{Success: true, TrxID: out.TrxID})
}
