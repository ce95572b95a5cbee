package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amr-khaled0p/lazez2/internal/application/service"
	"github.com/amr-khaled0p/lazez2/internal/presentation/http/dto/response"
	"github.com/amr-khaled0p/lazez2/pkg/pagination"
)

// SaleHandler serves the sales log and finance views
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List returns a page of the sales log, newest first
func (h *SaleHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Recent returns the most recent sales (?n=, default 5)
func (h *SaleHandler) Recent(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("n", "5"))
	sales, err := h.saleService.RecentSales(c.Request.Context(), n)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recent sales retrieved successfully", gin.H{"sales": sales})
}

// Summary returns the finance dashboard aggregates
func (h *SaleHandler) Summary(c *gin.Context) {
	summary, err := h.saleService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Finance summary retrieved successfully", summary)
}
