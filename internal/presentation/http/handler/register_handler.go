package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amr-khaled0p/lazez2/internal/application/service"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
	"github.com/amr-khaled0p/lazez2/internal/presentation/http/dto/request"
	"github.com/amr-khaled0p/lazez2/internal/presentation/http/dto/response"
)

// RegisterHandler handles the cashier register HTTP requests
type RegisterHandler struct {
	registerService *service.RegisterService
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(registerService *service.RegisterService) *RegisterHandler {
	return &RegisterHandler{registerService: registerService}
}

// SelectItem stages a menu item for configuration
func (h *RegisterHandler) SelectItem(c *gin.Context) {
	var req request.SelectItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	selection, err := h.registerService.SelectItem(c.Request.Context(), req.ItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item selected", selection)
}

// ToggleModifier toggles a paid add-on on the staged item
func (h *RegisterHandler) ToggleModifier(c *gin.Context) {
	var req request.ToggleModifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	selection, err := h.registerService.ToggleModifier(c.Request.Context(), req.ModifierID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Modifier toggled", selection)
}

// ToggleExclusion toggles a removal label on the staged item
func (h *RegisterHandler) ToggleExclusion(c *gin.Context) {
	var req request.ToggleExclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	selection, err := h.registerService.ToggleExclusion(c.Request.Context(), req.ExclusionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Exclusion toggled", selection)
}

// SetQuantity sets the staged quantity
func (h *RegisterHandler) SetQuantity(c *gin.Context) {
	var req request.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	selection, err := h.registerService.SetQuantity(c.Request.Context(), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", selection)
}

// GetSelection returns the staged configuration
func (h *RegisterHandler) GetSelection(c *gin.Context) {
	selection := h.registerService.GetSelection(c.Request.Context())
	response.OK(c, "Selection retrieved", selection)
}

// ClearSelection discards the staged configuration
func (h *RegisterHandler) ClearSelection(c *gin.Context) {
	h.registerService.ClearSelection(c.Request.Context())
	response.OK(c, "Selection cleared", nil)
}

// CommitLine prices the staged item and appends it to the receipt
func (h *RegisterHandler) CommitLine(c *gin.Context) {
	receipt, err := h.registerService.CommitLineItem(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line item committed", receipt)
}

// RemoveLine drops one receipt line and restores its stock
func (h *RegisterHandler) RemoveLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid line index")
		return
	}

	receipt, err := h.registerService.RemoveLineItem(c.Request.Context(), index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line item removed", receipt)
}

// GetReceipt returns the current receipt
func (h *RegisterHandler) GetReceipt(c *gin.Context) {
	receipt := h.registerService.GetReceipt(c.Request.Context())
	response.OK(c, "Receipt retrieved", receipt)
}

// ResetReceipt voids the transaction and restores all stock
func (h *RegisterHandler) ResetReceipt(c *gin.Context) {
	if err := h.registerService.ResetReceipt(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt reset", nil)
}

// Finalize commits the receipt as a sale
func (h *RegisterHandler) Finalize(c *gin.Context) {
	var req request.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, ok := enum.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		response.BadRequest(c, "Unknown payment method")
		return
	}

	result, err := h.registerService.Finalize(c.Request.Context(), method, req.Tendered)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale finalized", result)
}
