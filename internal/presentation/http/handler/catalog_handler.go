package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/amr-khaled0p/lazez2/internal/application/service"
	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/presentation/http/dto/request"
	"github.com/amr-khaled0p/lazez2/internal/presentation/http/dto/response"
)

// CatalogHandler handles menu catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List returns the menu, optionally filtered by ?category= and ?search=
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.catalogService.ListItems(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved successfully", gin.H{"items": items})
}

// Get returns one menu item
func (h *CatalogHandler) Get(c *gin.Context) {
	item, err := h.catalogService.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

func modifiersFromPayload(payload []request.ModifierPayload) []entity.Modifier {
	if payload == nil {
		return nil
	}
	modifiers := make([]entity.Modifier, 0, len(payload))
	for _, m := range payload {
		modifiers = append(modifiers, entity.Modifier{
			ID:    m.ID,
			Name:  m.Name,
			Price: m.Price,
			Stock: m.Stock,
		})
	}
	return modifiers
}

func exclusionsFromPayload(payload []request.ExclusionPayload) []entity.Exclusion {
	if payload == nil {
		return nil
	}
	exclusions := make([]entity.Exclusion, 0, len(payload))
	for _, e := range payload {
		exclusions = append(exclusions, entity.Exclusion{ID: e.ID, Name: e.Name})
	}
	return exclusions
}

// Create adds a menu item
func (h *CatalogHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Image:        req.Image,
		Stock:        req.Stock,
		Modifiers:    modifiersFromPayload(req.Modifiers),
		Exclusions:   exclusionsFromPayload(req.Exclusions),
		IsBestSeller: req.IsBestSeller,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// Update modifies a menu item
func (h *CatalogHandler) Update(c *gin.Context) {
	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.UpdateItem(c.Request.Context(), &service.UpdateItemInput{
		ItemID:       c.Param("id"),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Image:        req.Image,
		Stock:        req.Stock,
		Modifiers:    modifiersFromPayload(req.Modifiers),
		Exclusions:   exclusionsFromPayload(req.Exclusions),
		IsBestSeller: req.IsBestSeller,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// Delete removes a menu item
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item deleted successfully", nil)
}

// AdjustStock applies a signed delta to an item's stock
func (h *CatalogHandler) AdjustStock(c *gin.Context) {
	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	stock, err := h.catalogService.AdjustStock(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", gin.H{"stock": stock})
}

// AdjustModifierStock applies a signed delta to one modifier's stock
func (h *CatalogHandler) AdjustModifierStock(c *gin.Context) {
	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	stock, err := h.catalogService.AdjustModifierStock(c.Request.Context(), c.Param("id"), c.Param("modifier_id"), req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Modifier stock adjusted successfully", gin.H{"stock": stock})
}
