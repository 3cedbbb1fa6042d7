package api

import (
	"net/http"

	"guesthouse-service/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listInventoryItems(c *gin.Context) {
	items, err := h.inventory.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.inventory.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) createInventoryItem(c *gin.Context) {
	var req service.InventoryItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventory.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) updateInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.InventoryItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.inventory.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) deleteInventoryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.inventory.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
