package api

import (
	"net/http"

	"guesthouse-service/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listRooms(c *gin.Context) {
	rooms, err := h.rooms.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *Handler) getRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, err := h.rooms.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *Handler) createRoom(c *gin.Context) {
	var req service.RoomRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.rooms.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *Handler) updateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.RoomRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.rooms.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *Handler) deleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.rooms.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
