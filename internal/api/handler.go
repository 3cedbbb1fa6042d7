package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"guesthouse-service/internal/service"
	"guesthouse-service/internal/store"
	"guesthouse-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler contains HTTP handlers
type Handler struct {
	inventory  *service.InventoryService
	rooms      *service.RoomService
	clients    *service.ClientService
	categories *service.CategoryService
	bookings   *service.BookingService
	store      store.Store
}

// NewHandler creates a new HTTP handler
func NewHandler(
	inventory *service.InventoryService,
	rooms *service.RoomService,
	clients *service.ClientService,
	categories *service.CategoryService,
	bookings *service.BookingService,
	st store.Store,
) *Handler {
	return &Handler{
		inventory:  inventory,
		rooms:      rooms,
		clients:    clients,
		categories: categories,
		bookings:   bookings,
		store:      st,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/inventory", h.listInventoryItems)
		api.GET("/inventory/:id", h.getInventoryItem)
		api.POST("/inventory", h.createInventoryItem)
		api.PUT("/inventory/:id", h.updateInventoryItem)
		api.DELETE("/inventory/:id", h.deleteInventoryItem)

		api.GET("/rooms", h.listRooms)
		api.GET("/rooms/:id", h.getRoom)
		api.POST("/rooms", h.createRoom)
		api.PUT("/rooms/:id", h.updateRoom)
		api.DELETE("/rooms/:id", h.deleteRoom)

		api.GET("/clients", h.listClients)
		api.GET("/clients/:id", h.getClient)
		api.POST("/clients", h.createClient)
		api.PUT("/clients/:id", h.updateClient)
		api.DELETE("/clients/:id", h.deleteClient)

		api.GET("/categories", h.listCategories)
		api.GET("/categories/:id", h.getCategory)
		api.POST("/categories", h.createCategory)
		api.PUT("/categories/:id", h.updateCategory)
		api.DELETE("/categories/:id", h.deleteCategory)

		// The admin frontend reads bookings through the joined room/client
		// view; the raw records stay reachable for diagnostics.
		api.GET("/bookings", h.listBookings)
		api.GET("/bookings/rooms", h.listBookingDetails)
		api.GET("/bookings/rooms/:id", h.getBooking)
		api.POST("/bookings/rooms", h.createBooking)
		api.PUT("/bookings/rooms/:id", h.updateBooking)
		api.DELETE("/bookings/rooms/:id", h.deleteBooking)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck reports whether the store is reachable
func (h *Handler) readinessCheck(c *gin.Context) {
	if err := h.store.Healthcheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// parseID extracts the :id path parameter, answering 400 itself on failure
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, answering 400 itself on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// respondError maps service errors to status codes. Storage faults are
// logged with their cause but surfaced as a generic message.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}

	var storageErr *service.StorageError
	if errors.As(err, &storageErr) {
		util.GetLogger().Error("Storage fault", zap.String("op", storageErr.Op), zap.Error(storageErr.Err))
	} else {
		util.GetLogger().Error("Unexpected handler error", zap.Error(err))
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
