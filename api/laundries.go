package api

import (
	"net/http"
	"strconv"

	"github.com/evseevdm/laundrobook/internal/service/laundries"
	"github.com/gin-gonic/gin"
)

type LaundryHandler struct {
	service laundries.LaundryUseCase
}

func NewLaundryHandler(service laundries.LaundryUseCase) *LaundryHandler {
	return &LaundryHandler{service: service}
}

// Register mounts public reads and owner-scoped management. The auth gate is
// applied per-route because listing and single reads stay public.
func (h *LaundryHandler) Register(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.GET("/owner/mine", authRequired, h.mine)
	router.POST("", authRequired, h.create)
	router.PUT("/:id", authRequired, h.update)
	router.DELETE("/:id", authRequired, h.remove)
}

func (h *LaundryHandler) list(c *gin.Context) {
	laundries, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, laundries)
}

func (h *LaundryHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	laundry, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, laundry)
}

func (h *LaundryHandler) mine(c *gin.Context) {
	laundries, err := h.service.ListMine(c.Request.Context(), actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, laundries)
}

func (h *LaundryHandler) create(c *gin.Context) {
	var req laundries.CreateLaundryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	laundry, err := h.service.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, laundry)
}

func (h *LaundryHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req laundries.UpdateLaundryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	laundry, err := h.service.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, laundry)
}

func (h *LaundryHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "laundry deleted"})
}
