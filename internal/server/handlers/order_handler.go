package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

// PlaceEggOrder handles POST /orders.
func (h *RecordHandler) PlaceEggOrder(c *gin.Context) {
	var payload models.EggOrderPayload
	if !h.bind(c, &payload) {
		return
	}

	order, err := h.svc.PlaceEggOrder(c.Request.Context(), payload)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetEggOrder handles GET /orders/:id.
func (h *RecordHandler) GetEggOrder(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	order, err := h.svc.GetEggOrder(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListEggOrders handles GET /orders.
func (h *RecordHandler) ListEggOrders(c *gin.Context) {
	orders, err := h.svc.GetAllOrders(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
