package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

// SetEggPrice handles POST /prices.
func (h *RecordHandler) SetEggPrice(c *gin.Context) {
	var payload models.EggPricePayload
	if !h.bind(c, &payload) {
		return
	}

	price, err := h.svc.SetEggPrice(c.Request.Context(), payload)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, price)
}

// GetEggPrice handles GET /prices/:id.
func (h *RecordHandler) GetEggPrice(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	price, err := h.svc.GetEggPrice(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, price)
}

// ListEggPrices handles GET /prices, filtered by ?egg_type= when given.
func (h *RecordHandler) ListEggPrices(c *gin.Context) {
	eggType, filtered, ok := h.eggTypeQuery(c)
	if !ok {
		return
	}

	var (
		list []models.EggPrice
		err  error
	)
	if filtered {
		list, err = h.svc.GetEggPricesByEggType(c.Request.Context(), eggType)
	} else {
		list, err = h.svc.GetAllEggPrices(c.Request.Context())
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateEggPrice handles PUT /prices/:id.
func (h *RecordHandler) UpdateEggPrice(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var payload models.EggPricePayload
	if !h.bind(c, &payload) {
		return
	}

	price, err := h.svc.UpdateEggPrice(c.Request.Context(), id, payload)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, price)
}

// DeleteEggPrice handles DELETE /prices/:id.
func (h *RecordHandler) DeleteEggPrice(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	price, err := h.svc.DeleteEggPrice(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, price)
}
