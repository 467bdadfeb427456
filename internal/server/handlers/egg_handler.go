package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

// AddEggRecord handles POST /eggs.
func (h *RecordHandler) AddEggRecord(c *gin.Context) {
	var payload models.EggRecordPayload
	if !h.bind(c, &payload) {
		return
	}

	record, err := h.svc.AddEggRecord(c.Request.Context(), payload)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GetEggRecord handles GET /eggs/:id.
func (h *RecordHandler) GetEggRecord(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	record, err := h.svc.GetEggRecord(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListEggRecords handles GET /eggs, filtered by ?egg_type= when given.
func (h *RecordHandler) ListEggRecords(c *gin.Context) {
	eggType, filtered, ok := h.eggTypeQuery(c)
	if !ok {
		return
	}

	var (
		list []models.EggRecord
		err  error
	)
	if filtered {
		list, err = h.svc.SearchEggRecordsByEggType(c.Request.Context(), eggType)
	} else {
		list, err = h.svc.GetAllEggRecords(c.Request.Context())
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateEggRecord handles PUT /eggs/:id.
func (h *RecordHandler) UpdateEggRecord(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var payload models.EggRecordPayload
	if !h.bind(c, &payload) {
		return
	}

	record, err := h.svc.UpdateEggRecord(c.Request.Context(), id, payload)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteEggRecord handles DELETE /eggs/:id.
func (h *RecordHandler) DeleteEggRecord(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	record, err := h.svc.DeleteEggRecord(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
