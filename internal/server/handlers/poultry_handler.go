package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/organiks/internal/domain/models"
)

// AddPoultryRecord handles POST /poultry.
func (h *RecordHandler) AddPoultryRecord(c *gin.Context) {
	var payload models.PoultryRecordPayload
	if !h.bind(c, &payload) {
		return
	}

	record, err := h.svc.AddPoultryRecord(c.Request.Context(), payload)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GetPoultryRecord handles GET /poultry/:id.
func (h *RecordHandler) GetPoultryRecord(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	record, err := h.svc.GetPoultryRecord(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListPoultryRecords handles GET /poultry.
func (h *RecordHandler) ListPoultryRecords(c *gin.Context) {
	list, err := h.svc.GetAllPoultryRecords(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdatePoultryRecord handles PUT /poultry/:id.
func (h *RecordHandler) UpdatePoultryRecord(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var payload models.PoultryRecordPayload
	if !h.bind(c, &payload) {
		return
	}

	record, err := h.svc.UpdatePoultryRecord(c.Request.Context(), id, payload)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeletePoultryRecord handles DELETE /poultry/:id.
func (h *RecordHandler) DeletePoultryRecord(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	record, err := h.svc.DeletePoultryRecord(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
