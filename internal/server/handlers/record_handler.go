package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/domain/models"
	"github.com/mamadbah2/organiks/internal/service/records"
)

// RecordHandler exposes the record service over HTTP.
type RecordHandler struct {
	svc    *records.Service
	logger *zap.Logger
}

// NewRecordHandler constructs the HTTP handler adapter.
func NewRecordHandler(svc *records.Service, logger *zap.Logger) *RecordHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordHandler{svc: svc, logger: logger}
}

// pathID parses the :id segment. It writes a 400 response and returns false
// when the segment is not an unsigned integer.
func (h *RecordHandler) pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// bind decodes the JSON body into payload, answering 400 on failure.
func (h *RecordHandler) bind(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		h.logger.Warn("invalid request payload", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// eggTypeQuery reads the optional egg_type query parameter.
func (h *RecordHandler) eggTypeQuery(c *gin.Context) (models.EggType, bool, bool) {
	raw, present := c.GetQuery("egg_type")
	if !present {
		return "", false, true
	}
	eggType, err := models.ParseEggType(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", true, false
	}
	return eggType, true, true
}

func (h *RecordHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.logger.Error("record operation failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
