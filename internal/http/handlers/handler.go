package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tokrecharge_api/internal/logger"
	"tokrecharge_api/internal/service"
	"tokrecharge_api/internal/storage"
	"tokrecharge_api/internal/ws"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store storage.Store
	Auth  *service.AuthService
	Hub   *ws.Hub
}

func NewHandler(store storage.Store, auth *service.AuthService, hub *ws.Hub) *Handler {
	return &Handler{
		Store: store,
		Auth:  auth,
		Hub:   hub,
	}
}

// storeError maps storage sentinel errors onto HTTP statuses. resource names
// the entity for the 404/409 message.
func storeError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, storage.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": resource + " already exists"})
	default:
		logger.Error("storage error", "resource", resource, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID parses the :id route parameter. Writes a 400 and returns false on
// garbage input.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// deleted writes the shared response for delete endpoints: 404 when the
// record never existed, a confirmation message otherwise.
func deleted(c *gin.Context, ok bool, resource string) {
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": resource + " deleted successfully"})
}
