package notifications

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kollabee/seller-portal/seller-portal-backend/internal/notifications/websocket"
)

type Handler struct {
	service *Service
	archive *Archive
	ws      *websocket.Manager
}

// NewHandler creates the notifications handler. archive and ws may be nil.
func NewHandler(service *Service, archive *Archive, ws *websocket.Manager) *Handler {
	return &Handler{service: service, archive: archive, ws: ws}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	n := rg.Group("/notifications")
	{
		n.GET("", h.List)
		n.GET("/unread-count", h.UnreadCount)
		n.POST("/:id/read", h.MarkRead)
		n.GET("/history", h.History)
		n.GET("/ws", h.Connect)
	}
}

func (h *Handler) userID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.service.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	count, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) MarkRead(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.MarkRead(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked read"})
}

func (h *Handler) History(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	if h.archive == nil {
		c.JSON(http.StatusOK, []ArchivedNotification{})
		return
	}
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	items, err := h.archive.History(c.Request.Context(), userID.String(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Connect(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	if h.ws == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "websocket disabled"})
		return
	}
	if _, err := h.ws.HandleConnection(c.Writer, c.Request, userID.String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
