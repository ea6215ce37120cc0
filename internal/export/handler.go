package export

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kollabee/seller-portal/seller-portal-backend/internal/seller"
)

type Handler struct {
	sellers seller.Repository
	rows    Repository
}

func NewHandler(sellers seller.Repository, rows Repository) *Handler {
	return &Handler{sellers: sellers, rows: rows}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	e := rg.Group("/export")
	{
		e.GET("/profile.pdf", h.ProfilePDF)
		e.GET("/directory.xlsx", h.DirectoryXLSX)
	}
}

func (h *Handler) ProfilePDF(c *gin.Context) {
	raw, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	userID := raw.(uuid.UUID)

	row, err := h.sellers.GetByUserID(c.Request.Context(), userID)
	if errors.Is(err, seller.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := ProfilePDF(row)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="seller-profile.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) DirectoryXLSX(c *gin.Context) {
	approvedOnly := c.DefaultQuery("approved", "true") == "true"
	rows, err := h.rows.DirectoryRows(c.Request.Context(), approvedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := DirectoryXLSX(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="seller-directory.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
