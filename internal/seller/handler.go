package seller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kollabee/seller-portal/seller-portal-backend/internal/onboarding"
)

type Handler struct {
	service Service
	files   onboarding.FileStore
}

func NewHandler(service Service, files onboarding.FileStore) *Handler {
	return &Handler{service: service, files: files}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	s := rg.Group("/seller")
	{
		// The bussinessInfo spelling is load-bearing; clients depend on it.
		s.GET("/profile/bussinessInfo", h.GetBusinessInfo)
		s.PUT("/profile/bussinessInfo", h.UpdateBusinessInfo)
		s.GET("/profile/goalsMetric", h.GetGoalsMetrics)
		s.PUT("/profile/goalsMetric", h.UpdateGoalsMetrics)
		s.GET("/profile/business-overview", h.GetBusinessOverview)
		s.PUT("/profile/business-overview", h.UpdateBusinessOverview)
		s.GET("/profile/capabilities-operations", h.GetCapabilitiesOperations)
		s.PUT("/profile/capabilities-operations", h.UpdateCapabilitiesOperations)
		s.GET("/profile/compliance-credentials", h.GetComplianceCredentials)
		s.PUT("/profile/compliance-credentials", h.UpdateComplianceCredentials)
		s.GET("/profile/brand-presence", h.GetBrandPresence)
		s.PUT("/profile/brand-presence", h.UpdateBrandPresence)
		s.GET("/profile/summary", h.GetSummary)
		s.GET("/profile/pending-steps", h.GetPendingSteps)
		s.DELETE("/profile", h.DeleteProfile)
		s.POST("/approval", h.RequestApproval)

		s.POST("/upload/product-image", h.uploadWith(h.files.UploadProductImage))
		s.POST("/upload/profile-image", h.uploadWith(h.files.UploadProfileImage))
		s.POST("/upload/pdf", h.uploadWith(h.files.UploadPDF))
	}
}

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
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

func (h *Handler) GetBusinessInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	data, err := h.service.GetBusinessInfo(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *Handler) UpdateBusinessInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var payload onboarding.BusinessInfo
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateBusinessInfo(c.Request.Context(), userID, &payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "business info updated"})
}

func (h *Handler) GetGoalsMetrics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	data, err := h.service.GetGoalsMetrics(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *Handler) UpdateGoalsMetrics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var payload onboarding.GoalsMetrics
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateGoalsMetrics(c.Request.Context(), userID, &payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goals metrics updated"})
}

func (h *Handler) GetBusinessOverview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	data, err := h.service.GetBusinessOverview(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *Handler) UpdateBusinessOverview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var payload onboarding.BusinessOverview
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateBusinessOverview(c.Request.Context(), userID, &payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "business overview updated"})
}

func (h *Handler) GetCapabilitiesOperations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	data, err := h.service.GetCapabilitiesOperations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *Handler) UpdateCapabilitiesOperations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var payload onboarding.CapabilitiesOperations
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateCapabilitiesOperations(c.Request.Context(), userID, &payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "capabilities operations updated"})
}

func (h *Handler) GetComplianceCredentials(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	data, err := h.service.GetComplianceCredentials(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *Handler) UpdateComplianceCredentials(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var payload onboarding.ComplianceCredentials
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateComplianceCredentials(c.Request.Context(), userID, &payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "compliance credentials updated"})
}

func (h *Handler) GetBrandPresence(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	data, err := h.service.GetBrandPresence(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *Handler) UpdateBrandPresence(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var payload onboarding.BrandPresence
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateBrandPresence(c.Request.Context(), userID, &payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "brand presence updated"})
}

func (h *Handler) GetSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	summary, err := h.service.GetProfileSummary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) GetPendingSteps(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	steps, err := h.service.PendingStepNames(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pendingSteps": steps})
}

func (h *Handler) DeleteProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteProfile(c.Request.Context(), userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile deleted"})
}

func (h *Handler) RequestApproval(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.service.RequestApproval(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "approval requested"})
}

type uploadFunc func(ctx context.Context, file onboarding.File) (*onboarding.StoredFile, error)

func (h *Handler) uploadWith(upload uploadFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUserID(c); !ok {
			return
		}
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()

		stored, err := upload(c.Request.Context(), onboarding.File{
			Name:        fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Content:     f,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, stored)
	}
}
