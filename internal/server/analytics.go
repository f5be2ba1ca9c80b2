package server

import (
	"net/http"

	analyticsdomain "github.com/fakunet/backoffice/internal/analytics/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) GetAnalyticsConfig(c *gin.Context) {
	cfg, err := s.anaCfgSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cfg})
}

func (s *Server) SaveAnalyticsConfig(c *gin.Context) {
	var req analyticsdomain.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.anaCfgSvc.Save(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) GetAnalyticsSummary(c *gin.Context) {
	summary, err := s.anaSumSvc.Summary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
