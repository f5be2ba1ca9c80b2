package server

import (
	"net/http"
	"strings"

	slidedomain "github.com/fakunet/backoffice/internal/slide/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListSlides(c *gin.Context) {
	items, err := s.slideSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) CreateSlide(c *gin.Context) {
	var req slidedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	created, err := s.slideSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": created})
}

func (s *Server) DeleteSlide(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.slideSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
