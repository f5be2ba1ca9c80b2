package server

import (
	"net/http"
	"strings"

	categorydomain "github.com/fakunet/backoffice/internal/category/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListCategories(c *gin.Context) {
	items, err := s.catSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) CreateCategory(c *gin.Context) {
	var req categorydomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	created, err := s.catSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": created})
}

func (s *Server) UpdateCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var req categorydomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	updated, err := s.catSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

func (s *Server) DeleteCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.catSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
