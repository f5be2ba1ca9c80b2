package server

import (
	"net/http"
	"strings"

	branddomain "github.com/fakunet/backoffice/internal/brand/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListBrands(c *gin.Context) {
	items, err := s.brandSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) CreateBrand(c *gin.Context) {
	var req branddomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	created, err := s.brandSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": created})
}

func (s *Server) UpdateBrand(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var req branddomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	updated, err := s.brandSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

func (s *Server) DeleteBrand(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.brandSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
