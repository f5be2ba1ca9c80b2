package server

import (
	"net/http"
	"strings"

	productdomain "github.com/fakunet/backoffice/internal/product/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListProducts(c *gin.Context) {
	items, err := s.productSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) GetProduct(c *gin.Context) {
	code := strings.TrimSpace(c.Param("id"))
	item, err := s.productSvc.Get(c.Request.Context(), code)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req productdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	created, err := s.productSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func (s *Server) UpdateProduct(c *gin.Context) {
	code := strings.TrimSpace(c.Param("id"))
	var req productdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	updated, err := s.productSvc.Update(c.Request.Context(), code, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}
