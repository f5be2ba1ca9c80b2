package server

import (
	"net/http"
	"strings"

	messagedomain "github.com/fakunet/backoffice/internal/message/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListMessages(c *gin.Context) {
	items, err := s.messageSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) CreateMessage(c *gin.Context) {
	var req messagedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	created, err := s.messageSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": created})
}

type updateMessageRequest struct {
	Read *bool `json:"read"`
}

// UpdateMessage handles the read-flag transition. Reading is one-way; a
// request that does not set read to true is a no-op response of the current
// record.
func (s *Server) UpdateMessage(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var req updateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	updated, err := s.messageSvc.MarkRead(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

func (s *Server) DeleteMessage(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.messageSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
