package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.AdminPass)) == 1
	if !userOK || !passOK {
		AbortWithError(c, ErrInvalidCredentials)
		return
	}

	s.sessions.Issue(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) Logout(c *gin.Context) {
	s.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
