package server

import "github.com/gin-gonic/gin"

func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.sessions.Validate(c) {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		c.Next()
	}
}
