package server

import (
	"io"
	"net/http"

	mediadomain "github.com/fakunet/backoffice/internal/media/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListMedia(c *gin.Context) {
	files, err := s.mediaSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

func (s *Server) UploadMedia(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		AbortWithError(c, mediadomain.ErrNoFile)
		return
	}

	file, err := header.Open()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.mediaSvc.Upload(c.Request.Context(), mediadomain.UploadRequest{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"filename": result.Filename,
		"url":      result.URL,
	})
}

type deleteMediaRequest struct {
	Filename string `json:"filename"`
}

func (s *Server) DeleteMedia(c *gin.Context) {
	var req deleteMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Filename == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.mediaSvc.Delete(c.Request.Context(), req.Filename); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
