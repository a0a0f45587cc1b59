package api

import (
	"mime/multipart"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/gin-gonic/gin"
)

// formImage opens the "image" part of a multipart request.
func formImage(c *gin.Context) (multipart.File, bool) {
	header, err := c.FormFile("image")
	if err != nil {
		respondError(c, domain.NewValidationError("image", "no file was submitted"))
		return nil, false
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return file, true
}
