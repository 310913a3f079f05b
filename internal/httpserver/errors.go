package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-demo/internal/chat"
	"storefront-demo/internal/domain"
	"storefront-demo/internal/imagesearch"
)

// writeError maps service errors onto status codes. Unknown errors are logged and hidden.
func (h *handlers) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, imagesearch.ErrEmpty):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, chat.ErrBusy):
		status = http.StatusConflict
	case errors.Is(err, imagesearch.ErrNotImage):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, imagesearch.ErrTooLarge):
		status = http.StatusRequestEntityTooLarge
	}
	if status == http.StatusInternalServerError {
		h.logger.Printf("http: %s %s error=%v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
