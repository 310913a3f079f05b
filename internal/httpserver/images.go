package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-demo/internal/imagesearch"
)

type imageSearchRequest struct {
	Query string `json:"query"`
	Count int    `json:"count" binding:"omitempty,min=1,max=30"`
}

type uploadResponse struct {
	Image string `json:"image"`
}

func (h *handlers) searchImages(c *gin.Context) {
	var req imageSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid image search payload")
		return
	}
	c.JSON(http.StatusOK, h.deps.ImageSvc.Search(c.Request.Context(), req.Query, req.Count))
}

// uploadImage turns a multipart "file" field into a data URI usable as a product image.
func (h *handlers) uploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, imagesearch.MaxUploadBytes+1<<20)
	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.writeError(c, err)
		return
	}
	defer f.Close()

	uri, err := imagesearch.EncodeDataURI(f)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, uploadResponse{Image: uri})
}
