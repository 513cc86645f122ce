package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/caseintake/internal/common"
	"github.com/dmitrijs2005/caseintake/internal/server/models"
)

type storeImagesRequest struct {
	CaseID string                 `json:"caseId"`
	Images []models.EmbeddedImage `json:"images"`
}

type imageURL struct {
	DownloadURL string `json:"downloadUrl"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
}

// storeImages persists a case's images and answers with per-image
// download URLs in upload order.
func (s *HTTPServer) storeImages(c *gin.Context) {
	var req storeImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.CaseID == "" || len(req.Images) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required data"})
		return
	}

	keys, err := s.images.StoreCase(c.Request.Context(), req.CaseID, req.Images)
	if err != nil {
		s.logger.Error(c.Request.Context(), "Storing images failed", "caseId", req.CaseID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store images"})
		return
	}

	base := s.downloadBaseURL(c)
	urls := make([]imageURL, len(keys))
	for i, key := range keys {
		urls[i] = imageURL{
			DownloadURL: fmt.Sprintf("%s/api/v1/images/%s", base, key),
			Name:        req.Images[i].Name,
			Size:        req.Images[i].Size,
		}
	}

	s.logger.Info(c.Request.Context(), "Images stored", "caseId", req.CaseID, "count", len(keys))
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"imageUrls": urls,
		"message":   fmt.Sprintf("%d images stored successfully", len(keys)),
	})
}

// downloadImage serves one stored image as raw binary with download headers.
func (s *HTTPServer) downloadImage(c *gin.Context) {
	key := c.Param("imageID")

	img, err := s.images.Download(c.Request.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		default:
			s.logger.Error(c.Request.Context(), "Downloading image failed", "key", key, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to download image"})
		}
		return
	}

	name := img.Name
	if name == "" {
		name = key
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("Content-Length", strconv.Itoa(len(img.Data)))
	c.Data(http.StatusOK, img.ContentType, img.Data)
}
