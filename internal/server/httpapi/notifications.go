package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/caseintake/internal/common"
	"github.com/dmitrijs2005/caseintake/internal/server/models"
)

type notificationRequest struct {
	CustomerData models.CaseRecord      `json:"customerData"`
	ImageCount   int                    `json:"imageCount"`
	CaseID       string                 `json:"caseId"`
	Images       []models.EmbeddedImage `json:"images"`
}

// sendNotification assembles a submitted case into an email and dispatches
// it. With ?test=true it skips the payload entirely and sends the canned
// configuration-check message instead.
func (s *HTTPServer) sendNotification(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("test") == "true" {
		id, err := s.notifications.DispatchTest(ctx)
		if err != nil {
			s.logger.Error(ctx, "Test notification failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "test email failed", "details": err.Error()})
			return
		}
		s.logger.Info(ctx, "Test notification sent", "messageId", id)
		c.JSON(http.StatusOK, gin.H{"success": true, "messageId": id, "test": true})
		return
	}

	var req notificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payload, err := s.submissions.Assemble(req.CustomerData, req.CaseID, req.Images)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.notifications.Dispatch(ctx, payload)
	if err != nil {
		s.logger.Error(ctx, "Notification dispatch failed", "caseId", req.CaseID, "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, common.ErrDelivery) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": "failed to send notification email", "details": err.Error()})
		return
	}

	s.logger.Info(ctx, "Notification sent", "caseId", req.CaseID, "messageId", id)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"messageId": id,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"recipient": strings.Join(s.notifications.Recipients(), ", "),
	})
}
