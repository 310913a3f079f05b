package httpserver

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-demo/internal/domain"
)

type createSessionRequest struct {
	ClientID string `json:"clientId" binding:"omitempty,max=128"`
}

type sessionResponse struct {
	Token     string      `json:"token"`
	SessionID string      `json:"sessionId"`
	ClientID  string      `json:"clientId"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

func (h *handlers) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "invalid session payload")
		return
	}
	sess, err := h.deps.Sessions.Issue(c.Request.Context(), req.ClientID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{
		Token:     sess.Token,
		SessionID: sess.ID,
		ClientID:  sess.ClientID,
		Role:      sess.Role(),
		ExpiresAt: sess.ExpiresAt,
	})
}
