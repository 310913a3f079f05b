package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-demo/internal/domain"
	chatsvc "storefront-demo/internal/service/chat"
)

type submitChatRequest struct {
	Text string `json:"text" binding:"required"`
}

type chatHistoryResponse struct {
	State    string               `json:"state"`
	Messages []domain.ChatMessage `json:"messages"`
}

func (h *handlers) chatHistory(c *gin.Context) {
	sess := sessionFrom(c)
	c.JSON(http.StatusOK, chatHistoryResponse{
		State:    string(sess.Chat.State()),
		Messages: h.deps.ChatSvc.History(c.Request.Context(), sess),
	})
}

func (h *handlers) submitChat(c *gin.Context) {
	var req submitChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "text required")
		return
	}
	ex, err := h.deps.ChatSvc.Submit(c.Request.Context(), sessionFrom(c), req.Text)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (h *handlers) chatSettings(c *gin.Context) {
	s, err := h.deps.ChatSvc.Settings(c.Request.Context(), sessionFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *handlers) saveChatSettings(c *gin.Context) {
	var req chatsvc.SettingsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid settings payload")
		return
	}
	s, err := h.deps.ChatSvc.SaveSettings(c.Request.Context(), sessionFrom(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
