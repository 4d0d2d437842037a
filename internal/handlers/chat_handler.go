package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internhub_backend/internal/middleware"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"
)

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{BaseHandler: base, chatService: chatService}
}

func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	chat := rg.Group("/chat")
	{
		chat.POST("/messages", h.SendMessage)
		chat.GET("/conversations", h.ListConversations)
		chat.GET("/conversations/:partnerId", h.GetConversation)
		chat.GET("/unread", h.UnreadCount)
	}
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.chatService.SendMessage(userID, middleware.GetRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ChatHandler) GetConversation(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	limit, offset := ParsePagination(c)
	resp, err := h.chatService.GetConversation(userID, c.Param("partnerId"), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) ListConversations(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	resp, err := h.chatService.ListConversations(userID, middleware.IsPremium(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) UnreadCount(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	count, err := h.chatService.UnreadCount(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}
