package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillswap-be/internal/store"
)

type MessageHandler struct {
	Store *store.Store
}

type sendMessageReq struct {
	SenderEmail   string `json:"sender_email" binding:"required,email"`
	ReceiverEmail string `json:"receiver_email" binding:"required,email"`
	Content       string `json:"content" binding:"required"`
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	msg, found, err := h.Store.SendMessage(req.SenderEmail, req.ReceiverEmail, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully", "message_id": msg.ID})
}

func (h *MessageHandler) Inbox(c *gin.Context) {
	msgs, err := h.Store.ListUserMessages(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *MessageHandler) Conversation(c *gin.Context) {
	msgs, err := h.Store.GetConversation(c.Param("user1"), c.Param("user2"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// MarkRead flips everything the other party sent to :user to read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	updated, err := h.Store.MarkMessagesRead(c.Param("user"), c.Param("other"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated_count": updated})
}

func (h *MessageHandler) UnreadCount(c *gin.Context) {
	count, err := h.Store.UnreadCount(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}
