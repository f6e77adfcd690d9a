package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillswap-be/internal/models"
	"skillswap-be/internal/store"
)

type VideoHandler struct {
	Store *store.Store
}

type createVideoReq struct {
	User1Email string `json:"user1_email" binding:"required,email"`
	User2Email string `json:"user2_email" binding:"required,email"`
}

func (h *VideoHandler) Create(c *gin.Context) {
	var req createVideoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	sess, err := h.Store.CreateVideoSession(req.User1Email, req.User2Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed create session", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sess)
}

func (h *VideoHandler) Sessions(c *gin.Context) {
	sessions, err := h.Store.ListVideoSessions(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *VideoHandler) UpdateStatus(c *gin.Context) {
	status := c.DefaultQuery("status", models.VideoStatusActive)

	_, found, err := h.Store.UpdateVideoSessionStatus(c.Param("roomID"), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session status updated to " + status})
}

func (h *VideoHandler) Room(c *gin.Context) {
	sess, found, err := h.Store.GetVideoSession(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room_id":     sess.RoomID,
		"user1_email": sess.User1Email,
		"user2_email": sess.User2Email,
		"meeting_url": sess.MeetingURL,
		"status":      sess.Status,
		"created_at":  sess.CreatedAt,
	})
}

func (h *VideoHandler) Decline(c *gin.Context) {
	_, found, err := h.Store.DeclineVideoSession(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Call declined"})
}

// CheckIncoming is the invitee's ring poll.
func (h *VideoHandler) CheckIncoming(c *gin.Context) {
	sess, found, err := h.Store.CheckIncomingCall(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"has_call": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"has_call": true,
		"room_id":  sess.RoomID,
		"caller":   sess.User1Email,
	})
}
