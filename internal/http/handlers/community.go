package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillswap-be/internal/store"
)

// CommunityHandler covers the feed, the fixed group rooms, and bookings.
type CommunityHandler struct {
	Store *store.Store
}

func (h *CommunityHandler) ListPosts(c *gin.Context) {
	posts, err := h.Store.ListPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *CommunityHandler) CreatePost(c *gin.Context) {
	email := c.PostForm("email")
	content := c.PostForm("content")
	category := c.PostForm("category")
	if email == "" || content == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email, content and category are required"})
		return
	}

	if _, err := h.Store.CreatePost(email, content, category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}

	c.Redirect(http.StatusSeeOther, "/feed-page?email="+url.QueryEscape(email))
}

func (h *CommunityHandler) ListGroups(c *gin.Context) {
	groups, err := h.Store.ListGroups()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *CommunityHandler) GroupMessages(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid group id"})
		return
	}

	msgs, err := h.Store.ListGroupMessages(uint(groupID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *CommunityHandler) SendGroupMessage(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid group id"})
		return
	}

	email := c.PostForm("email")
	content := c.PostForm("content")
	if email == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and content are required"})
		return
	}

	if _, err := h.Store.AddGroupMessage(uint(groupID), email, content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *CommunityHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
		return
	}

	bookings, err := h.Store.ListBookings(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *CommunityHandler) RequestBooking(c *gin.Context) {
	learner := c.PostForm("learner_email")
	teacher := c.PostForm("teacher_email")
	skill := c.PostForm("skill_name")
	date := c.PostForm("date")
	timeSlot := c.PostForm("time")
	if learner == "" || teacher == "" || skill == "" || date == "" || timeSlot == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "all booking fields are required"})
		return
	}

	if _, err := h.Store.CreateBooking(learner, teacher, skill, date, timeSlot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}

	c.Redirect(http.StatusSeeOther,
		"/profile-page?email="+url.QueryEscape(learner)+
			"&view_email="+url.QueryEscape(teacher)+"&booked=true")
}

func (h *CommunityHandler) UpdateBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid booking id"})
		return
	}

	status := c.PostForm("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
		return
	}

	_, found, err := h.Store.UpdateBookingStatus(uint(id), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
