package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the server-side pages. The templates are thin; all
// data loading happens through the JSON API the pages poll.
type PageHandler struct{}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *PageHandler) Register(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"email": c.Query("email")})
}

// Profile serves both the owner's view and the public view of a profile.
// view_email picks whose profile is shown; the edit controls only render
// for the owner.
func (h *PageHandler) Profile(c *gin.Context) {
	email := c.Query("email")
	target := c.Query("view_email")
	if target == "" {
		target = email
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"email":      email,
		"view_email": target,
		"is_owner":   email == target,
	})
}

// PublicProfile is the path-addressed variant of the profile page.
func (h *PageHandler) PublicProfile(c *gin.Context) {
	target := c.Param("email")
	email := c.Query("email")

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"email":      email,
		"view_email": target,
		"is_owner":   email == target,
	})
}

func (h *PageHandler) Matches(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.Redirect(http.StatusFound, "/login-page")
		return
	}
	c.HTML(http.StatusOK, "matches.html", gin.H{"email": email})
}

func (h *PageHandler) Messages(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.Redirect(http.StatusFound, "/login-page")
		return
	}
	c.HTML(http.StatusOK, "messages.html", gin.H{"email": email})
}

func (h *PageHandler) Feed(c *gin.Context) {
	c.HTML(http.StatusOK, "feed.html", gin.H{"email": c.Query("email")})
}

func (h *PageHandler) Groups(c *gin.Context) {
	c.HTML(http.StatusOK, "groups.html", gin.H{"email": c.Query("email")})
}
