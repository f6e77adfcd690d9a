package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"skillswap-be/internal/store"
)

type UserHandler struct {
	Store *store.Store
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Store.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	profile, found, err := h.Store.GetUserProfile(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             profile.User.ID,
		"name":           profile.User.Name,
		"email":          profile.User.Email,
		"about":          profile.User.About,
		"linkedin_url":   profile.User.LinkedinURL,
		"github_url":     profile.User.GithubURL,
		"twitter_url":    profile.User.TwitterURL,
		"skills_offered": profile.SkillsOffered,
		"skills_needed":  profile.SkillsNeeded,
	})
}

// Profile returns the compact shape the profile page consumes.
func (h *UserHandler) Profile(c *gin.Context) {
	profile, found, err := h.Store.GetUserProfile(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	offered := make([]gin.H, 0, len(profile.SkillsOffered))
	for _, skill := range profile.SkillsOffered {
		offered = append(offered, gin.H{"skill_name": skill.SkillName, "level": skill.SkillLevel})
	}
	needed := make([]gin.H, 0, len(profile.SkillsNeeded))
	for _, skill := range profile.SkillsNeeded {
		needed = append(needed, gin.H{"skill_name": skill.SkillName, "description": skill.Description})
	}

	c.JSON(http.StatusOK, gin.H{
		"email":          profile.User.Email,
		"name":           profile.User.Name,
		"about":          profile.User.About,
		"linkedin_url":   profile.User.LinkedinURL,
		"github_url":     profile.User.GithubURL,
		"twitter_url":    profile.User.TwitterURL,
		"skills_offered": offered,
		"skills_needed":  needed,
	})
}

// Update takes the profile edit form and bounces back to the profile page.
func (h *UserHandler) Update(c *gin.Context) {
	email := c.Param("email")
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}

	upd := store.ProfileUpdate{
		Name:        name,
		About:       c.PostForm("about"),
		LinkedinURL: c.PostForm("linkedin"),
		GithubURL:   c.PostForm("github"),
		TwitterURL:  c.PostForm("twitter"),
	}

	_, found, err := h.Store.UpdateProfile(email, upd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/profile-page?email="+url.QueryEscape(email))
}
