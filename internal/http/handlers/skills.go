package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"skillswap-be/internal/store"
)

type SkillHandler struct {
	Store *store.Store
}

type skillOfferReq struct {
	SkillName  string `json:"skill_name" binding:"required"`
	SkillLevel string `json:"skill_level"`
	Category   string `json:"category"`
}

func (h *SkillHandler) AddOffer(c *gin.Context) {
	var req skillOfferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}
	if req.SkillLevel == "" {
		req.SkillLevel = "intermediate"
	}

	offer, found, err := h.Store.AddSkillOffer(c.Param("email"), req.SkillName, req.SkillLevel, req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Skill added successfully", "skill": offer})
}

type skillRequestReq struct {
	SkillName   string `json:"skill_name" binding:"required"`
	Description string `json:"description"`
}

func (h *SkillHandler) AddRequest(c *gin.Context) {
	var req skillRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	sr, found, err := h.Store.AddSkillRequest(c.Param("email"), req.SkillName, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Skill request added successfully", "request": sr})
}

func (h *SkillHandler) ListOffers(c *gin.Context) {
	offers, err := h.Store.ListSkillOffers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *SkillHandler) ListRequests(c *gin.Context) {
	reqs, err := h.Store.ListSkillRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// AddSkillForm handles the profile page's add-skill form, which covers both
// offers and requests behind a skill_type radio.
func (h *SkillHandler) AddSkillForm(c *gin.Context) {
	email := c.PostForm("email")
	skillType := c.PostForm("skill_type")
	skillName := c.PostForm("skill_name")
	if email == "" || skillName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and skill_name are required"})
		return
	}

	var found bool
	var err error
	if skillType == "offer" {
		level := c.DefaultPostForm("skill_level", "intermediate")
		_, found, err = h.Store.AddSkillOffer(email, skillName, level, c.PostForm("category"))
	} else {
		_, found, err = h.Store.AddSkillRequest(email, skillName, c.PostForm("description"))
	}
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

func (h *SkillHandler) Matches(c *gin.Context) {
	email := c.Param("email")
	matches, found, err := h.Store.FindMatches(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	u, _, err := h.Store.GetUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_email":    email,
		"user_name":     u.Name,
		"matches_found": len(matches),
		"matches":       matches,
	})
}
