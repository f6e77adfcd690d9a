package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"skillswap-be/internal/store"
)

type AuthHandler struct {
	Store     *store.Store
	JWTSecret string
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	u, err := h.Store.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed create user", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	ok, found, err := h.Store.VerifyPassword(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "wrong email/password"})
		return
	}

	u, _, err := h.Store.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
		},
	}

	// Nothing in the API checks this token; identity travels as plain
	// emails. It is minted for clients that want to hold one anyway.
	if h.JWTSecret != "" {
		claims := jwt.MapClaims{
			"user_id": u.ID,
			"email":   u.Email,
			"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
			"iat":     time.Now().Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenStr, err := token.SignedString([]byte(h.JWTSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed sign token", "error": err.Error()})
			return
		}
		resp["access_token"] = tokenStr
	}

	c.JSON(http.StatusOK, resp)
}

type verifyPasswordReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) VerifyPassword(c *gin.Context) {
	var req verifyPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	ok, found, err := h.Store.VerifyPassword(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed", "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"password_correct": ok})
}

// RegisterForm backs the register page's form post. Conflicts re-render
// the page with an error instead of a JSON body.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	if name == "" || email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"error": "All fields are required"})
		return
	}

	if _, err := h.Store.CreateUser(name, email, password); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.HTML(http.StatusOK, "register.html", gin.H{"error": "Email already registered"})
			return
		}
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{"error": "Registration failed"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/profile-page?email="+url.QueryEscape(email))
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	ok, found, err := h.Store.VerifyPassword(email, password)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "Login failed"})
		return
	}
	if !found {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": "User not found"})
		return
	}
	if !ok {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": "Invalid password"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/profile-page?email="+url.QueryEscape(email))
}
