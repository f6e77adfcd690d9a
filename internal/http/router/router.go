package router

import (
	"github.com/gin-gonic/gin"

	"skillswap-be/internal/config"
	"skillswap-be/internal/http/handlers"
	"skillswap-be/internal/store"
)

// New wires every route onto a fresh engine. Template and static paths
// come from config so tests can run without the web/ tree.
func New(st *store.Store, cfg config.Config) *gin.Engine {
	r := gin.Default()

	if cfg.TemplateGlob != "" {
		r.LoadHTMLGlob(cfg.TemplateGlob)
	}
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	authH := &handlers.AuthHandler{Store: st, JWTSecret: cfg.JWTSecret}
	userH := &handlers.UserHandler{Store: st}
	skillH := &handlers.SkillHandler{Store: st}
	msgH := &handlers.MessageHandler{Store: st}
	videoH := &handlers.VideoHandler{Store: st}
	commH := &handlers.CommunityHandler{Store: st}
	pageH := &handlers.PageHandler{}

	// Auth
	r.POST("/register", authH.Register)
	r.POST("/api/login", authH.Login)
	r.POST("/verify-password", authH.VerifyPassword)

	// Users and skills
	r.GET("/users", userH.List)
	r.GET("/users/:email", userH.GetByEmail)
	r.GET("/users/:email/profile", userH.Profile)
	r.POST("/users/:email/update", userH.Update)
	r.POST("/users/:email/skills/offer", skillH.AddOffer)
	r.POST("/users/:email/skills/request", skillH.AddRequest)
	r.GET("/users/:email/matches", skillH.Matches)
	r.GET("/skills/offers", skillH.ListOffers)
	r.GET("/skills/requests", skillH.ListRequests)

	// Messaging
	r.POST("/messages/send", msgH.Send)
	r.GET("/messages/:email", msgH.Inbox)
	r.GET("/messages/conversation/:user1/:user2", msgH.Conversation)
	r.POST("/messages/mark-read/:user/:other", msgH.MarkRead)
	r.GET("/messages/unread/:email", msgH.UnreadCount)

	// Video sessions
	r.POST("/video/create", videoH.Create)
	r.GET("/video/sessions/:email", videoH.Sessions)
	r.POST("/video/update-status/:roomID", videoH.UpdateStatus)
	r.GET("/video/room/:roomID", videoH.Room)
	r.POST("/video/decline/:roomID", videoH.Decline)
	r.GET("/video/check-incoming/:email", videoH.CheckIncoming)

	// Feed, groups, bookings
	r.GET("/api/posts", commH.ListPosts)
	r.POST("/create-post", commH.CreatePost)
	r.GET("/api/groups", commH.ListGroups)
	r.GET("/api/groups/:id/messages", commH.GroupMessages)
	r.POST("/api/groups/:id/send", commH.SendGroupMessage)
	r.GET("/api/bookings", commH.ListBookings)
	r.POST("/api/bookings/request", commH.RequestBooking)
	r.POST("/api/bookings/:id/update", commH.UpdateBooking)

	// Pages and form actions
	if cfg.TemplateGlob != "" {
		r.GET("/", pageH.Home)
		r.GET("/login-page", pageH.Login)
		r.GET("/register-page", pageH.Register)
		r.GET("/dashboard-page", pageH.Dashboard)
		r.GET("/profile-page", pageH.Profile)
		r.GET("/profile/:email", pageH.PublicProfile)
		r.GET("/matches-page", pageH.Matches)
		r.GET("/messages-page", pageH.Messages)
		r.GET("/feed-page", pageH.Feed)
		r.GET("/groups-page", pageH.Groups)
		r.POST("/register-user", authH.RegisterForm)
		r.POST("/login-user", authH.LoginForm)
		r.POST("/add-skill-frontend", skillH.AddSkillForm)
	}

	return r
}
