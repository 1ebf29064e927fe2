package routes

import (
	"github.com/Krasmol/platform-for-freelancers/db"
	"github.com/Krasmol/platform-for-freelancers/handlers"
	"github.com/Krasmol/platform-for-freelancers/middleware"
	"github.com/Krasmol/platform-for-freelancers/repositories"
	"github.com/Krasmol/platform-for-freelancers/services"
	"github.com/Krasmol/platform-for-freelancers/websocket"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, hub *websocket.Hub) {
	repos := repositories.New(db.DB)
	svc := services.New(repos, hub)
	h := handlers.New(svc, hub)

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	r.GET("/projects", middleware.OptionalAuth(), h.Project.List)
	r.GET("/projects/:id", h.Project.Get)
	r.GET("/users/:user_id/reviews", h.Review.ListForFreelancer)
	r.GET("/profiles/:user_id", h.Profile.Get)

	r.GET("/ws", h.WS.Serve)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		profile := auth.Group("/profile")
		{
			profile.POST("", h.Profile.Create)
			profile.GET("", h.Profile.My)
			profile.PUT("", h.Profile.Update)
		}

		projects := auth.Group("/projects")
		{
			projects.POST("", h.Project.Create)
			projects.GET("/mine", h.Project.Mine)
			projects.POST("/:id/responses", h.Project.Respond)
			projects.GET("/:id/responses", h.Project.ListResponses)
			projects.POST("/:id/complete", h.Project.Complete)
			projects.POST("/:id/cancel", h.Project.Cancel)
			projects.POST("/:id/reviews", h.Review.Create)
			projects.POST("/:id/favorite", h.Project.Favorite)
			projects.DELETE("/:id/favorite", h.Project.Unfavorite)
		}
		auth.GET("/favorites", h.Project.Favorites)

		responses := auth.Group("/responses")
		{
			responses.POST("/:id/accept", h.Project.AcceptResponse)
			responses.POST("/:id/reject", h.Project.RejectResponse)
		}

		messages := auth.Group("/messages")
		{
			messages.POST("", h.Message.Send)
			messages.GET("/chats", h.Message.Chats)
			messages.GET("/with/:user_id", h.Message.Conversation)
		}
		auth.GET("/activity", h.Message.CheckActivity)

		notifications := auth.Group("/notifications")
		{
			notifications.GET("", h.Notification.List)
			notifications.GET("/unread-count", h.Notification.UnreadCount)
			notifications.POST("/read-all", h.Notification.MarkAllRead)
			notifications.POST("/:id/read", h.Notification.MarkRead)
			notifications.DELETE("/:id", h.Notification.Delete)
		}

		tickets := auth.Group("/tickets")
		{
			tickets.POST("", h.Ticket.Create)
			tickets.GET("", h.Ticket.Mine)
			tickets.GET("/:id", h.Ticket.Get)
			tickets.POST("/:id/messages", h.Ticket.Reply)
			tickets.POST("/:id/close", h.Ticket.Close)
		}

		admin := auth.Group("/admin")
		admin.Use(middleware.ModeratorOnly())
		{
			admin.GET("/stats", h.Admin.Stats)
			admin.GET("/users", h.Admin.ListUsers)
			admin.POST("/users/:id/ban", h.Admin.BanUser)
			admin.POST("/users/:id/unban", h.Admin.UnbanUser)
			admin.DELETE("/users/:id", h.Admin.DeleteUser)
			admin.DELETE("/projects/:id", h.Admin.DeleteProject)
			admin.POST("/projects/:id/visibility", h.Admin.ToggleProjectVisibility)
			admin.GET("/tickets", h.Ticket.ListAll)
		}
	}
}
