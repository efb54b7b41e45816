package router

import (
	"net/http"

	"campusconnect/internal/handler"
	"campusconnect/internal/middleware"
	"campusconnect/internal/repository/mysql"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InitRouter wires the guard chain onto the route groups. Public read
// routes carry the optional guard so admins can override visibility
// filters; everything mutating sits behind Authenticate, and admin routes
// additionally behind RequireAdmin.
func InitRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	users := mysql.NewUserRepository(db)
	auth := middleware.Authenticate(users)
	optionalAuth := middleware.OptionalAuthenticate(users)
	admin := middleware.RequireAdmin(users)

	authH := handler.NewAuthHandler(db)
	userH := handler.NewUserHandler(db)
	eventH := handler.NewEventHandler(db)
	clubH := handler.NewClubHandler(db)
	notifyH := handler.NewNotificationHandler(db)
	adminH := handler.NewAdminHandler(db)
	chatH := handler.NewChatHandler(db)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup", authH.Signup)
		authGroup.POST("/login", authH.Login)
		authGroup.GET("/me", auth, authH.Me)
	}

	userGroup := r.Group("/api/users", auth)
	{
		userGroup.GET("", admin, userH.List)
		userGroup.GET("/:id", userH.Get)
		userGroup.PUT("/:id", userH.Update)
		userGroup.PUT("/:id/avatar", userH.UpdateAvatar)
		userGroup.DELETE("/:id", admin, userH.Delete)
	}

	eventGroup := r.Group("/api/events")
	{
		eventGroup.GET("", optionalAuth, eventH.List)
		eventGroup.GET("/:id", optionalAuth, eventH.Get)
		eventGroup.POST("", auth, eventH.Create)
		eventGroup.PUT("/:id", auth, eventH.Update)
		eventGroup.DELETE("/:id", auth, eventH.Delete)
		eventGroup.POST("/:id/approve", auth, admin, eventH.Approve)
		eventGroup.POST("/:id/reject", auth, admin, eventH.Reject)
		eventGroup.POST("/:id/join", auth, eventH.Join)
		eventGroup.DELETE("/:id/join", auth, eventH.Leave)
	}

	clubGroup := r.Group("/api/clubs")
	{
		clubGroup.GET("", optionalAuth, clubH.List)
		clubGroup.GET("/:id", optionalAuth, clubH.Get)
		clubGroup.POST("", auth, clubH.Create)
		clubGroup.PUT("/:id", auth, admin, clubH.Update)
		clubGroup.DELETE("/:id", auth, admin, clubH.Delete)
		clubGroup.POST("/:id/join", auth, clubH.Join)
		clubGroup.GET("/:id/messages", auth, chatH.List)
		clubGroup.POST("/:id/messages", auth, chatH.Post)
	}

	notifyGroup := r.Group("/api/notifications", auth)
	{
		notifyGroup.GET("", notifyH.List)
		notifyGroup.PUT("/:id/read", notifyH.MarkRead)
	}

	adminGroup := r.Group("/api/admin", auth, admin)
	{
		adminGroup.GET("/dashboard", adminH.Dashboard)
	}

	return r
}
