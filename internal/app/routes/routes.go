package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/madrasah/internal/app/controllers"
	"github.com/yigit/madrasah/internal/middleware"
)

// Controllers holds every controller mounted under /api
type Controllers struct {
	Auth         *controllers.AuthController
	Contact      *controllers.ContactController
	News         *controllers.NewsController
	Registration *controllers.RegistrationController
	Alumni       *controllers.AlumniController
	Event        *controllers.EventController
	Health       *controllers.HealthController
}

// SetupRouter configures all application routes. limiter guards the public write
// endpoints and may be nil.
func SetupRouter(router *gin.Engine, c Controllers, limiter *middleware.RateLimiter) {
	api := router.Group("/api")
	requireAuth := middleware.RequireAuth()
	limited := limiter.Handler()

	api.GET("/health", c.Health.Health)

	// --- Auth ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", limited, c.Auth.Register)
		auth.POST("/login", limited, c.Auth.Login)
		auth.POST("/logout", c.Auth.Logout)
		auth.GET("/me", requireAuth, c.Auth.Me)
	}

	// --- Contact ---
	api.POST("/contact", limited, c.Contact.Submit)
	contactMessages := api.Group("/contact-messages", requireAuth)
	{
		contactMessages.GET("", c.Contact.List)
		contactMessages.PUT("/:id/status", c.Contact.UpdateStatus)
	}

	// --- News ---
	news := api.Group("/news")
	{
		news.GET("", c.News.List)
		news.GET("/:id", c.News.Get)
		news.POST("", requireAuth, c.News.Create)
		news.PUT("/:id", requireAuth, c.News.Update)
		news.DELETE("/:id", requireAuth, c.News.Delete)
	}

	// --- Registrations ---
	registrations := api.Group("/registrations")
	{
		registrations.POST("", limited, c.Registration.Submit)
		registrations.GET("", requireAuth, c.Registration.List)
		registrations.GET("/:id", requireAuth, c.Registration.Get)
		registrations.PUT("/:id/status", requireAuth, c.Registration.UpdateStatus)
	}

	// --- Alumni ---
	alumni := api.Group("/alumni")
	{
		alumni.GET("", c.Alumni.List)
		alumni.GET("/:id", c.Alumni.Get)
		alumni.POST("", limited, c.Alumni.Submit)
		alumni.PUT("/:id", requireAuth, c.Alumni.Update)
		alumni.PUT("/:id/status", requireAuth, c.Alumni.UpdateStatus)
	}

	// --- Academic calendar ---
	events := api.Group("/events")
	{
		events.GET("", c.Event.List)
		events.GET("/:id", c.Event.Get)
		events.POST("", requireAuth, c.Event.Create)
		events.PUT("/:id", requireAuth, c.Event.Update)
		events.DELETE("/:id", requireAuth, c.Event.Delete)
	}
}
