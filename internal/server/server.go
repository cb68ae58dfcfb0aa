package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raffialdf/evently/config"
	"github.com/raffialdf/evently/internal/handlers"
	"github.com/raffialdf/evently/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db, cfg)

	return r.Run(":" + cfg.Port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.ConfigMiddleware(cfg))

	r.GET("/", handlers.Home)

	r.GET("/users", handlers.ListUsers)
	r.POST("/users", handlers.Register)
	r.POST("/login", handlers.Login)

	r.GET("/events", handlers.ListEvents)
	r.GET("/events/:id", handlers.GetEvent)

	r.GET("/tickets", handlers.ListTickets)
	r.GET("/user_events", handlers.ListUserEvents)
	r.GET("/event_organizers", handlers.ListEventOrganizers)

	r.GET("/feedbacks", handlers.ListFeedbacks)
	r.POST("/feedbacks", handlers.CreateFeedback)

	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/tickets", handlers.PurchaseTicket)
		protected.GET("/tickets/:id/qr", handlers.TicketQR)

		admin := protected.Group("")
		admin.Use(middleware.AdminRequired())
		{
			admin.POST("/events", handlers.CreateEvent)
			admin.PATCH("/events", handlers.UpdateEvent)
			admin.DELETE("/events", handlers.DeleteEvent)
		}
	}
}
