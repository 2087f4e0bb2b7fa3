package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sanayicim/sanayicim-api/internal/audit"
	"github.com/sanayicim/sanayicim-api/internal/config"
	"github.com/sanayicim/sanayicim-api/internal/handlers"
	"github.com/sanayicim/sanayicim-api/internal/infra/lock"
	infraRepo "github.com/sanayicim/sanayicim-api/internal/infra/repository"
	"github.com/sanayicim/sanayicim-api/internal/middleware"
	"github.com/sanayicim/sanayicim-api/internal/models"
	"github.com/sanayicim/sanayicim-api/internal/token"
	ucBooking "github.com/sanayicim/sanayicim-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	tokens *token.Service,
	locks lock.Locker,
) {

	// ------------------------------
	// Infra singletons
	// ------------------------------
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// Use cases
	// ------------------------------
	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo, locks, auditDispatcher)
	listAppointmentsUC := ucBooking.NewListAppointmentsByDate(bookingRepo)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg, tokens, auditDispatcher)
	shopHandler := handlers.NewShopHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	availabilityHandler := handlers.NewAvailabilityHandler(db, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(createAppointmentUC, listAppointmentsUC)
	pageHandler := handlers.NewPageHandler()

	// ------------------------------
	// Pages (HTML) — gated; static assets and /api stay outside the gate
	// ------------------------------
	pages := r.Group("/")
	pages.Use(middleware.PageGate(tokens))
	{
		pages.GET("/", pageHandler.Home)
		pages.GET("/login", pageHandler.LoginPage)
		pages.GET("/register", pageHandler.RegisterPage)
		pages.GET("/shops", pageHandler.ShopsPage)
		pages.GET("/dashboard", pageHandler.Dashboard)
		pages.GET("/dashboard/owner", pageHandler.OwnerDashboard)
	}

	// ------------------------------
	// API (JSON)
	// ------------------------------
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", middleware.RequireUser(tokens), authHandler.Me)

		api.GET("/shops", shopHandler.List)
		api.GET("/shops/:id", shopHandler.GetByID)

		owner := api.Group("/")
		owner.Use(middleware.RequireUser(tokens), middleware.RequireRole(models.RoleOwner))
		{
			owner.POST("/shops", shopHandler.Create)
			owner.POST("/services", serviceHandler.Create)
			owner.POST("/availability", availabilityHandler.Create)
			owner.GET("/appointments", appointmentHandler.ListByDate)
		}

		customer := api.Group("/")
		customer.Use(middleware.RequireUser(tokens), middleware.RequireRole(models.RoleCustomer))
		{
			customer.POST("/appointments", appointmentHandler.Create)
		}
	}
}
