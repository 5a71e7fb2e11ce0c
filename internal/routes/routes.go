package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/config"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	authsvc "invoice-dashboard-backend/internal/services/auth"
	custsvc "invoice-dashboard-backend/internal/services/customers"
	invsvc "invoice-dashboard-backend/internal/services/invoices"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	userRepo := repository.NewUserRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	views := cache.New()

	invoiceService := invsvc.NewService(invoiceRepo, customerRepo, revenueRepo, views)
	customerService := custsvc.NewService(customerRepo)
	authService := authsvc.NewService(userRepo, config.JWTSecret())

	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	customerHandler := handler.NewCustomerHandler(customerService)
	authHandler := handler.NewAuthHandler(authService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/login", authHandler.Login)

	// Everything behind the dashboard requires a session.
	dash := api.Group("/")
	dash.Use(handler.RequireAuth(authService))

	invoices := dash.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/pages", invoiceHandler.Pages)
		invoices.GET("/latest", invoiceHandler.Latest)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.POST("/:id", invoiceHandler.Update) // HTML forms cannot PUT
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	dashboards := dash.Group("/dashboard")
	{
		dashboards.GET("/summary", invoiceHandler.Summary)
		dashboards.GET("/revenue", invoiceHandler.Revenue)
	}

	customers := dash.Group("/customers")
	{
		customers.GET("", customerHandler.List)
		customers.GET("/table", customerHandler.Table)
	}
}
