package routes

import (
	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	reservationController := controllers.NewReservationController(services.NewReservationService(db))
	slotController := controllers.NewSlotController(services.NewSlotService(db))
	availabilityController := controllers.NewAvailabilityController(services.NewAvailabilityService(db))
	customerController := controllers.NewCustomerController(db)
	staffController := controllers.NewStaffController(db)
	dashboardController := controllers.NewDashboardController(db)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Reservation routes
		reservations := api.Group("/reservations")
		{
			reservations.POST("", reservationController.CreateReservation)
			reservations.GET("", reservationController.GetReservations)
			reservations.GET("/:id", reservationController.GetReservation)
			reservations.PUT("/:id", reservationController.UpdateReservation)
			reservations.PATCH("/:id/status", reservationController.UpdateReservationStatus)
			reservations.DELETE("/:id", reservationController.DeleteReservation)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		// Staff routes
		staff := api.Group("/staff")
		{
			staff.POST("", staffController.CreateStaff)
			staff.GET("", staffController.GetStaffList)
			staff.GET("/:id", staffController.GetStaff)
			staff.PUT("/:id", staffController.UpdateStaff)
			staff.DELETE("/:id", staffController.DeleteStaff)
		}

		// Slot routes
		slots := api.Group("/staff-slots")
		{
			slots.POST("", slotController.CreateSlots)
			slots.GET("", slotController.GetSlots)
			slots.DELETE("/:id", slotController.DeleteSlot)
		}

		// Availability route
		api.GET("/availability", availabilityController.GetAvailability)

		// Dashboard route
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
