package routes

import (
	"github.com/gin-gonic/gin"

	"equipment-rental-backend/app"
	"equipment-rental-backend/controllers"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	eqCtl := controllers.NewEquipmentController(a.Catalog)
	rentCtl := controllers.NewRentalController(a.Ledger)
	dashCtl := controllers.NewDashboardController(a.Ledger)

	api := r.Group("/api")

	equipment := api.Group("/equipment")
	{
		equipment.POST("", eqCtl.Create)
		equipment.GET("", eqCtl.List) // ?status=available|rented|maintenance
		equipment.GET("/:id", eqCtl.Get)
		equipment.PUT("/:id", eqCtl.Update)
		equipment.DELETE("/:id", eqCtl.Delete)
	}

	rentals := api.Group("/rentals")
	{
		rentals.POST("", rentCtl.Create)
		rentals.GET("", rentCtl.List) // ?status=active for the operational view
		rentals.GET("/quote", rentCtl.Quote)
		rentals.POST("/:id/complete", rentCtl.Complete)
		rentals.POST("/:id/cancel", rentCtl.Cancel)
	}

	api.GET("/dashboard/summary", dashCtl.Summary)
}
