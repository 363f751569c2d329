package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/middleware"
)

// SetupRoutes is the single entry-point that wires up the customer and staff
// route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.RequestID)

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")

	// Customer-facing endpoints
	SetupCustomerRoutes(api, db)

	// Staff-facing display management
	SetupStaffRoutes(api, db)
}
