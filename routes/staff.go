package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	displayControllers "github.com/fatimahnadiaekaputri/GoodReadingBookstore/controllers/display"
)

// SetupStaffRoutes registers the display management endpoints used by store
// staff.
func SetupStaffRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.POST("/add_display", displayControllers.AddDisplayHandler(db))       // POST /api/add_display
	api.PUT("/update_display", displayControllers.UpdateDisplayHandler(db))  // PUT /api/update_display
	api.GET("/export_display", displayControllers.ExportDisplaysToExcel(db)) // GET /api/export_display
}
