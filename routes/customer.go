package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/fatimahnadiaekaputri/GoodReadingBookstore/controllers/cart"
	catalogControllers "github.com/fatimahnadiaekaputri/GoodReadingBookstore/controllers/catalog"
	reviewControllers "github.com/fatimahnadiaekaputri/GoodReadingBookstore/controllers/review"
	userControllers "github.com/fatimahnadiaekaputri/GoodReadingBookstore/controllers/users"
	wishlistControllers "github.com/fatimahnadiaekaputri/GoodReadingBookstore/controllers/wishlist"
)

// SetupCustomerRoutes registers catalog browsing, wishlist, cart, review and
// account endpoints.
func SetupCustomerRoutes(api *gin.RouterGroup, db *gorm.DB) {
	// ──────────────── Catalog ────────────────
	api.GET("/books/:Book_Name", catalogControllers.GetBookByNameHandler(db)) // GET /api/books/:Book_Name

	// ──────────────── Wishlist ────────────────
	api.POST("/insert_wishlist", wishlistControllers.InsertWishlistHandler(db))   // POST /api/insert_wishlist
	api.DELETE("/delete_wishlist", wishlistControllers.DeleteWishlistHandler(db)) // DELETE /api/delete_wishlist

	// ──────────────── Cart ────────────────
	api.POST("/add_cart", cartControllers.AddToCartHandler(db)) // POST /api/add_cart

	// ──────────────── Reviews ────────────────
	api.POST("/add_review", reviewControllers.AddReviewHandler(db)) // POST /api/add_review

	// ──────────────── Accounts ────────────────
	api.POST("/create_users", userControllers.CreateUserHandler(db)) // POST /api/create_users
	api.PUT("/update_users", userControllers.UpdateUserHandler(db))  // PUT /api/update_users
}
