// Package httpx maps workflow results onto HTTP responses.
package httpx

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/middleware"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/store"
)

// Error writes a typed workflow failure as its 4xx response. Anything else
// is logged with the request ID and surfaced as a generic 500 so that no
// internal detail leaks.
func Error(c *gin.Context, err error) {
	var werr *store.Error
	if errors.As(err, &werr) {
		c.JSON(werr.HTTPStatus(), gin.H{"message": werr.Message})
		return
	}
	log.Printf("[%s] %s %s: %v", c.GetString(middleware.RequestIDKey), c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// Message writes the standard success body.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
