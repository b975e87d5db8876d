package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse sends a JSON response with the given status code.
func JSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// ErrorJSON sends a bare {error} body, the shape every endpoint uses on
// failure.
func ErrorJSON(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// MessageJSON sends a bare {message} body with status 200.
func MessageJSON(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// BadRequest sends a 400 error response
func BadRequest(c *gin.Context, message string) {
	ErrorJSON(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 error response
func NotFound(c *gin.Context, message string) {
	ErrorJSON(c, http.StatusNotFound, message)
}

// InternalServerError sends a 500 error response
func InternalServerError(c *gin.Context, message string) {
	ErrorJSON(c, http.StatusInternalServerError, message)
}
