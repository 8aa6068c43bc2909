package handlers

import (
	"errors"
	"log"
	"net/http"

	"food_order/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError translates the service error taxonomy to HTTP. Validation
// errors echo their message since they are caller-fixable; storage faults
// are logged server-side and answered with a generic message so internal
// detail never reaches untrusted callers.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong"})
	}
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}
