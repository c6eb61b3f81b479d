package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/pkg/logger"
)

// writeError maps a service failure onto the response contract: business-rule
// violations (classified by message content) are bad requests, anything else
// is an unexpected server failure.
func writeError(c *gin.Context, err error) {
	logger.Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	if records.IsClientError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "message": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "message": err.Error()})
}

func writeValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation Error", "details": err.Error()})
}
