package api

import (
	"prd_manager/internal/apperror"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// writeError maps any error onto the taxonomy's HTTP status with a
// {"error": message} body. Internal errors are logged with their cause;
// the cause never reaches the client.
func writeError(c *gin.Context, err error) {
	appErr := apperror.FromError(err)
	if appErr.Type == apperror.InternalError {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"error":  appErr.Error(),
		}).Error("Request failed")
	}
	c.JSON(appErr.StatusCode(), gin.H{"error": appErr.Message})
}
