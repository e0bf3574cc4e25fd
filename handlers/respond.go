package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"maskle/services"
)

func statusForCode(code string) int {
	switch code {
	case services.CodeNotFound:
		return http.StatusNotFound
	case services.CodeConflict:
		return http.StatusConflict
	case services.CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders any service error as {"error": {"code", "message"}}.
// Unknown errors surface as a generic server_error so internals never leak.
func respondError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		c.JSON(statusForCode(svcErr.Code), gin.H{
			"error": gin.H{"code": svcErr.Code, "message": svcErr.Message},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{"code": services.CodeServerError, "message": "Unexpected error."},
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": gin.H{"code": services.CodeBadRequest, "message": message},
	})
}
