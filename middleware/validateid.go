package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ValidateIDParam rejects requests whose :id parameter is not numeric text
// before the handler runs. The handler still re-checks the parsed value.
func ValidateIDParam(c *gin.Context) {
	if _, err := strconv.Atoi(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []gin.H{{"field": "id", "message": "El id debe ser numerico"}},
		})
		c.Abort()
		return
	}
	c.Next()
}
