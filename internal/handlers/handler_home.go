package handlers

import (
	"net/http"

	"github.com/lukemcknight/reserve/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of the server.
// @Description Lightweight readiness check; also surfaces the estimate disclaimer.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"disclaimer": domain.Disclaimer,
	})
}
