package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description Lists the dashboard endpoints served under /api.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Ledger Dashboard API",
		"endpoints": []string{
			"/api/transactions/summary",
			"/api/transactions/monthly",
			"/api/transactions/recent",
			"/api/transactions/by-date",
		},
	})
}

// registerHomeRoutes registers the index route
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", getHome)
}
