package rcm

import (
	"log/slog"
	"net/http"

	"fueltrack-backend/lib/scrapers/rcm"

	"github.com/gin-gonic/gin"
)

type searchRequest struct {
	Rego    string `json:"rego" binding:"required"`
	Cookies string `json:"cookies"`
	DateStr string `json:"dateStr" binding:"required"`
}

type searchResponse struct {
	Success bool              `json:"success"`
	Results []rcm.Reservation `json:"results"`
}

// RegisterRoutes mounts the scraper endpoints on the shared router.
// They carry no authentication of their own: the deployment fronts them
// with the app's session layer.
func RegisterRoutes(router gin.IRouter, service Service) {
	router.POST("/api/test-rcm-login", func(c *gin.Context) {
		outcome, err := service.TestLogin(c.Request.Context())
		if err != nil {
			slog.Error("rcm login test failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, outcome)
	})

	router.POST("/api/rcm-reservation-search", func(c *gin.Context) {
		var req searchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		results, err := service.SearchReservations(
			c.Request.Context(), req.Rego, req.Cookies, req.DateStr)
		if err != nil {
			slog.Error("rcm reservation search failed",
				"rego", req.Rego, "date", req.DateStr, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if results == nil {
			results = []rcm.Reservation{}
		}
		c.JSON(http.StatusOK, searchResponse{Success: true, Results: results})
	})
}
