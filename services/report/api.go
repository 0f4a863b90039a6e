package report

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router gin.IRouter, service Service) {
	router.POST("/api/send-report", func(c *gin.Context) {
		var req SendReportInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.To) == 0 || req.BranchID == "" || req.DateStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to, branchId and dateStr are required"})
			return
		}
		if err := service.SendBranchReport(c.Request.Context(), req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
