package fuel

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"fueltrack-backend/lib/timezone"
	"fueltrack-backend/services/fuel/db"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the CRUD endpoints the UI works against.
func RegisterRoutes(router gin.IRouter, service Service) {
	router.GET("/api/branches", func(c *gin.Context) {
		branches, err := service.ListBranches(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, branches)
	})

	router.POST("/api/branches", func(c *gin.Context) {
		var req struct {
			Name        string `json:"name" binding:"required"`
			ReportEmail string `json:"reportEmail"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		branch, err := service.CreateBranch(c.Request.Context(), req.Name, req.ReportEmail)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, branch)
	})

	router.GET("/api/branches/:id/staff", func(c *gin.Context) {
		staff, err := service.ListStaff(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, staff)
	})

	router.POST("/api/branches/:id/staff", func(c *gin.Context) {
		var req struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		staff, err := service.CreateStaff(c.Request.Context(), c.Param("id"), req.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, staff)
	})

	router.POST("/api/refuel-records", func(c *gin.Context) {
		var req RefuelRecordInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		record, err := service.CreateRefuelRecord(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, record)
	})

	// query params: branchId (required), date as dd/MM/yyyy (defaults
	// to today)
	router.GET("/api/refuel-records", func(c *gin.Context) {
		branchID := c.Query("branchId")
		if branchID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "branchId is required"})
			return
		}
		day := timezone.Now()
		if dateStr := c.Query("date"); dateStr != "" {
			parsed, err := time.ParseInLocation(timezone.RCMDateLayout, dateStr, timezone.Location)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			day = parsed
		}
		records, err := service.ListRefuelRecords(c.Request.Context(), branchID, day)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if records == nil {
			records = []db.RefuelRecord{}
		}
		c.JSON(http.StatusOK, records)
	})

	router.PUT("/api/refuel-records/:id", func(c *gin.Context) {
		var req RefuelRecordInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		record, err := service.UpdateRefuelRecord(c.Request.Context(), c.Param("id"), req)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, record)
	})

	router.DELETE("/api/refuel-records/:id", func(c *gin.Context) {
		err := service.DeleteRefuelRecord(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	router.POST("/api/profiles", func(c *gin.Context) {
		var req struct {
			Email       string `json:"email" binding:"required"`
			DisplayName string `json:"displayName"`
			BranchID    string `json:"branchId"`
			Role        string `json:"role"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Role == "" {
			req.Role = "staff"
		}
		profile, err := service.UpsertProfile(c.Request.Context(), db.Profile{
			Email:       req.Email,
			DisplayName: req.DisplayName,
			BranchID:    req.BranchID,
			Role:        req.Role,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, profile)
	})
}
