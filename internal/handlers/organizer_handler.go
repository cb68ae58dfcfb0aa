package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raffialdf/evently/internal/helpers"
	"github.com/raffialdf/evently/internal/models"
)

func ListEventOrganizers(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	pagination, err := helpers.ParsePagination(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var totalCount int64
	gormDB.Model(&models.EventOrganizer{}).Count(&totalCount)

	var organizers []models.EventOrganizer
	if err := gormDB.Offset(pagination.Offset()).Limit(pagination.Limit).Order("created_at DESC").Find(&organizers).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event organizers.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event_organizers": models.NewEventOrganizerViews(organizers),
		"total":            totalCount,
		"page":             pagination.Page,
		"limit":            pagination.Limit,
	})
}
