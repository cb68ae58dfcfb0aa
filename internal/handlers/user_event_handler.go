package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raffialdf/evently/internal/helpers"
	"github.com/raffialdf/evently/internal/models"
)

func ListUserEvents(c *gin.Context) {
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
	gormDB.Model(&models.UserEvent{}).Count(&totalCount)

	var userEvents []models.UserEvent
	if err := gormDB.Offset(pagination.Offset()).Limit(pagination.Limit).Order("created_at DESC").Find(&userEvents).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving user events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_events": models.NewUserEventViews(userEvents),
		"total":       totalCount,
		"page":        pagination.Page,
		"limit":       pagination.Limit,
	})
}
