// File: /controllers/sport_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportconnect-api/models"
)

type SportController struct{}

func NewSportController() *SportController {
	return &SportController{}
}

func (sc *SportController) GetSports(c *gin.Context) {
	c.JSON(http.StatusOK, models.AllSports())
}
