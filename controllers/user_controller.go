// File: /controllers/user_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sportconnect-api/models"
	"sportconnect-api/pkg/logger"
	"sportconnect-api/utils"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

type UpdateProfileRequest struct {
	Name       *string   `json:"name"`
	Age        *int      `json:"age" binding:"omitempty,gte=13,lte=100"`
	Location   *string   `json:"location"`
	Bio        *string   `json:"bio"`
	Sports     *[]string `json:"sports"`
	SkillLevel *string   `json:"skill_level"`
	Photo      *string   `json:"photo"`
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.SkillLevel != nil && !models.IsValidSkillLevel(*req.SkillLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill level"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = utils.SanitizeText(*req.Name)
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.Location != nil {
		updates["location"] = utils.SanitizeText(*req.Location)
	}
	if req.Bio != nil {
		updates["bio"] = utils.SanitizeText(*req.Bio)
	}
	if req.Sports != nil {
		updates["sports"] = models.StringSlice(*req.Sports)
	}
	if req.SkillLevel != nil {
		updates["skill_level"] = *req.SkillLevel
	}
	// Photo is only replaced with a valid base64 image
	if req.Photo != nil && utils.IsValidBase64Image(*req.Photo) {
		updates["photo"] = *req.Photo
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if len(updates) > 0 {
		if err := uc.db.Model(&user).Updates(updates).Error; err != nil {
			logger.Error("Failed to update profile", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Profile update failed"})
			return
		}
	}

	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		logger.Error("Failed to reload profile", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Profile update failed"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetStats(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var friendsCount int64
	if err := uc.db.Model(&models.Friendship{}).
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, models.FriendshipStatusAccepted).
		Count(&friendsCount).Error; err != nil {
		logger.Error("Failed to count friends", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user stats"})
		return
	}

	c.JSON(http.StatusOK, models.UserStats{
		EventsParticipated: user.EventsParticipated,
		EventsCreated:      user.EventsCreated,
		BadgesCount:        len(user.Badges),
		FriendsCount:       friendsCount,
		SportsCount:        len(user.Sports),
	})
}
