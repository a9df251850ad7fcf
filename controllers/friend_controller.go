// File: /controllers/friend_controller.go
package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportconnect-api/models"
	"sportconnect-api/pkg/logger"
)

type FriendController struct {
	db *gorm.DB
}

func NewFriendController(db *gorm.DB) *FriendController {
	return &FriendController{db: db}
}

func (fc *FriendController) AddFriend(c *gin.Context) {
	userID := c.GetString("user_id")
	friendID := c.Param("id")

	if friendID == userID {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot add yourself as friend"})
		return
	}

	var target models.User
	if err := fc.db.First(&target, "id = ?", friendID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// A pair has at most one row regardless of direction
	var existing models.Friendship
	err := fc.db.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		userID, friendID, friendID, userID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Friendship already exists"})
		return
	}

	friendship := models.Friendship{
		ID:           uuid.New().String(),
		UserID:       userID,
		FriendID:     friendID,
		Status:       models.FriendshipStatusAccepted, // auto-accept, no approval flow
		MutualEvents: 0,
	}

	if err := fc.db.Create(&friendship).Error; err != nil {
		logger.Error("Failed to add friend", "user_id", userID, "friend_id", friendID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add friend"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend added successfully"})
}

func (fc *FriendController) RemoveFriend(c *gin.Context) {
	userID := c.GetString("user_id")
	friendID := c.Param("id")

	result := fc.db.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		userID, friendID, friendID, userID).Delete(&models.Friendship{})
	if result.Error != nil {
		logger.Error("Failed to remove friend", "user_id", userID, "friend_id", friendID, "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove friend"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friendship not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend removed successfully"})
}

func (fc *FriendController) GetFriends(c *gin.Context) {
	userID := c.GetString("user_id")

	var friendships []models.Friendship
	if err := fc.db.Where("(user_id = ? OR friend_id = ?) AND status = ?",
		userID, userID, models.FriendshipStatusAccepted).Find(&friendships).Error; err != nil {
		logger.Error("Failed to fetch friendships", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}

	friendIDs := make([]string, 0, len(friendships))
	for i := range friendships {
		friendIDs = append(friendIDs, friendships[i].CounterpartOf(userID))
	}

	if len(friendIDs) == 0 {
		c.JSON(http.StatusOK, []models.FriendInfo{})
		return
	}

	var friends []models.User
	if err := fc.db.Where("id IN ?", friendIDs).Find(&friends).Error; err != nil {
		logger.Error("Failed to fetch friend details", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}

	userEventIDs, err := fc.participatedEventIDs(userID)
	if err != nil {
		logger.Error("Failed to fetch participated events", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}

	// Mutual events are computed live per call; the stored mutual_events
	// field is not trusted.
	friendInfos := make([]models.FriendInfo, 0, len(friends))
	for _, friend := range friends {
		friendEventIDs, err := fc.participatedEventIDs(friend.ID)
		if err != nil {
			logger.Error("Failed to fetch participated events", "user_id", friend.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
			return
		}

		friendInfos = append(friendInfos, models.FriendInfo{
			ID:           friend.ID,
			Name:         friend.Name,
			Photo:        friend.Photo,
			Location:     friend.Location,
			Sports:       friend.Sports,
			Age:          friend.Age,
			Status:       "offline",
			MutualEvents: models.CalculateMutualEvents(userEventIDs, friendEventIDs),
		})
	}

	c.JSON(http.StatusOK, friendInfos)
}

func (fc *FriendController) GetSuggestions(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}
	if limit > 20 {
		limit = 20
	}

	var user models.User
	if err := fc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Exclusion set covers any counterpart, regardless of status
	var friendships []models.Friendship
	if err := fc.db.Where("user_id = ? OR friend_id = ?", userID, userID).Find(&friendships).Error; err != nil {
		logger.Error("Failed to fetch friendships", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get friend suggestions"})
		return
	}

	excludeIDs := []string{userID}
	for i := range friendships {
		excludeIDs = append(excludeIDs, friendships[i].CounterpartOf(userID))
	}

	var suggestions []models.User
	if len(user.Sports) > 0 {
		sportsJSON, _ := json.Marshal([]string(user.Sports))
		if err := fc.db.Where("id NOT IN ?", excludeIDs).
			Where("JSON_OVERLAPS(sports, CAST(? AS JSON))", string(sportsJSON)).
			Limit(limit).Find(&suggestions).Error; err != nil {
			logger.Error("Failed to fetch suggestions", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get friend suggestions"})
			return
		}
	}

	// Backfill with arbitrary non-excluded users up to the limit
	if len(suggestions) < limit {
		picked := append([]string{}, excludeIDs...)
		for i := range suggestions {
			picked = append(picked, suggestions[i].ID)
		}

		var additional []models.User
		if err := fc.db.Where("id NOT IN ?", picked).
			Limit(limit - len(suggestions)).Find(&additional).Error; err != nil {
			logger.Error("Failed to backfill suggestions", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get friend suggestions"})
			return
		}
		suggestions = append(suggestions, additional...)
	}

	// Suggested entries always report zero mutual events; the live
	// computation is reserved for the friends list.
	friendInfos := make([]models.FriendInfo, 0, len(suggestions))
	for _, s := range suggestions {
		friendInfos = append(friendInfos, models.FriendInfo{
			ID:           s.ID,
			Name:         s.Name,
			Photo:        s.Photo,
			Location:     s.Location,
			Sports:       s.Sports,
			Age:          s.Age,
			Status:       "offline",
			MutualEvents: 0,
		})
	}

	c.JSON(http.StatusOK, friendInfos)
}

// participatedEventIDs returns the ids of all events whose participant list
// contains the user.
func (fc *FriendController) participatedEventIDs(userID string) ([]string, error) {
	var ids []string
	err := fc.db.Model(&models.Event{}).
		Where("JSON_CONTAINS(participants, JSON_QUOTE(?))", userID).
		Pluck("id", &ids).Error
	return ids, err
}
