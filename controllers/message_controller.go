// File: /controllers/message_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportconnect-api/models"
	"sportconnect-api/pkg/logger"
	"sportconnect-api/utils"
)

type MessageController struct {
	db *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{db: db}
}

type CreateMessageRequest struct {
	Message   string `json:"message" binding:"required"`
	MessageDa string `json:"message_da"`
}

func (mc *MessageController) GetMessages(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	event, ok := mc.requireParticipant(c, eventID, userID, "You must be a participant to view messages")
	if !ok {
		return
	}

	var messages []models.Message
	if err := mc.db.Where("event_id = ?", event.ID).Order("created_at ASC").Find(&messages).Error; err != nil {
		logger.Error("Failed to fetch messages", "event_id", eventID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	if messages == nil {
		messages = []models.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

func (mc *MessageController) CreateMessage(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := mc.requireParticipant(c, eventID, userID, "You must be a participant to send messages"); !ok {
		return
	}

	var author models.User
	if err := mc.db.First(&author, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	message := models.Message{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    author.ID,
		UserName:  author.Name,
		Message:   utils.SanitizeText(req.Message),
		MessageDa: utils.SanitizeText(req.MessageDa),
	}

	if err := mc.db.Create(&message).Error; err != nil {
		logger.Error("Failed to create message", "event_id", eventID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// requireParticipant loads the event and enforces the membership gate shared
// by both message endpoints. It writes the error response itself when the
// check fails.
func (mc *MessageController) requireParticipant(c *gin.Context, eventID, userID, forbiddenMsg string) (*models.Event, bool) {
	var event models.Event
	if err := mc.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return nil, false
	}

	if !event.Participants.Contains(userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": forbiddenMsg})
		return nil, false
	}

	return &event, true
}
