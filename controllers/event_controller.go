// File: /controllers/event_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportconnect-api/models"
	"sportconnect-api/pkg/logger"
	"sportconnect-api/utils"
)

type EventController struct {
	db *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{db: db}
}

type CreateEventRequest struct {
	Title           string  `json:"title" binding:"required"`
	TitleDa         string  `json:"title_da" binding:"required"`
	Sport           string  `json:"sport" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	Location        string  `json:"location" binding:"required"`
	Address         string  `json:"address"`
	Description     string  `json:"description"`
	DescriptionDa   string  `json:"description_da"`
	MaxParticipants int     `json:"max_participants" binding:"required,min=2,max=100"`
	SkillLevel      string  `json:"skill_level" binding:"required"`
	Price           float64 `json:"price" binding:"gte=0"`
}

func (ec *EventController) CreateEvent(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateDateFormat(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	if !utils.ValidateTimeFormat(req.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format. Use HH:MM"})
		return
	}

	if _, ok := models.GetSportByID(req.Sport); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sport"})
		return
	}

	if !models.IsValidSkillLevel(req.SkillLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill level"})
		return
	}

	var organizer models.User
	if err := ec.db.First(&organizer, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	location := utils.SanitizeText(req.Location)

	event := models.Event{
		ID:                  uuid.New().String(),
		Title:               utils.SanitizeText(req.Title),
		TitleDa:             utils.SanitizeText(req.TitleDa),
		Sport:               req.Sport,
		Date:                req.Date,
		Time:                req.Time,
		Location:            location,
		Address:             utils.SanitizeText(req.Address),
		Description:         utils.SanitizeText(req.Description),
		DescriptionDa:       utils.SanitizeText(req.DescriptionDa),
		MaxParticipants:     req.MaxParticipants,
		SkillLevel:          req.SkillLevel,
		Price:               req.Price,
		OrganizerID:         organizer.ID,
		OrganizerName:       organizer.Name,
		CurrentParticipants: 1,
		Participants:        models.StringSlice{organizer.ID},
		Status:              models.EventStatusActive,
		Tags:                models.GenerateEventTags(req.Price, location, req.Sport, req.SkillLevel),
	}

	if err := ec.db.Create(&event).Error; err != nil {
		logger.Error("Failed to create event", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Event creation failed"})
		return
	}

	// Bump the organizer's created counter and rebuild the badge set from
	// the new counts
	newCreated := organizer.EventsCreated + 1
	if err := ec.db.Model(&organizer).Updates(map[string]interface{}{
		"events_created": newCreated,
		"badges":         models.GetUserBadges(organizer.EventsParticipated, newCreated),
	}).Error; err != nil {
		logger.Error("Event created but organizer counters not updated",
			"event_id", event.ID, "user_id", organizer.ID, "error", err)
	}

	c.JSON(http.StatusCreated, event)
}

func (ec *EventController) GetEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}

	query := ec.db.Model(&models.Event{}).Where("status = ?", models.EventStatusActive)

	if sport := c.Query("sport"); sport != "" && sport != "all" {
		query = query.Where("sport = ?", sport)
	}

	if skillLevel := c.Query("skill_level"); skillLevel != "" && skillLevel != models.SkillLevelAll {
		query = query.Where("skill_level IN ?", []string{skillLevel, models.SkillLevelAll})
	}

	if dateFilter := c.Query("date_filter"); dateFilter != "" {
		if from, to, ok := utils.DateFilterBounds(dateFilter, time.Now()); ok {
			query = query.Where("date >= ? AND date <= ?", from, to)
		}
	}

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(title_da) LIKE ? OR LOWER(location) LIKE ? OR LOWER(description) LIKE ? OR LOWER(description_da) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var events []models.Event
	if err := query.Order("date ASC, time ASC").Offset(skip).Limit(limit).Find(&events).Error; err != nil {
		logger.Error("Failed to fetch events", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

func (ec *EventController) GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	var event models.Event
	if err := ec.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	participantDetails := []models.EventParticipant{}
	if len(event.Participants) > 0 {
		var users []models.User
		if err := ec.db.Where("id IN ?", []string(event.Participants)).Find(&users).Error; err != nil {
			logger.Error("Failed to resolve participants", "event_id", eventID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
			return
		}
		for _, u := range users {
			participantDetails = append(participantDetails, models.EventParticipant{
				ID:    u.ID,
				Name:  u.Name,
				Photo: u.Photo,
			})
		}
	}

	c.JSON(http.StatusOK, models.EventWithParticipants{
		Event:              event,
		ParticipantDetails: participantDetails,
	})
}

func (ec *EventController) JoinEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	var event models.Event
	if err := ec.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err := event.AddParticipant(userID); err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadyJoined):
			c.JSON(http.StatusConflict, gin.H{"error": "Already joined this event"})
		case errors.Is(err, models.ErrEventFull):
			c.JSON(http.StatusConflict, gin.H{"error": "Event is full"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	// Two near-simultaneous joins on the last slot can both pass the
	// capacity check above; the single-row update is the only
	// synchronization boundary, as in the original system.
	if err := ec.db.Model(&models.Event{}).Where("id = ?", eventID).Updates(map[string]interface{}{
		"participants":         event.Participants,
		"current_participants": event.CurrentParticipants,
	}).Error; err != nil {
		logger.Error("Failed to join event", "event_id", eventID, "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join event"})
		return
	}

	if err := ec.applyParticipationChange(userID, 1); err != nil {
		// Event row was already updated; the user is now under-counted.
		logger.Error("Joined event but user counters not updated",
			"event_id", eventID, "user_id", userID, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully joined event"})
}

func (ec *EventController) LeaveEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	var event models.Event
	if err := ec.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err := event.RemoveParticipant(userID); err != nil {
		switch {
		case errors.Is(err, models.ErrOrganizerCannotLeave):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Organizer cannot leave their own event"})
		case errors.Is(err, models.ErrNotParticipant):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not joined in this event"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	if err := ec.db.Model(&models.Event{}).Where("id = ?", eventID).Updates(map[string]interface{}{
		"participants":         event.Participants,
		"current_participants": event.CurrentParticipants,
	}).Error; err != nil {
		logger.Error("Failed to leave event", "event_id", eventID, "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave event"})
		return
	}

	if err := ec.applyParticipationChange(userID, -1); err != nil {
		logger.Error("Left event but user counters not updated",
			"event_id", eventID, "user_id", userID, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully left event"})
}

// applyParticipationChange adjusts the user's participation counter by delta
// (floored at zero) and rebuilds the badge set from the resulting counts.
func (ec *EventController) applyParticipationChange(userID string, delta int) error {
	var user models.User
	if err := ec.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	newCount := user.EventsParticipated + delta
	if newCount < 0 {
		newCount = 0
	}

	return ec.db.Model(&user).Updates(map[string]interface{}{
		"events_participated": newCount,
		"badges":              models.GetUserBadges(newCount, user.EventsCreated),
	}).Error
}
