package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"chatline/backend/internal/models"
	"chatline/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorDetail is the inner error object carried by every failure response.
type ErrorDetail struct {
	Message   string `json:"message" example:"Message not found"`
	Timestamp string `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}

// ErrorResponse is the envelope for every failure response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is the wire form of a message.
type MessageResponse struct {
	ID          uint      `json:"id" example:"1"`
	SenderID    uint      `json:"senderId" example:"1"`
	RecipientID uint      `json:"recipientId" example:"2"`
	Text        string    `json:"text" example:"hi"`
	Edited      bool      `json:"edited" example:"false"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RelationshipResponse is the wire form of a relationship edge.
type RelationshipResponse struct {
	ID          uint       `json:"id" example:"1"`
	SenderID    uint       `json:"senderId" example:"1"`
	RecipientID uint       `json:"recipientId" example:"2"`
	Status      string     `json:"status" example:"PENDING"`
	CreatedAt   time.Time  `json:"createdAt"`
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
}

// PublicUserResponse is the wire form of a user profile.
type PublicUserResponse struct {
	ID        uint      `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	AboutMe   string    `json:"aboutMe,omitempty" example:"hello there"`
	CreatedAt time.Time `json:"createdAt"`
}

func newMessageResponse(msg models.Message) MessageResponse {
	return MessageResponse{
		ID:          msg.ID,
		SenderID:    msg.SenderID,
		RecipientID: msg.RecipientID,
		Text:        msg.Text,
		Edited:      msg.Edited,
		CreatedAt:   msg.CreatedAt,
	}
}

func newRelationshipResponse(rel models.Relationship) RelationshipResponse {
	return RelationshipResponse{
		ID:          rel.ID,
		SenderID:    rel.SenderID,
		RecipientID: rel.RecipientID,
		Status:      string(rel.Status),
		CreatedAt:   rel.CreatedAt,
		AcceptedAt:  rel.AcceptedAt,
	}
}

func newPublicUserResponse(user models.User) PublicUserResponse {
	return PublicUserResponse{
		ID:        user.ID,
		Username:  user.Username,
		AboutMe:   user.AboutMe,
		CreatedAt: user.CreatedAt,
	}
}

func errorBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, errorBody(message))
}

// respondServiceError maps a service error kind to its HTTP status. Store or
// other unexpected failures are logged and reported generically.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("unhandled error: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	return userID.(uint)
}
