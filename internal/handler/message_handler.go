package handler

import (
	"net/http"
	"strconv"

	"chatline/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SendMessageInput defines the payload for sending a message.
type SendMessageInput struct {
	RecipientID uint   `json:"recipientId" binding:"required" example:"2"`
	Text        string `json:"text" binding:"required" example:"hi"`
}

// EditMessageInput defines the payload for editing a message. An empty text
// deletes the message.
type EditMessageInput struct {
	Text string `json:"text" example:"hi (fixed)"`
}

// endregion

// MessageHandler exposes the messaging endpoints.
type MessageHandler struct {
	messages service.MessageService
}

func NewMessageHandler(messages service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// SendMessage godoc
// @Summary      Send a message
// @Description  Sends a direct message to another user. Fails when either side has blocked the other.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SendMessageInput true "Message"
// @Success      201  {object}  map[string]MessageResponse "{"createdMessage": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Blocked pair"
// @Failure      404  {object}  ErrorResponse "Recipient not found"
// @Router       /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.messages.Send(c.Request.Context(), currentUserID(c), input.RecipientID, input.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"createdMessage": newMessageResponse(*msg)})
}

// EditMessage godoc
// @Summary      Edit a message
// @Description  Edits one of the caller's own messages. Submitting empty text deletes the message instead.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int               true  "Message ID"
// @Param        input body  EditMessageInput  true  "New text"
// @Success      200  {object}  map[string]MessageResponse "{"editedMessage": {...}} or {"deletedMessage": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Missing or not owned"
// @Router       /messages/{id} [put]
func (h *MessageHandler) EditMessage(c *gin.Context) {
	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	var input EditMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, deleted, err := h.messages.Edit(c.Request.Context(), currentUserID(c), uint(messageID), input.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if deleted {
		c.JSON(http.StatusOK, gin.H{"deletedMessage": newMessageResponse(*msg)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"editedMessage": newMessageResponse(*msg)})
}

// DeleteMessage godoc
// @Summary      Delete a message
// @Description  Deletes one of the caller's own messages.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Message ID"
// @Success      200  {object}  map[string]MessageResponse "{"deletedMessage": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the owner"
// @Failure      404  {object}  ErrorResponse
// @Router       /messages/{id} [delete]
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	msg, err := h.messages.Delete(c.Request.Context(), currentUserID(c), uint(messageID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedMessage": newMessageResponse(*msg)})
}

// GetConversation godoc
// @Summary      Get a conversation
// @Description  Fetches the messages exchanged with another user, oldest first, in fixed-size pages. A full page means more may follow; callers advance skip by the page length.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        partnerId path  int  true   "Partner user ID"
// @Param        skip      query int  false  "Number of messages to skip" default(0)
// @Success      200  {object}  map[string][]MessageResponse "{"messages": [...]}"
// @Failure      400  {object}  ErrorResponse "Missing user ID parameter"
// @Router       /messages/{partnerId} [get]
func (h *MessageHandler) GetConversation(c *gin.Context) {
	partnerID, err := strconv.ParseUint(c.Param("partnerId"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Missing user ID parameter")
		return
	}

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		skip = 0
	}

	msgs, _, err := h.messages.Conversation(c.Request.Context(), currentUserID(c), uint(partnerID), skip)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]MessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		responses = append(responses, newMessageResponse(msg))
	}
	c.JSON(http.StatusOK, gin.H{"messages": responses})
}
