package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"chatline/backend/internal/models"
	"chatline/backend/internal/repository"

	"gorm.io/gorm"
)

// ConversationPageSize is the fixed window for conversation fetches. A page
// of exactly this length signals that more messages may follow.
const ConversationPageSize = 50

const maxMessageLength = 2000

// MessageService owns the message lifecycle. It consults the
// RelationshipService before any send; messaging does not require an
// accepted friendship, only the absence of a block.
type MessageService interface {
	Send(ctx context.Context, senderID, recipientID uint, text string) (*models.Message, error)
	// Edit updates the message text. Submitting empty (after trimming) text
	// deletes the message instead; the returned bool reports the deletion.
	Edit(ctx context.Context, editorID, messageID uint, newText string) (*models.Message, bool, error)
	Delete(ctx context.Context, requesterID, messageID uint) (*models.Message, error)
	// Conversation returns the ascending-by-creation window at offset skip,
	// plus whether a following page may exist.
	Conversation(ctx context.Context, userID, partnerID uint, skip int) ([]models.Message, bool, error)
}

type messageService struct {
	messages      repository.MessageRepository
	users         repository.UserRepository
	relationships RelationshipService
}

func NewMessageService(messages repository.MessageRepository, users repository.UserRepository, relationships RelationshipService) MessageService {
	return &messageService{messages: messages, users: users, relationships: relationships}
}

func (s *messageService) Send(ctx context.Context, senderID, recipientID uint, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) > maxMessageLength {
		return nil, ValidationError("Message text must be between 1 and 2000 characters")
	}

	if _, err := s.users.GetByID(ctx, recipientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Recipient not found")
		}
		return nil, err
	}

	// The up-front check produces the directional wording; the insert itself
	// re-checks the blocked edge atomically, so a block committing between
	// the two still rejects the message.
	for attempt := 0; ; attempt++ {
		block, err := s.relationships.IsBlocked(ctx, senderID, recipientID)
		if err != nil {
			return nil, err
		}
		if block != nil {
			if block.BlockerID == senderID {
				return nil, PermissionError("You have blocked this user")
			}
			return nil, PermissionError("You are blocked by this user")
		}

		msg := &models.Message{
			SenderID:    senderID,
			RecipientID: recipientID,
			Text:        text,
		}
		ok, err := s.messages.CreateUnlessBlocked(ctx, msg)
		if err != nil {
			return nil, err
		}
		if ok {
			return msg, nil
		}
		if attempt > 0 {
			return nil, PermissionError("You are blocked by this user")
		}
		// the guard fired, reread the edge for the directional message
	}
}

// Edit fetches the message scoped to the editor, so a message owned by
// someone else reads as missing. The scoped lookup is the authorization
// check; there is no separate ownership comparison.
func (s *messageService) Edit(ctx context.Context, editorID, messageID uint, newText string) (*models.Message, bool, error) {
	newText = strings.TrimSpace(newText)
	if utf8.RuneCountInString(newText) > maxMessageLength {
		return nil, false, ValidationError("Message text must be at most 2000 characters")
	}

	msg, err := s.messages.FindOwned(ctx, messageID, editorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, NotFoundError("Message not found")
	}
	if err != nil {
		return nil, false, err
	}

	if newText == "" {
		if err := s.messages.Delete(ctx, msg.ID); err != nil {
			return nil, false, err
		}
		return msg, true, nil
	}

	if err := s.messages.UpdateText(ctx, msg.ID, newText); err != nil {
		return nil, false, err
	}
	msg.Text = newText
	msg.Edited = true
	return msg, false, nil
}

// Delete looks the message up by id alone, so a non-owner learns it exists
// before being denied. That asymmetry with Edit is intentional.
func (s *messageService) Delete(ctx context.Context, requesterID, messageID uint) (*models.Message, error) {
	msg, err := s.messages.FindByID(ctx, messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError("Message not found")
	}
	if err != nil {
		return nil, err
	}

	if msg.SenderID != requesterID {
		return nil, PermissionError("You can only delete your own messages")
	}

	if err := s.messages.Delete(ctx, msg.ID); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *messageService) Conversation(ctx context.Context, userID, partnerID uint, skip int) ([]models.Message, bool, error) {
	if partnerID == 0 {
		return nil, false, ValidationError("Missing user ID parameter")
	}
	if skip < 0 {
		skip = 0
	}

	msgs, err := s.messages.ListConversation(ctx, userID, partnerID, skip, ConversationPageSize)
	if err != nil {
		return nil, false, err
	}
	return msgs, len(msgs) == ConversationPageSize, nil
}
