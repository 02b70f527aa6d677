package repository

import (
	"context"
	"time"

	"chatline/backend/internal/models"

	"gorm.io/gorm"
)

// MessageRepository provides access to direct messages.
type MessageRepository interface {
	// CreateUnlessBlocked inserts the message only if no BLOCKED edge exists
	// between the pair at insert time. The check runs inside the INSERT
	// statement, so a block that commits after the caller's own check still
	// rejects the message. Returns false when the guard matched.
	CreateUnlessBlocked(ctx context.Context, msg *models.Message) (bool, error)
	FindByID(ctx context.Context, id uint) (*models.Message, error)
	// FindOwned scopes the lookup by sender, so a foreign message is
	// indistinguishable from a missing one.
	FindOwned(ctx context.Context, id, senderID uint) (*models.Message, error)
	UpdateText(ctx context.Context, id uint, text string) error
	Delete(ctx context.Context, id uint) error
	ListConversation(ctx context.Context, userID, partnerID uint, offset, limit int) ([]models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) CreateUnlessBlocked(ctx context.Context, msg *models.Message) (bool, error) {
	var inserted struct {
		ID        uint
		CreatedAt time.Time
	}
	result := r.db.WithContext(ctx).Raw(`
		INSERT INTO messages (created_at, updated_at, sender_id, recipient_id, text, edited)
		SELECT NOW(), NOW(), ?, ?, ?, false
		WHERE NOT EXISTS (
			SELECT 1 FROM relationships
			WHERE ((sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?))
			AND status = ?
		)
		RETURNING id, created_at`,
		msg.SenderID, msg.RecipientID, msg.Text,
		msg.SenderID, msg.RecipientID, msg.RecipientID, msg.SenderID,
		models.StatusBlocked).
		Scan(&inserted)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	msg.ID = inserted.ID
	msg.CreatedAt = inserted.CreatedAt
	return true, nil
}

func (r *messageRepository) FindByID(ctx context.Context, id uint) (*models.Message, error) {
	var msg models.Message
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) FindOwned(ctx context.Context, id, senderID uint) (*models.Message, error) {
	var msg models.Message
	err := r.db.WithContext(ctx).
		Where("id = ? AND sender_id = ?", id, senderID).
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) UpdateText(ctx context.Context, id uint, text string) error {
	return r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"text":   text,
			"edited": true,
		}).Error
}

func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.Message{}, id).Error
}

// ListConversation returns the window of messages exchanged between the two
// users, oldest first.
func (r *messageRepository) ListConversation(ctx context.Context, userID, partnerID uint, offset, limit int) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
