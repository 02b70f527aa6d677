package repository

import (
	"context"
	"time"

	"chatline/backend/internal/models"

	"gorm.io/gorm"
)

// RelationshipRepository provides access to the single edge per user pair.
// Transition methods are conditional writes: they only apply when the row is
// still in the expected state, so a race loses cleanly instead of clobbering
// a concurrent transition. The unordered-pair unique index makes concurrent
// creates fail with gorm.ErrDuplicatedKey rather than double-inserting.
type RelationshipRepository interface {
	Create(ctx context.Context, rel *models.Relationship) error
	FindByPair(ctx context.Context, userA, userB uint) (*models.Relationship, error)
	FindPending(ctx context.Context, requesterID, recipientID uint) (*models.Relationship, error)
	FindBlocked(ctx context.Context, userA, userB uint) (*models.Relationship, error)
	MarkAccepted(ctx context.Context, id uint, at time.Time) (bool, error)
	MarkRefused(ctx context.Context, id uint) (bool, error)
	ReopenRequest(ctx context.Context, id, requesterID, recipientID uint) (bool, error)
	OverrideAsBlocked(ctx context.Context, id, blockerID, blockedID uint) error
	DeleteByPair(ctx context.Context, userA, userB uint) (*models.Relationship, error)
	ListByStatus(ctx context.Context, userID uint, status models.RelationshipStatus) ([]models.Relationship, error)
}

type relationshipRepository struct {
	db *gorm.DB
}

func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

func (r *relationshipRepository) Create(ctx context.Context, rel *models.Relationship) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

// FindByPair looks up the edge in either orientation.
func (r *relationshipRepository) FindByPair(ctx context.Context, userA, userB uint) (*models.Relationship, error) {
	var rel models.Relationship
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// FindPending is the directional lookup used by accept and refuse: only the
// recipient of a pending request can match it.
func (r *relationshipRepository) FindPending(ctx context.Context, requesterID, recipientID uint) (*models.Relationship, error) {
	var rel models.Relationship
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND recipient_id = ? AND status = ?",
			requesterID, recipientID, models.StatusPending).
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *relationshipRepository) FindBlocked(ctx context.Context, userA, userB uint) (*models.Relationship, error) {
	var rel models.Relationship
	err := r.db.WithContext(ctx).
		Where("((sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)) AND status = ?",
			userA, userB, userB, userA, models.StatusBlocked).
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// MarkAccepted moves a PENDING edge to ACCEPTED. Returns false when the row
// was no longer pending, which means a concurrent transition won.
func (r *relationshipRepository) MarkAccepted(ctx context.Context, id uint, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":      models.StatusAccepted,
			"accepted_at": at,
		})
	return result.RowsAffected > 0, result.Error
}

// MarkRefused moves a PENDING edge to REFUSED, leaving accepted_at null.
func (r *relationshipRepository) MarkRefused(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", models.StatusRefused)
	return result.RowsAffected > 0, result.Error
}

// ReopenRequest turns a REFUSED edge back into a fresh PENDING request,
// reassigning the direction to the new requester.
func (r *relationshipRepository) ReopenRequest(ctx context.Context, id, requesterID, recipientID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("id = ? AND status = ?", id, models.StatusRefused).
		Updates(map[string]interface{}{
			"sender_id":    requesterID,
			"recipient_id": recipientID,
			"status":       models.StatusPending,
			"accepted_at":  nil,
		})
	return result.RowsAffected > 0, result.Error
}

// OverrideAsBlocked forces the edge into BLOCKED with the blocker recorded
// as sender. Unconditional: block succeeds from any prior state.
func (r *relationshipRepository) OverrideAsBlocked(ctx context.Context, id, blockerID, blockedID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sender_id":    blockerID,
			"recipient_id": blockedID,
			"status":       models.StatusBlocked,
			"accepted_at":  nil,
		}).Error
}

// DeleteByPair removes the edge in whichever orientation it exists and
// returns the removed record.
func (r *relationshipRepository) DeleteByPair(ctx context.Context, userA, userB uint) (*models.Relationship, error) {
	rel, err := r.FindByPair(ctx, userA, userB)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Delete(&models.Relationship{}, rel.ID)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rel, nil
}

func (r *relationshipRepository) ListByStatus(ctx context.Context, userID uint, status models.RelationshipStatus) ([]models.Relationship, error) {
	var rels []models.Relationship
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? OR recipient_id = ?) AND status = ?", userID, userID, status).
		Order("updated_at DESC").
		Find(&rels).Error
	return rels, err
}
