package models

import "time"

// RelationshipStatus defines the state of the single edge between two users.
type RelationshipStatus string

const (
	// StatusPending means a friend request has been sent but not yet answered.
	// SenderID is the requester, RecipientID must accept or refuse.
	StatusPending RelationshipStatus = "PENDING"

	// StatusAccepted means the friend request was accepted, and the users are now friends.
	StatusAccepted RelationshipStatus = "ACCEPTED"

	// StatusRefused means the last request was turned down. A refused edge does
	// not prevent a fresh request between the pair.
	StatusRefused RelationshipStatus = "REFUSED"

	// StatusBlocked means SenderID has blocked RecipientID. A blocked edge
	// supersedes messaging and friend requests in both directions.
	StatusBlocked RelationshipStatus = "BLOCKED"
)

// Relationship is the single edge between an unordered pair of users.
// SenderID/RecipientID record who initiated the current status, so their
// meaning depends on Status; the AsPending/AsBlock views give the
// direction its per-state name. Uniqueness over the unordered pair is
// enforced by a database index on (LEAST(sender_id, recipient_id),
// GREATEST(sender_id, recipient_id)).
type Relationship struct {
	ID          uint               `gorm:"primaryKey"`
	SenderID    uint               `gorm:"not null;index"`
	RecipientID uint               `gorm:"not null;index"`
	Status      RelationshipStatus `gorm:"type:varchar(10);not null"`
	AcceptedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Sender    User `gorm:"foreignKey:SenderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Recipient User `gorm:"foreignKey:RecipientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// OtherParty returns the endpoint that is not userID.
func (r Relationship) OtherParty(userID uint) uint {
	if r.SenderID == userID {
		return r.RecipientID
	}
	return r.SenderID
}

// PendingRequest is the typed view of a PENDING edge.
type PendingRequest struct {
	RequesterID uint
	RecipientID uint
}

// BlockEdge is the typed view of a BLOCKED edge.
type BlockEdge struct {
	BlockerID uint
	BlockedID uint
}

// AsPending projects a PENDING edge into its typed view. The second return
// value is false for any other status.
func (r Relationship) AsPending() (PendingRequest, bool) {
	if r.Status != StatusPending {
		return PendingRequest{}, false
	}
	return PendingRequest{RequesterID: r.SenderID, RecipientID: r.RecipientID}, true
}

// AsBlock projects a BLOCKED edge into its typed view. The second return
// value is false for any other status.
func (r Relationship) AsBlock() (BlockEdge, bool) {
	if r.Status != StatusBlocked {
		return BlockEdge{}, false
	}
	return BlockEdge{BlockerID: r.SenderID, BlockedID: r.RecipientID}, true
}
