package service

import (
	"context"
	"errors"
	"time"

	"chatline/backend/internal/models"
	"chatline/backend/internal/repository"

	"gorm.io/gorm"
)

// RequestDirection tags a pending request relative to the listing user.
type RequestDirection string

const (
	RequestSent     RequestDirection = "sent"
	RequestReceived RequestDirection = "received"
)

// TaggedRequest is a pending request together with its direction relative to
// the user who listed it.
type TaggedRequest struct {
	Relationship models.Relationship
	Direction    RequestDirection
}

// RelationshipService owns the friendship/block state machine. It is the
// single authority on whether two users may message each other. Every call
// takes the authenticated user explicitly as its first id parameter.
type RelationshipService interface {
	Request(ctx context.Context, senderID, recipientID uint) (*models.Relationship, error)
	Accept(ctx context.Context, acceptorID, requesterID uint) (*models.Relationship, error)
	Refuse(ctx context.Context, recipientID, requesterID uint) (*models.Relationship, error)
	Block(ctx context.Context, blockerID, targetID uint) (*models.Relationship, error)
	Remove(ctx context.Context, requesterID, otherID uint) (*models.Relationship, error)
	// IsBlocked returns the block edge between the pair, or nil when none
	// exists. Callers that need to know who imposed the block read BlockerID.
	IsBlocked(ctx context.Context, userA, userB uint) (*models.BlockEdge, error)
	ListFriends(ctx context.Context, userID uint) ([]models.User, error)
	ListRequests(ctx context.Context, userID uint) ([]TaggedRequest, error)
}

type relationshipService struct {
	rels  repository.RelationshipRepository
	users repository.UserRepository
}

func NewRelationshipService(rels repository.RelationshipRepository, users repository.UserRepository) RelationshipService {
	return &relationshipService{rels: rels, users: users}
}

// Request creates a PENDING edge towards recipientID, or revives a REFUSED
// one. An existing PENDING or ACCEPTED edge is a conflict; a BLOCKED edge
// forbids requesting in both directions. Racing inserts for the same pair
// hit the unordered-pair unique index and are retried once against the row
// that won.
func (s *relationshipService) Request(ctx context.Context, senderID, recipientID uint) (*models.Relationship, error) {
	if senderID == recipientID {
		return nil, ValidationError("Cannot send a friend request to yourself")
	}

	for attempt := 0; ; attempt++ {
		rel, err := s.rels.FindByPair(ctx, senderID, recipientID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			newRel := &models.Relationship{
				SenderID:    senderID,
				RecipientID: recipientID,
				Status:      models.StatusPending,
			}
			err = s.rels.Create(ctx, newRel)
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				if attempt == 0 {
					continue // lost the race, reread the winning row
				}
				return nil, ConflictError("Relationship already exists")
			}
			if err != nil {
				return nil, err
			}
			return newRel, nil
		}
		if err != nil {
			return nil, err
		}

		switch rel.Status {
		case models.StatusBlocked:
			block, _ := rel.AsBlock()
			if block.BlockerID == senderID {
				return nil, PermissionError("You have blocked this user")
			}
			return nil, PermissionError("You are blocked by this user")
		case models.StatusPending, models.StatusAccepted:
			return nil, ConflictError("Relationship already exists")
		case models.StatusRefused:
			ok, err := s.rels.ReopenRequest(ctx, rel.ID, senderID, recipientID)
			if err != nil {
				return nil, err
			}
			if !ok {
				if attempt == 0 {
					continue // row changed under us, reread
				}
				return nil, ConflictError("Relationship already exists")
			}
			rel.SenderID = senderID
			rel.RecipientID = recipientID
			rel.Status = models.StatusPending
			rel.AcceptedAt = nil
			return rel, nil
		default:
			return nil, ConflictError("Relationship already exists")
		}
	}
}

// Accept resolves a pending request sent by requesterID to acceptorID. The
// directional lookup is the authorization check: accepting one's own
// outgoing request matches nothing.
func (s *relationshipService) Accept(ctx context.Context, acceptorID, requesterID uint) (*models.Relationship, error) {
	rel, err := s.rels.FindPending(ctx, requesterID, acceptorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError("Pending request not found")
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ok, err := s.rels.MarkAccepted(ctx, rel.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFoundError("Pending request not found")
	}

	rel.Status = models.StatusAccepted
	rel.AcceptedAt = &now
	return rel, nil
}

// Refuse turns a pending request down. The edge stays around as REFUSED and
// does not prevent a later request.
func (s *relationshipService) Refuse(ctx context.Context, recipientID, requesterID uint) (*models.Relationship, error) {
	rel, err := s.rels.FindPending(ctx, requesterID, recipientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError("Pending request not found")
	}
	if err != nil {
		return nil, err
	}

	ok, err := s.rels.MarkRefused(ctx, rel.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFoundError("Pending request not found")
	}

	rel.Status = models.StatusRefused
	return rel, nil
}

// Block forces the edge into BLOCKED with blockerID recorded as sender,
// creating the edge if none exists. Idempotent and direction-overriding: it
// succeeds from any prior state, including re-blocking.
func (s *relationshipService) Block(ctx context.Context, blockerID, targetID uint) (*models.Relationship, error) {
	if blockerID == targetID {
		return nil, ValidationError("Cannot block yourself")
	}

	for attempt := 0; ; attempt++ {
		rel, err := s.rels.FindByPair(ctx, blockerID, targetID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			newRel := &models.Relationship{
				SenderID:    blockerID,
				RecipientID: targetID,
				Status:      models.StatusBlocked,
			}
			err = s.rels.Create(ctx, newRel)
			if errors.Is(err, gorm.ErrDuplicatedKey) && attempt == 0 {
				continue // lost the race, override the winning row instead
			}
			if err != nil {
				return nil, err
			}
			return newRel, nil
		}
		if err != nil {
			return nil, err
		}

		if err := s.rels.OverrideAsBlocked(ctx, rel.ID, blockerID, targetID); err != nil {
			return nil, err
		}
		rel.SenderID = blockerID
		rel.RecipientID = targetID
		rel.Status = models.StatusBlocked
		rel.AcceptedAt = nil
		return rel, nil
	}
}

// Remove deletes the edge in whichever orientation it exists. It dissolves a
// friendship, cancels a request, and is also the blocker's way to unblock.
func (s *relationshipService) Remove(ctx context.Context, requesterID, otherID uint) (*models.Relationship, error) {
	rel, err := s.rels.DeleteByPair(ctx, requesterID, otherID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError("Relationship not found")
	}
	if err != nil {
		return nil, err
	}
	return rel, nil
}

func (s *relationshipService) IsBlocked(ctx context.Context, userA, userB uint) (*models.BlockEdge, error) {
	rel, err := s.rels.FindBlocked(ctx, userA, userB)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	block, _ := rel.AsBlock()
	return &block, nil
}

// ListFriends returns the other party of every ACCEPTED edge touching userID.
func (s *relationshipService) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	rels, err := s.rels.ListByStatus(ctx, userID, models.StatusAccepted)
	if err != nil {
		return nil, err
	}

	friendIDs := make([]uint, 0, len(rels))
	for _, rel := range rels {
		friendIDs = append(friendIDs, rel.OtherParty(userID))
	}

	return s.users.ListByIDs(ctx, friendIDs)
}

// ListRequests returns every PENDING edge touching userID, tagged with
// whether userID sent or received it.
func (s *relationshipService) ListRequests(ctx context.Context, userID uint) ([]TaggedRequest, error) {
	rels, err := s.rels.ListByStatus(ctx, userID, models.StatusPending)
	if err != nil {
		return nil, err
	}

	requests := make([]TaggedRequest, 0, len(rels))
	for _, rel := range rels {
		req, ok := rel.AsPending()
		if !ok {
			continue
		}
		direction := RequestReceived
		if req.RequesterID == userID {
			direction = RequestSent
		}
		requests = append(requests, TaggedRequest{Relationship: rel, Direction: direction})
	}
	return requests, nil
}
