package handler

import (
	"net/http"
	"strconv"

	"chatline/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FriendRequestResponse is a pending request tagged with its direction
// relative to the caller.
type FriendRequestResponse struct {
	RelationshipResponse
	Direction string `json:"direction" example:"received"`
}

// RelationHandler exposes the friendship and block endpoints.
type RelationHandler struct {
	relationships service.RelationshipService
}

func NewRelationHandler(relationships service.RelationshipService) *RelationHandler {
	return &RelationHandler{relationships: relationships}
}

func parseTargetID(c *gin.Context) (uint, bool) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid target user ID")
		return 0, false
	}
	return uint(targetID), true
}

// SendRequest godoc
// @Summary      Send friend request
// @Description  Sends a friend request to another user. A refused request can be re-sent; a blocked pair cannot.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Target User ID"
// @Success      201  {object}  map[string]RelationshipResponse "{"relationship": {...}}"
// @Failure      400  {object}  ErrorResponse "Request to yourself"
// @Failure      403  {object}  ErrorResponse "Blocked pair"
// @Failure      409  {object}  ErrorResponse "Relationship already exists"
// @Router       /users/friends/requests/add/{id} [post]
func (h *RelationHandler) SendRequest(c *gin.Context) {
	targetID, ok := parseTargetID(c)
	if !ok {
		return
	}

	rel, err := h.relationships.Request(c.Request.Context(), currentUserID(c), targetID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"relationship": newRelationshipResponse(*rel)})
}

// AcceptRequest godoc
// @Summary      Accept friend request
// @Description  Accepts a pending friend request sent by the given user.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Requesting User ID"
// @Success      200  {object}  map[string]RelationshipResponse "{"relationship": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Pending request not found"
// @Router       /users/friends/requests/accept/{id} [put]
func (h *RelationHandler) AcceptRequest(c *gin.Context) {
	requesterID, ok := parseTargetID(c)
	if !ok {
		return
	}

	rel, err := h.relationships.Accept(c.Request.Context(), currentUserID(c), requesterID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"relationship": newRelationshipResponse(*rel)})
}

// RefuseRequest godoc
// @Summary      Refuse friend request
// @Description  Refuses a pending friend request sent by the given user. The requester may ask again later.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Requesting User ID"
// @Success      200  {object}  map[string]RelationshipResponse "{"relationship": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Pending request not found"
// @Router       /users/friends/requests/refuse/{id} [put]
func (h *RelationHandler) RefuseRequest(c *gin.Context) {
	requesterID, ok := parseTargetID(c)
	if !ok {
		return
	}

	rel, err := h.relationships.Refuse(c.Request.Context(), currentUserID(c), requesterID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"relationship": newRelationshipResponse(*rel)})
}

// BlockUser godoc
// @Summary      Block a user
// @Description  Blocks another user, overriding any existing relationship in either direction. Idempotent.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Target User ID"
// @Success      200  {object}  map[string]RelationshipResponse "{"relationship": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Router       /users/friends/block/{id} [put]
func (h *RelationHandler) BlockUser(c *gin.Context) {
	targetID, ok := parseTargetID(c)
	if !ok {
		return
	}

	rel, err := h.relationships.Block(c.Request.Context(), currentUserID(c), targetID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"relationship": newRelationshipResponse(*rel)})
}

// RemoveRelation godoc
// @Summary      Remove a relationship
// @Description  Deletes the relationship with the given user: unfriends, withdraws a request, or lifts the caller's own block.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Target User ID"
// @Success      200  {object}  map[string]RelationshipResponse "{"removedRelationship": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Relationship not found"
// @Router       /users/friends/{id} [delete]
func (h *RelationHandler) RemoveRelation(c *gin.Context) {
	targetID, ok := parseTargetID(c)
	if !ok {
		return
	}

	rel, err := h.relationships.Remove(c.Request.Context(), currentUserID(c), targetID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removedRelationship": newRelationshipResponse(*rel)})
}

// GetFriends godoc
// @Summary      List friends
// @Description  Lists every user with an accepted friendship with the caller.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]PublicUserResponse "{"friends": [...]}"
// @Router       /users/friends [get]
func (h *RelationHandler) GetFriends(c *gin.Context) {
	friends, err := h.relationships.ListFriends(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]PublicUserResponse, 0, len(friends))
	for _, friend := range friends {
		responses = append(responses, newPublicUserResponse(friend))
	}
	c.JSON(http.StatusOK, gin.H{"friends": responses})
}

// GetRequests godoc
// @Summary      List friend requests
// @Description  Lists the caller's pending friend requests, each tagged "sent" or "received".
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]FriendRequestResponse "{"requests": [...]}"
// @Router       /users/friends/requests [get]
func (h *RelationHandler) GetRequests(c *gin.Context) {
	requests, err := h.relationships.ListRequests(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]FriendRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, FriendRequestResponse{
			RelationshipResponse: newRelationshipResponse(req.Relationship),
			Direction:            string(req.Direction),
		})
	}
	c.JSON(http.StatusOK, gin.H{"requests": responses})
}
