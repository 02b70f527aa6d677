package handler

import (
	"net/http"
	"strconv"

	"chatline/backend/internal/service"
	"chatline/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RegisterInput defines the payload for user registration.
type RegisterInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"password1"`
}

// LoginInput defines the payload for user login.
type LoginInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"password1"`
}

// UpdateProfileInput defines the payload for profile updates.
type UpdateProfileInput struct {
	AboutMe string `json:"aboutMe" example:"hello there"`
}

// endregion

// UserHandler exposes registration, login and profile endpoints.
type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Username taken"
// @Router       /auth/register [post]
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Register(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Router       /auth/login [post]
func (h *UserHandler) LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetMe godoc
// @Summary      Get current user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]PublicUserResponse "{"user": {...}}"
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.users.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newPublicUserResponse(*user)})
}

// GetUserByID godoc
// @Summary      Get a user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "User ID"
// @Success      200  {object}  map[string]PublicUserResponse "{"user": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.users.GetProfile(c.Request.Context(), uint(targetID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newPublicUserResponse(*user)})
}

// UpdateMe godoc
// @Summary      Update current user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UpdateProfileInput true "Profile fields"
// @Success      200  {object}  map[string]PublicUserResponse "{"user": {...}}"
// @Failure      400  {object}  ErrorResponse
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.UpdateAboutMe(c.Request.Context(), currentUserID(c), input.AboutMe)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newPublicUserResponse(*user)})
}
