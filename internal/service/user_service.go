package service

import (
	"context"
	"errors"
	"regexp"
	"unicode/utf8"

	"chatline/backend/internal/models"
	"chatline/backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9 ]{1,20}$`)
	passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*]{6,32}$`)
)

const maxAboutMeLength = 200

// UserService handles registration, credential checks and profiles. It sits
// on the identity edge of the system; the relationship and message services
// never deal with credentials.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
	UpdateAboutMe(ctx context.Context, userID uint, aboutMe string) (*models.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, ValidationError("Username must be 1 to 20 characters of letters, numbers and spaces")
	}
	if !passwordPattern.MatchString(password) {
		return nil, ValidationError("Password must be 6 to 32 characters of letters, numbers and !@#$%^&*")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	err = s.users.Create(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ConflictError("Username already exists")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate reports invalid username and invalid password identically, so
// the login endpoint does not leak which usernames exist.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, UnauthorizedError("Invalid username or password")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, UnauthorizedError("Invalid username or password")
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError("User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateAboutMe(ctx context.Context, userID uint, aboutMe string) (*models.User, error) {
	if utf8.RuneCountInString(aboutMe) > maxAboutMeLength {
		return nil, ValidationError("About me must be at most 200 characters")
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateAboutMe(ctx, userID, aboutMe); err != nil {
		return nil, err
	}
	user.AboutMe = aboutMe
	return user, nil
}
