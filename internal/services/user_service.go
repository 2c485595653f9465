package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gharBack/internal/models"
	"gharBack/utils"
)

type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	SetSession(ctx context.Context, session models.Session) error
	GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error)
	DeleteSession(ctx context.Context, userID int) error
}

type UserService struct {
	UserRepo     UserStore
	TokenManager *utils.Manager
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

// Register creates the account and logs it in. Rejections (password
// mismatch, taken username, registered email) leave no trace: the user row
// is only written after every check passes, and the unique indexes cover
// the concurrent-registration race.
func (s *UserService) Register(ctx context.Context, user models.User, password, password2 string) (models.User, models.Tokens, error) {
	if password == "" || password != password2 {
		return models.User{}, models.Tokens{}, models.ErrPasswordMismatch
	}

	_, err := s.UserRepo.GetUserByUsername(ctx, user.Username)
	if err == nil {
		return models.User{}, models.Tokens{}, models.ErrDuplicateUsername
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, models.Tokens{}, err
	}

	_, err = s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err == nil {
		return models.User{}, models.Tokens{}, models.ErrDuplicateEmail
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, models.Tokens{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}
	user.Password = string(hashedPassword)
	user.CreatedAt = time.Now()

	user, err = s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	tokens, err := s.CreateSession(ctx, user)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}
	return user, tokens, nil
}

// SignIn authenticates by username and password. Unknown user and wrong
// password are indistinguishable to the caller on purpose.
func (s *UserService) SignIn(ctx context.Context, username, password string) (models.User, models.Tokens, error) {
	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
		}
		return models.User{}, models.Tokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
	}

	tokens, err := s.CreateSession(ctx, user)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}
	return user, tokens, nil
}

func (s *UserService) CreateSession(ctx context.Context, user models.User) (models.Tokens, error) {
	var (
		res models.Tokens
		err error
	)

	res.AccessToken, err = s.TokenManager.NewAccessToken(user.ID, s.AccessTTL)
	if err != nil {
		return models.Tokens{}, err
	}

	// Generate RefreshToken using UUID as a fallback
	res.RefreshToken = uuid.New().String()
	if s.TokenManager != nil {
		res.RefreshToken, err = s.TokenManager.NewRefreshToken()
		if err != nil {
			return res, err
		}
	}

	session := models.Session{
		UserID:       user.ID,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    time.Now().Add(s.RefreshTTL),
	}

	if err := s.UserRepo.SetSession(ctx, session); err != nil {
		return res, err
	}

	return res, nil
}

func (s *UserService) SignOut(ctx context.Context, userID int) error {
	return s.UserRepo.DeleteSession(ctx, userID)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}
