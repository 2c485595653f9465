package repositories

import (
	"context"
	"database/sql"
	"strings"

	"gharBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
    INSERT INTO users (username, email, password, first_name, last_name, created_at)
    VALUES (?, ?, ?, ?, ?, ?)
    `

	result, err := r.DB.ExecContext(ctx, query,
		user.Username,
		user.Email,
		user.Password,
		user.FirstName,
		user.LastName,
		user.CreatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			// The unique index name tells the two constraints apart.
			if strings.Contains(err.Error(), "users_email") {
				return models.User{}, models.ErrDuplicateEmail
			}
			return models.User{}, models.ErrDuplicateUsername
		}
		return models.User{}, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(lastID)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return r.getUser(ctx, `WHERE id = ?`, id)
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getUser(ctx, `WHERE username = ?`, username)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, `WHERE email = ?`, email)
}

func (r *UserRepository) getUser(ctx context.Context, where string, arg interface{}) (models.User, error) {
	query := `SELECT id, username, email, password, first_name, last_name, created_at FROM users ` + where

	var user models.User
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SetSession stores the refresh session for the user, replacing any previous
// one. A user has at most one active browser session at a time.
func (r *UserRepository) SetSession(ctx context.Context, session models.Session) error {
	query := `
    INSERT INTO sessions (user_id, refresh_token, expires_at)
    VALUES (?, ?, ?)
    ON DUPLICATE KEY UPDATE refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)
    `
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `SELECT user_id, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`

	var session models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.RefreshToken, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) DeleteSession(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}
