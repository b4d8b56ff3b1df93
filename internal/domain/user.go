package domain

import (
	"context"
	"time"
)

// User представляет учетную запись пользователя в системе.
type User struct {
	ID              int64
	Username        string
	Email           string
	PasswordHash    string
	Inactive        bool
	ActivationToken string
	CreatedAt       time.Time
}

// UserProjection - публичное представление пользователя.
// Хеш пароля и токен активации наружу не отдаются.
type UserProjection struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserPage представляет страницу активных пользователей.
type UserPage struct {
	Content    []UserProjection `json:"content"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"totalPages"`
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByActivationToken(ctx context.Context, token string) (*User, error)
	Activate(ctx context.Context, userID int64) error
	FindActiveByID(ctx context.Context, userID int64) (*User, error)
	ListActive(ctx context.Context, limit, offset int) ([]*User, int64, error)
	Begin(ctx context.Context) (RegistrationTx, error)
}

// RegistrationTx - единица работы регистрации: ровно одна вставка,
// подтверждаемая или откатываемая вместе с отправкой письма активации.
type RegistrationTx interface {
	InsertUser(ctx context.Context, user *User) (int64, error)
	Commit() error
	Rollback() error
}

// EmailGateway отправляет письмо с токеном активации.
type EmailGateway interface {
	SendActivationEmail(ctx context.Context, to, token string) error
}

// PasswordHasher - одностороннее хеширование паролей.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// TokenGenerator выдает случайный токен активации.
type TokenGenerator interface {
	Generate() (string, error)
}
