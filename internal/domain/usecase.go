package domain

import "context"

// RegistrationInput - данные регистрации из запроса.
// Любые другие поля тела запроса (в том числе inactive) игнорируются.
type RegistrationInput struct {
	Username string
	Email    string
	Password string
}

// RegistrationUseCase определяет бизнес-логику регистрации пользователя.
type RegistrationUseCase interface {
	Register(ctx context.Context, input RegistrationInput) error
}

// ActivationUseCase определяет бизнес-логику активации по токену.
type ActivationUseCase interface {
	Activate(ctx context.Context, token string) error
}

// ListingUseCase определяет чтение активных пользователей.
type ListingUseCase interface {
	GetUsers(ctx context.Context, page int) (*UserPage, error)
	GetUser(ctx context.Context, userID int64) (*UserProjection, error)
}
