package usecase

import (
	"context"
	"errors"
	"fmt"

	"user-registration-service/internal/domain"
)

// RegistrationUseCase реализует бизнес-логику регистрации пользователя.
// Вставка и отправка письма образуют единицу работы: либо пользователь
// сохранен и письмо принято шлюзом, либо транзакция откатана целиком.
type RegistrationUseCase struct {
	userRepo     domain.UserRepository
	emailGateway domain.EmailGateway
	hasher       domain.PasswordHasher
	tokens       domain.TokenGenerator
	validator    *RegistrationValidator
}

// NewRegistrationUseCase создает новый экземпляр RegistrationUseCase.
func NewRegistrationUseCase(
	userRepo domain.UserRepository,
	emailGateway domain.EmailGateway,
	hasher domain.PasswordHasher,
	tokens domain.TokenGenerator,
	validator *RegistrationValidator,
) domain.RegistrationUseCase {
	return &RegistrationUseCase{
		userRepo:     userRepo,
		emailGateway: emailGateway,
		hasher:       hasher,
		tokens:       tokens,
		validator:    validator,
	}
}

// Register проверяет данные и создает неактивного пользователя с токеном.
func (uc *RegistrationUseCase) Register(ctx context.Context, input domain.RegistrationInput) error {
	// Валидация до любых побочных эффектов
	if err := uc.validator.Validate(ctx, input); err != nil {
		return err
	}

	token, err := uc.tokens.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:        input.Username,
		Email:           input.Email,
		PasswordHash:    hash,
		Inactive:        true,
		ActivationToken: token,
	}

	tx, err := uc.userRepo.Begin(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.InsertUser(ctx, user); err != nil {
		_ = tx.Rollback()
		// Гонка check-then-insert: уникальный индекс сработал после
		// успешной проверки дубликата.
		if errors.Is(err, domain.ErrEmailInUse) {
			return &domain.ValidationError{FieldErrors: map[string]string{"email": "email_inuse"}}
		}
		return err
	}

	if err := uc.emailGateway.SendActivationEmail(ctx, user.Email, token); err != nil {
		_ = tx.Rollback()
		return domain.ErrEmailDelivery
	}

	return tx.Commit()
}
