package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"user-registration-service/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Минимальная длина пароля, начиная с которой проверяется состав символов.
const passwordPatternMinLength = 8

// RegistrationValidator проверяет данные регистрации.
// Поля проверяются независимо (username, email, password), внутри одного
// поля проверки останавливаются на первой неудаче. Ошибки несут стабильные
// ключи сообщений, локализация происходит на уровне обработчика.
type RegistrationValidator struct {
	userRepo domain.UserRepository
}

// NewRegistrationValidator создает новый экземпляр RegistrationValidator.
func NewRegistrationValidator(userRepo domain.UserRepository) *RegistrationValidator {
	return &RegistrationValidator{userRepo: userRepo}
}

// Validate возвращает nil либо *domain.ValidationError с ошибками по полям.
func (v *RegistrationValidator) Validate(ctx context.Context, input domain.RegistrationInput) error {
	fieldErrors := map[string]string{}

	if key := firstRuleError(input.Username,
		validation.Required.Error("username_null"),
		validation.RuneLength(4, 32).Error("username_size"),
	); key != "" {
		fieldErrors["username"] = key
	}

	emailKey := firstRuleError(input.Email,
		validation.Required.Error("email_null"),
		is.EmailFormat.Error("email_invalid"),
	)
	if emailKey == "" {
		// Единственная асинхронная проверка: чтение из хранилища.
		exists, err := v.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return fmt.Errorf("failed to check e-mail uniqueness: %w", err)
		}
		if exists {
			emailKey = "email_inuse"
		}
	}
	if emailKey != "" {
		fieldErrors["email"] = emailKey
	}

	if key := firstRuleError(input.Password,
		validation.Required.Error("password_null"),
		validation.RuneLength(6, 0).Error("password_size"),
		validation.By(passwordPattern),
	); key != "" {
		fieldErrors["password"] = key
	}

	if len(fieldErrors) > 0 {
		return &domain.ValidationError{FieldErrors: fieldErrors}
	}
	return nil
}

// firstRuleError применяет правила по порядку и возвращает ключ первой ошибки.
func firstRuleError(value string, rules ...validation.Rule) string {
	if err := validation.Validate(value, rules...); err != nil {
		return err.Error()
	}
	return ""
}

// passwordPattern требует минимум одну строчную и одну заглавную букву,
// одну цифру и общую длину не менее passwordPatternMinLength.
func passwordPattern(value interface{}) error {
	password, _ := value.(string)

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if utf8.RuneCountInString(password) < passwordPatternMinLength || !hasLower || !hasUpper || !hasDigit {
		return errors.New("password_pattern")
	}
	return nil
}
