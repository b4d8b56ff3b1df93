package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Registration errors
	ErrEmailInUse    = errors.New("e-mail already in use")
	ErrEmailDelivery = errors.New("activation e-mail delivery failed")

	// Activation errors
	ErrInvalidToken = errors.New("invalid activation token")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError содержит ошибки валидации по полям.
// Значения - стабильные ключи локализуемых сообщений.
type ValidationError struct {
	FieldErrors map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// Маппинг domain ошибок в ключи локализуемых сообщений
var ErrorMapping = map[error]string{
	ErrEmailDelivery: "email_failure",
	ErrInvalidToken:  "account_activation_failure",
	ErrUserNotFound:  "user_not_found",
}

// MessageKey возвращает ключ сообщения для domain ошибки.
func MessageKey(err error) (string, bool) {
	for domainErr, key := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return key, true
		}
	}
	return "", false
}
