package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher реализует одностороннее хеширование паролей через bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher создает хешер с заданной стоимостью.
// Стоимость вне допустимого диапазона заменяется на bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash возвращает bcrypt-хеш пароля.
func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}
