package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenLength - длина токена активации в hex-символах.
const TokenLength = 16

// HexTokenGenerator выдает случайные hex-токены фиксированной длины.
type HexTokenGenerator struct{}

// NewHexTokenGenerator создает новый генератор токенов.
func NewHexTokenGenerator() *HexTokenGenerator {
	return &HexTokenGenerator{}
}

// Generate возвращает криптографически случайный токен из TokenLength hex-символов.
func (g *HexTokenGenerator) Generate() (string, error) {
	b := make([]byte, TokenLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate activation token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
