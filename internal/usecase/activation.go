package usecase

import (
	"context"
	"errors"

	"user-registration-service/internal/domain"
)

// ActivationUseCase реализует активацию учетной записи по токену.
type ActivationUseCase struct {
	userRepo domain.UserRepository
}

// NewActivationUseCase создает новый экземпляр ActivationUseCase.
func NewActivationUseCase(userRepo domain.UserRepository) domain.ActivationUseCase {
	return &ActivationUseCase{userRepo: userRepo}
}

// Activate находит пользователя по токену и активирует его.
// Уже погашенный токен ищется так же и не находится, поэтому повторная
// активация возвращает ту же ошибку, что и несуществующий токен.
func (uc *ActivationUseCase) Activate(ctx context.Context, token string) error {
	user, err := uc.userRepo.FindByActivationToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidToken
		}
		return err
	}

	return uc.userRepo.Activate(ctx, user.ID)
}
