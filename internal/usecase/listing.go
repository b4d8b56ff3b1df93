package usecase

import (
	"context"

	"user-registration-service/internal/domain"
)

// PageSize - фиксированный размер страницы списка пользователей.
const PageSize = 10

// ListingUseCase реализует чтение активных пользователей.
type ListingUseCase struct {
	userRepo domain.UserRepository
}

// NewListingUseCase создает новый экземпляр ListingUseCase.
func NewListingUseCase(userRepo domain.UserRepository) domain.ListingUseCase {
	return &ListingUseCase{userRepo: userRepo}
}

// GetUsers возвращает страницу активных пользователей.
// Отрицательный номер страницы приводится к нулю.
func (uc *ListingUseCase) GetUsers(ctx context.Context, page int) (*domain.UserPage, error) {
	if page < 0 {
		page = 0
	}

	users, total, err := uc.userRepo.ListActive(ctx, PageSize, page*PageSize)
	if err != nil {
		return nil, err
	}

	content := make([]domain.UserProjection, 0, len(users))
	for _, user := range users {
		content = append(content, domain.UserProjection{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		})
	}

	totalPages := int((total + PageSize - 1) / PageSize)

	return &domain.UserPage{
		Content:    content,
		Page:       page,
		Size:       PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetUser возвращает проекцию активного пользователя по ID.
func (uc *ListingUseCase) GetUser(ctx context.Context, userID int64) (*domain.UserProjection, error) {
	user, err := uc.userRepo.FindActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.UserProjection{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
