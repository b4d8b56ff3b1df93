// Package mocks содержит testify-моки domain интерфейсов для unit-тестов.
package mocks

import (
	"context"

	"user-registration-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) FindByActivationToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) Activate(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserRepository) FindActiveByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) ListActive(ctx context.Context, limit, offset int) ([]*domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *UserRepository) Begin(ctx context.Context) (domain.RegistrationTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RegistrationTx), args.Error(1)
}

type RegistrationTx struct {
	mock.Mock
}

func (m *RegistrationTx) InsertUser(ctx context.Context, user *domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RegistrationTx) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *RegistrationTx) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

type EmailGateway struct {
	mock.Mock
}

func (m *EmailGateway) SendActivationEmail(ctx context.Context, to, token string) error {
	args := m.Called(ctx, to, token)
	return args.Error(0)
}

type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

type TokenGenerator struct {
	mock.Mock
}

func (m *TokenGenerator) Generate() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

type RegistrationUseCase struct {
	mock.Mock
}

func (m *RegistrationUseCase) Register(ctx context.Context, input domain.RegistrationInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

type ActivationUseCase struct {
	mock.Mock
}

func (m *ActivationUseCase) Activate(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type ListingUseCase struct {
	mock.Mock
}

func (m *ListingUseCase) GetUsers(ctx context.Context, page int) (*domain.UserPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPage), args.Error(1)
}

func (m *ListingUseCase) GetUser(ctx context.Context, userID int64) (*domain.UserProjection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProjection), args.Error(1)
}
