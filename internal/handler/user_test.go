package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"user-registration-service/internal/domain"
	"user-registration-service/internal/handler"
	"user-registration-service/internal/i18n"
	"user-registration-service/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	registration *mocks.RegistrationUseCase
	activation   *mocks.ActivationUseCase
	listing      *mocks.ListingUseCase
}

func newTestServer(t *testing.T) (*echo.Echo, handlerMocks) {
	t.Helper()

	translator, err := i18n.NewTranslator()
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := handlerMocks{
		registration: &mocks.RegistrationUseCase{},
		activation:   &mocks.ActivationUseCase{},
		listing:      &mocks.ListingUseCase{},
	}

	e := echo.New()
	h := handler.NewUserHandler(m.registration, m.activation, m.listing, translator, logger)
	handler.RegisterRoutes(e, h)

	return e, m
}

func postUser(e *echo.Echo, body, acceptLanguage string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/1.0/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUserHandler_CreateUser_Success(t *testing.T) {
	e, m := newTestServer(t)

	m.registration.On("Register", mock.Anything, domain.RegistrationInput{
		Username: "user1", Email: "user1@mail.com", Password: "P4ssword",
	}).Return(nil)

	rec := postUser(e, `{"username":"user1","email":"user1@mail.com","password":"P4ssword"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User created", resp.Message)
}

func TestUserHandler_CreateUser_SuccessLocalized(t *testing.T) {
	e, m := newTestServer(t)

	m.registration.On("Register", mock.Anything, mock.Anything).Return(nil)

	rec := postUser(e, `{"username":"user1","email":"user1@mail.com","password":"P4ssword"}`, "tr")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Kullanıcı oluşturuldu", resp.Message)
}

func TestUserHandler_CreateUser_ValidationFailure(t *testing.T) {
	e, m := newTestServer(t)

	m.registration.On("Register", mock.Anything, mock.Anything).Return(&domain.ValidationError{
		FieldErrors: map[string]string{
			"username": "username_null",
			"email":    "email_invalid",
		},
	})

	rec := postUser(e, `{"email":"fakeemail","password":"P4ssword"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/api/1.0/users", resp.Path)
	assert.NotZero(t, resp.Timestamp)
	assert.Equal(t, "Validation Failure", resp.Message)
	assert.Equal(t, handler.FieldErrors{
		"username": "username cannot be null",
		"email":    "E-mail is not valid",
	}, resp.ValidationErrors)

	// Порядок полей в конверте фиксирован: username, email, password
	body := rec.Body.String()
	assert.Less(t, strings.Index(body, `"username"`), strings.Index(body, `"email"`))
}

func TestUserHandler_CreateUser_EmailDeliveryFailure(t *testing.T) {
	e, m := newTestServer(t)

	m.registration.On("Register", mock.Anything, mock.Anything).Return(domain.ErrEmailDelivery)

	rec := postUser(e, `{"username":"user1","email":"user1@mail.com","password":"P4ssword"}`, "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "E-mail Failure", resp.Message)
	assert.Empty(t, resp.ValidationErrors)
}

func TestUserHandler_CreateUser_IgnoresClientSuppliedInactive(t *testing.T) {
	e, m := newTestServer(t)

	m.registration.On("Register", mock.Anything, domain.RegistrationInput{
		Username: "user1", Email: "user1@mail.com", Password: "P4ssword",
	}).Return(nil)

	body := `{"username":"user1","email":"user1@mail.com","password":"P4ssword","inactive":false}`
	rec := postUser(e, body, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	m.registration.AssertExpectations(t)
}

func TestUserHandler_ActivateUser_Success(t *testing.T) {
	e, m := newTestServer(t)

	m.activation.On("Activate", mock.Anything, "a1b2c3d4e5f60718").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/1.0/users/token/a1b2c3d4e5f60718", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Account is activated", resp.Message)
}

func TestUserHandler_ActivateUser_InvalidToken(t *testing.T) {
	e, m := newTestServer(t)

	m.activation.On("Activate", mock.Anything, "badtoken").Return(domain.ErrInvalidToken)

	req := httptest.NewRequest(http.MethodPost, "/api/1.0/users/token/badtoken", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "This account is either active or the token is invalid", resp.Message)
}

func TestUserHandler_ListUsers_DefaultPage(t *testing.T) {
	e, m := newTestServer(t)

	page := &domain.UserPage{
		Content:    []domain.UserProjection{{ID: 1, Username: "user1", Email: "user1@mail.com"}},
		Page:       0,
		Size:       10,
		TotalPages: 1,
	}
	m.listing.On("GetUsers", mock.Anything, 0).Return(page, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/1.0/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.UserPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, *page, resp)
}

func TestUserHandler_ListUsers_NegativePagePassedThrough(t *testing.T) {
	e, m := newTestServer(t)

	page := &domain.UserPage{Content: []domain.UserProjection{}, Page: 0, Size: 10}
	m.listing.On("GetUsers", mock.Anything, -1).Return(page, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/1.0/users?page=-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	m.listing.AssertCalled(t, "GetUsers", mock.Anything, -1)
}

func TestUserHandler_GetUser_Success(t *testing.T) {
	e, m := newTestServer(t)

	projection := &domain.UserProjection{ID: 5, Username: "user5", Email: "user5@mail.com"}
	m.listing.On("GetUser", mock.Anything, int64(5)).Return(projection, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/1.0/users/5", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// В проекции нет ни пароля, ни токена
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, map[string]any{"id": float64(5), "username": "user5", "email": "user5@mail.com"}, raw)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	e, m := newTestServer(t)

	m.listing.On("GetUser", mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/1.0/users/99", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User not found", resp.Message)
}

func TestUserHandler_GetUser_NonNumericID(t *testing.T) {
	e, m := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/1.0/users/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	m.listing.AssertNotCalled(t, "GetUser")
}
