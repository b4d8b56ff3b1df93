package handler

import (
	"errors"
	"net/http"
	"strconv"

	"user-registration-service/internal/domain"
	"user-registration-service/internal/i18n"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы регистрации, активации и чтения пользователей.
type UserHandler struct {
	*BaseHandler
	registrationUC domain.RegistrationUseCase
	activationUC   domain.ActivationUseCase
	listingUC      domain.ListingUseCase
	translator     *i18n.Translator
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(
	registrationUC domain.RegistrationUseCase,
	activationUC domain.ActivationUseCase,
	listingUC domain.ListingUseCase,
	translator *i18n.Translator,
	logger *logrus.Logger,
) *UserHandler {
	return &UserHandler{
		BaseHandler:    NewBaseHandler(logger),
		registrationUC: registrationUC,
		activationUC:   activationUC,
		listingUC:      listingUC,
		translator:     translator,
	}
}

// RegisterRoutes регистрирует маршруты API пользователей.
func RegisterRoutes(e *echo.Echo, h *UserHandler) {
	e.POST("/api/1.0/users", h.CreateUser)
	e.POST("/api/1.0/users/token/:token", h.ActivateUser)
	e.GET("/api/1.0/users", h.ListUsers)
	e.GET("/api/1.0/users/:id", h.GetUser)
}

type userCreateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUser обрабатывает запрос регистрации пользователя.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req userCreateRequest
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create user request")
		return c.JSON(http.StatusBadRequest, newErrorResponse(c, h.localize(c, "validation_failure")))
	}

	logEntry := h.logRequest(c, "create_user").WithField("username", req.Username)
	logEntry.Info("Registering user")

	err := h.registrationUC.Register(c.Request().Context(), domain.RegistrationInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.handleRegistrationError(c, logEntry, err)
	}

	logEntry.Info("User registered successfully")
	return c.JSON(http.StatusOK, MessageResponse{Message: h.localize(c, "user_create_success")})
}

// ActivateUser обрабатывает запрос активации по токену из пути.
func (h *UserHandler) ActivateUser(c echo.Context) error {
	token := c.Param("token")

	logEntry := h.logRequest(c, "activate_user")
	logEntry.Info("Activating account")

	if err := h.activationUC.Activate(c.Request().Context(), token); err != nil {
		logEntry.WithError(err).Warn("Failed to activate account")
		return h.handleDomainError(c, err)
	}

	logEntry.Info("Account activated successfully")
	return c.JSON(http.StatusOK, MessageResponse{Message: h.localize(c, "account_activation_success")})
}

// ListUsers обрабатывает запрос страницы активных пользователей.
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 0
	}

	logEntry := h.logRequest(c, "list_users").WithField("page", page)

	userPage, err := h.listingUC.GetUsers(c.Request().Context(), page)
	if err != nil {
		logEntry.WithError(err).Error("Failed to list users")
		return h.handleDomainError(c, err)
	}

	logEntry.WithField("count", len(userPage.Content)).Info("Users listed successfully")
	return c.JSON(http.StatusOK, userPage)
}

// GetUser обрабатывает запрос одного активного пользователя по ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	logEntry := h.logRequest(c, "get_user").WithField("user_id", c.Param("id"))

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// Нечисловой ID не соответствует ни одному пользователю
		logEntry.Warn("Non-numeric user id")
		return h.handleDomainError(c, domain.ErrUserNotFound)
	}

	user, err := h.listingUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get user")
		return h.handleDomainError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// handleRegistrationError различает ошибки валидации и остальные domain ошибки.
func (h *UserHandler) handleRegistrationError(c echo.Context, logEntry *logrus.Entry, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		logEntry.WithField("fields", len(vErr.FieldErrors)).Warn("Registration validation failed")

		validationErrors := make(FieldErrors, len(vErr.FieldErrors))
		for field, key := range vErr.FieldErrors {
			validationErrors[field] = h.localize(c, key)
		}

		resp := newErrorResponse(c, h.localize(c, "validation_failure"))
		resp.ValidationErrors = validationErrors
		return c.JSON(http.StatusBadRequest, resp)
	}

	logEntry.WithError(err).Error("Failed to register user")
	return h.handleDomainError(c, err)
}

// handleDomainError преобразует domain ошибку в конверт с локализованным сообщением.
func (h *UserHandler) handleDomainError(c echo.Context, err error) error {
	if key, ok := domain.MessageKey(err); ok {
		return c.JSON(getHTTPStatusCode(err), newErrorResponse(c, h.localize(c, key)))
	}
	return c.JSON(http.StatusInternalServerError, newErrorResponse(c, err.Error()))
}

func (h *UserHandler) localize(c echo.Context, key string) string {
	return h.translator.Localize(key, c.Request().Header.Get("Accept-Language"))
}
