package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"sort"
	"time"

	"user-registration-service/internal/domain"

	"github.com/labstack/echo/v4"
)

// ErrorResponse - единый конверт ошибок API.
// validationErrors присутствует только при ошибках валидации.
type ErrorResponse struct {
	Path             string      `json:"path"`
	Timestamp        int64       `json:"timestamp"`
	Message          string      `json:"message"`
	ValidationErrors FieldErrors `json:"validationErrors,omitempty"`
}

// FieldErrors - ошибки валидации по полям. Сериализуется в фиксированном
// порядке: username, email, password.
type FieldErrors map[string]string

var fieldOrder = []string{"username", "email", "password"}

func (f FieldErrors) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(f))
	for _, key := range fieldOrder {
		if _, ok := f[key]; ok {
			keys = append(keys, key)
		}
	}
	rest := make([]string, 0)
	for key := range f {
		if !slices.Contains(fieldOrder, key) {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MessageResponse - конверт успешного ответа с локализованным сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c echo.Context, message string) ErrorResponse {
	return ErrorResponse{
		Path:      c.Request().URL.Path,
		Timestamp: time.Now().UnixMilli(),
		Message:   message,
	}
}

func getHTTPStatusCode(err error) int {
	switch {
	// Bad Gateway (502) - сбой внешнего почтового шлюза
	case errors.Is(err, domain.ErrEmailDelivery):
		return http.StatusBadGateway

	// Bad Request (400) - неизвестный или погашенный токен
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusBadRequest

	// Not Found (404)
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
