package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var localeFiles = []string{
	"locales/en.json",
	"locales/tr.json",
}

// Translator разрешает ключи сообщений в локализованный текст.
// Язык выбирается по заголовку Accept-Language, fallback - английский.
type Translator struct {
	bundle *goi18n.Bundle
}

// NewTranslator загружает встроенные каталоги сообщений.
func NewTranslator() (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("failed to load locale %s: %w", file, err)
		}
	}

	return &Translator{bundle: bundle}, nil
}

// Localize возвращает сообщение по ключу для языков из Accept-Language.
// Неизвестный ключ возвращается как есть: ключи стабильны и пригодны
// как идентификаторы даже без перевода.
func (t *Translator) Localize(key, acceptLanguage string) string {
	localizer := goi18n.NewLocalizer(t.bundle, acceptLanguage)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}
