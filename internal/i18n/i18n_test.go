package i18n_test

import (
	"testing"

	"user-registration-service/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	translator, err := i18n.NewTranslator()
	require.NoError(t, err)
	return translator
}

func TestTranslator_Localize_English(t *testing.T) {
	translator := newTranslator(t)

	assert.Equal(t, "User created", translator.Localize("user_create_success", "en"))
	assert.Equal(t, "E-mail in use", translator.Localize("email_inuse", "en"))
}

func TestTranslator_Localize_Turkish(t *testing.T) {
	translator := newTranslator(t)

	assert.Equal(t, "Kullanıcı oluşturuldu", translator.Localize("user_create_success", "tr"))
}

func TestTranslator_Localize_FallbackToEnglish(t *testing.T) {
	translator := newTranslator(t)

	// Неизвестный язык и пустой заголовок разрешаются в язык по умолчанию
	assert.Equal(t, "User created", translator.Localize("user_create_success", "de"))
	assert.Equal(t, "User created", translator.Localize("user_create_success", ""))
}

func TestTranslator_Localize_AcceptLanguageWithQuality(t *testing.T) {
	translator := newTranslator(t)

	assert.Equal(t, "Kullanıcı oluşturuldu",
		translator.Localize("user_create_success", "tr-TR,tr;q=0.9,en;q=0.8"))
}

func TestTranslator_Localize_UnknownKeyReturnsKey(t *testing.T) {
	translator := newTranslator(t)

	assert.Equal(t, "no_such_key", translator.Localize("no_such_key", "en"))
}
