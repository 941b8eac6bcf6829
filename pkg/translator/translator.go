package translator

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var translationFS embed.FS

var Translator *i18n.Bundle

const (
	LanguageEn = "en"
	LanguageFr = "fr"
)

// InitTranslator loads the embedded translation bundle. Embedding keeps
// the messages available regardless of the working directory.
func InitTranslator() {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := translationFS.ReadDir("translation")
	if err != nil {
		zap.L().Error("failed to list embedded translations", zap.Error(err))
		return
	}

	for _, entry := range entries {
		data, err := translationFS.ReadFile("translation/" + entry.Name())
		if err != nil {
			zap.L().Warn("failed to read translation file", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		if _, err := Translator.ParseMessageFileBytes(data, entry.Name()); err != nil {
			zap.L().Warn("failed to parse translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}
}
