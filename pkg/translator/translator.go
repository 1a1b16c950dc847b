package translator

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embeddedTranslations embed.FS

var Translator *i18n.Bundle

type Config struct {
	// TranslationFolder overrides the embedded message files when set.
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageEn = "en"
	LanguageEs = "es"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var (
		files fs.FS = embeddedTranslations
		root        = "translation"
	)
	if cfg.TranslationFolder != "" {
		files = os.DirFS(cfg.TranslationFolder)
		root = "."
	}

	lstFiles, err := fs.ReadDir(files, root)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || path.Ext(f.Name()) != ".toml" {
			continue
		}

		if _, err := Translator.LoadMessageFileFS(files, path.Join(root, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}

	for _, lang := range cfg.SupportedLanguages {
		if !hasLanguage(lang) {
			zap.L().Warn("no translation file for supported language", zap.String("lang", lang))
		}
	}
}

// Localize resolves messageID for lang, falling back to English and then to the id itself.
func Localize(lang, messageID string, data map[string]any) string {
	if Translator == nil {
		return messageID
	}

	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", messageID), zap.Error(err))
		return messageID
	}
	return msg
}

func hasLanguage(lang string) bool {
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	for _, t := range Translator.LanguageTags() {
		if t == tag {
			return true
		}
	}
	return false
}
