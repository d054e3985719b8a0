package i18n

import (
	"embed"

	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed en.json de.json
var messageFiles embed.FS

// Service übersetzt Message-Keys für Antworten und Fehler.
type Service interface {
	T(lang string, key string, params map[string]any) string
}

// I18nService hält je unterstützter Sprache einen Localizer. Unbekannte Sprachen fallen auf Englisch zurück.
type I18nService struct {
	bundle     *i18n.Bundle
	localizers map[string]*i18n.Localizer
	fallback   *i18n.Localizer
}

func NewInitI18nService() *I18nService {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, name := range []string{"en.json", "de.json"} {
		if _, err := bundle.LoadMessageFileFS(messageFiles, name); err != nil {
			panic(err)
		}
	}

	localizers := make(map[string]*i18n.Localizer)
	for _, tag := range bundle.LanguageTags() {
		base, _ := tag.Base()
		localizers[base.String()] = i18n.NewLocalizer(bundle, tag.String())
	}

	return &I18nService{
		bundle:     bundle,
		localizers: localizers,
		fallback:   i18n.NewLocalizer(bundle, language.English.String()),
	}
}

// T liefert den Text zu key; ist der Schlüssel unbekannt, wird key selbst zurückgegeben.
func (g *I18nService) T(lang string, key string, params map[string]any) string {
	localizer, ok := g.localizers[lang]
	if !ok {
		localizer = g.fallback
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: params,
	})
	if err != nil {
		return key
	}

	return msg
}
