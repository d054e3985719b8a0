package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AcceptLanguageMiddleware ruft Accept-Language von Header ab und speichert den Basis-Sprachcode bei c.Locals("lang").
func AcceptLanguageMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("lang", ParseLanguage(c.Get("Accept-Language")))
		return c.Next()
	}
}

// ParseLanguage nimmt den ersten Eintrag, z.B. "de" aus "de-DE,de;q=0.9,en;q=0.8".
func ParseLanguage(raw string) string {
	lang := strings.TrimSpace(strings.Split(raw, ",")[0])
	lang = strings.Split(lang, ";")[0]
	lang = strings.ToLower(strings.Split(lang, "-")[0])
	if lang == "" || lang == "*" {
		return "en"
	}
	return lang
}
