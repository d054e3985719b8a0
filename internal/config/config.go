package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name            string `mapstructure:"NAME"`
		Port            string `mapstructure:"PORT"`
		State           string `mapstructure:"STATE"`
		Timezone        string `mapstructure:"TIMEZONE"`
		CascadeSubtasks bool   `mapstructure:"CASCADE_SUBTASKS"`
	}

	DATABASE struct {
		Postgres struct {
			DSN string `mapstructure:"DSN"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
		}
	}

	AUTH struct {
		Mode         string        `mapstructure:"MODE"` // remote | paseto
		BaseURL      string        `mapstructure:"BASE_URL"`
		VerifyPath   string        `mapstructure:"VERIFY_PATH"`
		SearchPath   string        `mapstructure:"SEARCH_PATH"`
		Timeout      time.Duration `mapstructure:"TIMEOUT"`
		CacheTTL     time.Duration `mapstructure:"CACHE_TTL"`
		PasetoHexKey string        `mapstructure:"PASETO_HEX_KEY"`
	}

	SCORE struct {
		BaseURL string        `mapstructure:"BASE_URL"`
		Timeout time.Duration `mapstructure:"TIMEOUT"`
	}

	UPLOAD struct {
		Dir               string   `mapstructure:"DIR"`
		MaxSize           int64    `mapstructure:"MAX_SIZE"`
		AllowedExtensions []string `mapstructure:"ALLOWED_EXTENSIONS"`
		AllowedMimeTypes  []string `mapstructure:"ALLOWED_MIME_TYPES"`
	}

	REALTIME struct {
		RedisFanout  bool `mapstructure:"REDIS_FANOUT"`
		VerifyTokens bool `mapstructure:"VERIFY_TOKENS"`
		SendBuffer   int  `mapstructure:"SEND_BUFFER"`
	}

	MAILTRAP struct {
		Sandbox struct {
			SandboxHost   string `mapstructure:"SANDBOX_HOST"`
			SandboxAPI    string `mapstructure:"SANDBOX_API"`
			SandboxURL    string `mapstructure:"SANDBOX_URL"`
			SandboxDomain string `mapstructure:"SANDBOX_DOMAIN"`
		}
		API struct {
			APIToken         string `mapstructure:"API_TOKEN"`
			APIHost          string `mapstructure:"API_HOST"`
			MailtrapTokenAPI string `mapstructure:"MAILTRAP_TOKEN_API"`
			MailtrapURL      string `mapstructure:"MAILTRAP_URL"`
			MailtrapDomain   string `mapstructure:"MAILTRAP_DOMAIN"`
		}
	}
}

var defaultExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".pdf", ".doc", ".docx", ".txt", ".xls", ".xlsx", ".zip"}

var defaultMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/zip",
	"application/x-zip-compressed",
}

// LoadConfig liest application.yaml aus dem Arbeitsverzeichnis. Umgebungsvariablen mit Präfix VIRTUTASK_ überschreiben Werte,
// z. B. VIRTUTASK_DATABASE_POSTGRES_DSN.
func LoadConfig() *AppConfig {
	v := viper.New()
	v.SetConfigName("application")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("VIRTUTASK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Error().Err(err).Msg("Fehler beim Lesen der Konfigurationsdatei")
		return nil
	}

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("Fehler beim Entpacken der Konfiguration")
		return nil
	}

	if config.DATABASE.Postgres.DSN == "" {
		log.Error().Msg("Datenbank-DSN ist nicht konfiguriert")
		return nil
	}

	config.applyDefaults()

	log.Info().Msg("Konfiguration geladen...")
	return &config
}

func (c *AppConfig) applyDefaults() {
	if c.APP.Name == "" {
		c.APP.Name = "virtutask-api"
	}
	if c.APP.Port == "" {
		c.APP.Port = "8080"
	}
	if c.APP.Timezone == "" {
		c.APP.Timezone = "Local"
	}
	if c.AUTH.Mode == "" {
		c.AUTH.Mode = "remote"
	}
	if c.AUTH.VerifyPath == "" {
		c.AUTH.VerifyPath = "/api/auth/verify"
	}
	if c.AUTH.SearchPath == "" {
		c.AUTH.SearchPath = "/api/auth/users/search"
	}
	if c.AUTH.Timeout == 0 {
		c.AUTH.Timeout = 5 * time.Second
	}
	if c.AUTH.CacheTTL == 0 {
		c.AUTH.CacheTTL = time.Minute
	}
	if c.SCORE.Timeout == 0 {
		c.SCORE.Timeout = 5 * time.Second
	}
	if c.UPLOAD.Dir == "" {
		c.UPLOAD.Dir = "uploads"
	}
	if c.UPLOAD.MaxSize == 0 {
		c.UPLOAD.MaxSize = 5 << 20
	}
	if len(c.UPLOAD.AllowedExtensions) == 0 {
		c.UPLOAD.AllowedExtensions = defaultExtensions
	}
	if len(c.UPLOAD.AllowedMimeTypes) == 0 {
		c.UPLOAD.AllowedMimeTypes = defaultMimeTypes
	}
	if c.REALTIME.SendBuffer <= 0 {
		c.REALTIME.SendBuffer = 32
	}
}

// Location löst APP.TIMEZONE auf; unbekannte Zonen fallen auf time.Local zurück.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.APP.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", c.APP.Timezone).Msg("Unbekannte Zeitzone, nutze Local")
		return time.Local
	}
	return loc
}
