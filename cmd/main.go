// Einstiegspunkt der VirtuTask API: Konfiguration laden, Postgres und Redis
// verbinden, Services verdrahten und die Fiber-App mit Graceful Shutdown starten.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/virtutask/virtutask-api/internal/abstraction/cache"
	"github.com/virtutask/virtutask-api/internal/config"
	"github.com/virtutask/virtutask-api/internal/db"
	"github.com/virtutask/virtutask-api/internal/dtos"
	realtime_handlers "github.com/virtutask/virtutask-api/internal/handlers/realtime"
	"github.com/virtutask/virtutask-api/internal/i18n"
	"github.com/virtutask/virtutask-api/internal/middleware"
	"github.com/virtutask/virtutask-api/internal/queue"
	"github.com/virtutask/virtutask-api/internal/realtime"
	"github.com/virtutask/virtutask-api/internal/routers"
	"github.com/virtutask/virtutask-api/internal/score"
	"github.com/virtutask/virtutask-api/internal/storage"
	hub_case "github.com/virtutask/virtutask-api/internal/use-cases/hub-case"
	project_case "github.com/virtutask/virtutask-api/internal/use-cases/project-case"
	reward_case "github.com/virtutask/virtutask-api/internal/use-cases/reward-case"
	subtask_case "github.com/virtutask/virtutask-api/internal/use-cases/subtask-case"
	task_case "github.com/virtutask/virtutask-api/internal/use-cases/task-case"
	user_case "github.com/virtutask/virtutask-api/internal/use-cases/user-case"
	"github.com/virtutask/virtutask-api/internal/utils"
	"github.com/virtutask/virtutask-api/internal/verifier"
)

func main() {
	cfg := config.LoadConfig()
	if cfg == nil {
		log.Fatal().Msg("Konfiguration konnte nicht geladen werden.")
	}
	setupLogger(cfg.APP.State)

	i18nSvc := i18n.NewInitI18nService()
	loc := cfg.Location()

	dbPool, err := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Postgres-Pool konnte nicht erstellt werden.")
	}
	if err := db.Migrate(dbPool); err != nil {
		log.Fatal().Err(err).Msg("Migration fehlgeschlagen.")
	}

	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis-Pool konnte nicht erstellt werden.")
	}
	redisCache := cache.NewRedisCache(redisPool)

	v, err := buildVerifier(cfg, redisCache)
	if err != nil {
		log.Fatal().Err(err).Msg("Token-Verifier konnte nicht erstellt werden.")
	}

	store, err := storage.NewLocalStore(cfg.UPLOAD.Dir, cfg.UPLOAD.MaxSize, cfg.UPLOAD.AllowedExtensions, cfg.UPLOAD.AllowedMimeTypes)
	if err != nil {
		log.Fatal().Err(err).Msg("Upload-Verzeichnis nicht nutzbar.")
	}

	limiterStorage, err := routers.NewLimiterStorage(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password)
	if err != nil {
		log.Warn().Err(err).Msg("Limiter nutzt In-Memory-Speicher.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Ohne Fanout liefert der Hub direkt aus, mit Fanout läuft alles über Redis Pub/Sub.
	hub := realtime.NewHub(cfg.REALTIME.SendBuffer)
	var broadcaster realtime.Broadcaster = hub
	if cfg.REALTIME.RedisFanout {
		relay := realtime.NewRedisRelay(redisPool, hub)
		go relay.Run(ctx)
		broadcaster = relay
	}

	scoreClient := score.NewHTTPClient(cfg.SCORE.BaseURL, cfg.SCORE.Timeout)
	taskQueue := queue.NewTaskQueue(redisPool)

	deps := &routers.Deps{
		DB:             dbPool,
		Redis:          redisPool,
		I18n:           i18nSvc,
		Validator:      dtos.NewValidator(),
		Verifier:       v,
		Projects:       project_case.NewProjectService(dbPool, redisCache, broadcaster),
		Tasks:          task_case.NewTaskService(dbPool, broadcaster, store, cfg.APP.CascadeSubtasks),
		Subtasks:       subtask_case.NewSubtaskService(dbPool),
		Hub:            hub_case.NewHubService(dbPool, scoreClient, loc),
		Rewards:        reward_case.NewRewardService(dbPool, scoreClient, taskQueue, loc),
		Users:          user_case.NewUserService(v),
		Realtime:       realtime_handlers.NewRealtimeHandler(hub, v, cfg.REALTIME.VerifyTokens),
		LimiterStorage: limiterStorage,
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.APP.Name,
		BodyLimit:    int(cfg.UPLOAD.MaxSize) + 1<<20,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	routers.SetupRoutes(app, deps)

	go func() {
		log.Info().Msgf("Starte %s auf Port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Der Server konnte nicht gestartet werden.")
		}
	}()

	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("Beim Herunterfahren ist ein Fehler aufgetreten.")
	}

	redisPool.Close()
	log.Info().Msg("Redis-Pool erfolgreich geschlossen.")
	dbPool.Close()
	log.Info().Msg("DB-Pool erfolgreich geschlossen.")

	log.Info().Msg("Server ordnungsgemäß heruntergefahren.")
}

func setupLogger(state string) {
	if state == "prod" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// buildVerifier wählt nach AUTH.MODE zwischen Auth-Service und lokalem Paseto und legt einen Redis-Cache davor.
func buildVerifier(cfg *config.AppConfig, c cache.Cache) (verifier.Verifier, error) {
	var next verifier.Verifier
	switch cfg.AUTH.Mode {
	case "paseto":
		maker, err := utils.NewPasetoMaker(cfg.AUTH.PasetoHexKey)
		if err != nil {
			return nil, err
		}
		next = verifier.NewPasetoVerifier(maker)
	case "remote":
		next = verifier.NewRemoteVerifier(cfg.AUTH.BaseURL, cfg.AUTH.VerifyPath, cfg.AUTH.SearchPath, cfg.AUTH.Timeout)
	default:
		return nil, fmt.Errorf("unbekannter AUTH.MODE %q", cfg.AUTH.Mode)
	}
	return verifier.NewCachingVerifier(next, c, cfg.AUTH.CacheTTL), nil
}
