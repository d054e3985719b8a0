package db

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schema string

// Migrate legt fehlende Tabellen und Indizes an. Das Schema ist idempotent (IF NOT EXISTS).
func Migrate(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("Schema konnte nicht angewendet werden: %w", err)
	}

	log.Info().Msg("Datenbankschema ist aktuell.")
	return nil
}
