package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/seiwa/repasse-api/pkg/config"
	"github.com/seiwa/repasse-api/pkg/logger"
)

// Aplica os arquivos migrations/*.up.sql em ordem lexicográfica.
// Os arquivos são idempotentes (IF NOT EXISTS), então rodar de novo é seguro.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexão")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping no banco")
	}

	files, err := filepath.Glob("migrations/*.up.sql")
	if err != nil {
		log.Fatal().Err(err).Msg("listar migrações")
	}
	if len(files) == 0 {
		log.Fatal().Msg("nenhuma migração encontrada em migrations/")
	}
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("ler migração")
		}
		log.Info().Str("file", f).Msg("aplicando migração")
		if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("aplicar migração")
		}
	}

	log.Info().Int("count", len(files)).Msg("migrações aplicadas com sucesso")
}
