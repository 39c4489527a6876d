package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pocketplan/backend/internal/config"
	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/internal/ledger"
	"github.com/pocketplan/backend/internal/router"
	"github.com/pocketplan/backend/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, the environment wins either way.
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create data directory
	if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The handle cache remembers the budget file across restarts. It
	// is best-effort, losing it only costs the remembered path.
	handles, err := storage.OpenHandleCache(filepath.Join(cfg.DataDir, "handles.db"))
	if err != nil {
		log.Warn().Err(err).Msg("running without a handle cache")
		handles = nil
	} else {
		defer handles.Close()
	}

	// An explicitly configured file wins over the remembered one.
	file := cfg.BudgetFile
	if file == "" && handles != nil {
		if remembered, ok := handles.Get(); ok {
			file = remembered
		}
	}
	if file == "" {
		file = filepath.Join(cfg.DataDir, "budget.json")
	}

	gateway := storage.NewGateway(file)
	doc, err := gateway.Read()
	if err != nil {
		log.Fatal().Str("file", file).Msg(err.Error())
	}
	log.Info().Str("file", file).Msg("budget loaded")

	co := v1.NewController(ledger.New(doc), gateway, handles, cfg.Currency)

	apiURL, err := url.Parse("http://" + cfg.Addr())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Config(apiURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(co, r.Group("/"))

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
