package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const serviceName = "body-comp-api"

func main() {
	// A missing .env is fine when the environment is set some other way.
	envErr := godotenv.Load()

	cfg := loadConfig()
	log, err := newLogger(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if envErr != nil {
		log.Debug("no .env loaded", zap.Error(envErr))
	}
	if err := cfg.validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	pool, err := getDBPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	defer pool.Close()
	log.Info("DB pool ready")

	reports := newOpenAIReportWriter(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, log.Named("report"))
	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY not set, report generation disabled")
	}

	h := newHandler(newPGAssessmentStore(pool, log.Named("store")), reports, log)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log.Named("http")))
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	log.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
