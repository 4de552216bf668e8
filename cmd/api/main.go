package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cv-analyzer/docs" // Swagger docs
	"cv-analyzer/internal/api"
	"cv-analyzer/internal/config"
	"cv-analyzer/internal/cv"
	"cv-analyzer/internal/logger"
	"cv-analyzer/internal/ner"
	"cv-analyzer/internal/nlp"
	"cv-analyzer/internal/recommend"
	"cv-analyzer/internal/storage"
)

// @title CV Analyzer API
// @version 1.0
// @description Extracts contact details, skills, experience, education and named entities from PDF CVs and recommends matching employers

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

func main() {
	cfg, envErr := config.LoadConfig()
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if envErr != nil {
		logger.Debug().Err(envErr).Msg(".env file not found, using environment variables")
	}

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load catalog")
	}

	if cfg.CatalogDatabaseURL != "" {
		logger.Info().Msg("loading employer requirements from database...")
		db, err := storage.NewDB(cfg.CatalogDatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("db open")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = db.ApplyTo(ctx, catalog)
		cancel()
		db.Close()
		if err != nil {
			logger.Fatal().Err(err).Msg("load employer requirements")
		}
	}

	parser, err := cv.NewPDFParser(cfg.PDFBackend)
	if err != nil {
		logger.Fatal().Err(err).Msg("pdf parser")
	}

	recognizer := ner.NewService(ner.Config{
		Provider: ner.Provider(cfg.NERProvider),
		Endpoint: cfg.NERAPIURL,
		Model:    cfg.NERModel,
		APIKey:   cfg.NERAPIKey,
		Timeout:  cfg.NERTimeout,
	})

	var phones cv.PhoneValidator
	if cfg.StrictPhones {
		phones = cv.RegionValidator{Region: cfg.PhoneRegion}
	}

	extractor := cv.NewExtractor(nlp.NewProseTagger(), recognizer, cv.NewVocabulary(catalog.Skills), phones)

	apiSrv := api.NewAPI(api.Options{
		Parser:         parser,
		Extractor:      extractor,
		Jobs:           recommend.NewEngine(recommend.FromSpecs(catalog.Employers)),
		DashboardJobs:  recommend.NewEngine(recommend.FromSpecs(catalog.DashboardEmployers)),
		MaxUploadBytes: cfg.MaxUploadBytes,
	})
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute, // NER round trip + response
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("server shutdown")
		}
		close(idleConnsClosed)
	}()

	logger.Info().
		Str("addr", srv.Addr).
		Str("pdf_backend", parser.Backend()).
		Str("ner_provider", string(recognizer.Provider())).
		Int("skills", len(catalog.Skills)).
		Int("employers", len(catalog.Employers)).
		Msg("API server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("listen")
	}

	<-idleConnsClosed
}
