// Command cvdash sends a CV to the analyzer API and prints a dashboard-style
// report, including experience-aware employer matches.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cv-analyzer/internal/config"
	"cv-analyzer/internal/cv"
	"cv-analyzer/internal/dashboard"
	"cv-analyzer/internal/logger"
	"cv-analyzer/internal/recommend"

	flag "github.com/spf13/pflag"
)

func main() {
	var (
		apiURL      string
		catalogPath string
		pdfBackend  string
		timeout     time.Duration
		raw         bool
		verbose     bool
	)
	flag.StringVar(&apiURL, "api", "http://localhost:8080", "Base URL of the analyzer API")
	flag.StringVar(&catalogPath, "catalog", "", "Catalog YAML with dashboard employers (built-in when empty)")
	flag.StringVar(&pdfBackend, "pdf-backend", cv.BackendPure, "Local PDF backend: pure, fitz or docconv")
	flag.DurationVar(&timeout, "timeout", 2*time.Minute, "Request timeout")
	flag.BoolVar(&raw, "raw", false, "Print the API response as JSON and exit")
	flag.BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: cvdash [flags] <cv.pdf>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := "warn"
	if verbose {
		level = "debug"
	}
	logger.Init(logger.Config{Level: level, Format: "pretty"})

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal().Err(err).Str("file", path).Msg("read CV")
	}
	filename := filepath.Base(path)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client := dashboard.NewClient(apiURL, timeout)
	if err := client.Health(ctx); err != nil {
		logger.Fatal().Err(err).Str("api", apiURL).Msg("analyzer API is not reachable")
	}

	logger.Debug().Str("api", apiURL).Str("file", filename).Msg("uploading CV")
	res, body, err := client.Analyze(ctx, filename, data)
	if err != nil {
		logger.Fatal().Err(err).Msg("analysis failed")
	}

	if raw {
		fmt.Println(string(body))
		return
	}

	catalog, err := config.LoadCatalog(catalogPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load catalog")
	}

	parser, err := cv.NewPDFParser(pdfBackend)
	if err != nil {
		logger.Fatal().Err(err).Msg("pdf parser")
	}
	localText, err := parser.ExtractText(data)
	if err != nil {
		// The API already accepted the file; fall back to its sample.
		logger.Warn().Err(err).Msg("local text extraction failed")
		localText = res.ExtractedTextSample
	}

	engine := recommend.NewEngine(recommend.FromSpecs(catalog.DashboardEmployers))
	report := dashboard.BuildReport(filename, res, localText, engine)
	if err := report.Render(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("render report")
	}
}
