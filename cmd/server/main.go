package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mdworkspace/internal/config"
	"mdworkspace/internal/handler"
	"mdworkspace/internal/middleware"
	"mdworkspace/internal/repository/yamlstore"
	"mdworkspace/internal/service"
	serviceMarkdown "mdworkspace/internal/service/markdown"
	"mdworkspace/internal/service/markdown/converter"
	serviceWorkspace "mdworkspace/internal/service/workspace"

	"github.com/joho/godotenv"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging, optionally teed to a log file
	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}
	logger := config.NewLogger(cfg, logOut)
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"addr", cfg.Addr(),
		"data_dir", cfg.DataDir,
		"version", version,
	)

	// Create repositories
	prefsRepo := yamlstore.NewPreferencesRepository(cfg.PreferencesPath(), logger)

	// Create workspace services
	scannerService := serviceWorkspace.NewScannerService(nil, logger)
	fileService := serviceWorkspace.NewFileService(logger)
	imageService := serviceWorkspace.NewImageService(logger)

	// Create markdown services
	outlineService := serviceMarkdown.NewOutlineService()
	contentAnalyzer := serviceMarkdown.NewContentAnalyzer()
	converterRegistry := converter.NewConverterRegistry()
	renderer, err := serviceMarkdown.NewRenderer(cfg.RenderCacheSize, serviceMarkdown.DefaultAssetPrefix, logger)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	// Create preferences service
	prefsService := service.NewPreferencesService(prefsRepo, logger)

	logger.Info("services initialized",
		"converters", converterRegistry.SupportedExtensions(),
		"render_cache_size", cfg.RenderCacheSize,
	)

	// Create handlers
	routes := &handler.Routes{
		Workspace:   handler.NewWorkspaceHandler(scannerService, logger),
		Files:       handler.NewFileHandler(fileService, logger),
		Images:      handler.NewImageHandler(imageService, logger),
		Markdown:    handler.NewMarkdownHandler(outlineService, renderer, contentAnalyzer, converterRegistry, logger),
		Preferences: handler.NewPreferencesHandler(prefsService, logger),
		Assets:      handler.NewAssetHandler(logger),
		Health:      handler.NewHealthHandler(version),
	}

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	routes.Register(mux)

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestLogger → LocalOnly → Recovery → Routes
	origins := cfg.AllowedOrigins()
	h = middleware.Recovery(logger)(h)
	h = middleware.LocalOnly(origins)(h)
	h = middleware.RequestLogger(logger)(h)

	// CORS - outermost to handle OPTIONS pre-flight requests
	h = middleware.CORS(origins)(h)

	// Create HTTP server
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}
}
