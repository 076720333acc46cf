package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/keypad-studio/backend/internal/api"
	"github.com/keypad-studio/backend/internal/catalog"
	"github.com/keypad-studio/backend/internal/config"
	"github.com/keypad-studio/backend/internal/designs"
	"github.com/keypad-studio/backend/internal/export"
	"github.com/keypad-studio/backend/internal/geometry"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Get the executable's directory for config resolution
	exePath, err := os.Executable()
	if err != nil {
		fmt.Printf("Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	exeDir := filepath.Dir(exePath)

	// Load XML configuration
	configPath := filepath.Join(exeDir, "KeypadStudio.exe.config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Ensure all data directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Printf("Failed to create directories: %v\n", err)
		os.Exit(1)
	}

	// Geometry tables are built once at startup and never mutated.
	registry := geometry.GetGlobalRegistry()

	// Commerce backend client for icon catalog and order export
	catalogClient := catalog.NewClient(cfg.Catalog.ShopAPIURL, cfg.Catalog.AuthToken)

	// Ring glow palette: built-in defaults unless a swatch file is configured
	swatches := catalog.DefaultRingGlowOptions()
	if cfg.Catalog.SwatchFile != "" {
		loaded, err := catalog.LoadRingGlowOptions(cfg.Catalog.SwatchFile)
		if err != nil {
			fmt.Printf("Warning: failed to load swatch file, using defaults: %v\n", err)
		} else {
			swatches = loaded
			fmt.Printf("Loaded %d ring glow swatches from %s\n", len(loaded), cfg.Catalog.SwatchFile)
		}
	}

	// Saved-design store (embedded DuckDB)
	designStore, err := designs.NewStore(cfg.Storage.DesignsDatabase)
	if err != nil {
		fmt.Printf("Failed to open design store: %v\n", err)
		os.Exit(1)
	}
	defer designStore.Close()

	exportService := export.NewService(catalogClient, registry)

	deps := &api.Dependencies{
		Registry:            registry,
		CatalogClient:       catalogClient,
		DesignStore:         designStore,
		ExportService:       exportService,
		Swatches:            swatches,
		Version:             Version,
		AllowDesignDeletion: cfg.Security.AllowDesignDeletion,
	}
	handlers := api.NewHandlers(deps)

	e := echo.New()
	e.HideBanner = true

	// Configure middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging if disabled in config
			if !cfg.Advanced.EnableRequestLogging {
				return true
			}
			return c.Request().URL.Path == "/api/health"
		},
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize:         1024 * 4,
		DisablePrintStack: false,
		LogLevel:          0,
	}))

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: time.Duration(cfg.Server.ReadTimeout) * time.Second,
		Skipper: func(c echo.Context) bool {
			// Catalog fetches paginate the commerce backend and can
			// outlast the default request budget.
			return strings.Contains(c.Request().URL.Path, "/icon-catalog")
		},
		ErrorMessage: "Request timeout - query took too long",
	}))

	// Compression middleware
	if cfg.Processing.EnableCompression {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
			Level: cfg.Processing.CompressionLevel,
			Skipper: func(c echo.Context) bool {
				// msgpack payloads are already compact
				return strings.HasSuffix(c.Request().URL.Path, "/msgpack")
			},
		}))
	}

	// Body limit middleware
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS configuration
	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}

	api.RegisterRoutes(e, handlers, deps)

	// Configure server with settings from XML config
	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Print startup banner
	fmt.Printf("\n")
	fmt.Printf("╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║           Keypad Studio Configurator Server               ║\n")
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Version:    %-45s║\n", Version)
	fmt.Printf("║  Build Time: %-45s║\n", BuildTime)
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Config:    %-46s║\n", configPath)
	fmt.Printf("║  Listen:    http://%-38s║\n", cfg.GetServerAddr())
	fmt.Printf("║  Shop API:  %-46s║\n", cfg.Catalog.ShopAPIURL)
	fmt.Printf("║  Models:    %-46d║\n", len(registry.Codes()))
	fmt.Printf("╚═══════════════════════════════════════════════════════════╝\n")
	fmt.Printf("\n")

	e.Logger.Fatal(e.StartServer(s))
}
