package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/asset-tracker/internal"
	"github.com/frahmantamala/asset-tracker/internal/asset"
	assetPostgres "github.com/frahmantamala/asset-tracker/internal/asset/postgres"
	"github.com/frahmantamala/asset-tracker/internal/auth"
	"github.com/frahmantamala/asset-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/asset-tracker/internal/category/postgres"
	"github.com/frahmantamala/asset-tracker/internal/clearance"
	clearancePostgres "github.com/frahmantamala/asset-tracker/internal/clearance/postgres"
	"github.com/frahmantamala/asset-tracker/internal/employee"
	employeePostgres "github.com/frahmantamala/asset-tracker/internal/employee/postgres"
	"github.com/frahmantamala/asset-tracker/internal/transport"
	"github.com/frahmantamala/asset-tracker/internal/transport/rest"
	"github.com/frahmantamala/asset-tracker/internal/transport/swagger"
	"github.com/frahmantamala/asset-tracker/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	log := deps.Logger
	baseHandler := transport.NewBaseHandler(log)

	secretVerifier := auth.NewSecretVerifier(deps.Config.Security.AdminSecret, log)

	assetRepo := assetPostgres.NewAssetRepository(deps.GormDB)
	categoryRepo := categoryPostgres.NewCategoryRepository(deps.GormDB)
	employeeRepo := employeePostgres.NewEmployeeRepository(deps.GormDB)
	clearanceRepo := clearancePostgres.NewClearanceRepository(deps.GormDB)

	assetService := asset.NewService(assetRepo, employeeRepo, categoryRepo, secretVerifier, log)
	categoryService := category.NewService(categoryRepo, category.NewMatcher(), log)
	employeeService := employee.NewService(employeeRepo, log)
	clearanceService := clearance.NewService(clearanceRepo, secretVerifier, log)

	assetHandler := asset.NewHandler(baseHandler, assetService)
	categoryHandler := category.NewHandler(baseHandler, categoryService)
	employeeHandler := employee.NewHandler(baseHandler, employeeService)
	clearanceHandler := clearance.NewHandler(baseHandler, clearanceService)

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, assetHandler, categoryHandler, employeeHandler, clearanceHandler, log)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	log := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ORM: %w", err)
	}

	if _, err := swagger.LoadSpec(context.Background(), "./api/openapi.yml"); err != nil {
		log.Warn("OpenAPI spec failed to load, swagger UI will be degraded", "error", err)
	}

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm wraps the existing pool. TranslateError turns driver duplicate-key
// errors into gorm.ErrDuplicatedKey, which the repositories rely on.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
}
