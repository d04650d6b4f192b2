package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/config"
	bookHandler "bookcatalog-backend/internal/domains/book/handler"
	bookRepo "bookcatalog-backend/internal/domains/book/repository"
	bookService "bookcatalog-backend/internal/domains/book/service"
	"bookcatalog-backend/internal/infrastructure/database"
	"bookcatalog-backend/internal/infrastructure/metadata"
	"bookcatalog-backend/pkg/logger"
)

// Container holds the application's dependency graph, wired once at
// startup: config → infrastructure → repositories → services →
// handlers. Everything is a singleton for the process lifetime.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	MetadataClient *metadata.Client

	BookRepo bookRepo.RepositoryInterface

	BookService     bookService.ServiceInterface
	ImportService   bookService.ImportServiceInterface
	ExportService   bookService.ExportServiceInterface
	MetadataService bookService.MetadataServiceInterface

	BookHandler         *bookHandler.Handler
	ImportExportHandler *bookHandler.ImportExportHandler
	MetadataHandler     *bookHandler.MetadataHandler
}

// NewContainer builds the full dependency graph. Any failure here
// prevents the application from starting.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	log.Info().Str("environment", cfg.App.Environment).Msg("Configuration loaded")

	db, err := database.NewPostgresDB(context.Background(), &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	metadataClient, err := metadata.NewClient(cfg.Metadata.BaseURL, cfg.Metadata.APIKey, cfg.Metadata.Timeout)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to build metadata client: %w", err)
	}
	c.MetadataClient = metadataClient

	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)

	c.BookService = bookService.NewBookService(c.BookRepo)
	c.ImportService = bookService.NewImportService(c.BookRepo)
	c.ExportService = bookService.NewExportService(c.BookRepo)
	c.MetadataService = bookService.NewMetadataService(c.BookRepo, c.MetadataClient)

	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.ImportExportHandler = bookHandler.NewImportExportHandler(c.ImportService, c.ExportService)
	c.MetadataHandler = bookHandler.NewMetadataHandler(c.MetadataService)

	log.Info().Msg("DI container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("Container resources released")
}
