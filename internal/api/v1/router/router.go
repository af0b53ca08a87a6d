package router

import (
	"context"
	"database/sql"
	"net/http"

	"coursecatalog/internal/api/v1/handler"
	"coursecatalog/internal/config"
	"coursecatalog/internal/database"
	"coursecatalog/internal/middleware"
	"coursecatalog/internal/repository"
	"coursecatalog/internal/service"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New opens the catalog store and builds the HTTP handler around it.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	logger.Info().Str("environment", cfg.Environment).Str("db_driver", cfg.DBDriver).Msg("App environment loaded")

	db, err := database.Open(context.Background(), cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	return NewWithDB(cfg, db, logger), db, nil
}

// NewWithDB builds the HTTP handler on an already opened store.
func NewWithDB(cfg *config.Config, db *sql.DB, logger zerolog.Logger) http.Handler {
	// 1. Initialize repositories & services & handlers
	courseRepo := repository.NewCourseRepo(db, logger)
	offeringRepo := repository.NewOfferingRepo(db, logger)

	courseSvc := service.NewCourseService(courseRepo)
	offeringSvc := service.NewOfferingService(offeringRepo)

	courseHandler := handler.NewCourseHandler(courseSvc, logger)
	offeringHandler := handler.NewOfferingHandler(offeringSvc, logger)

	// 2. Create ServeMux router
	mux := http.NewServeMux()

	apiMux := http.NewServeMux()
	courseHandler.RegisterRoutes(apiMux)
	offeringHandler.RegisterRoutes(apiMux)
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
		logger.Info().Str("dir", cfg.StaticDir).Msg("Serving static files")
	}

	// 3. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		Debug:          false,
	})

	return middleware.LoggerMiddleware(logger)(c.Handler(mux))
}
