package router

import (
	"database/sql"
	"net/http"

	_ "pet-preventive-care/docs"
	mem "pet-preventive-care/internal/adapters/storage/memory"
	pg "pet-preventive-care/internal/adapters/storage/postgres"
	"pet-preventive-care/internal/domain/animals"
	"pet-preventive-care/internal/domain/careplan"
	"pet-preventive-care/internal/middleware"
	"pet-preventive-care/internal/platform/config"
	"pet-preventive-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Catalog es obligatorio: sin catálogo el servicio no arranca.
	Catalog careplan.Table

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger  // puede ser nil (no loguea)
	Config *config.Config // puede ser nil (defaults)
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{
			HorizonCycles:      careplan.DefaultHorizonCycles,
			CORSAllowedOrigins: []string{"*"},
		}
	}

	resolver, err := careplan.NewResolver(opts.Catalog)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var animalRepo animals.Repository
	if opts.DB != nil {
		animalRepo = pg.NewAnimalsRepo(opts.DB)
	} else {
		animalRepo = mem.NewAnimalRepo()
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo)
	careSvc := careplan.NewService(careplan.NewEngine(resolver), careplan.ServiceOptions{
		Profiles:       animalsSvc,
		Logger:         log,
		DefaultHorizon: cfg.HorizonCycles,
		PreviewLimit:   cfg.PreviewLimit,
	})
	batch := careplan.NewBatchRunner(careSvc, 0)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc)
	careplan.RegisterRoutes(r, careSvc, batch)

	return r, nil
}
