package router

import (
	"net/http"
	"time"

	_ "pet-shelter/docs"
	"pet-shelter/internal/adapters/notify"
	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/parents"
	"pet-shelter/internal/domain/shelters"
	"pet-shelter/internal/domain/volunteers"
	"pet-shelter/internal/middleware"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/telemetry"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene se usan repos in-memory.
	Repos *Repos

	// Opcional: default logger.NewFromEnv().
	Logger logger.Logger

	// Opcional: si no viene, las notificaciones solo se loguean (sincrónico).
	Notifier parents.Notifier

	ServiceName string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}
	repos := NewRepos(nil)
	if opts.Repos != nil {
		repos = *opts.Repos
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewInline(notify.NewLogGateway(log), log, 0)
	}
	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = "pet-shelter"
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(telemetry.Middleware(serviceName))
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svcs := NewServices(repos, notifier)

	// Rutas por módulo
	shelters.RegisterRoutes(r, svcs.Shelters)
	animals.RegisterRoutes(r, svcs.Animals)
	parents.RegisterRoutes(r, svcs.Parents)
	volunteers.RegisterRoutes(r, svcs.Volunteers)

	return r
}
