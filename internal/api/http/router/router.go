package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/gourmet-server/internal/api/http/handler"
	"github.com/dtroode/gourmet-server/internal/api/http/middleware"
	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/model"
)

// Router wires the HTTP handlers and middleware.
type Router struct {
	ingester       handler.Ingester
	status         handler.StatusMarker
	venues         handler.VenueFinder
	categorizer    handler.FoodCategorizer
	checker        handler.ReadinessChecker
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	ingester handler.Ingester,
	status handler.StatusMarker,
	venues handler.VenueFinder,
	categorizer handler.FoodCategorizer,
	checker handler.ReadinessChecker,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		ingester:       ingester,
		status:         status,
		venues:         venues,
		categorizer:    categorizer,
		checker:        checker,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the handler tree. Liveness and readiness are served without authentication.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID, chimw.RealIP, logging.Handle, chimw.Recoverer)

	health := handler.NewHealth(r.checker, r.logger)
	mux.Get("/healthz", health.Healthz)
	mux.Get("/readyz", health.Readyz)

	photo := handler.NewPhoto(r.ingester, r.status, r.contextManager, r.logger)
	venue := handler.NewVenue(r.venues, r.logger)
	food := handler.NewFood(r.categorizer, r.logger)

	mux.Group(func(g chi.Router) {
		g.Use(authenticate.Handle)
		g.Post("/classifyPhotos", photo.ClassifyPhotos)
		g.Post("/updateUserStatus", photo.UpdateUserStatus)
		g.Post("/findNearbyRestaurant", venue.FindNearbyRestaurant)
		g.Post("/categorizeFood", food.CategorizeFood)
	})

	return mux
}
