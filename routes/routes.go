package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gbfmachado/gkpro-system/handlers"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Goalkeepers *handlers.GoalkeeperHandler
	Coaches     *handlers.CoachHandler
	Evaluations *handlers.EvaluationHandler
	Scouts      *handlers.ScoutHandler
	Trainings   *handlers.TrainingHandler
	Support     *handlers.SupportHandler
	Dashboard   *handlers.DashboardHandler
	Reports     *handlers.ReportHandler
	WebSocket   *handlers.WebSocketHandler
}

// SetupRoutes wires the full API surface. uploadDir, when non-empty, is served
// statically under /uploads for locally stored photos.
func SetupRoutes(h Handlers, uploadDir string) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/goalkeepers", func(r chi.Router) {
		r.Get("/", h.Goalkeepers.List)
		r.Post("/", h.Goalkeepers.Create)
		r.Get("/{goalkeeperID}", h.Goalkeepers.GetByID)
		r.Put("/{goalkeeperID}", h.Goalkeepers.Update)
		r.Delete("/{goalkeeperID}", h.Goalkeepers.Delete)
		r.Post("/{goalkeeperID}/photo", h.Goalkeepers.UploadPhoto)
	})

	router.Route("/coaches", func(r chi.Router) {
		r.Get("/", h.Coaches.List)
		r.Post("/", h.Coaches.Create)
		r.Get("/{coachID}", h.Coaches.GetByID)
		r.Put("/{coachID}", h.Coaches.Update)
		r.Delete("/{coachID}", h.Coaches.Delete)
		r.Post("/{coachID}/photo", h.Coaches.UploadPhoto)
	})

	router.Route("/evaluations", func(r chi.Router) {
		r.Get("/", h.Evaluations.List)
		r.Post("/", h.Evaluations.Create)
		r.Put("/{evaluationID}", h.Evaluations.Update)
		r.Delete("/{evaluationID}", h.Evaluations.Delete)
	})

	router.Route("/scouts", func(r chi.Router) {
		r.Get("/", h.Scouts.List)
		r.Post("/", h.Scouts.Create)
		r.Get("/heatmaps", h.Scouts.Heatmaps)
		r.Get("/{scoutID}", h.Scouts.GetByID)
		r.Put("/{scoutID}", h.Scouts.Update)
		r.Delete("/{scoutID}", h.Scouts.Delete)
		r.Get("/{scoutID}/document", h.Scouts.Document)
	})

	router.Route("/trainings", func(r chi.Router) {
		r.Get("/", h.Trainings.List)
		r.Post("/", h.Trainings.Create)
		r.Get("/frequency", h.Trainings.Frequency)
		r.Put("/{trainingID}", h.Trainings.Update)
		r.Delete("/{trainingID}", h.Trainings.Delete)
	})

	router.Route("/support-records", func(r chi.Router) {
		r.Get("/", h.Support.List)
		r.Post("/", h.Support.Create)
		r.Put("/{recordID}", h.Support.Update)
		r.Delete("/{recordID}", h.Support.Delete)
	})

	router.Get("/dashboard", h.Dashboard.GetStats)

	router.Route("/reports", func(r chi.Router) {
		r.Get("/ranking", h.Reports.Ranking)
		r.Get("/{goalkeeperID}", h.Reports.Report)
		r.Get("/{goalkeeperID}/summary", h.Reports.Summary)
	})

	router.Get("/ws", h.WebSocket.Serve)

	if uploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
		router.Get("/uploads/*", fs.ServeHTTP)
	}

	return router
}
