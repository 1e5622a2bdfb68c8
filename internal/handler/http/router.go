package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	workerHandler WorkerHandler,
	scheduleHandler ScheduleHandler,
	reportHandler ReportHandler,
	checklistHandler ChecklistHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "turnos-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/workers", func(r chi.Router) {
			r.Get("/", workerHandler.List)
			r.Post("/", workerHandler.Create)
			r.Post("/reorder", workerHandler.Reorder)

			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", workerHandler.Update)
				r.Delete("/", workerHandler.Delete)
				r.Post("/archive", workerHandler.ToggleArchive)
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/week", scheduleHandler.GetWeekAssignments)
			r.Delete("/week", scheduleHandler.ClearWeek)
			r.Put("/{workerID}/{day}", scheduleHandler.AssignShift)
			r.Delete("/{workerID}/{day}", scheduleHandler.RemoveShift)
		})

		r.Get("/schedule/week", scheduleHandler.GetWeekView)

		r.Get("/reports/week", reportHandler.GetWeekReport)

		r.Route("/checklist/{weekID}", func(r chi.Router) {
			r.Get("/", checklistHandler.GetWeek)
			r.Post("/items", checklistHandler.AddItem)
			r.Patch("/items/{itemID}", checklistHandler.ToggleItem)
			r.Delete("/items/{itemID}", checklistHandler.RemoveItem)
		})
	})

	return r
}
