package http

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/time/rate"

	"github.com/mariana-dist/attendance-backend-go/internal/config"
	"github.com/mariana-dist/attendance-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	cfg *config.Config,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	importHandler ImportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/reports", func(r chi.Router) {
			r.Get("/monthly", attendanceHandler.MonthlyReport)
			r.Get("/chronic", attendanceHandler.ChronicReport)
			r.Get("/overview", attendanceHandler.Overview)
		})

		r.Get("/punches", attendanceHandler.Punches)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Route("/options", func(r chi.Router) {
				r.Get("/departments", employeeHandler.Departments)
				r.Get("/positions", employeeHandler.Positions)
			})
			r.Route("/{pin}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Patch("/", employeeHandler.Update)
			})
		})

		r.Route("/imports", func(r chi.Router) {
			r.Use(middleware.RateLimit(rate.Every(10*time.Second), 3))
			r.Post("/punches", importHandler.ImportPunches)
			r.Post("/employees", importHandler.ImportEmployees)
		})
	})

	return r
}
